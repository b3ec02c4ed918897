package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"fleet-overtime/internal/errors"
	"fleet-overtime/internal/repository"
	"fleet-overtime/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists mechanic documents in a single table, with the bucket
// array held as a JSON column. Documents are read and written whole: the
// last writer wins at the mechanic level, which matches the single-writer-
// per-request model this subsystem assumes.
type SQLiteStore struct {
	db *sql.DB
}

// New opens (or creates) the database at dbPath and runs pending migrations.
func New(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateMechanic inserts a new mechanic document. Timestamps are set here.
func (s *SQLiteStore) CreateMechanic(ctx context.Context, rec *repository.MechanicRecord) error {
	buckets, err := marshalBuckets(rec.Buckets)
	if err != nil {
		return err
	}

	now := time.Now()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	query := `
	INSERT INTO mechanics (id, name, code, buckets, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?)`

	if _, err := s.db.ExecContext(ctx, query,
		rec.ID, rec.Name, rec.Code, buckets,
		formatTime(rec.CreatedAt), formatTime(rec.UpdatedAt)); err != nil {
		return HandleDatabaseError("create mechanic", err)
	}
	return nil
}

// GetMechanic loads one mechanic document by id.
func (s *SQLiteStore) GetMechanic(ctx context.Context, id string) (*repository.MechanicRecord, error) {
	query := `
	SELECT id, name, code, buckets, created_at, updated_at
	FROM mechanics
	WHERE id = ?`

	return QuerySingle(ctx, s.db, query, scanMechanic, "mechanic", id, id)
}

// ListMechanics loads every mechanic document, in onboarding order.
func (s *SQLiteStore) ListMechanics(ctx context.Context) ([]*repository.MechanicRecord, error) {
	query := `
	SELECT id, name, code, buckets, created_at, updated_at
	FROM mechanics
	ORDER BY created_at ASC, id ASC`

	return QueryMultiple(ctx, s.db, query, scanMechanic, "mechanics")
}

// SaveMechanic writes a mechanic document back whole, replacing the stored
// bucket array. No optimistic-concurrency check.
func (s *SQLiteStore) SaveMechanic(ctx context.Context, rec *repository.MechanicRecord) error {
	buckets, err := marshalBuckets(rec.Buckets)
	if err != nil {
		return err
	}

	rec.UpdatedAt = time.Now()

	query := `
	UPDATE mechanics
	SET name = ?, code = ?, buckets = ?, updated_at = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, s.db, query, "mechanic", rec.ID,
		rec.Name, rec.Code, buckets, formatTime(rec.UpdatedAt), rec.ID)
}

// DeleteMechanic removes a mechanic document; its buckets and entries go
// with it.
func (s *SQLiteStore) DeleteMechanic(ctx context.Context, id string) error {
	query := `DELETE FROM mechanics WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, s.db, query, "mechanic", id, id)
}

func marshalBuckets(buckets []repository.BucketRecord) (string, error) {
	if buckets == nil {
		buckets = []repository.BucketRecord{}
	}
	bs, err := json.Marshal(buckets)
	if err != nil {
		return "", HandleDatabaseError("marshal buckets", err)
	}
	return string(bs), nil
}

func scanMechanic(scanner Scanner) (*repository.MechanicRecord, error) {
	rec := &repository.MechanicRecord{}
	var buckets, createdAt, updatedAt string

	if err := scanner.Scan(&rec.ID, &rec.Name, &rec.Code, &buckets, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(buckets), &rec.Buckets); err != nil {
		return nil, err
	}

	var err error
	if rec.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if rec.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}

	return rec, nil
}

// formatTime renders a timestamp as RFC3339 for consistent column storage.
func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
