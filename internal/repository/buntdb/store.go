package buntdb

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/tidwall/buntdb"

	"fleet-overtime/internal/errors"
	"fleet-overtime/internal/repository"
)

const mechanicKeyPrefix = "mechanic:"

// BuntStore persists mechanic documents as JSON values keyed by mechanic id.
// The path ":memory:" gives an in-memory store, which the test suites use.
type BuntStore struct {
	db *buntdb.DB
}

// New opens (or creates) the document database at path.
func New(path string) (*BuntStore, error) {
	db, err := buntdb.Open(path)
	if err != nil {
		return nil, errors.NewDatabaseError("open document database", err)
	}
	return &BuntStore{db: db}, nil
}

// Close closes the underlying database.
func (s *BuntStore) Close() error {
	return s.db.Close()
}

// CreateMechanic inserts a new mechanic document. Timestamps are set here.
func (s *BuntStore) CreateMechanic(ctx context.Context, rec *repository.MechanicRecord) error {
	now := time.Now()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	return s.db.Update(func(tx *buntdb.Tx) error {
		key := mechanicKey(rec.ID)
		if _, err := tx.Get(key); err == nil {
			return errors.NewDatabaseError("create mechanic", fmt.Errorf("mechanic %s already exists", rec.ID))
		}
		return s.set(tx, key, rec)
	})
}

// GetMechanic loads one mechanic document by id.
func (s *BuntStore) GetMechanic(ctx context.Context, id string) (*repository.MechanicRecord, error) {
	var rec *repository.MechanicRecord
	err := s.db.View(func(tx *buntdb.Tx) error {
		v, err := tx.Get(mechanicKey(id))
		if err != nil {
			return err
		}
		rec = &repository.MechanicRecord{}
		return json.Unmarshal([]byte(v), rec)
	})
	if err == buntdb.ErrNotFound {
		return nil, errors.NewNotFoundError("mechanic", id)
	} else if err != nil {
		return nil, errors.NewDatabaseError("get mechanic", err)
	}
	return rec, nil
}

// ListMechanics loads every mechanic document.
func (s *BuntStore) ListMechanics(ctx context.Context) ([]*repository.MechanicRecord, error) {
	var recs []*repository.MechanicRecord
	err := s.db.View(func(tx *buntdb.Tx) error {
		var innerErr error
		iterErr := tx.Ascend("", func(key, value string) bool {
			if !strings.HasPrefix(key, mechanicKeyPrefix) {
				return true
			}
			rec := &repository.MechanicRecord{}
			if innerErr = json.Unmarshal([]byte(value), rec); innerErr != nil {
				return false
			}
			recs = append(recs, rec)
			return true
		})
		if innerErr != nil {
			return innerErr
		}
		return iterErr
	})
	if err != nil {
		return nil, errors.NewDatabaseError("list mechanics", err)
	}
	return recs, nil
}

// SaveMechanic writes a mechanic document back whole. No optimistic-
// concurrency check; concurrent writers to one mechanic are last-write-wins.
func (s *BuntStore) SaveMechanic(ctx context.Context, rec *repository.MechanicRecord) error {
	rec.UpdatedAt = time.Now()

	err := s.db.Update(func(tx *buntdb.Tx) error {
		key := mechanicKey(rec.ID)
		if _, err := tx.Get(key); err != nil {
			return err
		}
		return s.set(tx, key, rec)
	})
	if err == buntdb.ErrNotFound {
		return errors.NewNotFoundError("mechanic", rec.ID)
	} else if err != nil {
		return errors.NewDatabaseError("save mechanic", err)
	}
	return nil
}

// DeleteMechanic removes a mechanic document and everything it owns.
func (s *BuntStore) DeleteMechanic(ctx context.Context, id string) error {
	err := s.db.Update(func(tx *buntdb.Tx) error {
		_, err := tx.Delete(mechanicKey(id))
		return err
	})
	if err == buntdb.ErrNotFound {
		return errors.NewNotFoundError("mechanic", id)
	} else if err != nil {
		return errors.NewDatabaseError("delete mechanic", err)
	}
	return nil
}

func (s *BuntStore) set(tx *buntdb.Tx, key string, rec *repository.MechanicRecord) error {
	bs, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	_, _, err = tx.Set(key, string(bs), nil)
	return err
}

func mechanicKey(id string) string {
	return mechanicKeyPrefix + id
}
