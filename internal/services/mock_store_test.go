package services

import (
	"context"
	"sync"
	"time"

	"fleet-overtime/internal/errors"
	"fleet-overtime/internal/repository"
)

// mockStore implements repository.Store in memory for service tests, with
// per-mechanic failure injection for the sweep isolation cases.
type mockStore struct {
	mu        sync.Mutex
	mechanics map[string]*repository.MechanicRecord
	order     []string

	failGet  map[string]error
	failSave map[string]error
}

func newMockStore() *mockStore {
	return &mockStore{
		mechanics: make(map[string]*repository.MechanicRecord),
		failGet:   make(map[string]error),
		failSave:  make(map[string]error),
	}
}

func (m *mockStore) CreateMechanic(ctx context.Context, rec *repository.MechanicRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	clone := *rec
	m.mechanics[rec.ID] = &clone
	m.order = append(m.order, rec.ID)
	return nil
}

func (m *mockStore) GetMechanic(ctx context.Context, id string) (*repository.MechanicRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.failGet[id]; ok {
		return nil, err
	}
	rec, ok := m.mechanics[id]
	if !ok {
		return nil, errors.NewNotFoundError("mechanic", id)
	}
	clone := *rec
	return &clone, nil
}

func (m *mockStore) ListMechanics(ctx context.Context) ([]*repository.MechanicRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var recs []*repository.MechanicRecord
	for _, id := range m.order {
		if rec, ok := m.mechanics[id]; ok {
			clone := *rec
			recs = append(recs, &clone)
		}
	}
	return recs, nil
}

func (m *mockStore) SaveMechanic(ctx context.Context, rec *repository.MechanicRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.failSave[rec.ID]; ok {
		return err
	}
	if _, ok := m.mechanics[rec.ID]; !ok {
		return errors.NewNotFoundError("mechanic", rec.ID)
	}
	rec.UpdatedAt = time.Now()
	clone := *rec
	m.mechanics[rec.ID] = &clone
	return nil
}

func (m *mockStore) DeleteMechanic(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.mechanics[id]; !ok {
		return errors.NewNotFoundError("mechanic", id)
	}
	delete(m.mechanics, id)
	return nil
}

func (m *mockStore) Close() error {
	return nil
}
