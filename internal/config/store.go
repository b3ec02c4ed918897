package config

import (
	"fmt"
	"os"

	"fleet-overtime/internal/repository"
	"fleet-overtime/internal/repository/buntdb"
	"fleet-overtime/internal/repository/sqlite"
)

// CreateStore creates a document store instance for the configured backend.
func CreateStore(config *Config) (repository.Store, error) {
	if err := os.MkdirAll(config.Database.Dir, os.FileMode(config.Database.DirPermissions)); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	dbPath := config.GetDatabasePath()

	switch config.Database.Backend {
	case "sqlite":
		store, err := sqlite.New(dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return store, nil
	case "buntdb":
		store, err := buntdb.New(dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", config.Database.Backend)
	}
}

// CreateTestStore creates an in-memory store for testing
func CreateTestStore() (repository.Store, error) {
	store, err := sqlite.New(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}
	return store, nil
}
