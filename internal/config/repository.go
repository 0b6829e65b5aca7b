package config

import (
	"fmt"
	"os"

	"todo-list/internal/repository/sqlite"
)

// CreateRepository creates the task store for the configured database path,
// creating the containing directory first. Failure here is recoverable: the
// caller runs the session memory-only.
func CreateRepository(config *Config) (sqlite.Repository, error) {
	if err := os.MkdirAll(config.Database.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	repo, err := sqlite.New(config.GetDatabasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return repo, nil
}
