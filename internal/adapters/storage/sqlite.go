// Package storage provides the SQLite implementation of the storage ports.
package storage

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/pomo-cli/pomo/internal/ports"
)

// sqliteStorage implements the ports.Storage interface using SQLite.
type sqliteStorage struct {
	db           *sql.DB
	intervalRepo ports.IntervalRepository
}

// Ensure sqliteStorage implements ports.Storage.
var _ ports.Storage = (*sqliteStorage)(nil)

// New creates a new SQLite storage instance.
func New(dbPath string) (ports.Storage, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	storage := &sqliteStorage{
		db:           db,
		intervalRepo: newIntervalRepository(db),
	}

	if err := storage.Migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return storage, nil
}

// NewMemory creates a new in-memory SQLite storage instance for testing.
func NewMemory() (ports.Storage, error) {
	return New(":memory:")
}

// Intervals returns the interval history repository.
func (s *sqliteStorage) Intervals() ports.IntervalRepository {
	return s.intervalRepo
}

// Close closes the database connection.
func (s *sqliteStorage) Close() error {
	return s.db.Close()
}

// Migrate creates the database schema.
func (s *sqliteStorage) Migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS intervals (
		id TEXT PRIMARY KEY,
		mode TEXT NOT NULL,
		duration_seconds INTEGER NOT NULL,
		completed_at DATETIME NOT NULL,
		git_branch TEXT,
		git_commit TEXT,
		git_repo TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_intervals_completed ON intervals(completed_at);
	CREATE INDEX IF NOT EXISTS idx_intervals_mode ON intervals(mode);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	return nil
}
