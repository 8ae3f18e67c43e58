// Package ports defines the interfaces (driven and driving ports)
// between the timer core and external infrastructure.
package ports

import (
	"context"
	"time"

	"github.com/pomo-cli/pomo/internal/domain"
)

// IntervalRepository defines the interface for interval history persistence.
// This is a driven port (implemented by adapters).
type IntervalRepository interface {
	// Save persists a completed interval record.
	Save(ctx context.Context, record *domain.IntervalRecord) error

	// FindRecent retrieves records completed at or after the given time,
	// newest first.
	FindRecent(ctx context.Context, since time.Time) ([]*domain.IntervalRecord, error)

	// GetDailyStats returns aggregated statistics for a specific date.
	GetDailyStats(ctx context.Context, date time.Time) (*domain.DailyStats, error)

	// DeleteAll removes every record.
	DeleteAll(ctx context.Context) error
}

// Storage is the combined repository interface.
type Storage interface {
	// Intervals provides access to interval history operations.
	Intervals() IntervalRepository

	// Close closes the storage connection.
	Close() error

	// Migrate runs database migrations.
	Migrate() error
}
