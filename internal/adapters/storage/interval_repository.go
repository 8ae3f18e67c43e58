package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pomo-cli/pomo/internal/domain"
	"github.com/pomo-cli/pomo/internal/ports"
)

// intervalRepository implements ports.IntervalRepository using SQLite.
type intervalRepository struct {
	db *sql.DB
}

// newIntervalRepository creates a new interval repository.
func newIntervalRepository(db *sql.DB) ports.IntervalRepository {
	return &intervalRepository{db: db}
}

// Save persists a completed interval record.
func (r *intervalRepository) Save(ctx context.Context, record *domain.IntervalRecord) error {
	query := `
		INSERT INTO intervals (id, mode, duration_seconds, completed_at, git_branch, git_commit, git_repo)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		record.ID,
		string(record.Mode),
		record.DurationSeconds,
		record.CompletedAt,
		record.GitBranch,
		record.GitCommit,
		record.GitRepo,
	)
	if err != nil {
		return fmt.Errorf("failed to save interval: %w", err)
	}

	return nil
}

// FindRecent retrieves records completed at or after the given time,
// newest first.
func (r *intervalRepository) FindRecent(ctx context.Context, since time.Time) ([]*domain.IntervalRecord, error) {
	query := `
		SELECT id, mode, duration_seconds, completed_at, git_branch, git_commit, git_repo
		FROM intervals
		WHERE completed_at >= ?
		ORDER BY completed_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent intervals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []*domain.IntervalRecord
	for rows.Next() {
		var rec domain.IntervalRecord
		var branch, commit, repo sql.NullString

		if err := rows.Scan(&rec.ID, &rec.Mode, &rec.DurationSeconds, &rec.CompletedAt, &branch, &commit, &repo); err != nil {
			return nil, fmt.Errorf("failed to scan interval: %w", err)
		}

		if branch.Valid {
			rec.GitBranch = branch.String
		}
		if commit.Valid {
			rec.GitCommit = commit.String
		}
		if repo.Valid {
			rec.GitRepo = repo.String
		}

		records = append(records, &rec)
	}

	return records, rows.Err()
}

// GetDailyStats returns aggregated statistics for a specific date.
func (r *intervalRepository) GetDailyStats(ctx context.Context, date time.Time) (*domain.DailyStats, error) {
	startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)

	query := `
		SELECT
			COUNT(CASE WHEN mode = 'work' THEN 1 END) as work_intervals,
			COUNT(CASE WHEN mode IN ('short_break', 'long_break') THEN 1 END) as breaks,
			COALESCE(SUM(CASE WHEN mode = 'work' THEN duration_seconds END), 0) as total_work_seconds
		FROM intervals
		WHERE completed_at >= ? AND completed_at < ?
	`

	stats := &domain.DailyStats{Date: startOfDay}

	var totalWorkSeconds int64
	err := r.db.QueryRowContext(ctx, query, startOfDay, endOfDay).Scan(
		&stats.WorkIntervals,
		&stats.BreaksTaken,
		&totalWorkSeconds,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily stats: %w", err)
	}

	stats.TotalWorkTime = time.Duration(totalWorkSeconds) * time.Second

	return stats, nil
}

// DeleteAll removes every record.
func (r *intervalRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM intervals"); err != nil {
		return fmt.Errorf("failed to delete intervals: %w", err)
	}
	return nil
}
