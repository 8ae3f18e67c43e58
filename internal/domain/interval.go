package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// IntervalRecord is a history entry for a naturally completed interval.
// Manual resets and mode switches are never recorded.
type IntervalRecord struct {
	ID              string
	Mode            Mode
	DurationSeconds int
	CompletedAt     time.Time
	GitBranch       string
	GitCommit       string
	GitRepo         string
}

// NewIntervalRecord creates a history entry stamped with the current time.
func NewIntervalRecord(mode Mode, durationSeconds int) *IntervalRecord {
	return &IntervalRecord{
		ID:              uuid.NewString(),
		Mode:            mode,
		DurationSeconds: durationSeconds,
		CompletedAt:     time.Now(),
	}
}

// IsWork returns true for completed work intervals.
func (r *IntervalRecord) IsWork() bool {
	return r.Mode == ModeWork
}

// SetGitContext stores the repository context active when the interval
// completed.
func (r *IntervalRecord) SetGitContext(branch, commit, repo string) {
	r.GitBranch = branch
	r.GitCommit = commit
	r.GitRepo = repo
}

// DailyStats aggregates completed intervals for a single day.
type DailyStats struct {
	Date          time.Time
	WorkIntervals int
	BreaksTaken   int
	TotalWorkTime time.Duration
}

// FormatDuration renders a focus duration in whole minutes, like "25m"
// or "1h30m".
func FormatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	if minutes%60 == 0 {
		return fmt.Sprintf("%dh", minutes/60)
	}
	return fmt.Sprintf("%dh%dm", minutes/60, minutes%60)
}
