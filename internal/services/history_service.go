// Package services holds the application services between the timer core
// and the adapters.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sahilm/fuzzy"

	"github.com/pomo-cli/pomo/internal/domain"
	"github.com/pomo-cli/pomo/internal/ports"
)

// HistoryService records completed intervals and answers history queries.
type HistoryService struct {
	storage ports.Storage
	git     ports.GitDetector
}

// NewHistoryService creates a new history service. git may be nil when
// git context tagging is unavailable.
func NewHistoryService(storage ports.Storage, git ports.GitDetector) *HistoryService {
	return &HistoryService{storage: storage, git: git}
}

// RecordCompletion persists a naturally completed interval, tagged with
// the git context of the working directory when one is available.
func (s *HistoryService) RecordCompletion(ctx context.Context, mode domain.Mode, durationSeconds int, workingDir string) (*domain.IntervalRecord, error) {
	record := domain.NewIntervalRecord(mode, durationSeconds)

	if s.git != nil && s.git.IsAvailable() {
		info, err := s.git.Detect(ctx, workingDir)
		if err == nil && info != nil {
			record.SetGitContext(info.Branch, info.Commit, info.Repository)
		}
	}

	if err := s.storage.Intervals().Save(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save interval: %w", err)
	}

	return record, nil
}

// TodayStats returns aggregated statistics for the current day.
func (s *HistoryService) TodayStats(ctx context.Context) (*domain.DailyStats, error) {
	return s.storage.Intervals().GetDailyStats(ctx, time.Now())
}

// Recent returns records completed within the last given number of days,
// newest first. A non-empty filter fuzzy-matches records by git
// repository and branch.
func (s *HistoryService) Recent(ctx context.Context, days int, filter string) ([]*domain.IntervalRecord, error) {
	since := time.Now().AddDate(0, 0, -days)
	records, err := s.storage.Intervals().FindRecent(ctx, since)
	if err != nil {
		return nil, err
	}

	if filter == "" {
		return records, nil
	}

	haystack := make([]string, len(records))
	for i, r := range records {
		haystack[i] = r.GitRepo + " " + r.GitBranch
	}

	matches := fuzzy.Find(filter, haystack)
	filtered := make([]*domain.IntervalRecord, 0, len(matches))
	for _, m := range matches {
		filtered = append(filtered, records[m.Index])
	}

	return filtered, nil
}

// Clear removes all history records.
func (s *HistoryService) Clear(ctx context.Context) error {
	return s.storage.Intervals().DeleteAll(ctx)
}
