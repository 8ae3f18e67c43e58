package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pomo-cli/pomo/internal/domain"
	"github.com/pomo-cli/pomo/internal/ports"
)

func setupTestStorage(t *testing.T) ports.Storage {
	t.Helper()
	store, err := NewMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestIntervalRepository_SaveAndFindRecent(t *testing.T) {
	store := setupTestStorage(t)
	ctx := context.Background()

	rec := domain.NewIntervalRecord(domain.ModeWork, 25*60)
	rec.SetGitContext("main", "abc1234def5678", "user/pomo")
	require.NoError(t, store.Intervals().Save(ctx, rec))

	records, err := store.Intervals().FindRecent(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, domain.ModeWork, got.Mode)
	assert.Equal(t, 25*60, got.DurationSeconds)
	assert.Equal(t, "main", got.GitBranch)
	assert.Equal(t, "abc1234def5678", got.GitCommit)
	assert.Equal(t, "user/pomo", got.GitRepo)
}

func TestIntervalRepository_FindRecentOrdersNewestFirst(t *testing.T) {
	store := setupTestStorage(t)
	ctx := context.Background()

	old := domain.NewIntervalRecord(domain.ModeWork, 25*60)
	old.CompletedAt = time.Now().Add(-2 * time.Hour)
	newer := domain.NewIntervalRecord(domain.ModeShortBreak, 5*60)

	require.NoError(t, store.Intervals().Save(ctx, old))
	require.NoError(t, store.Intervals().Save(ctx, newer))

	records, err := store.Intervals().FindRecent(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, newer.ID, records[0].ID)
	assert.Equal(t, old.ID, records[1].ID)
}

func TestIntervalRepository_FindRecentHonorsSince(t *testing.T) {
	store := setupTestStorage(t)
	ctx := context.Background()

	stale := domain.NewIntervalRecord(domain.ModeWork, 25*60)
	stale.CompletedAt = time.Now().Add(-48 * time.Hour)
	require.NoError(t, store.Intervals().Save(ctx, stale))

	records, err := store.Intervals().FindRecent(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestIntervalRepository_GetDailyStats(t *testing.T) {
	store := setupTestStorage(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, store.Intervals().Save(ctx, domain.NewIntervalRecord(domain.ModeWork, 25*60)))
	}
	require.NoError(t, store.Intervals().Save(ctx, domain.NewIntervalRecord(domain.ModeShortBreak, 5*60)))
	require.NoError(t, store.Intervals().Save(ctx, domain.NewIntervalRecord(domain.ModeLongBreak, 15*60)))

	stats, err := store.Intervals().GetDailyStats(ctx, time.Now())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.WorkIntervals)
	assert.Equal(t, 2, stats.BreaksTaken)
	assert.Equal(t, 3*25*time.Minute, stats.TotalWorkTime)
}

func TestIntervalRepository_GetDailyStatsExcludesOtherDays(t *testing.T) {
	store := setupTestStorage(t)
	ctx := context.Background()

	yesterday := domain.NewIntervalRecord(domain.ModeWork, 25*60)
	yesterday.CompletedAt = time.Now().AddDate(0, 0, -1)
	require.NoError(t, store.Intervals().Save(ctx, yesterday))

	stats, err := store.Intervals().GetDailyStats(ctx, time.Now())
	require.NoError(t, err)
	assert.Zero(t, stats.WorkIntervals)
}

func TestIntervalRepository_DeleteAll(t *testing.T) {
	store := setupTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.Intervals().Save(ctx, domain.NewIntervalRecord(domain.ModeWork, 25*60)))
	require.NoError(t, store.Intervals().DeleteAll(ctx))

	records, err := store.Intervals().FindRecent(ctx, time.Time{})
	require.NoError(t, err)
	assert.Empty(t, records)
}
