package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pomo-cli/pomo/internal/domain"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"main", 10, "main"},
		{"feature/very-long-branch", 10, "feature/v…"},
		{"ab", 1, "…"},
		{"", 5, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, truncate(tt.in, tt.width))
	}
}

func TestFormatDay(t *testing.T) {
	now := time.Date(2025, 3, 12, 15, 0, 0, 0, time.Local)

	assert.Equal(t, "Today", formatDay(now, now))
	assert.Equal(t, "Yesterday", formatDay(now.AddDate(0, 0, -1), now))
	assert.Equal(t, "Mon Mar 10", formatDay(time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local), now))
}

func TestBucketByDay(t *testing.T) {
	day := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)

	records := []*domain.IntervalRecord{
		{Mode: domain.ModeWork, DurationSeconds: 25 * 60, CompletedAt: day},
		{Mode: domain.ModeWork, DurationSeconds: 25 * 60, CompletedAt: day.Add(time.Hour)},
		{Mode: domain.ModeShortBreak, DurationSeconds: 5 * 60, CompletedAt: day.Add(2 * time.Hour)},
		{Mode: domain.ModeWork, DurationSeconds: 25 * 60, CompletedAt: day.AddDate(0, 0, 1)},
	}

	buckets := bucketByDay(records)

	if assert.Len(t, buckets, 2) {
		assert.Equal(t, 2, buckets[0].work, "breaks must not count toward focus")
		assert.Equal(t, 50*time.Minute, buckets[0].focusTime)
		assert.Equal(t, 1, buckets[1].work)
		assert.True(t, buckets[0].day.Before(buckets[1].day), "buckets are oldest first")
	}
}
