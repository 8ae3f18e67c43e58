package cmd

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/pomo-cli/pomo/internal/domain"
)

var statsDays int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show a dashboard of completed intervals",
	Long:  `Display a terminal dashboard with work interval counts, focus time, and a per-day breakdown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		now := time.Now()

		today, err := app.history.TodayStats(ctx)
		if err != nil {
			return fmt.Errorf("failed to get stats: %w", err)
		}

		records, err := app.history.Recent(ctx, statsDays, "")
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}

		fmt.Println()
		renderDashboard(today, records, now)
		return nil
	},
}

func init() {
	statsCmd.Flags().IntVarP(&statsDays, "days", "d", 7, "How many days back to chart")
	rootCmd.AddCommand(statsCmd)
}

// dayBucket aggregates work intervals for a single calendar day.
type dayBucket struct {
	day       time.Time
	work      int
	focusTime time.Duration
}

func renderDashboard(today *domain.DailyStats, records []*domain.IntervalRecord, now time.Time) {
	theme := app.config.Theme
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.ColorWork))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorHelp))
	valueStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.ColorBreak))
	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorWork))

	// Header
	fmt.Printf("  %s\n", titleStyle.Render(fmt.Sprintf("%s Pomodoro stats", theme.IconApp)))
	fmt.Printf("  %s\n\n", dimStyle.Render(strings.Repeat("─", 40)))

	// Today summary
	fmt.Printf("  Today: %s work, %s breaks, %s focused\n\n",
		valueStyle.Render(fmt.Sprintf("%d", today.WorkIntervals)),
		valueStyle.Render(fmt.Sprintf("%d", today.BreaksTaken)),
		valueStyle.Render(domain.FormatDuration(today.TotalWorkTime)),
	)

	buckets := bucketByDay(records)
	if len(buckets) == 0 {
		fmt.Printf("  %s\n\n", dimStyle.Render("No completed intervals in this period."))
		return
	}

	// Bar chart: work intervals per day
	fmt.Printf("  %s\n", dimStyle.Render(fmt.Sprintf("Work intervals, last %d days", statsDays)))

	maxWork := 0
	for _, b := range buckets {
		if b.work > maxWork {
			maxWork = b.work
		}
	}

	maxBarWidth := 30
	for _, b := range buckets {
		barWidth := 0
		if maxWork > 0 {
			barWidth = int(math.Round(float64(b.work) / float64(maxWork) * float64(maxBarWidth)))
		}
		if barWidth < 1 && b.work > 0 {
			barWidth = 1
		}

		dayLabel := fmt.Sprintf("%-10s", formatDay(b.day, now))
		fmt.Printf("  %s %s %d (%s)\n",
			dimStyle.Render(dayLabel),
			barStyle.Render(strings.Repeat("█", barWidth)),
			b.work,
			domain.FormatDuration(b.focusTime),
		)
	}
	fmt.Println()
}

// bucketByDay groups work records into per-day buckets, oldest first.
// Breaks are excluded; the chart tracks focus only.
func bucketByDay(records []*domain.IntervalRecord) []dayBucket {
	byDay := make(map[string]*dayBucket)
	for _, r := range records {
		if !r.IsWork() {
			continue
		}
		local := r.CompletedAt.Local()
		key := local.Format("2006-01-02")
		b, ok := byDay[key]
		if !ok {
			b = &dayBucket{day: time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())}
			byDay[key] = b
		}
		b.work++
		b.focusTime += time.Duration(r.DurationSeconds) * time.Second
	}

	buckets := make([]dayBucket, 0, len(byDay))
	for _, b := range byDay {
		buckets = append(buckets, *b)
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].day.Before(buckets[j].day) })
	return buckets
}
