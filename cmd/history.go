package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/pomo-cli/pomo/internal/adapters/git"
	"github.com/pomo-cli/pomo/internal/domain"
)

var (
	historyDays   int
	historyFilter string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently completed intervals",
	Long:  `List intervals completed in the last days, newest first. Use --filter to fuzzy-match entries by git branch.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		records, err := app.history.Recent(ctx, historyDays, historyFilter)
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}

		dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(app.config.Theme.ColorHelp))
		workStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(app.config.Theme.ColorWork))
		breakStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(app.config.Theme.ColorBreak))

		if len(records) == 0 {
			fmt.Printf("\n  %s\n\n", dimStyle.Render("No completed intervals in this period."))
			return nil
		}

		branchWidth := branchColumnWidth()

		fmt.Println()
		for _, r := range records {
			style := breakStyle
			if r.IsWork() {
				style = workStyle
			}

			branch := r.GitBranch
			if branch != "" && r.GitCommit != "" {
				branch = fmt.Sprintf("%s@%s", branch, git.ShortCommit(r.GitCommit))
			}
			if r.GitRepo != "" {
				branch = fmt.Sprintf("%s %s", r.GitRepo, branch)
			}
			branch = truncate(branch, branchWidth)

			fmt.Printf("  %s  %s  %s  %s\n",
				dimStyle.Render(r.CompletedAt.Local().Format("Jan 02 15:04")),
				style.Render(fmt.Sprintf("%-11s", domain.ModeLabel(r.Mode))),
				fmt.Sprintf("%3dm", r.DurationSeconds/60),
				dimStyle.Render(branch),
			)
		}
		fmt.Println()

		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyDays, "days", "d", 7, "How many days back to list")
	historyCmd.Flags().StringVarP(&historyFilter, "filter", "f", "", "Fuzzy-filter entries by git branch")
	rootCmd.AddCommand(historyCmd)
}

// branchColumnWidth sizes the git column to the remaining terminal width.
func branchColumnWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w <= 0 {
		w = 80
	}

	// Timestamp, mode and duration columns take 34 cells.
	width := w - 34
	if width < 12 {
		width = 12
	}
	return width
}

// truncate shortens s to at most width runes, ellipsized.
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}

// formatDay renders a date as "Mon Jan 02", with today and yesterday named.
func formatDay(t time.Time, now time.Time) string {
	day := t.Format("2006-01-02")
	switch day {
	case now.Format("2006-01-02"):
		return "Today"
	case now.AddDate(0, 0, -1).Format("2006-01-02"):
		return "Yesterday"
	default:
		return t.Format("Mon Jan 02")
	}
}
