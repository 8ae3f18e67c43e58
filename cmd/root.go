// Package cmd provides the CLI commands for the pomo application.
package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pomo-cli/pomo/internal/adapters/tui"
	"github.com/pomo-cli/pomo/internal/config"
	"github.com/pomo-cli/pomo/internal/domain"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"

	// Global flags
	dbPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pomo",
	Short: "Pomo - A Pomodoro timer for the terminal",
	Long: `Pomo is a terminal Pomodoro timer: 25 minutes of focused work,
short breaks in between, and a long break after every fourth round.

Run "pomo" with no arguments to open the timer.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return cleanupServices()
	},
	RunE: runTimer,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the history database (default: ~/.pomo/pomo.db)")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("Pomo\nVersion: {{.Version}}\n")
}

// runTimer launches the fullscreen Bubbletea timer.
func runTimer(cmd *cobra.Command, args []string) error {
	ctx := setupSignalHandler()
	workingDir, _ := os.Getwd()

	timer := domain.NewTimer(app.config.ToSettings())

	model := tui.NewModel(timer, app.config.Theme, tui.Callbacks{
		OnComplete: func(c domain.Completion) {
			if timer.Settings().Sound {
				app.notifier.Tone()
			}
			app.notifier.IntervalComplete(c.Finished)

			if _, err := app.history.RecordCompletion(ctx, c.Finished, c.FinishedSeconds, workingDir); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to record interval: %v\n", err)
			}
		},
		FetchStats: func() *domain.DailyStats {
			stats, err := app.history.TodayStats(ctx)
			if err != nil {
				return nil
			}
			return stats
		},
		SaveSettings: func(s domain.Settings) {
			app.config.SetSettings(s)
			if err := config.Save(app.config); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to save config: %v\n", err)
			}
		},
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("timer error: %w", err)
	}

	return nil
}
