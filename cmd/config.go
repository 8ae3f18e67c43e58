package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pomo-cli/pomo/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and edit timer durations and alerts",
	Long:  `Interactively configure the work, short break and long break durations, the long break cadence, auto-start, and alerts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reader := bufio.NewReader(os.Stdin)
		cfg := app.config

		fmt.Println()
		fmt.Println("  Current configuration:")
		fmt.Println()
		fmt.Printf("    [1] Work:                   %dm\n", cfg.Timer.WorkMinutes)
		fmt.Printf("    [2] Short break:            %dm\n", cfg.Timer.ShortBreakMinutes)
		fmt.Printf("    [3] Long break:             %dm\n", cfg.Timer.LongBreakMinutes)
		fmt.Printf("    [4] Rounds until long:      %d\n", cfg.Timer.RoundsUntilLongBreak)
		fmt.Printf("    [5] Auto-start next:        %v\n", cfg.Timer.AutoStartNext)
		fmt.Printf("    [6] Sound alert:            %v\n", cfg.Timer.Sound)
		fmt.Printf("    [7] Desktop notifications:  %v\n", cfg.Notifications.Desktop)
		fmt.Println()
		fmt.Println("    [q] Quit without saving")
		fmt.Print("  Choose: ")

		choice, _ := reader.ReadString('\n')
		choice = strings.TrimSpace(strings.ToLower(choice))

		switch choice {
		case "1":
			return editMinutes(reader, cfg, "Work", &cfg.Timer.WorkMinutes)
		case "2":
			return editMinutes(reader, cfg, "Short break", &cfg.Timer.ShortBreakMinutes)
		case "3":
			return editMinutes(reader, cfg, "Long break", &cfg.Timer.LongBreakMinutes)
		case "4":
			return editMinutes(reader, cfg, "Rounds until long break", &cfg.Timer.RoundsUntilLongBreak)
		case "5":
			return toggleFlag(cfg, "Auto-start next", &cfg.Timer.AutoStartNext)
		case "6":
			return toggleFlag(cfg, "Sound alert", &cfg.Timer.Sound)
		case "7":
			return toggleFlag(cfg, "Desktop notifications", &cfg.Notifications.Desktop)
		case "q", "":
			fmt.Println("  No changes made.")
			return nil
		default:
			return fmt.Errorf("invalid choice %q", choice)
		}
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

// editMinutes prompts for a new value for a numeric timer field. Values
// below one clamp to one rather than erroring.
func editMinutes(reader *bufio.Reader, cfg *config.Config, label string, field *int) error {
	fmt.Printf("\n  %s [%d]: ", label, *field)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		fmt.Println("  No changes made.")
		return nil
	}

	n, err := strconv.Atoi(input)
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", input, err)
	}
	if n < 1 {
		n = 1
	}
	*field = n

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("\n  Saved: %s set to %d\n", label, n)
	return nil
}

// toggleFlag flips a boolean setting and persists it.
func toggleFlag(cfg *config.Config, label string, field *bool) error {
	*field = !*field

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("\n  Saved: %s set to %v\n", label, *field)
	return nil
}
