package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all interval history",
	Long: `Permanently deletes every recorded interval from the history database.
This cannot be undone. Use --force to skip the confirmation prompt.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetForce {
			fmt.Printf("This will permanently delete all history in: %s\n", dbPath)
			fmt.Print("Are you sure? Type 'yes' to confirm: ")
			reader := bufio.NewReader(os.Stdin)
			input, _ := reader.ReadString('\n')
			input = strings.TrimSpace(strings.ToLower(input))
			if input != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := app.history.Clear(context.Background()); err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}

		fmt.Println("History cleared. Fresh start.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "Skip confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}
