package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run the subscription lifecycle sweep",
	Long:  `Re-evaluate every subscription against today's date and persist lifecycle transitions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.RefreshStatusesHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		result, err := app.RefreshStatusesHandler.Handle(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to run lifecycle sweep: %w", err)
		}

		fmt.Printf("Sweep complete: %d evaluated, %d transitioned, %d failed.\n",
			result.Evaluated, result.Transitioned, result.Failed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sweepCmd)
}
