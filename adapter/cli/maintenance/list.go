package maintenance

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sportsms/courtside/adapter/cli"
)

var listCmd = &cobra.Command{
	Use:   "list [facility-id]",
	Short: "List a facility's maintenance windows",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.ListMaintenanceHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		facilityID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid facility id: %w", err)
		}

		schedules, err := app.ListMaintenanceHandler.Handle(cmd.Context(), facilityID)
		if err != nil {
			return fmt.Errorf("failed to list maintenance windows: %w", err)
		}

		if len(schedules) == 0 {
			fmt.Println("No maintenance windows found.")
			return nil
		}

		for _, m := range schedules {
			fmt.Printf("%s  %s -> %s  %s\n",
				m.ID,
				m.StartTime.Format(time.RFC3339),
				m.EndTime.Format(time.RFC3339),
				m.Reason)
		}
		return nil
	},
}
