package maintenance

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sportsms/courtside/adapter/cli"
	"github.com/sportsms/courtside/internal/booking/application/commands"
)

var (
	startAt string
	endAt   string
	reason  string
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule [facility-id]",
	Short: "Schedule a maintenance window",
	Long: `Block out a maintenance window for a facility. The window is rejected
when it overlaps an existing non-cancelled booking.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.ScheduleMaintenanceHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		facilityID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid facility id: %w", err)
		}
		start, err := time.Parse(time.RFC3339, startAt)
		if err != nil {
			return fmt.Errorf("invalid start time (use RFC3339): %w", err)
		}
		end, err := time.Parse(time.RFC3339, endAt)
		if err != nil {
			return fmt.Errorf("invalid end time (use RFC3339): %w", err)
		}

		scheduleID, err := app.ScheduleMaintenanceHandler.Handle(cmd.Context(), commands.ScheduleMaintenanceCommand{
			FacilityID: facilityID,
			StartTime:  start,
			EndTime:    end,
			Reason:     reason,
		})
		if err != nil {
			return fmt.Errorf("failed to schedule maintenance: %w", err)
		}

		fmt.Printf("Maintenance scheduled: %s\n", scheduleID)
		return nil
	},
}

func init() {
	scheduleCmd.Flags().StringVar(&startAt, "from", "", "start time (RFC3339)")
	scheduleCmd.Flags().StringVar(&endAt, "to", "", "end time (RFC3339)")
	scheduleCmd.Flags().StringVar(&reason, "reason", "", "maintenance reason")
	_ = scheduleCmd.MarkFlagRequired("from")
	_ = scheduleCmd.MarkFlagRequired("to")
}
