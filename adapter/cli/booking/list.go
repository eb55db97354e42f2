package booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sportsms/courtside/adapter/cli"
)

var (
	listFrom string
	listTo   string
)

var listCmd = &cobra.Command{
	Use:   "list [facility-id]",
	Short: "List a facility's bookings in a date range",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.ListBookingsHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		facilityID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid facility id: %w", err)
		}
		from, err := time.Parse(time.RFC3339, listFrom)
		if err != nil {
			return fmt.Errorf("invalid from time (use RFC3339): %w", err)
		}
		to, err := time.Parse(time.RFC3339, listTo)
		if err != nil {
			return fmt.Errorf("invalid to time (use RFC3339): %w", err)
		}

		bookings, err := app.ListBookingsHandler.Handle(cmd.Context(), facilityID, from, to)
		if err != nil {
			return fmt.Errorf("failed to list bookings: %w", err)
		}

		if len(bookings) == 0 {
			fmt.Println("No bookings found.")
			return nil
		}

		for _, b := range bookings {
			fmt.Printf("%s  %s -> %s  %-9s by %s\n",
				b.ID,
				b.StartTime.Format(time.RFC3339),
				b.EndTime.Format(time.RFC3339),
				b.Status, b.RequestedBy)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listFrom, "from", "", "range start (RFC3339)")
	listCmd.Flags().StringVar(&listTo, "to", "", "range end (RFC3339)")
	_ = listCmd.MarkFlagRequired("from")
	_ = listCmd.MarkFlagRequired("to")
}
