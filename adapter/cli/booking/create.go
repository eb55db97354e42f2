package booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sportsms/courtside/adapter/cli"
	"github.com/sportsms/courtside/internal/booking/application/commands"
)

var (
	requester       string
	club            string
	startAt         string
	endAt           string
	paymentRequired bool
	notes           string
)

var createCmd = &cobra.Command{
	Use:   "create [facility-id]",
	Short: "Request a facility booking",
	Long: `Request a booking for a facility time slot. The request is rejected
when the slot overlaps an existing booking or a maintenance window.

Examples:
  courtside booking create 6f1e... -u 9a2b... --from "2026-09-01T18:00:00Z" --to "2026-09-01T20:00:00Z"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.CreateBookingHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		facilityID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid facility id: %w", err)
		}
		requesterID, err := uuid.Parse(requester)
		if err != nil {
			return fmt.Errorf("invalid requester id: %w", err)
		}
		start, err := time.Parse(time.RFC3339, startAt)
		if err != nil {
			return fmt.Errorf("invalid start time (use RFC3339): %w", err)
		}
		end, err := time.Parse(time.RFC3339, endAt)
		if err != nil {
			return fmt.Errorf("invalid end time (use RFC3339): %w", err)
		}

		create := commands.CreateBookingCommand{
			FacilityID:      facilityID,
			RequestedBy:     requesterID,
			StartTime:       start,
			EndTime:         end,
			PaymentRequired: paymentRequired,
			Notes:           notes,
		}
		if club != "" {
			clubID, err := uuid.Parse(club)
			if err != nil {
				return fmt.Errorf("invalid club id: %w", err)
			}
			create.ClubID = &clubID
		}

		bookingID, err := app.CreateBookingHandler.Handle(cmd.Context(), create)
		if err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		fmt.Printf("Booking created: %s (PENDING)\n", bookingID)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVarP(&requester, "user", "u", "", "requesting user id")
	createCmd.Flags().StringVar(&club, "club", "", "club id")
	createCmd.Flags().StringVar(&startAt, "from", "", "start time (RFC3339)")
	createCmd.Flags().StringVar(&endAt, "to", "", "end time (RFC3339)")
	createCmd.Flags().BoolVar(&paymentRequired, "payment-required", false, "booking requires payment")
	createCmd.Flags().StringVar(&notes, "notes", "", "booking notes")
	_ = createCmd.MarkFlagRequired("user")
	_ = createCmd.MarkFlagRequired("from")
	_ = createCmd.MarkFlagRequired("to")
}
