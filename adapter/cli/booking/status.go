package booking

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sportsms/courtside/adapter/cli"
	"github.com/sportsms/courtside/internal/booking/application/commands"
)

var (
	actor   string
	payment string
)

var statusCmd = &cobra.Command{
	Use:   "status [booking-id] [status]",
	Short: "Set a booking's approval status",
	Long:  `Set a booking to APPROVED, REJECTED, CANCELLED, or back to PENDING.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.UpdateBookingStatusHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		bookingID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid booking id: %w", err)
		}

		update := commands.UpdateBookingStatusCommand{
			BookingID: bookingID,
			Status:    args[1],
		}
		if actor != "" {
			actorID, err := uuid.Parse(actor)
			if err != nil {
				return fmt.Errorf("invalid actor id: %w", err)
			}
			update.ActorID = actorID
		}
		if payment != "" {
			paymentID, err := uuid.Parse(payment)
			if err != nil {
				return fmt.Errorf("invalid payment id: %w", err)
			}
			update.PaymentID = &paymentID
		}

		if err := app.UpdateBookingStatusHandler.Handle(cmd.Context(), update); err != nil {
			return fmt.Errorf("failed to update booking: %w", err)
		}

		fmt.Printf("Booking %s: %s\n", bookingID, args[1])
		return nil
	},
}

func init() {
	statusCmd.Flags().StringVar(&actor, "actor", "", "acting user id")
	statusCmd.Flags().StringVar(&payment, "payment", "", "settled payment id covering the booking")
}
