package payment

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sportsms/courtside/adapter/cli"
	"github.com/sportsms/courtside/internal/billing/application/commands"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [payment-id]",
	Short: "Verify a payment with its gateway",
	Long: `Verify a pending payment with its gateway. A PAID verdict reactivates
the owning subscription in the same transaction.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.VerifyPaymentHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		paymentID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid payment id: %w", err)
		}

		result, err := app.VerifyPaymentHandler.Handle(cmd.Context(), commands.VerifyPaymentCommand{
			PaymentID: paymentID,
		})
		if err != nil {
			return fmt.Errorf("failed to verify payment: %w", err)
		}

		fmt.Printf("Payment %s: %s\n", result.PaymentID, result.Status)
		if result.Message != "" {
			fmt.Printf("  %s\n", result.Message)
		}
		return nil
	},
}
