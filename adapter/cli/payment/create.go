package payment

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sportsms/courtside/adapter/cli"
	"github.com/sportsms/courtside/internal/billing/application/commands"
)

var (
	provider    string
	amountCents int64
	currency    string
)

var createCmd = &cobra.Command{
	Use:   "create [subscription-id]",
	Short: "Record a pending payment",
	Long: `Record a pending payment against a subscription.

Examples:
  courtside payment create 6f1e... -p STRIPE -a 1500`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.CreatePaymentHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		subscriptionID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid subscription id: %w", err)
		}

		result, err := app.CreatePaymentHandler.Handle(cmd.Context(), commands.CreatePaymentCommand{
			SubscriptionID: subscriptionID,
			Provider:       provider,
			AmountCents:    amountCents,
			Currency:       currency,
		})
		if err != nil {
			return fmt.Errorf("failed to create payment: %w", err)
		}

		fmt.Printf("Payment recorded: %s\n", result.PaymentID)
		fmt.Printf("  reference: %s\n", result.Reference)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVarP(&provider, "provider", "p", "MANUAL", "payment provider (STRIPE, PAYPAL, PAYFAST, MOBILE_MONEY, MANUAL)")
	createCmd.Flags().Int64VarP(&amountCents, "amount", "a", 0, "payment amount in cents")
	createCmd.Flags().StringVar(&currency, "currency", "ZAR", "payment currency")
}
