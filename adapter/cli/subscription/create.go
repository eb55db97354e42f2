package subscription

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sportsms/courtside/adapter/cli"
	"github.com/sportsms/courtside/internal/billing/application/commands"
)

var (
	subscriberType string
	subscriberID   string
	autoRenew      bool
)

var createCmd = &cobra.Command{
	Use:   "create [plan-id]",
	Short: "Create a subscription",
	Long: `Open a subscription for a subscriber on a plan. The first invoice is
generated in the same transaction.

Examples:
  courtside subscription create 6f1e... -t CLUB -s 9a2b... --auto-renew`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.CreateSubscriptionHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		planID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid plan id: %w", err)
		}
		subscriber, err := uuid.Parse(subscriberID)
		if err != nil {
			return fmt.Errorf("invalid subscriber id: %w", err)
		}

		result, err := app.CreateSubscriptionHandler.Handle(cmd.Context(), commands.CreateSubscriptionCommand{
			SubscriberType: subscriberType,
			SubscriberID:   subscriber,
			PlanID:         planID,
			AutoRenew:      autoRenew,
		})
		if err != nil {
			return fmt.Errorf("failed to create subscription: %w", err)
		}

		fmt.Printf("Subscription created: %s\n", result.SubscriptionID)
		fmt.Printf("  invoice: %s\n", result.InvoiceID)
		fmt.Printf("  start: %s\n", result.StartDate.Format("2006-01-02"))
		fmt.Printf("  end: %s\n", result.EndDate.Format("2006-01-02"))
		fmt.Printf("  grace end: %s\n", result.GraceEndDate.Format("2006-01-02"))
		return nil
	},
}

func init() {
	createCmd.Flags().StringVarP(&subscriberType, "type", "t", "CLUB", "subscriber type (CLUB, PLAYER, LEAGUE)")
	createCmd.Flags().StringVarP(&subscriberID, "subscriber", "s", "", "subscriber id")
	createCmd.Flags().BoolVar(&autoRenew, "auto-renew", false, "renew automatically")
	_ = createCmd.MarkFlagRequired("subscriber")
}
