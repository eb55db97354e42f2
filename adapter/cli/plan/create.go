package plan

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sportsms/courtside/adapter/cli"
	"github.com/sportsms/courtside/internal/billing/application/commands"
)

var (
	subscriberType string
	amountCents    int64
	currency       string
	billingPeriod  string
	graceDays      int
	inactive       bool
)

var createCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a subscription plan",
	Long: `Create a subscription plan.

Examples:
  courtside plan create "Club Annual" -t CLUB -a 120000 -p ANNUAL -g 14
  courtside plan create "Player Monthly" -t PLAYER -a 1500 -p MONTHLY`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.CreatePlanHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		planID, err := app.CreatePlanHandler.Handle(cmd.Context(), commands.CreatePlanCommand{
			Name:           args[0],
			SubscriberType: subscriberType,
			AmountCents:    amountCents,
			Currency:       currency,
			BillingPeriod:  billingPeriod,
			GraceDays:      graceDays,
			Active:         !inactive,
		})
		if err != nil {
			return fmt.Errorf("failed to create plan: %w", err)
		}

		fmt.Printf("Plan created: %s\n", planID)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVarP(&subscriberType, "type", "t", "CLUB", "subscriber type (CLUB, PLAYER, LEAGUE)")
	createCmd.Flags().Int64VarP(&amountCents, "amount", "a", 0, "plan amount in cents")
	createCmd.Flags().StringVar(&currency, "currency", "ZAR", "plan currency")
	createCmd.Flags().StringVarP(&billingPeriod, "period", "p", "MONTHLY", "billing period (MONTHLY, ANNUAL, ONE_TIME)")
	createCmd.Flags().IntVarP(&graceDays, "grace", "g", 7, "grace period length in days")
	createCmd.Flags().BoolVar(&inactive, "inactive", false, "create the plan inactive")
}
