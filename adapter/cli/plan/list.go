package plan

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sportsms/courtside/adapter/cli"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List subscription plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.ListPlansHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		plans, err := app.ListPlansHandler.Handle(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list plans: %w", err)
		}

		if len(plans) == 0 {
			fmt.Println("No plans found.")
			return nil
		}

		for _, p := range plans {
			state := "active"
			if !p.Active {
				state = "inactive"
			}
			fmt.Printf("%s  %-24s %-7s %8d %s  %-8s grace=%dd  %s\n",
				p.ID, p.Name, p.SubscriberType, p.AmountCents, p.Currency,
				p.BillingPeriod, p.GraceDays, state)
		}
		return nil
	},
}
