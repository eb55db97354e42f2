package subscription

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sportsms/courtside/adapter/cli"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List subscriptions",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.ListSubscriptionsHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		subscriptions, err := app.ListSubscriptionsHandler.Handle(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list subscriptions: %w", err)
		}

		if len(subscriptions) == 0 {
			fmt.Println("No subscriptions found.")
			return nil
		}

		for _, s := range subscriptions {
			fmt.Printf("%s  %-7s %s  %-9s %s -> %s (grace %s)\n",
				s.ID, s.SubscriberType, s.SubscriberID, s.Status,
				s.StartDate.Format("2006-01-02"),
				s.EndDate.Format("2006-01-02"),
				s.GraceEndDate.Format("2006-01-02"))
		}
		return nil
	},
}
