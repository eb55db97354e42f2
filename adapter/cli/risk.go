package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var riskCmd = &cobra.Command{
	Use:   "risk",
	Short: "List delinquency risk scores",
	Long:  `Compute the 0-100 delinquency risk score for every subscription.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.RiskScoresHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		items, err := app.RiskScoresHandler.Handle(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to compute risk scores: %w", err)
		}

		if len(items) == 0 {
			fmt.Println("No subscriptions found.")
			return nil
		}

		for _, item := range items {
			fmt.Printf("%s  score=%-3d overdue=%dd\n",
				item.SubscriptionID, item.RiskScore, item.OverdueDays)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(riskCmd)
}
