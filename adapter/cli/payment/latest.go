package payment

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sportsms/courtside/adapter/cli"
)

var latestLimit int

var latestCmd = &cobra.Command{
	Use:   "latest",
	Short: "List the most recent settled payments",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.LatestPaymentsHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		payments, err := app.LatestPaymentsHandler.Handle(cmd.Context(), latestLimit)
		if err != nil {
			return fmt.Errorf("failed to list payments: %w", err)
		}

		if len(payments) == 0 {
			fmt.Println("No settled payments found.")
			return nil
		}

		for _, p := range payments {
			paidAt := ""
			if p.PaidAt != nil {
				paidAt = p.PaidAt.Format("2006-01-02 15:04")
			}
			fmt.Printf("%s  %-12s %8d %s  %-18s %s\n",
				p.ID, p.Provider, p.AmountCents, p.Currency, p.Reference, paidAt)
		}
		return nil
	},
}

func init() {
	latestCmd.Flags().IntVarP(&latestLimit, "limit", "n", 10, "maximum payments to list")
}
