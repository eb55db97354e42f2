package facility

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sportsms/courtside/adapter/cli"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List facilities",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.ListFacilitiesHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		facilities, err := app.ListFacilitiesHandler.Handle(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list facilities: %w", err)
		}

		if len(facilities) == 0 {
			fmt.Println("No facilities found.")
			return nil
		}

		for _, f := range facilities {
			fmt.Printf("%s  %-24s %-12s %8d cents/h  %s\n",
				f.ID, f.Name, f.Status, f.PricePerHourCents, f.Location)
		}
		return nil
	},
}
