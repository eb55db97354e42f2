package facility

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sportsms/courtside/adapter/cli"
	"github.com/sportsms/courtside/internal/booking/application/commands"
)

var (
	location     string
	capacity     int
	pricePerHour int64
	ownerClub    string
)

var createCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a facility",
	Long: `Create a bookable facility.

Examples:
  courtside facility create "Court A" --location "Main complex" --price 25000`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.CreateFacilityHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		create := commands.CreateFacilityCommand{
			Name:              args[0],
			Location:          location,
			PricePerHourCents: pricePerHour,
		}
		if capacity > 0 {
			create.Capacity = &capacity
		}
		if ownerClub != "" {
			clubID, err := uuid.Parse(ownerClub)
			if err != nil {
				return fmt.Errorf("invalid club id: %w", err)
			}
			create.OwnerClubID = &clubID
		}

		facilityID, err := app.CreateFacilityHandler.Handle(cmd.Context(), create)
		if err != nil {
			return fmt.Errorf("failed to create facility: %w", err)
		}

		fmt.Printf("Facility created: %s\n", facilityID)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&location, "location", "", "facility location")
	createCmd.Flags().IntVar(&capacity, "capacity", 0, "facility capacity")
	createCmd.Flags().Int64Var(&pricePerHour, "price", 0, "price per hour in cents")
	createCmd.Flags().StringVar(&ownerClub, "club", "", "owning club id")
}
