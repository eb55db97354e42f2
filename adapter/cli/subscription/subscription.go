package subscription

import (
	"github.com/spf13/cobra"
)

// Cmd is the subscription command group
var Cmd = &cobra.Command{
	Use:   "subscription",
	Short: "Manage subscriptions",
	Long:  `Create and list subscriptions, and run the lifecycle sweep.`,
}

func init() {
	Cmd.AddCommand(createCmd)
	Cmd.AddCommand(listCmd)
}
