package payment

import (
	"github.com/spf13/cobra"
)

// Cmd is the payment command group
var Cmd = &cobra.Command{
	Use:   "payment",
	Short: "Manage payments",
	Long:  `Record payments, verify them with their gateway, and list settlements.`,
}

func init() {
	Cmd.AddCommand(createCmd)
	Cmd.AddCommand(verifyCmd)
	Cmd.AddCommand(latestCmd)
}
