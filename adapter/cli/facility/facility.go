package facility

import (
	"github.com/spf13/cobra"
)

// Cmd is the facility command group
var Cmd = &cobra.Command{
	Use:   "facility",
	Short: "Manage facilities",
	Long:  `Create and list bookable facilities.`,
}

func init() {
	Cmd.AddCommand(createCmd)
	Cmd.AddCommand(listCmd)
}
