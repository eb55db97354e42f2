package maintenance

import (
	"github.com/spf13/cobra"
)

// Cmd is the maintenance command group
var Cmd = &cobra.Command{
	Use:   "maintenance",
	Short: "Manage facility maintenance windows",
	Long:  `Schedule and list facility maintenance windows.`,
}

func init() {
	Cmd.AddCommand(scheduleCmd)
	Cmd.AddCommand(listCmd)
}
