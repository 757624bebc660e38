package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme [light|dark]",
	Short: "Show or set the TUI theme",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			fmt.Println(GetTracker().Theme())
			return nil
		}
		if args[0] != "light" && args[0] != "dark" {
			return fmt.Errorf("unknown theme %q (expected light or dark)", args[0])
		}
		GetTracker().SetTheme(args[0])
		fmt.Printf("Theme set to %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
}
