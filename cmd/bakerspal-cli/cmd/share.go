package cmd

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"bakerspal/internal/codec"
)

var shareCopyFlag bool

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Encode the current state as a URL-safe share token",
	Long: `Encode the whole state (ingredients, recipes, sales, notes) as a
URL-safe token. Another device opens it with "bakerspal-cli open" or
"bakerspal --open".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := GetTracker().Token()
		if err != nil {
			return err
		}

		fmt.Println(token)
		if shareCopyFlag {
			if err := clipboard.WriteAll(token); err != nil {
				return fmt.Errorf("copying to clipboard: %w", err)
			}
			fmt.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard.")
		}
		return nil
	},
}

var openCmd = &cobra.Command{
	Use:   "open <token>",
	Short: "Replace the stored state with a share token's state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := codec.Decode(args[0])
		if err != nil {
			return fmt.Errorf("invalid share token: %w", err)
		}

		GetTracker().ReplaceAll(s)
		fmt.Printf("Opened shared state: %d ingredients, %d recipes, %d sales, %d notes\n",
			len(s.Ingredients), len(s.Recipes), len(s.Sales), len(s.Notes))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(openCmd)

	shareCmd.Flags().BoolVar(&shareCopyFlag, "copy", false, "also copy the token to the clipboard")
}
