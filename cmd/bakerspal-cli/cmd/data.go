package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bakerspal/internal/application/commands"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export ingredients, recipes, and sales as JSON",
	Long: `Export ingredients, recipes, and sales as an indented JSON
backup document. Notes and the theme stay local. The file defaults to
bakers-pal-data.json; pass "-" to write to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewExportCommand(GetTracker()).Execute(context.Background())
		if err != nil {
			return err
		}

		target := "bakers-pal-data.json"
		if len(args) == 1 {
			target = args[0]
		}
		if target == "-" {
			fmt.Println(string(result.JSON))
			return nil
		}
		if err := os.WriteFile(target, append(result.JSON, '\n'), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", target, err)
		}
		fmt.Printf("%s -> %s\n", result.Message, target)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace ingredients, recipes, and sales from a backup",
	Long: `Replace ingredients, recipes, and sales from a JSON backup
document. A document missing any of the three collections is rejected
without changing anything. Notes are kept as they are.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}

		result, err := commands.NewImportCommand(GetTracker(), raw).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
