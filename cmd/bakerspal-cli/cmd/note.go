package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"bakerspal/internal/application/commands"
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage free-form notes",
}

var noteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		notes := GetTracker().Notes()
		if len(notes) == 0 {
			fmt.Println("No notes.")
			return nil
		}
		for _, n := range notes {
			fmt.Printf("%s  %s  %s\n", n.ID, n.Date, n.Content)
		}
		return nil
	},
}

var noteAddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewAddNoteCommand(GetTracker(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var noteDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewDeleteNoteCommand(GetTracker(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(noteCmd)
	noteCmd.AddCommand(noteListCmd)
	noteCmd.AddCommand(noteAddCmd)
	noteCmd.AddCommand(noteDeleteCmd)
}
