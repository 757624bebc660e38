package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"bakerspal/internal/application/commands"
)

var ingredientCmd = &cobra.Command{
	Use:   "ingredient",
	Short: "Manage ingredients and their price history",
}

var ingredientListCmd = &cobra.Command{
	Use:   "list",
	Short: "List ingredients with their current prices",
	RunE: func(cmd *cobra.Command, args []string) error {
		ingredients := GetTracker().Ingredients()
		if len(ingredients) == 0 {
			fmt.Println("No ingredients.")
			return nil
		}
		for _, ing := range ingredients {
			fmt.Printf("%s  %-24s ₦%.2f per %g %s  (%d price changes)\n",
				ing.ID, ing.Name, ing.CurrentPrice(), ing.Quantity, ing.Unit, len(ing.PriceHistory))
		}
		return nil
	},
}

var ingredientAddCmd = &cobra.Command{
	Use:   "add <name> <price> <quantity> <unit>",
	Short: "Add an ingredient",
	Long: `Add an ingredient with its purchase price.

Examples:
  bakerspal-cli ingredient add "Flour" 45000 50 kg
  bakerspal-cli ingredient add "Eggs" 2400 30 piece`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		price, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid price: %s", args[1])
		}
		quantity, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("invalid quantity: %s", args[2])
		}

		result, err := commands.NewAddIngredientCommand(GetTracker(), args[0], price, quantity, args[3]).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var ingredientPriceCmd = &cobra.Command{
	Use:   "price <id> <new-price>",
	Short: "Record a new price for an ingredient",
	Long: `Record a new price for an ingredient. The old price stays in
the history, so cost trends survive.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		price, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid price: %s", args[1])
		}

		result, err := commands.NewUpdatePriceCommand(GetTracker(), args[0], price).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var ingredientHistoryCmd = &cobra.Command{
	Use:   "history <id>",
	Short: "Show an ingredient's full price history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, ing := range GetTracker().Ingredients() {
			if ing.ID != args[0] {
				continue
			}
			fmt.Printf("%s (%g %s)\n", ing.Name, ing.Quantity, ing.Unit)
			for _, p := range ing.PriceHistory {
				fmt.Printf("  %s  ₦%.2f\n", p.Date, p.Price)
			}
			return nil
		}
		return fmt.Errorf("no ingredient with ID %s", args[0])
	},
}

var ingredientDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an ingredient",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewDeleteIngredientCommand(GetTracker(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ingredientCmd)
	ingredientCmd.AddCommand(ingredientListCmd)
	ingredientCmd.AddCommand(ingredientAddCmd)
	ingredientCmd.AddCommand(ingredientPriceCmd)
	ingredientCmd.AddCommand(ingredientHistoryCmd)
	ingredientCmd.AddCommand(ingredientDeleteCmd)
}
