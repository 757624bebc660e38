package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"bakerspal/internal/application/commands"
	"bakerspal/internal/domain"
)

var recipeIngredientFlags []string

var recipeCmd = &cobra.Command{
	Use:   "recipe",
	Short: "Manage recipes and their cost breakdowns",
}

var recipeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recipes with cost and profit per unit",
	RunE: func(cmd *cobra.Command, args []string) error {
		recipes := GetTracker().Recipes()
		if len(recipes) == 0 {
			fmt.Println("No recipes.")
			return nil
		}
		ingredients := GetTracker().Ingredients()
		for _, r := range recipes {
			cost := r.UnitCost(ingredients)
			fmt.Printf("%s  %-24s sells ₦%.2f  costs ₦%.2f  profit ₦%.2f\n",
				r.ID, r.Name, r.SellingPrice, cost, r.SellingPrice-cost)
		}
		return nil
	},
}

var recipeAddCmd = &cobra.Command{
	Use:   "add <name> <selling-price>",
	Short: "Create a recipe",
	Long: `Create a recipe. Ingredients are given as repeatable
--ingredient flags holding "ingredient-id:quantity".

Example:
  bakerspal-cli recipe add "Banana Bread" 1500 \
    --ingredient 4f0c...:0.5 --ingredient 9a1e...:0.2`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		price, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid selling price: %s", args[1])
		}
		refs, err := parseIngredientFlags(recipeIngredientFlags)
		if err != nil {
			return err
		}

		result, err := commands.NewSaveRecipeCommand(GetTracker(), "", args[0], price, refs).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var recipeUpdateCmd = &cobra.Command{
	Use:   "update <id> <name> <selling-price>",
	Short: "Update a recipe in place",
	Long: `Update a recipe's name, selling price, and ingredient list.
The recipe keeps its identity; past sales are not rewritten.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		price, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("invalid selling price: %s", args[2])
		}
		refs, err := parseIngredientFlags(recipeIngredientFlags)
		if err != nil {
			return err
		}

		result, err := commands.NewSaveRecipeCommand(GetTracker(), args[0], args[1], price, refs).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var recipeDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a recipe (past sales keep their numbers)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewDeleteRecipeCommand(GetTracker(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func parseIngredientFlags(flags []string) ([]domain.RecipeIngredient, error) {
	var refs []domain.RecipeIngredient
	for _, f := range flags {
		id, qty, ok := strings.Cut(f, ":")
		if !ok {
			return nil, fmt.Errorf("expected ingredient-id:quantity, got %q", f)
		}
		quantity, err := strconv.ParseFloat(qty, 64)
		if err != nil {
			return nil, fmt.Errorf("bad quantity in %q", f)
		}
		refs = append(refs, domain.RecipeIngredient{IngredientID: id, Quantity: quantity})
	}
	return refs, nil
}

func init() {
	rootCmd.AddCommand(recipeCmd)
	recipeCmd.AddCommand(recipeListCmd)
	recipeCmd.AddCommand(recipeAddCmd)
	recipeCmd.AddCommand(recipeUpdateCmd)
	recipeCmd.AddCommand(recipeDeleteCmd)

	recipeAddCmd.Flags().StringArrayVar(&recipeIngredientFlags, "ingredient", nil, `ingredient reference as "ingredient-id:quantity"`)
	recipeUpdateCmd.Flags().StringArrayVar(&recipeIngredientFlags, "ingredient", nil, `ingredient reference as "ingredient-id:quantity"`)
}
