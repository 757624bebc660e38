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

var (
	salePriceFlag    float64
	saleCustomerFlag string
	saleCreditFlag   bool
)

var saleCmd = &cobra.Command{
	Use:   "sale",
	Short: "Record sales and settle credit",
}

var saleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded sales",
	RunE: func(cmd *cobra.Command, args []string) error {
		sales := GetTracker().Sales()
		if len(sales) == 0 {
			fmt.Println("No sales.")
			return nil
		}
		names := map[string]string{}
		for _, r := range GetTracker().Recipes() {
			names[r.ID] = r.Name
		}
		for _, s := range sales {
			name, ok := names[s.RecipeID]
			if !ok {
				name = "(deleted recipe)"
			}
			line := fmt.Sprintf("%s  %s  %dx %-20s ₦%.2f  %s", s.ID, s.Date, s.Quantity, name, s.Total(), s.PaymentStatus)
			if s.Customer != "" {
				line += "  " + s.Customer
			}
			fmt.Println(line)
		}
		return nil
	},
}

var saleRecordCmd = &cobra.Command{
	Use:   "record <recipe> <quantity>",
	Short: "Record a sale",
	Long: `Record a sale of a recipe, given by name or ID. The price
defaults to the recipe's selling price; credit sales need --customer.

Examples:
  bakerspal-cli sale record "Banana Bread" 3
  bakerspal-cli sale record "Meat Pie" 10 --credit --customer "Ada"
  bakerspal-cli sale record "Meat Pie" 5 --price 750`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		quantity, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid quantity: %s", args[1])
		}
		recipeID, err := resolveRecipe(args[0])
		if err != nil {
			return err
		}

		status := domain.PaymentPaid
		if saleCreditFlag {
			status = domain.PaymentCredit
		}

		result, err := commands.NewRecordSaleCommand(GetTracker(), recipeID, quantity, salePriceFlag, saleCustomerFlag, status).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var salePaidCmd = &cobra.Command{
	Use:   "paid <id>",
	Short: "Mark a credit sale as paid",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewMarkPaidCommand(GetTracker(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var saleDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a sale record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewDeleteSaleCommand(GetTracker(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var saleDebtorsCmd = &cobra.Command{
	Use:   "debtors",
	Short: "List customers with outstanding credit",
	RunE: func(cmd *cobra.Command, args []string) error {
		debtors := domain.DebtorBalances(GetTracker().Sales())
		if len(debtors) == 0 {
			fmt.Println("No outstanding credit.")
			return nil
		}
		for _, d := range debtors {
			fmt.Printf("%-24s owes ₦%.2f\n", d.Customer, d.Balance)
		}
		return nil
	},
}

// resolveRecipe accepts a recipe name (case-insensitive) or ID
func resolveRecipe(nameOrID string) (string, error) {
	needle := strings.ToLower(strings.TrimSpace(nameOrID))
	for _, r := range GetTracker().Recipes() {
		if r.ID == nameOrID || strings.ToLower(r.Name) == needle {
			return r.ID, nil
		}
	}
	return "", fmt.Errorf("no recipe named %q", nameOrID)
}

func init() {
	rootCmd.AddCommand(saleCmd)
	saleCmd.AddCommand(saleListCmd)
	saleCmd.AddCommand(saleRecordCmd)
	saleCmd.AddCommand(salePaidCmd)
	saleCmd.AddCommand(saleDeleteCmd)
	saleCmd.AddCommand(saleDebtorsCmd)

	saleRecordCmd.Flags().Float64Var(&salePriceFlag, "price", 0, "price per unit (default: the recipe's selling price)")
	saleRecordCmd.Flags().StringVar(&saleCustomerFlag, "customer", "", "customer name")
	saleRecordCmd.Flags().BoolVar(&saleCreditFlag, "credit", false, "record as an unpaid credit sale")
}
