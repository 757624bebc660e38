package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"bakerspal/internal/domain"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the derived business numbers",
	RunE: func(cmd *cobra.Command, args []string) error {
		tracker := GetTracker()
		sales := tracker.Sales()

		var outstanding float64
		debtors := domain.DebtorBalances(sales)
		for _, d := range debtors {
			outstanding += d.Balance
		}

		fmt.Printf("Total revenue:      ₦%.2f\n", domain.TotalRevenue(sales))
		fmt.Printf("Units sold:         %d\n", domain.TotalUnits(sales))
		fmt.Printf("Average sale price: ₦%.2f\n", domain.AverageSalePrice(sales))
		fmt.Printf("Outstanding credit: ₦%.2f\n", outstanding)

		series := domain.DailySeries(sales, func(s domain.Sale) float64 { return s.Total() })
		if len(series) > 0 {
			fmt.Println("\nRevenue, last 7 days:")
			for _, p := range series {
				fmt.Printf("  %s  ₦%.2f\n", p.Label, p.Value)
			}
		}

		margins := domain.ProfitMarginByRecipe(sales, tracker.Recipes(), tracker.Ingredients())
		if len(margins) > 0 {
			fmt.Println("\nProfit margin by recipe:")
			for _, m := range margins {
				fmt.Printf("  %-24s revenue ₦%.2f  cost ₦%.2f  margin %.1f%%\n", m.Name, m.Revenue, m.Cost, m.Margin)
			}
		}

		if len(debtors) > 0 {
			fmt.Println("\nDebtors:")
			for _, d := range debtors {
				fmt.Printf("  %-24s owes ₦%.2f\n", d.Customer, d.Balance)
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
