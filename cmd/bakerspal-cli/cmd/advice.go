package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bakerspal/internal/adapters/gemini"
	"bakerspal/internal/config"
	"bakerspal/internal/domain"
)

var adviceCmd = &cobra.Command{
	Use:   "advice",
	Short: "AI advice grounded in your business data",
}

var adviceTipsCmd = &cobra.Command{
	Use:   "tips",
	Short: "Business tips based on your ingredients and sales",
	RunE: func(cmd *cobra.Command, args []string) error {
		advisor, err := gemini.New(cmd.Context(), config.GeminiAPIKey(), config.GeminiModel())
		if err != nil {
			return err
		}

		tracker := GetTracker()
		sales := tracker.Sales()
		tips := advisor.BusinessTips(cmd.Context(), tracker.Ingredients(), sales, domain.TotalRevenue(sales))
		fmt.Println(tips)
		return nil
	},
}

var adviceRecipeCmd = &cobra.Command{
	Use:   "recipe <question...>",
	Short: "Ask for a recipe idea or baking technique",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		advisor, err := gemini.New(cmd.Context(), config.GeminiAPIKey(), config.GeminiModel())
		if err != nil {
			return err
		}

		answer := advisor.RecipeSuggestion(cmd.Context(), strings.Join(args, " "))
		fmt.Println(answer)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(adviceCmd)
	adviceCmd.AddCommand(adviceTipsCmd)
	adviceCmd.AddCommand(adviceRecipeCmd)
}
