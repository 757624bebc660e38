package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"bakerspal/internal/domain"
	"bakerspal/internal/state"
)

// RegisterReadTools adds all read-only business tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, tracker *state.Tracker) {
	s.AddTool(listTool(), listHandler(tracker))
	s.AddTool(summaryTool(), summaryHandler(tracker))
	s.AddTool(marginsTool(), marginsHandler(tracker))
	s.AddTool(debtorsTool(), debtorsHandler(tracker))
	s.AddTool(shareTool(), shareHandler(tracker))
}

// --- list ---

func listTool() mcp.Tool {
	return mcp.NewTool("list",
		mcp.WithDescription("List business records of one kind: ingredients, recipes, sales, or notes."),
		mcp.WithString("kind",
			mcp.Description("What to list: ingredients, recipes, sales, or notes"),
			mcp.Required(),
		),
	)
}

func listHandler(tracker *state.Tracker) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		switch req.GetString("kind", "") {
		case "ingredients":
			return formatRecords(tracker.Ingredients(), formatIngredient)
		case "recipes":
			ingredients := tracker.Ingredients()
			return formatRecords(tracker.Recipes(), func(r domain.Recipe) string {
				return formatRecipe(r, ingredients)
			})
		case "sales":
			recipes := tracker.Recipes()
			return formatRecords(tracker.Sales(), func(s domain.Sale) string {
				return formatSale(s, recipes)
			})
		case "notes":
			return formatRecords(tracker.Notes(), formatNote)
		default:
			return toolError(fmt.Errorf("unknown kind (expected ingredients, recipes, sales, or notes)"))
		}
	}
}

// --- summary ---

func summaryTool() mcp.Tool {
	return mcp.NewTool("summary",
		mcp.WithDescription("Business summary: total revenue, units sold, average sale price, and outstanding credit."),
	)
}

func summaryHandler(tracker *state.Tracker) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		sales := tracker.Sales()

		var outstanding float64
		for _, d := range domain.DebtorBalances(sales) {
			outstanding += d.Balance
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "Total revenue: %.2f\n", domain.TotalRevenue(sales))
		fmt.Fprintf(&sb, "Units sold: %d\n", domain.TotalUnits(sales))
		fmt.Fprintf(&sb, "Average sale price: %.2f\n", domain.AverageSalePrice(sales))
		fmt.Fprintf(&sb, "Outstanding credit: %.2f\n", outstanding)
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- margins ---

func marginsTool() mcp.Tool {
	return mcp.NewTool("margins",
		mcp.WithDescription("Profit margin per recipe across all recorded sales, most profitable first."),
	)
}

func marginsHandler(tracker *state.Tracker) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		margins := domain.ProfitMarginByRecipe(tracker.Sales(), tracker.Recipes(), tracker.Ingredients())
		return formatRecords(margins, func(m domain.RecipeMargin) string {
			return fmt.Sprintf("%s  revenue %.2f  cost %.2f  margin %.1f%%", m.Name, m.Revenue, m.Cost, m.Margin)
		})
	}
}

// --- debtors ---

func debtorsTool() mcp.Tool {
	return mcp.NewTool("debtors",
		mcp.WithDescription("Customers with unpaid credit sales and how much each owes."),
	)
}

func debtorsHandler(tracker *state.Tracker) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return formatRecords(domain.DebtorBalances(tracker.Sales()), func(d domain.DebtorBalance) string {
			return fmt.Sprintf("%s owes %.2f", d.Customer, d.Balance)
		})
	}
}

// --- share ---

func shareTool() mcp.Tool {
	return mcp.NewTool("share",
		mcp.WithDescription("Encode the whole business state as a URL-safe share token."),
	)
}

func shareHandler(tracker *state.Tracker) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		token, err := tracker.Token()
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(token), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatRecords[T any](records []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(records) == 0 {
		return mcp.NewToolResultText("No records."), nil
	}
	var sb strings.Builder
	for _, r := range records {
		sb.WriteString(format(r))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatIngredient(i domain.Ingredient) string {
	return fmt.Sprintf("%s  %s  %.2f per %g %s", i.ID, i.Name, i.CurrentPrice(), i.Quantity, i.Unit)
}

func formatRecipe(r domain.Recipe, ingredients []domain.Ingredient) string {
	return fmt.Sprintf("%s  %s  sells %.2f  costs %.2f  (%d ingredients)",
		r.ID, r.Name, r.SellingPrice, r.UnitCost(ingredients), len(r.Ingredients))
}

func formatSale(s domain.Sale, recipes []domain.Recipe) string {
	name := s.RecipeID
	for _, r := range recipes {
		if r.ID == s.RecipeID {
			name = r.Name
			break
		}
	}
	line := fmt.Sprintf("%s  %dx %s  %.2f  %s", s.ID, s.Quantity, name, s.Total(), s.PaymentStatus)
	if s.Customer != "" {
		line += "  " + s.Customer
	}
	return line
}

func formatNote(n domain.Note) string {
	return fmt.Sprintf("%s  %s", n.ID, n.Content)
}
