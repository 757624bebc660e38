package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"bakerspal/internal/application/commands"
	"bakerspal/internal/domain"
	"bakerspal/internal/state"
)

// RegisterWriteTools adds all mutating business tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, tracker *state.Tracker) {
	s.AddTool(addIngredientTool(), addIngredientHandler(tracker))
	s.AddTool(updatePriceTool(), updatePriceHandler(tracker))
	s.AddTool(saveRecipeTool(), saveRecipeHandler(tracker))
	s.AddTool(recordSaleTool(), recordSaleHandler(tracker))
	s.AddTool(markPaidTool(), markPaidHandler(tracker))
	s.AddTool(addNoteTool(), addNoteHandler(tracker))
	s.AddTool(deleteTool(), deleteHandler(tracker))
}

// --- add_ingredient ---

func addIngredientTool() mcp.Tool {
	return mcp.NewTool("add_ingredient",
		mcp.WithDescription("Add an ingredient with its purchase price, quantity, and unit (e.g. 50kg of flour)."),
		mcp.WithString("name", mcp.Description("Ingredient name"), mcp.Required()),
		mcp.WithNumber("price", mcp.Description("Price paid for the purchase quantity"), mcp.Required()),
		mcp.WithNumber("quantity", mcp.Description("Purchase quantity, e.g. 50 for a 50kg bag"), mcp.Required()),
		mcp.WithString("unit", mcp.Description("Unit of the purchase quantity, e.g. kg, L, piece"), mcp.Required()),
	)
}

func addIngredientHandler(tracker *state.Tracker) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewAddIngredientCommand(tracker,
			req.GetString("name", ""),
			req.GetFloat("price", 0),
			req.GetFloat("quantity", 0),
			req.GetString("unit", ""),
		)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- update_price ---

func updatePriceTool() mcp.Tool {
	return mcp.NewTool("update_price",
		mcp.WithDescription("Record a new price for an ingredient. The old price stays in the history."),
		mcp.WithString("ingredient_id", mcp.Description("Ingredient ID"), mcp.Required()),
		mcp.WithNumber("price", mcp.Description("New price for the purchase quantity"), mcp.Required()),
	)
}

func updatePriceHandler(tracker *state.Tracker) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewUpdatePriceCommand(tracker,
			req.GetString("ingredient_id", ""),
			req.GetFloat("price", 0),
		)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- save_recipe ---

func saveRecipeTool() mcp.Tool {
	return mcp.NewTool("save_recipe",
		mcp.WithDescription(`Create or update a recipe. Pass recipe_id to update. The ingredients argument is a JSON array like [{"ingredientId":"...","quantity":0.5}].`),
		mcp.WithString("recipe_id", mcp.Description("Recipe ID to update. Omit to create.")),
		mcp.WithString("name", mcp.Description("Recipe name"), mcp.Required()),
		mcp.WithNumber("selling_price", mcp.Description("Selling price per unit"), mcp.Required()),
		mcp.WithString("ingredients", mcp.Description("JSON array of ingredient references")),
	)
}

func saveRecipeHandler(tracker *state.Tracker) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var refs []domain.RecipeIngredient
		if raw := req.GetString("ingredients", ""); raw != "" {
			if err := json.Unmarshal([]byte(raw), &refs); err != nil {
				return toolError(fmt.Errorf("invalid ingredients argument: %w", err))
			}
		}

		cmd := commands.NewSaveRecipeCommand(tracker,
			req.GetString("recipe_id", ""),
			req.GetString("name", ""),
			req.GetFloat("selling_price", 0),
			refs,
		)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- record_sale ---

func recordSaleTool() mcp.Tool {
	return mcp.NewTool("record_sale",
		mcp.WithDescription("Record a sale of a recipe. Credit sales need a customer name. Omit price_per_unit to use the recipe's selling price."),
		mcp.WithString("recipe_id", mcp.Description("Recipe ID"), mcp.Required()),
		mcp.WithNumber("quantity", mcp.Description("Units sold"), mcp.Required()),
		mcp.WithNumber("price_per_unit", mcp.Description("Price per unit. Omit to use the recipe's selling price.")),
		mcp.WithString("customer", mcp.Description("Customer name (required for credit sales)")),
		mcp.WithString("payment_status", mcp.Description("paid or credit (default paid)")),
	)
}

func recordSaleHandler(tracker *state.Tracker) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		status := domain.PaymentStatus(req.GetString("payment_status", string(domain.PaymentPaid)))

		cmd := commands.NewRecordSaleCommand(tracker,
			req.GetString("recipe_id", ""),
			req.GetInt("quantity", 0),
			req.GetFloat("price_per_unit", 0),
			req.GetString("customer", ""),
			status,
		)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- mark_paid ---

func markPaidTool() mcp.Tool {
	return mcp.NewTool("mark_paid",
		mcp.WithDescription("Settle a credit sale, removing it from the debtors list."),
		mcp.WithString("sale_id", mcp.Description("Sale ID"), mcp.Required()),
	)
}

func markPaidHandler(tracker *state.Tracker) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewMarkPaidCommand(tracker, req.GetString("sale_id", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- add_note ---

func addNoteTool() mcp.Tool {
	return mcp.NewTool("add_note",
		mcp.WithDescription("Add a free-form business note."),
		mcp.WithString("content", mcp.Description("Note text"), mcp.Required()),
	)
}

func addNoteHandler(tracker *state.Tracker) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewAddNoteCommand(tracker, req.GetString("content", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- delete ---

func deleteTool() mcp.Tool {
	return mcp.NewTool("delete",
		mcp.WithDescription("Delete a record by kind and ID."),
		mcp.WithString("kind",
			mcp.Description("What to delete: ingredient, recipe, sale, or note"),
			mcp.Required(),
		),
		mcp.WithString("id", mcp.Description("Record ID"), mcp.Required()),
	)
}

func deleteHandler(tracker *state.Tracker) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")

		switch req.GetString("kind", "") {
		case "ingredient":
			result, err := commands.NewDeleteIngredientCommand(tracker, id).Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			return mcp.NewToolResultText(result.Message), nil

		case "recipe":
			result, err := commands.NewDeleteRecipeCommand(tracker, id).Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			return mcp.NewToolResultText(result.Message), nil

		case "sale":
			result, err := commands.NewDeleteSaleCommand(tracker, id).Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			return mcp.NewToolResultText(result.Message), nil

		case "note":
			result, err := commands.NewDeleteNoteCommand(tracker, id).Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			return mcp.NewToolResultText(result.Message), nil

		default:
			return toolError(fmt.Errorf("unknown kind (expected ingredient, recipe, sale, or note)"))
		}
	}
}
