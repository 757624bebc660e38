package commands

import (
	"context"
	"fmt"

	"bakerspal/internal/application"
	"bakerspal/internal/domain"
	"bakerspal/internal/state"
)

// SaveRecipeResult contains the result of saving a recipe
type SaveRecipeResult struct {
	Recipe  domain.Recipe
	Created bool
	Message string
}

// SaveRecipeCommand creates a recipe, or updates it in place when RecipeID
// names an existing one.
type SaveRecipeCommand struct {
	tracker      *state.Tracker
	RecipeID     string // empty means create
	Name         string
	SellingPrice float64
	Ingredients  []domain.RecipeIngredient
}

// NewSaveRecipeCommand creates a new SaveRecipeCommand
func NewSaveRecipeCommand(tracker *state.Tracker, recipeID, name string, sellingPrice float64, ingredients []domain.RecipeIngredient) *SaveRecipeCommand {
	return &SaveRecipeCommand{
		tracker:      tracker,
		RecipeID:     recipeID,
		Name:         name,
		SellingPrice: sellingPrice,
		Ingredients:  ingredients,
	}
}

// Validate checks if the save operation is valid
func (c *SaveRecipeCommand) Validate() error {
	if err := application.ValidateRequired("name", c.Name); err != nil {
		return err
	}
	if err := application.ValidateNonNegative("sellingPrice", c.SellingPrice); err != nil {
		return err
	}
	for _, ri := range c.Ingredients {
		if err := application.ValidateRequired("ingredientID", ri.IngredientID); err != nil {
			return err
		}
		if err := application.ValidatePositive("quantity", ri.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// Execute runs the save recipe command
func (c *SaveRecipeCommand) Execute(ctx context.Context) (*SaveRecipeResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	recipes := c.tracker.Recipes()

	if c.RecipeID != "" {
		for i, r := range recipes {
			if r.ID != c.RecipeID {
				continue
			}
			r.Name = c.Name
			r.SellingPrice = c.SellingPrice
			r.Ingredients = c.Ingredients
			recipes[i] = r
			c.tracker.ReplaceRecipes(recipes)
			return &SaveRecipeResult{
				Recipe:  r,
				Message: fmt.Sprintf("Updated recipe: %s", r.Name),
			}, nil
		}
		return nil, fmt.Errorf("recipe %s: %w", c.RecipeID, application.ErrNotFound)
	}

	recipe := domain.NewRecipe(c.Name, c.SellingPrice, c.Ingredients)
	c.tracker.ReplaceRecipes(append(recipes, recipe))
	return &SaveRecipeResult{
		Recipe:  recipe,
		Created: true,
		Message: fmt.Sprintf("Created recipe: %s", recipe.Name),
	}, nil
}

// DeleteRecipeResult contains the result of deleting a recipe
type DeleteRecipeResult struct {
	Message string
}

// DeleteRecipeCommand removes a recipe. Sales that reference it are kept;
// they recorded their price at sale time and still count toward revenue.
type DeleteRecipeCommand struct {
	tracker  *state.Tracker
	RecipeID string
}

// NewDeleteRecipeCommand creates a new DeleteRecipeCommand
func NewDeleteRecipeCommand(tracker *state.Tracker, recipeID string) *DeleteRecipeCommand {
	return &DeleteRecipeCommand{
		tracker:  tracker,
		RecipeID: recipeID,
	}
}

// Validate checks if the delete operation is valid
func (c *DeleteRecipeCommand) Validate() error {
	return application.ValidateRequired("recipeID", c.RecipeID)
}

// Execute runs the delete recipe command
func (c *DeleteRecipeCommand) Execute(ctx context.Context) (*DeleteRecipeResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	recipes := c.tracker.Recipes()
	kept := recipes[:0]
	var removed *domain.Recipe
	for _, r := range recipes {
		if r.ID == c.RecipeID {
			found := r
			removed = &found
			continue
		}
		kept = append(kept, r)
	}
	if removed == nil {
		return nil, fmt.Errorf("recipe %s: %w", c.RecipeID, application.ErrNotFound)
	}

	c.tracker.ReplaceRecipes(kept)
	return &DeleteRecipeResult{
		Message: fmt.Sprintf("Deleted recipe: %s", removed.Name),
	}, nil
}
