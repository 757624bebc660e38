package commands

import (
	"context"
	"fmt"

	"bakerspal/internal/application"
	"bakerspal/internal/domain"
	"bakerspal/internal/state"
)

// AddIngredientResult contains the result of adding an ingredient
type AddIngredientResult struct {
	Ingredient domain.Ingredient
	Message    string
}

// AddIngredientCommand adds a new ingredient with an initial price
type AddIngredientCommand struct {
	tracker  *state.Tracker
	Name     string
	Price    float64
	Quantity float64
	Unit     string
}

// NewAddIngredientCommand creates a new AddIngredientCommand
func NewAddIngredientCommand(tracker *state.Tracker, name string, price, quantity float64, unit string) *AddIngredientCommand {
	return &AddIngredientCommand{
		tracker:  tracker,
		Name:     name,
		Price:    price,
		Quantity: quantity,
		Unit:     unit,
	}
}

// Validate checks if the add operation is valid
func (c *AddIngredientCommand) Validate() error {
	if err := application.ValidateRequired("name", c.Name); err != nil {
		return err
	}
	if err := application.ValidateRequired("unit", c.Unit); err != nil {
		return err
	}
	if err := application.ValidateNonNegative("price", c.Price); err != nil {
		return err
	}
	return application.ValidatePositive("quantity", c.Quantity)
}

// Execute runs the add ingredient command
func (c *AddIngredientCommand) Execute(ctx context.Context) (*AddIngredientResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	ing := domain.NewIngredient(c.Name, c.Price, c.Quantity, c.Unit)
	c.tracker.ReplaceIngredients(append(c.tracker.Ingredients(), ing))

	return &AddIngredientResult{
		Ingredient: ing,
		Message:    fmt.Sprintf("Added ingredient: %s (%g %s)", ing.Name, ing.Quantity, ing.Unit),
	}, nil
}

// UpdatePriceResult contains the result of updating an ingredient's price
type UpdatePriceResult struct {
	Ingredient domain.Ingredient
	Message    string
}

// UpdatePriceCommand appends a new price to an ingredient's history. The
// previous entries stay as they are.
type UpdatePriceCommand struct {
	tracker      *state.Tracker
	IngredientID string
	Price        float64
}

// NewUpdatePriceCommand creates a new UpdatePriceCommand
func NewUpdatePriceCommand(tracker *state.Tracker, ingredientID string, price float64) *UpdatePriceCommand {
	return &UpdatePriceCommand{
		tracker:      tracker,
		IngredientID: ingredientID,
		Price:        price,
	}
}

// Validate checks if the update operation is valid
func (c *UpdatePriceCommand) Validate() error {
	if err := application.ValidateRequired("ingredientID", c.IngredientID); err != nil {
		return err
	}
	return application.ValidateNonNegative("price", c.Price)
}

// Execute runs the update price command
func (c *UpdatePriceCommand) Execute(ctx context.Context) (*UpdatePriceResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	ingredients := c.tracker.Ingredients()
	for i, ing := range ingredients {
		if ing.ID != c.IngredientID {
			continue
		}
		updated := ing.WithPrice(c.Price)
		ingredients[i] = updated
		c.tracker.ReplaceIngredients(ingredients)
		return &UpdatePriceResult{
			Ingredient: updated,
			Message:    fmt.Sprintf("Updated price of %s to %.2f", updated.Name, c.Price),
		}, nil
	}

	return nil, fmt.Errorf("ingredient %s: %w", c.IngredientID, application.ErrNotFound)
}

// DeleteIngredientResult contains the result of deleting an ingredient
type DeleteIngredientResult struct {
	Message string
}

// DeleteIngredientCommand removes an ingredient. Recipes that reference it
// keep the dangling reference; their unit cost simply stops counting it.
type DeleteIngredientCommand struct {
	tracker      *state.Tracker
	IngredientID string
}

// NewDeleteIngredientCommand creates a new DeleteIngredientCommand
func NewDeleteIngredientCommand(tracker *state.Tracker, ingredientID string) *DeleteIngredientCommand {
	return &DeleteIngredientCommand{
		tracker:      tracker,
		IngredientID: ingredientID,
	}
}

// Validate checks if the delete operation is valid
func (c *DeleteIngredientCommand) Validate() error {
	return application.ValidateRequired("ingredientID", c.IngredientID)
}

// Execute runs the delete ingredient command
func (c *DeleteIngredientCommand) Execute(ctx context.Context) (*DeleteIngredientResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	ingredients := c.tracker.Ingredients()
	kept := ingredients[:0]
	var removed *domain.Ingredient
	for _, ing := range ingredients {
		if ing.ID == c.IngredientID {
			found := ing
			removed = &found
			continue
		}
		kept = append(kept, ing)
	}
	if removed == nil {
		return nil, fmt.Errorf("ingredient %s: %w", c.IngredientID, application.ErrNotFound)
	}

	c.tracker.ReplaceIngredients(kept)
	return &DeleteIngredientResult{
		Message: fmt.Sprintf("Deleted ingredient: %s", removed.Name),
	}, nil
}
