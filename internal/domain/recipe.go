package domain

// RecipeIngredient references an ingredient by ID with the amount consumed,
// in the ingredient's base unit. The reference is soft: the ingredient may
// have been deleted since, and resolution failure is a normal outcome.
type RecipeIngredient struct {
	IngredientID string  `json:"ingredientId"`
	Quantity     float64 `json:"quantity"`
}

// Recipe represents a sellable product assembled from ingredients
type Recipe struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Ingredients  []RecipeIngredient `json:"ingredients"`
	SellingPrice float64            `json:"sellingPrice"`
}

// NewRecipe creates a recipe with a fresh identity
func NewRecipe(name string, sellingPrice float64, ingredients []RecipeIngredient) Recipe {
	return Recipe{
		ID:           NewID(),
		Name:         name,
		Ingredients:  ingredients,
		SellingPrice: sellingPrice,
	}
}

// UnitCost computes the ingredient cost of producing one unit of the recipe.
// An ingredient reference that no longer resolves contributes 0.
func (r Recipe) UnitCost(ingredients []Ingredient) float64 {
	byID := make(map[string]Ingredient, len(ingredients))
	for _, ing := range ingredients {
		byID[ing.ID] = ing
	}

	var cost float64
	for _, ri := range r.Ingredients {
		ing, ok := byID[ri.IngredientID]
		if !ok || ing.Quantity <= 0 {
			continue
		}
		cost += ing.CurrentPrice() / ing.Quantity * ri.Quantity
	}
	return cost
}
