package domain

import "github.com/google/uuid"

// AppState is the full persisted snapshot: the four record collections.
// It is the unit of serialization for the share token, import/export,
// and snapshot persistence.
type AppState struct {
	Ingredients []Ingredient `json:"ingredients"`
	Recipes     []Recipe     `json:"recipes"`
	Sales       []Sale       `json:"sales"`
	Notes       []Note       `json:"notes"`
}

// EmptyState returns a state with four empty (non-nil) collections
func EmptyState() AppState {
	return AppState{
		Ingredients: []Ingredient{},
		Recipes:     []Recipe{},
		Sales:       []Sale{},
		Notes:       []Note{},
	}
}

// Clone returns a deep copy. Consumers of the tracker receive copies so
// that no caller holds a reference into the canonical collections.
func (s AppState) Clone() AppState {
	out := AppState{
		Ingredients: make([]Ingredient, len(s.Ingredients)),
		Recipes:     make([]Recipe, len(s.Recipes)),
		Sales:       make([]Sale, len(s.Sales)),
		Notes:       make([]Note, len(s.Notes)),
	}
	for i, ing := range s.Ingredients {
		ing.PriceHistory = append([]PricePoint(nil), ing.PriceHistory...)
		out.Ingredients[i] = ing
	}
	for i, r := range s.Recipes {
		r.Ingredients = append([]RecipeIngredient(nil), r.Ingredients...)
		out.Recipes[i] = r
	}
	copy(out.Sales, s.Sales)
	copy(out.Notes, s.Notes)
	return out
}

// NewID returns a fresh unique record identity
func NewID() string {
	return uuid.NewString()
}
