package domain

import "time"

// PricePoint is one entry in an ingredient's price history
type PricePoint struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// Ingredient represents a purchasable ingredient (e.g., 1kg of flour).
// PriceHistory is append-only and chronological; the last entry is the
// current price. LegacyPrice carries the pre-history flat "price" field
// found in old persisted records; the migrator folds it into PriceHistory.
type Ingredient struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	PriceHistory []PricePoint `json:"priceHistory"`
	Quantity     float64      `json:"quantity"` // purchase quantity, e.g. 1 for 1kg, 500 for 500ml
	Unit         string       `json:"unit"`     // e.g., kg, L, piece
	LegacyPrice  *float64     `json:"price,omitempty"`
}

// NewIngredient creates an ingredient with a single price-history entry
func NewIngredient(name string, price, quantity float64, unit string) Ingredient {
	return Ingredient{
		ID:           NewID(),
		Name:         name,
		PriceHistory: []PricePoint{{Date: Now(), Price: price}},
		Quantity:     quantity,
		Unit:         unit,
	}
}

// CurrentPrice returns the most recent price, or 0 if the history is empty
func (i Ingredient) CurrentPrice() float64 {
	if len(i.PriceHistory) == 0 {
		return 0
	}
	return i.PriceHistory[len(i.PriceHistory)-1].Price
}

// WithPrice returns a copy of the ingredient with a new price appended to
// its history. Existing entries are never rewritten.
func (i Ingredient) WithPrice(price float64) Ingredient {
	history := make([]PricePoint, len(i.PriceHistory), len(i.PriceHistory)+1)
	copy(history, i.PriceHistory)
	i.PriceHistory = append(history, PricePoint{Date: Now(), Price: price})
	return i
}

// Now returns the current time in the persisted date format (RFC 3339)
func Now() string {
	return time.Now().Format(time.RFC3339)
}
