package domain

// PaymentStatus marks whether a sale has been paid for
type PaymentStatus string

const (
	PaymentPaid   PaymentStatus = "paid"
	PaymentCredit PaymentStatus = "credit"
)

// Sale records a single sale of a recipe. PricePerUnit is captured at the
// time of sale; later edits to the recipe's selling price never change it.
// RecipeID is a soft reference; the recipe may have been deleted since.
type Sale struct {
	ID            string        `json:"id"`
	Date          string        `json:"date"`
	RecipeID      string        `json:"recipeId"`
	Quantity      int           `json:"quantity"`
	PricePerUnit  float64       `json:"pricePerUnit"`
	Customer      string        `json:"customer,omitempty"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
}

// NewSale records a sale stamped with the current time
func NewSale(recipeID string, quantity int, pricePerUnit float64, customer string, status PaymentStatus) Sale {
	return Sale{
		ID:            NewID(),
		Date:          Now(),
		RecipeID:      recipeID,
		Quantity:      quantity,
		PricePerUnit:  pricePerUnit,
		Customer:      customer,
		PaymentStatus: status,
	}
}

// Total returns the revenue of this sale
func (s Sale) Total() float64 {
	return float64(s.Quantity) * s.PricePerUnit
}
