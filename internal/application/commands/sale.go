package commands

import (
	"context"
	"fmt"

	"bakerspal/internal/application"
	"bakerspal/internal/domain"
	"bakerspal/internal/state"
)

// RecordSaleResult contains the result of recording a sale
type RecordSaleResult struct {
	Sale    domain.Sale
	Message string
}

// RecordSaleCommand records a sale of a recipe. PricePerUnit of 0 means
// "use the recipe's current selling price"; the resolved price is frozen
// into the sale record.
type RecordSaleCommand struct {
	tracker       *state.Tracker
	RecipeID      string
	Quantity      int
	PricePerUnit  float64
	Customer      string
	PaymentStatus domain.PaymentStatus
}

// NewRecordSaleCommand creates a new RecordSaleCommand
func NewRecordSaleCommand(tracker *state.Tracker, recipeID string, quantity int, pricePerUnit float64, customer string, status domain.PaymentStatus) *RecordSaleCommand {
	return &RecordSaleCommand{
		tracker:       tracker,
		RecipeID:      recipeID,
		Quantity:      quantity,
		PricePerUnit:  pricePerUnit,
		Customer:      customer,
		PaymentStatus: status,
	}
}

// Validate checks if the record operation is valid
func (c *RecordSaleCommand) Validate() error {
	if err := application.ValidateRequired("recipeID", c.RecipeID); err != nil {
		return err
	}
	if err := application.ValidatePositive("quantity", float64(c.Quantity)); err != nil {
		return err
	}
	if err := application.ValidateNonNegative("pricePerUnit", c.PricePerUnit); err != nil {
		return err
	}
	switch c.PaymentStatus {
	case domain.PaymentPaid:
	case domain.PaymentCredit:
		if err := application.ValidateRequired("customer", c.Customer); err != nil {
			return &application.ValidationError{
				Field:   "customer",
				Message: "customer name is required for credit sales",
			}
		}
	default:
		return &application.ValidationError{
			Field:   "paymentStatus",
			Message: fmt.Sprintf("unknown payment status: %s", c.PaymentStatus),
		}
	}
	return nil
}

// Execute runs the record sale command
func (c *RecordSaleCommand) Execute(ctx context.Context) (*RecordSaleResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var recipe *domain.Recipe
	for _, r := range c.tracker.Recipes() {
		if r.ID == c.RecipeID {
			found := r
			recipe = &found
			break
		}
	}
	if recipe == nil {
		return nil, fmt.Errorf("recipe %s: %w", c.RecipeID, application.ErrNotFound)
	}

	price := c.PricePerUnit
	if price == 0 {
		price = recipe.SellingPrice
	}

	sale := domain.NewSale(c.RecipeID, c.Quantity, price, c.Customer, c.PaymentStatus)
	c.tracker.ReplaceSales(append(c.tracker.Sales(), sale))

	return &RecordSaleResult{
		Sale:    sale,
		Message: fmt.Sprintf("Recorded sale: %dx %s for %.2f", sale.Quantity, recipe.Name, sale.Total()),
	}, nil
}

// MarkPaidResult contains the result of settling a credit sale
type MarkPaidResult struct {
	Sale    domain.Sale
	Message string
}

// MarkPaidCommand settles a credit sale
type MarkPaidCommand struct {
	tracker *state.Tracker
	SaleID  string
}

// NewMarkPaidCommand creates a new MarkPaidCommand
func NewMarkPaidCommand(tracker *state.Tracker, saleID string) *MarkPaidCommand {
	return &MarkPaidCommand{
		tracker: tracker,
		SaleID:  saleID,
	}
}

// Validate checks if the mark-paid operation is valid
func (c *MarkPaidCommand) Validate() error {
	return application.ValidateRequired("saleID", c.SaleID)
}

// Execute runs the mark paid command
func (c *MarkPaidCommand) Execute(ctx context.Context) (*MarkPaidResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	sales := c.tracker.Sales()
	for i, s := range sales {
		if s.ID != c.SaleID {
			continue
		}
		if s.PaymentStatus == domain.PaymentPaid {
			return &MarkPaidResult{
				Sale:    s,
				Message: "Sale is already paid",
			}, nil
		}
		s.PaymentStatus = domain.PaymentPaid
		sales[i] = s
		c.tracker.ReplaceSales(sales)
		return &MarkPaidResult{
			Sale:    s,
			Message: fmt.Sprintf("Marked sale as paid (%.2f)", s.Total()),
		}, nil
	}

	return nil, fmt.Errorf("sale %s: %w", c.SaleID, application.ErrNotFound)
}

// DeleteSaleResult contains the result of deleting a sale
type DeleteSaleResult struct {
	Message string
}

// DeleteSaleCommand removes a sale record
type DeleteSaleCommand struct {
	tracker *state.Tracker
	SaleID  string
}

// NewDeleteSaleCommand creates a new DeleteSaleCommand
func NewDeleteSaleCommand(tracker *state.Tracker, saleID string) *DeleteSaleCommand {
	return &DeleteSaleCommand{
		tracker: tracker,
		SaleID:  saleID,
	}
}

// Validate checks if the delete operation is valid
func (c *DeleteSaleCommand) Validate() error {
	return application.ValidateRequired("saleID", c.SaleID)
}

// Execute runs the delete sale command
func (c *DeleteSaleCommand) Execute(ctx context.Context) (*DeleteSaleResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	sales := c.tracker.Sales()
	kept := sales[:0]
	found := false
	for _, s := range sales {
		if s.ID == c.SaleID {
			found = true
			continue
		}
		kept = append(kept, s)
	}
	if !found {
		return nil, fmt.Errorf("sale %s: %w", c.SaleID, application.ErrNotFound)
	}

	c.tracker.ReplaceSales(kept)
	return &DeleteSaleResult{
		Message: "Deleted sale",
	}, nil
}
