package domain

import (
	"math"
	"testing"
	"time"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTotalRevenueAndUnits(t *testing.T) {
	sales := []Sale{
		{Quantity: 2, PricePerUnit: 5},
		{Quantity: 1, PricePerUnit: 3},
	}

	if got := TotalRevenue(sales); !almostEqual(got, 13) {
		t.Errorf("TotalRevenue = %v, want 13", got)
	}
	if got := TotalUnits(sales); got != 3 {
		t.Errorf("TotalUnits = %d, want 3", got)
	}
	if got := AverageSalePrice(sales); !almostEqual(got, 13.0/3.0) {
		t.Errorf("AverageSalePrice = %v, want %v", got, 13.0/3.0)
	}
}

func TestTotalRevenueEmpty(t *testing.T) {
	if got := TotalRevenue(nil); got != 0 {
		t.Errorf("TotalRevenue(nil) = %v, want 0", got)
	}
	if got := AverageSalePrice(nil); got != 0 {
		t.Errorf("AverageSalePrice(nil) = %v, want 0", got)
	}
}

func TestCurrentPrice(t *testing.T) {
	tests := []struct {
		name    string
		history []PricePoint
		want    float64
	}{
		{name: "empty history", history: nil, want: 0},
		{name: "single entry", history: []PricePoint{{Price: 10}}, want: 10},
		{name: "last entry wins", history: []PricePoint{{Price: 10}, {Price: 15}}, want: 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ing := Ingredient{PriceHistory: tt.history}
			if got := ing.CurrentPrice(); !almostEqual(got, tt.want) {
				t.Errorf("CurrentPrice = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithPriceAppends(t *testing.T) {
	ing := NewIngredient("Flour", 500, 1, "kg")
	updated := ing.WithPrice(550)

	if len(ing.PriceHistory) != 1 {
		t.Fatalf("original history mutated: %d entries", len(ing.PriceHistory))
	}
	if len(updated.PriceHistory) != 2 {
		t.Fatalf("updated history has %d entries, want 2", len(updated.PriceHistory))
	}
	if got := updated.CurrentPrice(); !almostEqual(got, 550) {
		t.Errorf("CurrentPrice after update = %v, want 550", got)
	}
	if got := updated.PriceHistory[0].Price; !almostEqual(got, 500) {
		t.Errorf("first history entry rewritten: %v, want 500", got)
	}
}

func TestUnitCost(t *testing.T) {
	flour := Ingredient{ID: "flour", Quantity: 1, PriceHistory: []PricePoint{{Price: 500}}}
	sugar := Ingredient{ID: "sugar", Quantity: 500, PriceHistory: []PricePoint{{Price: 250}}}
	ingredients := []Ingredient{flour, sugar}

	tests := []struct {
		name   string
		recipe Recipe
		want   float64
	}{
		{
			name: "two ingredients",
			recipe: Recipe{Ingredients: []RecipeIngredient{
				{IngredientID: "flour", Quantity: 0.5}, // 250
				{IngredientID: "sugar", Quantity: 100}, // 50
			}},
			want: 300,
		},
		{
			name: "dangling reference contributes zero",
			recipe: Recipe{Ingredients: []RecipeIngredient{
				{IngredientID: "flour", Quantity: 1},
				{IngredientID: "butter", Quantity: 10},
			}},
			want: 500,
		},
		{name: "no ingredients", recipe: Recipe{}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.recipe.UnitCost(ingredients); !almostEqual(got, tt.want) {
				t.Errorf("UnitCost = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProfitMarginByRecipe(t *testing.T) {
	// Recipe costs 2 per unit; 3 units sold at 5 => revenue 15, cost 6, margin 60%.
	ingredients := []Ingredient{
		{ID: "flour", Quantity: 1, PriceHistory: []PricePoint{{Price: 2}}},
	}
	recipes := []Recipe{
		{ID: "bread", Name: "Bread", Ingredients: []RecipeIngredient{{IngredientID: "flour", Quantity: 1}}},
	}
	sales := []Sale{
		{RecipeID: "bread", Quantity: 3, PricePerUnit: 5},
		{RecipeID: "deleted-recipe", Quantity: 100, PricePerUnit: 100},
	}

	got := ProfitMarginByRecipe(sales, recipes, ingredients)
	if len(got) != 1 {
		t.Fatalf("got %d margin rows, want 1 (dangling recipe sale must be skipped)", len(got))
	}
	m := got[0]
	if m.Name != "Bread" {
		t.Errorf("Name = %q, want Bread", m.Name)
	}
	if !almostEqual(m.Revenue, 15) || !almostEqual(m.Cost, 6) {
		t.Errorf("Revenue/Cost = %v/%v, want 15/6", m.Revenue, m.Cost)
	}
	if !almostEqual(m.Margin, 60) {
		t.Errorf("Margin = %v, want 60", m.Margin)
	}
}

func TestProfitMarginSortedDescending(t *testing.T) {
	ingredients := []Ingredient{
		{ID: "cheap", Quantity: 1, PriceHistory: []PricePoint{{Price: 1}}},
		{ID: "dear", Quantity: 1, PriceHistory: []PricePoint{{Price: 9}}},
	}
	recipes := []Recipe{
		{ID: "low", Name: "Low", Ingredients: []RecipeIngredient{{IngredientID: "dear", Quantity: 1}}},
		{ID: "high", Name: "High", Ingredients: []RecipeIngredient{{IngredientID: "cheap", Quantity: 1}}},
	}
	sales := []Sale{
		{RecipeID: "low", Quantity: 1, PricePerUnit: 10},
		{RecipeID: "high", Quantity: 1, PricePerUnit: 10},
	}

	got := ProfitMarginByRecipe(sales, recipes, ingredients)
	if len(got) != 2 {
		t.Fatalf("got %d rows, want 2", len(got))
	}
	if got[0].Name != "High" || got[1].Name != "Low" {
		t.Errorf("order = %s, %s; want High, Low", got[0].Name, got[1].Name)
	}
}

func TestProfitMarginZeroRevenue(t *testing.T) {
	recipes := []Recipe{{ID: "r", Name: "Freebie"}}
	sales := []Sale{{RecipeID: "r", Quantity: 2, PricePerUnit: 0}}

	got := ProfitMarginByRecipe(sales, recipes, nil)
	if len(got) != 1 {
		t.Fatalf("got %d rows, want 1", len(got))
	}
	if got[0].Margin != 0 {
		t.Errorf("Margin = %v, want 0 when revenue is 0", got[0].Margin)
	}
}

func TestDailySeries(t *testing.T) {
	day := func(offset int) string {
		return time.Now().AddDate(0, 0, -offset).Format(time.RFC3339)
	}

	var sales []Sale
	for offset := 9; offset >= 0; offset-- {
		sales = append(sales, Sale{Date: day(offset), Quantity: 1, PricePerUnit: float64(offset + 1)})
	}
	// A second sale on the most recent day, and one with a broken date.
	sales = append(sales,
		Sale{Date: day(0), Quantity: 1, PricePerUnit: 10},
		Sale{Date: "not-a-date", Quantity: 1, PricePerUnit: 999},
	)

	points := DailySeries(sales, func(s Sale) float64 { return s.Total() })
	if len(points) != 7 {
		t.Fatalf("got %d points, want 7 (series is capped at the last 7 days)", len(points))
	}
	// Ascending: last point is today, value 1 + 10.
	last := points[len(points)-1]
	if !almostEqual(last.Value, 11) {
		t.Errorf("last point value = %v, want 11", last.Value)
	}
	first := points[0]
	if !almostEqual(first.Value, 7) {
		t.Errorf("first point value = %v, want 7", first.Value)
	}
}

func TestDebtorBalances(t *testing.T) {
	sales := []Sale{
		{Customer: "Ada", PaymentStatus: PaymentCredit, Quantity: 2, PricePerUnit: 5},
		{Customer: "Ada", PaymentStatus: PaymentCredit, Quantity: 1, PricePerUnit: 5},
		{Customer: "", PaymentStatus: PaymentCredit, Quantity: 1, PricePerUnit: 20},
		{Customer: "Grace", PaymentStatus: PaymentPaid, Quantity: 10, PricePerUnit: 100},
	}

	got := DebtorBalances(sales)
	if len(got) != 2 {
		t.Fatalf("got %d debtors, want 2", len(got))
	}
	if got[0].Customer != UnknownCustomer || !almostEqual(got[0].Balance, 20) {
		t.Errorf("top debtor = %+v, want %s with 20", got[0], UnknownCustomer)
	}
	if got[1].Customer != "Ada" || !almostEqual(got[1].Balance, 15) {
		t.Errorf("second debtor = %+v, want Ada with 15", got[1])
	}
}
