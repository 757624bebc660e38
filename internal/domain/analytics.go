package domain

import (
	"slices"
	"sort"
	"time"
)

// UnknownCustomer groups credit sales that carry no customer name
const UnknownCustomer = "Unknown Customer"

// SeriesPoint is one grouped point in a daily chart series
type SeriesPoint struct {
	Label string
	Value float64
}

// RecipeMargin is the accumulated performance of one recipe across its sales
type RecipeMargin struct {
	RecipeID string
	Name     string
	Revenue  float64
	Cost     float64
	Margin   float64 // percent
}

// DebtorBalance is the outstanding credit total for one customer
type DebtorBalance struct {
	Customer string
	Balance  float64
}

// TotalRevenue sums quantity × price-per-unit over all sales
func TotalRevenue(sales []Sale) float64 {
	var total float64
	for _, s := range sales {
		total += s.Total()
	}
	return total
}

// TotalUnits sums the quantities of all sales
func TotalUnits(sales []Sale) int {
	var total int
	for _, s := range sales {
		total += s.Quantity
	}
	return total
}

// AverageSalePrice returns revenue per unit sold, or 0 with no sales
func AverageSalePrice(sales []Sale) float64 {
	units := TotalUnits(sales)
	if units == 0 {
		return 0
	}
	return TotalRevenue(sales) / float64(units)
}

// DailySeries groups sales by local calendar day, sums extract(sale) per
// day, and returns the most recent 7 days in ascending date order. Sales
// with an unparseable date are skipped.
func DailySeries(sales []Sale, extract func(Sale) float64) []SeriesPoint {
	type day struct {
		key   string
		value float64
	}
	totals := map[string]float64{}
	for _, s := range sales {
		t, err := time.Parse(time.RFC3339, s.Date)
		if err != nil {
			continue
		}
		totals[t.Local().Format("2006-01-02")] += extract(s)
	}

	days := make([]day, 0, len(totals))
	for k, v := range totals {
		days = append(days, day{key: k, value: v})
	}
	slices.SortFunc(days, func(a, b day) int {
		if a.key < b.key {
			return -1
		}
		if a.key > b.key {
			return 1
		}
		return 0
	})
	if len(days) > 7 {
		days = days[len(days)-7:]
	}

	points := make([]SeriesPoint, len(days))
	for i, d := range days {
		t, _ := time.Parse("2006-01-02", d.key)
		points[i] = SeriesPoint{Label: t.Format("02 Jan"), Value: d.value}
	}
	return points
}

// ProfitMarginByRecipe accumulates revenue and ingredient cost per recipe
// across all its sales and derives a margin percentage, sorted descending.
// A sale whose recipe no longer exists contributes nothing.
func ProfitMarginByRecipe(sales []Sale, recipes []Recipe, ingredients []Ingredient) []RecipeMargin {
	unitCosts := make(map[string]float64, len(recipes))
	names := make(map[string]string, len(recipes))
	for _, r := range recipes {
		unitCosts[r.ID] = r.UnitCost(ingredients)
		names[r.ID] = r.Name
	}

	stats := map[string]*RecipeMargin{}
	var order []string
	for _, s := range sales {
		name, ok := names[s.RecipeID]
		if !ok {
			continue
		}
		m := stats[s.RecipeID]
		if m == nil {
			m = &RecipeMargin{RecipeID: s.RecipeID, Name: name}
			stats[s.RecipeID] = m
			order = append(order, s.RecipeID)
		}
		m.Revenue += s.Total()
		m.Cost += float64(s.Quantity) * unitCosts[s.RecipeID]
	}

	result := make([]RecipeMargin, 0, len(order))
	for _, id := range order {
		m := *stats[id]
		if m.Revenue > 0 {
			m.Margin = (m.Revenue - m.Cost) / m.Revenue * 100
		}
		result = append(result, m)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Margin > result[j].Margin
	})
	return result
}

// DebtorBalances sums unpaid credit sales per customer, sorted by balance
// descending. Sales without a customer name group under UnknownCustomer.
func DebtorBalances(sales []Sale) []DebtorBalance {
	totals := map[string]float64{}
	var order []string
	for _, s := range sales {
		if s.PaymentStatus != PaymentCredit {
			continue
		}
		name := s.Customer
		if name == "" {
			name = UnknownCustomer
		}
		if _, seen := totals[name]; !seen {
			order = append(order, name)
		}
		totals[name] += s.Total()
	}

	balances := make([]DebtorBalance, 0, len(order))
	for _, name := range order {
		balances = append(balances, DebtorBalance{Customer: name, Balance: totals[name]})
	}
	sort.SliceStable(balances, func(i, j int) bool {
		return balances[i].Balance > balances[j].Balance
	})
	return balances
}
