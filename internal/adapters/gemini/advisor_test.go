package gemini

import (
	"context"
	"strings"
	"testing"

	"bakerspal/internal/domain"
)

func TestUnconfiguredAdvisor(t *testing.T) {
	advisor, err := New(context.Background(), "", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if advisor.IsAvailable() {
		t.Error("advisor with no key reports available")
	}

	tips := advisor.BusinessTips(context.Background(), nil, nil, 0)
	if !strings.Contains(tips, "not configured") {
		t.Errorf("BusinessTips = %q, want the not-configured message", tips)
	}
	recipe := advisor.RecipeSuggestion(context.Background(), "croissants")
	if !strings.Contains(recipe, "not configured") {
		t.Errorf("RecipeSuggestion = %q, want the not-configured message", recipe)
	}
}

func TestBuildTipsPrompt(t *testing.T) {
	ingredients := []domain.Ingredient{
		{Name: "Flour", Quantity: 1, Unit: "kg", PriceHistory: []domain.PricePoint{{Price: 500}}},
	}
	sales := []domain.Sale{{Quantity: 3, PricePerUnit: 1200}}

	prompt := buildTipsPrompt(ingredients, sales, 3600)
	for _, want := range []string{
		"₦3600.00",
		"- Flour: ₦500.00 per 1kg",
		"- Sold 3 units at ₦1200.00 each",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildTipsPromptEmptyData(t *testing.T) {
	prompt := buildTipsPrompt(nil, nil, 0)
	if !strings.Contains(prompt, "No sales recorded yet.") {
		t.Error("prompt missing empty-sales placeholder")
	}
	if !strings.Contains(prompt, "No ingredients listed yet.") {
		t.Error("prompt missing empty-ingredients placeholder")
	}
}

func TestBuildTipsPromptCapsSales(t *testing.T) {
	var sales []domain.Sale
	for range 25 {
		sales = append(sales, domain.Sale{Quantity: 1, PricePerUnit: 100})
	}
	prompt := buildTipsPrompt(nil, sales, 2500)
	if got := strings.Count(prompt, "- Sold "); got != 10 {
		t.Errorf("prompt lists %d sales, want at most 10", got)
	}
}
