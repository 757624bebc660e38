package views

import (
	"encoding/json"
	"strings"
	"testing"

	"bakerspal/internal/domain"
	"bakerspal/internal/state"
)

type memStore struct {
	values map[string]string
}

func (m *memStore) Get(key string, into any) bool {
	raw, ok := m.values[key]
	if !ok {
		return false
	}
	return json.Unmarshal([]byte(raw), into) == nil
}

func (m *memStore) Set(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	m.values[key] = string(raw)
}

func (m *memStore) Close() error { return nil }

func newTracker() *state.Tracker {
	return state.Load(&memStore{values: map[string]string{}})
}

func TestParseRefsResolvesByName(t *testing.T) {
	tracker := newTracker()
	flour := domain.NewIngredient("Flour", 45000, 50, "kg")
	sugar := domain.NewIngredient("Sugar", 12000, 10, "kg")
	tracker.ReplaceIngredients([]domain.Ingredient{flour, sugar})

	m := NewRecipesModel(tracker)
	refs, err := m.parseRefs("Flour:0.5, sugar:0.2")
	if err != nil {
		t.Fatalf("parseRefs: %v", err)
	}
	if len(refs) != 2 {
		t.Fatalf("refs = %+v, want 2 entries", refs)
	}
	if refs[0].IngredientID != flour.ID || refs[0].Quantity != 0.5 {
		t.Errorf("refs[0] = %+v", refs[0])
	}
	if refs[1].IngredientID != sugar.ID || refs[1].Quantity != 0.2 {
		t.Errorf("refs[1] = %+v", refs[1])
	}
}

func TestParseRefsErrors(t *testing.T) {
	tracker := newTracker()
	tracker.ReplaceIngredients([]domain.Ingredient{domain.NewIngredient("Flour", 45000, 50, "kg")})
	m := NewRecipesModel(tracker)

	tests := []struct {
		name string
		raw  string
	}{
		{name: "unknown ingredient", raw: "Yeast:1"},
		{name: "missing quantity", raw: "Flour"},
		{name: "bad quantity", raw: "Flour:lots"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := m.parseRefs(tt.raw); err == nil {
				t.Errorf("parseRefs(%q) accepted bad input", tt.raw)
			}
		})
	}

	refs, err := m.parseRefs("")
	if err != nil || refs != nil {
		t.Errorf("blank input: refs=%v err=%v, want nil/nil", refs, err)
	}
}

func TestFormatRefsRoundTrip(t *testing.T) {
	tracker := newTracker()
	flour := domain.NewIngredient("Flour", 45000, 50, "kg")
	tracker.ReplaceIngredients([]domain.Ingredient{flour})
	m := NewRecipesModel(tracker)

	refs := []domain.RecipeIngredient{{IngredientID: flour.ID, Quantity: 0.5}}
	formatted := m.formatRefs(refs)

	back, err := m.parseRefs(formatted)
	if err != nil {
		t.Fatalf("parseRefs(%q): %v", formatted, err)
	}
	if len(back) != 1 || back[0] != refs[0] {
		t.Errorf("round trip: %+v -> %q -> %+v", refs, formatted, back)
	}
}

func TestFormatRefsSkipsDanglingReference(t *testing.T) {
	m := NewRecipesModel(newTracker())
	got := m.formatRefs([]domain.RecipeIngredient{{IngredientID: "gone", Quantity: 1}})
	if got != "" {
		t.Errorf("formatRefs = %q, want empty for a dangling reference", got)
	}
}

func TestResolveRecipe(t *testing.T) {
	tracker := newTracker()
	bread := domain.NewRecipe("Banana Bread", 1500, nil)
	tracker.ReplaceRecipes([]domain.Recipe{bread})
	m := NewSalesModel(tracker)

	if id, err := m.resolveRecipe("banana bread"); err != nil || id != bread.ID {
		t.Errorf("by name: id=%q err=%v", id, err)
	}
	if id, err := m.resolveRecipe(bread.ID); err != nil || id != bread.ID {
		t.Errorf("by ID: id=%q err=%v", id, err)
	}
	if _, err := m.resolveRecipe("croissant"); err == nil {
		t.Error("unknown recipe resolved")
	}
}

func TestBarChartScalesToWidest(t *testing.T) {
	chart := BarChart([]string{"01 Jan", "02 Jan"}, []float64{100, 50}, 10)
	lines := strings.Split(strings.TrimRight(chart, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("chart has %d lines, want 2", len(lines))
	}
	first := strings.Count(lines[0], "█")
	second := strings.Count(lines[1], "█")
	if first != 10 {
		t.Errorf("peak bar width = %d, want 10", first)
	}
	if second != 5 {
		t.Errorf("half bar width = %d, want 5", second)
	}
}

func TestBarChartEmptyInputs(t *testing.T) {
	if got := BarChart(nil, nil, 20); got != "" {
		t.Errorf("BarChart(nil) = %q, want empty", got)
	}
	if got := BarChart([]string{"a"}, []float64{0}, 20); got != "" {
		t.Errorf("BarChart of zeros = %q, want empty", got)
	}
}

func TestWrapBreaksAtWordBoundaries(t *testing.T) {
	got := wrap("one two three four", 9)
	for _, line := range strings.Split(got, "\n") {
		if len(line) > 9 {
			t.Errorf("line %q exceeds width", line)
		}
	}
	if strings.ReplaceAll(got, "\n", " ") != "one two three four" {
		t.Errorf("wrap lost words: %q", got)
	}
}
