package commands

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"bakerspal/internal/application"
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

func TestAddIngredientCommand(t *testing.T) {
	tracker := newTracker()

	result, err := NewAddIngredientCommand(tracker, "Flour", 45000, 50, "kg").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Ingredient.CurrentPrice() != 45000 {
		t.Errorf("CurrentPrice = %v, want 45000", result.Ingredient.CurrentPrice())
	}
	if len(tracker.Ingredients()) != 1 {
		t.Errorf("ingredient count = %d, want 1", len(tracker.Ingredients()))
	}
}

func TestAddIngredientCommandValidation(t *testing.T) {
	tracker := newTracker()

	tests := []struct {
		name string
		cmd  *AddIngredientCommand
	}{
		{name: "empty name", cmd: NewAddIngredientCommand(tracker, "", 100, 1, "kg")},
		{name: "empty unit", cmd: NewAddIngredientCommand(tracker, "Flour", 100, 1, "")},
		{name: "negative price", cmd: NewAddIngredientCommand(tracker, "Flour", -1, 1, "kg")},
		{name: "zero quantity", cmd: NewAddIngredientCommand(tracker, "Flour", 100, 0, "kg")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.cmd.Execute(context.Background()); err == nil {
				t.Error("expected a validation error")
			}
			if len(tracker.Ingredients()) != 0 {
				t.Error("rejected command mutated state")
			}
		})
	}
}

func TestUpdatePriceAppendsToHistory(t *testing.T) {
	tracker := newTracker()
	added, _ := NewAddIngredientCommand(tracker, "Butter", 2500, 500, "g").Execute(context.Background())

	result, err := NewUpdatePriceCommand(tracker, added.Ingredient.ID, 2800).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(result.Ingredient.PriceHistory) != 2 {
		t.Fatalf("history length = %d, want 2", len(result.Ingredient.PriceHistory))
	}
	if result.Ingredient.PriceHistory[0].Price != 2500 {
		t.Error("earlier history entry was rewritten")
	}
	if result.Ingredient.CurrentPrice() != 2800 {
		t.Errorf("CurrentPrice = %v, want 2800", result.Ingredient.CurrentPrice())
	}
}

func TestUpdatePriceUnknownIngredient(t *testing.T) {
	tracker := newTracker()

	_, err := NewUpdatePriceCommand(tracker, "missing", 100).Execute(context.Background())
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteIngredientKeepsRecipeReference(t *testing.T) {
	tracker := newTracker()
	added, _ := NewAddIngredientCommand(tracker, "Yeast", 500, 10, "g").Execute(context.Background())
	saved, _ := NewSaveRecipeCommand(tracker, "", "Bread", 1200, []domain.RecipeIngredient{
		{IngredientID: added.Ingredient.ID, Quantity: 5},
	}).Execute(context.Background())

	if _, err := NewDeleteIngredientCommand(tracker, added.Ingredient.ID).Execute(context.Background()); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	recipes := tracker.Recipes()
	if len(recipes) != 1 || len(recipes[0].Ingredients) != 1 {
		t.Fatalf("recipe lost its ingredient reference: %+v", recipes)
	}
	if cost := recipes[0].UnitCost(tracker.Ingredients()); cost != 0 {
		t.Errorf("unit cost with dangling reference = %v, want 0", cost)
	}
	_ = saved
}

func TestSaveRecipeUpdateInPlace(t *testing.T) {
	tracker := newTracker()
	saved, _ := NewSaveRecipeCommand(tracker, "", "Cake", 5000, nil).Execute(context.Background())

	result, err := NewSaveRecipeCommand(tracker, saved.Recipe.ID, "Chocolate Cake", 6000, nil).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Created {
		t.Error("update reported as create")
	}
	if result.Recipe.ID != saved.Recipe.ID {
		t.Error("update changed the recipe identity")
	}

	recipes := tracker.Recipes()
	if len(recipes) != 1 || recipes[0].Name != "Chocolate Cake" || recipes[0].SellingPrice != 6000 {
		t.Errorf("recipes = %+v, want the updated recipe", recipes)
	}
}

func TestSaveRecipeUnknownID(t *testing.T) {
	tracker := newTracker()

	_, err := NewSaveRecipeCommand(tracker, "missing", "Cake", 5000, nil).Execute(context.Background())
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestRecordSaleDefaultsToSellingPrice(t *testing.T) {
	tracker := newTracker()
	saved, _ := NewSaveRecipeCommand(tracker, "", "Meat Pie", 800, nil).Execute(context.Background())

	result, err := NewRecordSaleCommand(tracker, saved.Recipe.ID, 3, 0, "", domain.PaymentPaid).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Sale.PricePerUnit != 800 {
		t.Errorf("PricePerUnit = %v, want the recipe's selling price", result.Sale.PricePerUnit)
	}
	if result.Sale.Total() != 2400 {
		t.Errorf("Total = %v, want 2400", result.Sale.Total())
	}
}

func TestRecordSalePriceFrozenAtSaleTime(t *testing.T) {
	tracker := newTracker()
	saved, _ := NewSaveRecipeCommand(tracker, "", "Meat Pie", 800, nil).Execute(context.Background())
	recorded, _ := NewRecordSaleCommand(tracker, saved.Recipe.ID, 1, 0, "", domain.PaymentPaid).Execute(context.Background())

	if _, err := NewSaveRecipeCommand(tracker, saved.Recipe.ID, "Meat Pie", 1000, nil).Execute(context.Background()); err != nil {
		t.Fatalf("update recipe: %v", err)
	}

	sales := tracker.Sales()
	if len(sales) != 1 || sales[0].PricePerUnit != 800 {
		t.Errorf("sale price changed after recipe edit: %+v", sales)
	}
	_ = recorded
}

func TestRecordSaleCreditRequiresCustomer(t *testing.T) {
	tracker := newTracker()
	saved, _ := NewSaveRecipeCommand(tracker, "", "Bread", 1000, nil).Execute(context.Background())

	_, err := NewRecordSaleCommand(tracker, saved.Recipe.ID, 1, 0, "", domain.PaymentCredit).Execute(context.Background())
	var verr *application.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want a ValidationError", err)
	}
	if verr.Field != "customer" {
		t.Errorf("Field = %q, want customer", verr.Field)
	}

	if _, err := NewRecordSaleCommand(tracker, saved.Recipe.ID, 1, 0, "Ada", domain.PaymentCredit).Execute(context.Background()); err != nil {
		t.Errorf("credit sale with customer rejected: %v", err)
	}
}

func TestRecordSaleUnknownRecipe(t *testing.T) {
	tracker := newTracker()

	_, err := NewRecordSaleCommand(tracker, "missing", 1, 500, "", domain.PaymentPaid).Execute(context.Background())
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestMarkPaidCommand(t *testing.T) {
	tracker := newTracker()
	saved, _ := NewSaveRecipeCommand(tracker, "", "Bread", 1000, nil).Execute(context.Background())
	recorded, _ := NewRecordSaleCommand(tracker, saved.Recipe.ID, 2, 0, "Ada", domain.PaymentCredit).Execute(context.Background())

	result, err := NewMarkPaidCommand(tracker, recorded.Sale.ID).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Sale.PaymentStatus != domain.PaymentPaid {
		t.Errorf("PaymentStatus = %s, want paid", result.Sale.PaymentStatus)
	}
	if debtors := domain.DebtorBalances(tracker.Sales()); len(debtors) != 0 {
		t.Errorf("debtors after settling = %+v, want none", debtors)
	}

	// Settling again is a no-op, not an error.
	again, err := NewMarkPaidCommand(tracker, recorded.Sale.ID).Execute(context.Background())
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !strings.Contains(again.Message, "already") {
		t.Errorf("Message = %q, want an already-paid notice", again.Message)
	}
}

func TestDeleteSaleCommand(t *testing.T) {
	tracker := newTracker()
	saved, _ := NewSaveRecipeCommand(tracker, "", "Bread", 1000, nil).Execute(context.Background())
	recorded, _ := NewRecordSaleCommand(tracker, saved.Recipe.ID, 1, 0, "", domain.PaymentPaid).Execute(context.Background())

	if _, err := NewDeleteSaleCommand(tracker, recorded.Sale.ID).Execute(context.Background()); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(tracker.Sales()) != 0 {
		t.Errorf("sales = %+v, want empty", tracker.Sales())
	}

	_, err := NewDeleteSaleCommand(tracker, recorded.Sale.ID).Execute(context.Background())
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("deleting twice: err = %v, want ErrNotFound", err)
	}
}

func TestNoteCommands(t *testing.T) {
	tracker := newTracker()

	first, err := NewAddNoteCommand(tracker, "buy more flour").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	second, _ := NewAddNoteCommand(tracker, "call the supplier").Execute(context.Background())

	notes := tracker.Notes()
	if len(notes) != 2 || notes[0].ID != second.Note.ID {
		t.Errorf("notes = %+v, want newest first", notes)
	}

	if _, err := NewDeleteNoteCommand(tracker, first.Note.ID).Execute(context.Background()); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(tracker.Notes()) != 1 {
		t.Errorf("note count = %d, want 1", len(tracker.Notes()))
	}

	if _, err := NewAddNoteCommand(tracker, "   ").Execute(context.Background()); err == nil {
		t.Error("blank note accepted")
	}
}

func TestExportOmitsNotes(t *testing.T) {
	tracker := newTracker()
	NewAddIngredientCommand(tracker, "Flour", 500, 1, "kg").Execute(context.Background())
	NewAddNoteCommand(tracker, "private").Execute(context.Background())

	result, err := NewExportCommand(tracker).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(result.JSON, &doc); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	for _, key := range []string{"ingredients", "recipes", "sales"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("export missing %q", key)
		}
	}
	if _, ok := doc["notes"]; ok {
		t.Error("export leaked notes")
	}
}

func TestImportRoundTripKeepsNotes(t *testing.T) {
	source := newTracker()
	NewAddIngredientCommand(source, "Flour", 500, 1, "kg").Execute(context.Background())
	saved, _ := NewSaveRecipeCommand(source, "", "Bread", 1000, nil).Execute(context.Background())
	NewRecordSaleCommand(source, saved.Recipe.ID, 1, 0, "", domain.PaymentPaid).Execute(context.Background())
	exported, _ := NewExportCommand(source).Execute(context.Background())

	target := newTracker()
	NewAddNoteCommand(target, "kept across import").Execute(context.Background())

	if _, err := NewImportCommand(target, exported.JSON).Execute(context.Background()); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(target.Ingredients()) != 1 || len(target.Recipes()) != 1 || len(target.Sales()) != 1 {
		t.Errorf("imported state = %+v", target.State())
	}
	if len(target.Notes()) != 1 {
		t.Errorf("notes = %+v, want the pre-import note kept", target.Notes())
	}
}

func TestImportRejectsIncompleteDocument(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not JSON", raw: "nope"},
		{name: "array", raw: `[]`},
		{name: "missing sales", raw: `{"ingredients":[],"recipes":[]}`},
		{name: "missing ingredients", raw: `{"recipes":[],"sales":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := newTracker()
			NewAddNoteCommand(tracker, "untouched").Execute(context.Background())

			_, err := NewImportCommand(tracker, []byte(tt.raw)).Execute(context.Background())
			if !errors.Is(err, application.ErrInvalidImport) {
				t.Errorf("err = %v, want ErrInvalidImport", err)
			}
			if len(tracker.Notes()) != 1 {
				t.Error("rejected import mutated state")
			}
		})
	}
}

func TestImportMigratesLegacyPrices(t *testing.T) {
	tracker := newTracker()
	raw := `{"ingredients":[{"id":"1","name":"Flour","price":500,"quantity":1,"unit":"kg"}],"recipes":[],"sales":[]}`

	if _, err := NewImportCommand(tracker, []byte(raw)).Execute(context.Background()); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	got := tracker.Ingredients()
	if len(got) != 1 || got[0].CurrentPrice() != 500 || got[0].LegacyPrice != nil {
		t.Errorf("imported ingredient not migrated: %+v", got)
	}
}
