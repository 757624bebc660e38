package sqlitestore

import (
	"testing"

	"bakerspal/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSetGetRoundTrip(t *testing.T) {
	store := openTestStore(t)

	want := []domain.Ingredient{domain.NewIngredient("Flour", 500, 1, "kg")}
	store.Set("ingredients", want)

	var got []domain.Ingredient
	if !store.Get("ingredients", &got) {
		t.Fatal("Get reported absent for a key just written")
	}
	if len(got) != 1 || got[0].Name != "Flour" || got[0].CurrentPrice() != 500 {
		t.Errorf("got %+v, want the stored ingredient back", got)
	}
}

func TestGetMissingKey(t *testing.T) {
	store := openTestStore(t)

	var v []domain.Sale
	if store.Get("sales", &v) {
		t.Error("Get reported present for a missing key")
	}
}

func TestOverwrite(t *testing.T) {
	store := openTestStore(t)

	store.Set("theme", "light")
	store.Set("theme", "dark")

	var theme string
	if !store.Get("theme", &theme) {
		t.Fatal("Get reported absent")
	}
	if theme != "dark" {
		t.Errorf("theme = %q, want dark (last write wins)", theme)
	}
}

func TestValuesSurviveReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	store.Set("notes", []domain.Note{{ID: "n1", Content: "préchauffer à 180°", Date: "2024-01-01T00:00:00Z"}})
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	var notes []domain.Note
	if !reopened.Get("notes", &notes) {
		t.Fatal("value lost across reopen")
	}
	if len(notes) != 1 || notes[0].Content != "préchauffer à 180°" {
		t.Errorf("got %+v after reopen", notes)
	}
}
