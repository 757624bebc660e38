package codec

import (
	"encoding/base64"
	"reflect"
	"strings"
	"testing"

	"bakerspal/internal/domain"
)

func sampleState() domain.AppState {
	return domain.AppState{
		Ingredients: []domain.Ingredient{
			{
				ID:           "ing-1",
				Name:         "Flour — “premium”",
				PriceHistory: []domain.PricePoint{{Date: "2024-01-01T00:00:00Z", Price: 500}},
				Quantity:     1,
				Unit:         "kg",
			},
		},
		Recipes: []domain.Recipe{
			{
				ID:           "rec-1",
				Name:         "Chin chin",
				Ingredients:  []domain.RecipeIngredient{{IngredientID: "ing-1", Quantity: 0.5}},
				SellingPrice: 1200,
			},
		},
		Sales: []domain.Sale{
			{
				ID:            "sale-1",
				Date:          "2024-02-01T09:30:00Z",
				RecipeID:      "rec-1",
				Quantity:      3,
				PricePerUnit:  1200,
				Customer:      "Ngozi Adaeze",
				PaymentStatus: domain.PaymentCredit,
			},
		},
		Notes: []domain.Note{
			{ID: "note-1", Content: "Käufer möchte Brötchen — 特別な注文 🍞", Date: "2024-02-02T00:00:00Z"},
		},
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		state domain.AppState
	}{
		{name: "populated state with unicode fields", state: sampleState()},
		{name: "empty collections", state: domain.EmptyState()},
		{
			name: "embedded quotes and newlines",
			state: domain.AppState{
				Ingredients: []domain.Ingredient{},
				Recipes:     []domain.Recipe{},
				Sales:       []domain.Sale{},
				Notes: []domain.Note{
					{ID: "n", Content: "she said \"sold out\"\nline two", Date: "2024-01-01T00:00:00Z"},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := Encode(tt.state)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			got, err := Decode(token)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if !reflect.DeepEqual(got, tt.state) {
				t.Errorf("round trip changed the state:\n got %+v\nwant %+v", got, tt.state)
			}
		})
	}
}

func TestTokenIsURLSafe(t *testing.T) {
	token, err := Encode(sampleState())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if strings.ContainsAny(token, "+/= \n") {
		t.Errorf("token contains characters unsafe for a URL fragment: %q", token)
	}
}

func TestDecodeRejects(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "not base64", token: "%%%not-base64%%%"},
		{name: "base64 of non-JSON", token: "bm90LWpzb24"},
		{name: "JSON array instead of object", token: "W10"},
		{name: "missing sales key", token: mustEncodeRaw(t, `{"ingredients":[],"recipes":[],"notes":[]}`)},
		{name: "missing notes key", token: mustEncodeRaw(t, `{"ingredients":[],"recipes":[],"sales":[]}`)},
		{name: "empty object", token: mustEncodeRaw(t, `{}`)},
		{name: "empty token", token: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.token)
			if err == nil {
				t.Errorf("Decode(%q) accepted an invalid token", tt.token)
			}
		})
	}
}

func TestDecodeAcceptsPaddedToken(t *testing.T) {
	// Tokens from the browser-era encoder carry padding.
	token := mustEncodeRawPadded(t, `{"ingredients":[],"recipes":[],"sales":[],"notes":[]}`)
	got, err := Decode(token)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !reflect.DeepEqual(got, domain.EmptyState()) {
		t.Errorf("got %+v, want empty state", got)
	}
}

func mustEncodeRaw(t *testing.T, raw string) string {
	t.Helper()
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func mustEncodeRawPadded(t *testing.T, raw string) string {
	t.Helper()
	return base64.URLEncoding.EncodeToString([]byte(raw))
}
