package application

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		value   string
		wantErr bool
		errMsg  string
	}{
		{name: "non-empty value", field: "name", value: "Flour", wantErr: false},
		{name: "empty value", field: "name", value: "", wantErr: true, errMsg: "name is required"},
		{name: "whitespace only", field: "name", value: "   ", wantErr: true, errMsg: "name is required"},
		{name: "mapped field name", field: "recipeID", value: "", wantErr: true, errMsg: "recipe ID is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.field, tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errMsg)
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidatePositive(t *testing.T) {
	if err := ValidatePositive("quantity", 1); err != nil {
		t.Errorf("unexpected error for positive value: %v", err)
	}
	if err := ValidatePositive("quantity", 0); err == nil {
		t.Error("expected error for zero value")
	}
	if err := ValidatePositive("quantity", -3); err == nil {
		t.Error("expected error for negative value")
	}
}

func TestValidateNonNegative(t *testing.T) {
	if err := ValidateNonNegative("sellingPrice", 0); err != nil {
		t.Errorf("unexpected error for zero value: %v", err)
	}
	if err := ValidateNonNegative("sellingPrice", -1); err == nil {
		t.Error("expected error for negative value")
	}
}

func TestImportErrorIs(t *testing.T) {
	err := &ImportError{Reason: `missing the "sales" collection`}
	if !errors.Is(err, ErrInvalidImport) {
		t.Error("ImportError does not match ErrInvalidImport")
	}
	if !strings.Contains(err.Error(), "sales") {
		t.Errorf("error message %q does not name the missing collection", err.Error())
	}
}
