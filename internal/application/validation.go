package application

import (
	"fmt"
	"strings"
)

// ValidateRequired checks if a string field is non-empty (after trimming
// whitespace). Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// ValidatePositive checks that a numeric field is greater than zero
func ValidatePositive(fieldName string, value float64) error {
	if value <= 0 {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must be greater than zero", formatFieldName(fieldName)),
		}
	}
	return nil
}

// ValidateNonNegative checks that a numeric field is zero or greater
func ValidateNonNegative(fieldName string, value float64) error {
	if value < 0 {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must not be negative", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "recipeID" -> "recipe ID")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"ingredientID": "ingredient ID",
		"recipeID":     "recipe ID",
		"saleID":       "sale ID",
		"noteID":       "note ID",
		"pricePerUnit": "price per unit",
		"sellingPrice": "selling price",
	}
	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}
