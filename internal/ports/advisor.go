package ports

import (
	"context"

	"bakerspal/internal/domain"
)

// Advisor defines the interface for AI-powered business and baking advice.
// Implementations return user-facing placeholder text instead of errors
// when the service is unconfigured or unreachable; the returned string is
// always displayable as-is.
type Advisor interface {
	// BusinessTips asks for actionable tips based on current business data
	BusinessTips(ctx context.Context, ingredients []domain.Ingredient, sales []domain.Sale, totalRevenue float64) string

	// RecipeSuggestion answers a free-form recipe or technique question
	RecipeSuggestion(ctx context.Context, prompt string) string

	// IsAvailable returns true if the advisor is configured with an API key
	IsAvailable() bool
}
