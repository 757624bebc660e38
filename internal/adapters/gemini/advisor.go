// Package gemini implements ports.Advisor against the Gemini API.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"bakerspal/internal/domain"
	"bakerspal/internal/ports"
)

const notConfiguredMsg = "API Key is not configured. Please set the GEMINI_API_KEY environment variable to use this feature."

// Advisor implements ports.Advisor using Google's Gemini API. With no API
// key it stays usable and answers every request with a fixed
// "not configured" message instead of failing.
type Advisor struct {
	client *genai.Client
	model  string
}

var _ ports.Advisor = (*Advisor)(nil)

// New creates an advisor. An empty apiKey yields an unconfigured advisor,
// not an error; the advisor then only ever returns placeholder text.
func New(ctx context.Context, apiKey, model string) (*Advisor, error) {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	if apiKey == "" {
		return &Advisor{model: model}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Advisor{client: client, model: model}, nil
}

// IsAvailable returns true if the advisor is configured with an API key
func (a *Advisor) IsAvailable() bool {
	return a.client != nil
}

// BusinessTips asks for actionable tips based on current business data
func (a *Advisor) BusinessTips(ctx context.Context, ingredients []domain.Ingredient, sales []domain.Sale, totalRevenue float64) string {
	if !a.IsAvailable() {
		return notConfiguredMsg
	}

	text, err := a.generate(ctx, buildTipsPrompt(ingredients, sales, totalRevenue))
	if err != nil {
		return "Sorry, I couldn't fetch any business tips at the moment. Please check your connection or API key and try again."
	}
	return text
}

// RecipeSuggestion answers a free-form recipe or technique question
func (a *Advisor) RecipeSuggestion(ctx context.Context, prompt string) string {
	if !a.IsAvailable() {
		return notConfiguredMsg
	}

	text, err := a.generate(ctx, buildRecipePrompt(prompt))
	if err != nil {
		return "Sorry, I couldn't generate a recipe at the moment. Please check your connection or API key and try again."
	}
	return text
}

func (a *Advisor) generate(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}
	result, err := a.client.Models.GenerateContent(ctx, a.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("Gemini request failed: %w", err)
	}
	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("empty response")
	}
	return text, nil
}

func buildTipsPrompt(ingredients []domain.Ingredient, sales []domain.Sale, totalRevenue float64) string {
	var ingredientLines []string
	for _, ing := range ingredients {
		ingredientLines = append(ingredientLines,
			fmt.Sprintf("- %s: ₦%.2f per %g%s", ing.Name, ing.CurrentPrice(), ing.Quantity, ing.Unit))
	}
	ingredientsSummary := strings.Join(ingredientLines, "\n")
	if ingredientsSummary == "" {
		ingredientsSummary = "No ingredients listed yet."
	}

	var saleLines []string
	for i, sale := range sales {
		if i == 10 {
			break
		}
		saleLines = append(saleLines,
			fmt.Sprintf("- Sold %d units at ₦%.2f each", sale.Quantity, sale.PricePerUnit))
	}
	salesSummary := strings.Join(saleLines, "\n")
	if salesSummary == "" {
		salesSummary = "No sales recorded yet."
	}

	return fmt.Sprintf(`You are an expert business advisor for a small home-based food business in Nigeria.
My business is a small home-based baking business.
Please provide 3 actionable, creative, and simple tips to grow my business.

Here is my current business data:

**Business Performance:**
- My total revenue so far is ₦%.2f.
- Here are some of my recent sales:
%s

**Product Information:**
- My ingredients list:
%s

**The Ask:**
Based on the data provided, give me 3 clear, actionable tips to improve my baking business.
Since cost data is not available, focus on areas like:
1.  **Sales & Marketing:** How can I sell more, find new customers, or encourage repeat business based on my sales patterns?
2.  **Product Offering:** Any ideas for new products or bundles based on my ingredients?
3.  **Customer Engagement:** How can I build a stronger brand?

Please format your response clearly using markdown, with bullet points for each tip. Be encouraging and straight to the point.
`, totalRevenue, salesSummary, ingredientsSummary)
}

func buildRecipePrompt(userPrompt string) string {
	return fmt.Sprintf(`You are an expert baking assistant for a small home-based bakery in Nigeria.
A user is asking for help with a recipe. Here is their request: %q.

Please provide a clear, concise, and easy-to-follow response.
If it's a recipe request, format it using markdown with these headings:
- ### Recipe Title
- **Ingredients:** (use a bulleted list)
- **Instructions:** (use a numbered list)
- **Tips:** (provide 1-2 helpful tips, especially considering a small business context, like bulk buying or local ingredient substitutions)

If it's a question about a baking technique, provide a clear explanation.
Be encouraging and professional.
`, userPrompt)
}
