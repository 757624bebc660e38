package domain

// View names one of the application's screens
type View string

const (
	ViewDashboard   View = "dashboard"
	ViewIngredients View = "ingredients"
	ViewRecipes     View = "recipes"
	ViewSales       View = "sales"
	ViewNotes       View = "notes"
	ViewAssistant   View = "assistant"
)

// Views lists every view in navigation order
var Views = []View{
	ViewDashboard,
	ViewIngredients,
	ViewRecipes,
	ViewSales,
	ViewNotes,
	ViewAssistant,
}

// ParseView maps a view name to a View, defaulting to the dashboard.
// "recipe-assistant" is accepted as the historical name of the assistant.
func ParseView(name string) View {
	switch name {
	case "ingredients":
		return ViewIngredients
	case "recipes":
		return ViewRecipes
	case "sales":
		return ViewSales
	case "notes":
		return ViewNotes
	case "assistant", "recipe-assistant":
		return ViewAssistant
	default:
		return ViewDashboard
	}
}
