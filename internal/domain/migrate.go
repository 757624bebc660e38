package domain

// MigrateIngredients rewrites ingredients persisted under the obsolete flat
// "price" shape into the current price-history shape, seeding the history
// with a single entry stamped at migration time. It returns the (possibly
// unchanged) collection and whether anything was rewritten.
//
// The function is idempotent and cheap when nothing is legacy-shaped, so it
// is safe to run unconditionally on every state load. Only the history and
// legacy fields are touched; identity, name, quantity, and unit pass
// through unchanged.
func MigrateIngredients(ingredients []Ingredient) ([]Ingredient, bool) {
	changed := false
	for _, ing := range ingredients {
		if needsMigration(ing) {
			changed = true
			break
		}
	}
	if !changed {
		return ingredients, false
	}

	now := Now()
	out := make([]Ingredient, len(ingredients))
	for i, ing := range ingredients {
		if needsMigration(ing) {
			ing.PriceHistory = []PricePoint{{Date: now, Price: *ing.LegacyPrice}}
			ing.LegacyPrice = nil
		}
		out[i] = ing
	}
	return out, true
}

func needsMigration(ing Ingredient) bool {
	return len(ing.PriceHistory) == 0 && ing.LegacyPrice != nil
}
