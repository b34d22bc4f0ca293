package catalog

import (
	"strings"

	"github.com/hammamikhairi/resepi/internal/domain"
)

// Filter returns the recipes whose name contains query and that have at
// least one ingredient containing ingredient. Both matches are
// case-insensitive substring checks on the raw strings. A blank query or
// ingredient disables that predicate. Input order is preserved and the
// input slice is never modified.
func Filter(recipes []domain.Recipe, query, ingredient string) []domain.Recipe {
	q := strings.ToLower(strings.TrimSpace(query))
	ing := strings.ToLower(strings.TrimSpace(ingredient))

	if q == "" && ing == "" {
		return recipes
	}

	out := make([]domain.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if q != "" && !strings.Contains(strings.ToLower(r.Name), q) {
			continue
		}
		if ing != "" && !hasIngredient(r, ing) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func hasIngredient(r domain.Recipe, needle string) bool {
	for _, raw := range r.Ingredients {
		if strings.Contains(strings.ToLower(raw), needle) {
			return true
		}
	}
	return false
}
