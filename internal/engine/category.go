// internal/engine/category.go
package engine

// DefaultCategory is the catch-all category used for empty collections and
// as the lookup fallback for categories missing from the platform table.
const DefaultCategory = "Lainnya"

// ResolveDominantCategory reduces a product snapshot to the single category
// with the highest occurrence count. Ties resolve to the category that
// appears first in the input, so the result is stable for a given snapshot
// order. An empty snapshot resolves to DefaultCategory.
func ResolveDominantCategory(products []Product) string {
	if len(products) == 0 {
		return DefaultCategory
	}

	counts := make(map[string]int, len(products))
	order := make([]string, 0, len(products))
	for _, p := range products {
		if _, seen := counts[p.Category]; !seen {
			order = append(order, p.Category)
		}
		counts[p.Category]++
	}

	dominant := order[0]
	for _, category := range order[1:] {
		if counts[category] > counts[dominant] {
			dominant = category
		}
	}
	return dominant
}
