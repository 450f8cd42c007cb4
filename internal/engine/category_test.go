// internal/engine/category_test.go
package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func productsWithCategories(categories ...string) []Product {
	products := make([]Product, len(categories))
	for i, c := range categories {
		products[i] = Product{ID: c + "-id", Name: c + " product", Category: c}
	}
	return products
}

func TestResolveDominantCategoryPicksMaxCount(t *testing.T) {
	products := productsWithCategories("Fashion", "Kuliner", "Fashion", "Jasa")
	assert.Equal(t, "Fashion", ResolveDominantCategory(products))
}

func TestResolveDominantCategoryTieBreaksOnFirstSeen(t *testing.T) {
	// Both categories count 1; the first seen wins, not the alphabetical one.
	products := productsWithCategories("Kuliner", "Elektronik")
	assert.Equal(t, "Kuliner", ResolveDominantCategory(products))

	products = productsWithCategories("Elektronik", "Kuliner", "Kuliner", "Elektronik")
	assert.Equal(t, "Elektronik", ResolveDominantCategory(products))
}

func TestResolveDominantCategoryEmptyInput(t *testing.T) {
	assert.Equal(t, DefaultCategory, ResolveDominantCategory(nil))
	assert.Equal(t, DefaultCategory, ResolveDominantCategory([]Product{}))
}

func TestResolveDominantCategoryResultIsAmongInputs(t *testing.T) {
	products := productsWithCategories("Kesehatan", "Kerajinan", "Kesehatan", "Jasa", "Jasa", "Kesehatan")
	got := ResolveDominantCategory(products)

	counts := map[string]int{}
	for _, p := range products {
		counts[p.Category]++
	}
	assert.Contains(t, counts, got)
	for _, n := range counts {
		assert.LessOrEqual(t, n, counts[got])
	}
}

func TestMarginUndefinedAtZeroSellPrice(t *testing.T) {
	p := Product{CostPrice: 5000, SellPrice: 0}
	assert.Equal(t, 0.0, p.Margin())

	p = Product{CostPrice: 7000, SellPrice: 10000}
	assert.InDelta(t, 30.0, p.Margin(), 1e-9)
}
