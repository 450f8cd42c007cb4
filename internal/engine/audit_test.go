// internal/engine/audit_test.go
package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func auditFixture() []Product {
	// 2 of 5 products under 20% margin, 1 disjoint product under 10 stock,
	// all with images.
	return []Product{
		{ID: "p1", Name: "Keripik Pisang", Category: "Kuliner", CostPrice: 9000, SellPrice: 10000, Stock: 50, ImageURL: "https://img/p1.jpg"},
		{ID: "p2", Name: "Sambal Bawang", Category: "Kuliner", CostPrice: 17000, SellPrice: 20000, Stock: 40, ImageURL: "https://img/p2.jpg"},
		{ID: "p3", Name: "Kopi Robusta", Category: "Kuliner", CostPrice: 10000, SellPrice: 25000, Stock: 5, ImageURL: "https://img/p3.jpg"},
		{ID: "p4", Name: "Teh Melati", Category: "Kuliner", CostPrice: 5000, SellPrice: 15000, Stock: 30, ImageURL: "https://img/p4.jpg"},
		{ID: "p5", Name: "Madu Hutan", Category: "Kuliner", CostPrice: 40000, SellPrice: 80000, Stock: 25, ImageURL: "https://img/p5.jpg"},
	}
}

func TestRunAuditScenario(t *testing.T) {
	findings := RunAudit(auditFixture())
	require.Len(t, findings, 4)

	assert.Equal(t, 1, findings[0].ID)
	assert.Equal(t, PriorityHigh, findings[0].Priority)
	assert.Contains(t, findings[0].Description, "2 produk")
	assert.Contains(t, findings[0].Action, "Keripik Pisang")
	assert.Contains(t, findings[0].Action, "Sambal Bawang")
	assert.NotContains(t, findings[0].Action, "...")

	assert.Equal(t, 2, findings[1].ID)
	assert.Equal(t, PriorityHigh, findings[1].Priority)
	assert.Contains(t, findings[1].Action, "Kopi Robusta (5)")

	// No missing-image finding; the two constant findings close the list.
	assert.Equal(t, 4, findings[2].ID)
	assert.Equal(t, PriorityMedium, findings[2].Priority)
	assert.Equal(t, 5, findings[3].ID)
	assert.Equal(t, PriorityLow, findings[3].Priority)

	for _, f := range findings {
		assert.Equal(t, FindingPending, f.Status)
	}
}

func TestRunAuditEmptyCollectionYieldsOnlyConstantFindings(t *testing.T) {
	findings := RunAudit(nil)
	require.Len(t, findings, 2)
	assert.Equal(t, "Audit Channel Marketing", findings[0].Title)
	assert.Equal(t, "Kumpulkan Feedback Pelanggan", findings[1].Title)
}

func TestRunAuditCapsExamplesWithEllipsis(t *testing.T) {
	products := make([]Product, 5)
	for i := range products {
		products[i] = Product{
			ID:        string(rune('a' + i)),
			Name:      "Produk " + string(rune('A'+i)),
			CostPrice: 95,
			SellPrice: 100,
			Stock:     20,
			ImageURL:  "https://img/x.jpg",
		}
	}

	findings := RunAudit(products)
	require.NotEmpty(t, findings)
	assert.Equal(t, 1, findings[0].ID)
	assert.True(t, strings.HasSuffix(findings[0].Action, "..."))
	// Only the first three names appear.
	assert.Contains(t, findings[0].Action, "Produk C")
	assert.NotContains(t, findings[0].Action, "Produk D")
}

func TestRunAuditCountsZeroSellPriceAsLowMargin(t *testing.T) {
	products := []Product{
		{ID: "p1", Name: "Gratisan", CostPrice: 1000, SellPrice: 0, Stock: 100, ImageURL: "https://img/p.jpg"},
	}
	findings := RunAudit(products)
	require.NotEmpty(t, findings)
	assert.Equal(t, 1, findings[0].ID)
}

func TestRunAuditNeverExceedsFiveFindings(t *testing.T) {
	// One product trips every threshold rule at once.
	products := []Product{
		{ID: "p1", Name: "Stiker Murah", CostPrice: 900, SellPrice: 1000, Stock: 2},
	}
	findings := RunAudit(products)
	assert.Len(t, findings, 5)
}

func TestFindingToggleStatusIsIdempotentUnderDoubleToggle(t *testing.T) {
	findings := RunAudit(auditFixture())
	require.NotEmpty(t, findings)

	f := &findings[0]
	f.ToggleStatus()
	assert.Equal(t, FindingCompleted, f.Status)
	f.ToggleStatus()
	assert.Equal(t, FindingPending, f.Status)

	// Toggling one finding leaves the others untouched.
	f.ToggleStatus()
	for _, other := range findings[1:] {
		assert.Equal(t, FindingPending, other.Status)
	}
}
