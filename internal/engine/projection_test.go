// internal/engine/projection_test.go
package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectReturnsTwelveNonNegativeMonths(t *testing.T) {
	projection := Project(ProjectionInput{
		MonthlyBudget:       500_000,
		ConversionRate:      3,
		TotalInventoryValue: 10_000_000,
		AverageMargin:       30,
	})

	require.Len(t, projection.Months, 12)
	assert.Equal(t, "Jan", projection.Months[0].Month)
	assert.Equal(t, "Des", projection.Months[11].Month)
	for _, m := range projection.Months {
		assert.GreaterOrEqual(t, m.Revenue, 0.0)
		assert.GreaterOrEqual(t, m.AdSpend, 0.0)
		assert.GreaterOrEqual(t, m.Profit, 0.0)
		assert.GreaterOrEqual(t, m.ROAS, 0.0)
	}
}

func TestProjectConcreteScenario(t *testing.T) {
	projection := Project(ProjectionInput{
		MonthlyBudget:       500_000,
		ConversionRate:      3,
		TotalInventoryValue: 10_000_000,
		AverageMargin:       30,
	})

	first := projection.Months[0]
	assert.Equal(t, 3_000_000.0, first.Revenue)
	assert.Equal(t, 500_000.0, first.AdSpend)
	assert.Equal(t, 400_000.0, first.Profit)
	assert.InDelta(t, 6.0, first.ROAS, 1e-9)
}

func TestProjectProfitMonotonicInMargin(t *testing.T) {
	base := ProjectionInput{
		MonthlyBudget:       1_000_000,
		ConversionRate:      5,
		TotalInventoryValue: 25_000_000,
	}

	var previous Projection
	for i, margin := range []float64{0, 10, 25, 40, 65, 90} {
		base.AverageMargin = margin
		current := Project(base)
		if i > 0 {
			for m := range current.Months {
				assert.GreaterOrEqual(t, current.Months[m].Profit, previous.Months[m].Profit,
					"month %d margin %.0f", m, margin)
			}
		}
		previous = current
	}
}

func TestProjectAggregatesMatchMonths(t *testing.T) {
	projection := Project(ProjectionInput{
		MonthlyBudget:       750_000,
		ConversionRate:      4,
		TotalInventoryValue: 12_000_000,
		AverageMargin:       35,
	})

	var revenue, profit, roas float64
	for _, m := range projection.Months {
		revenue += m.Revenue
		profit += m.Profit
		roas += m.ROAS
	}
	assert.InDelta(t, revenue, projection.TotalRevenue, 1e-6)
	assert.InDelta(t, profit, projection.TotalProfit, 1e-6)
	assert.InDelta(t, roas/12, projection.AverageROAS, 1e-9)
}

func TestProjectEmptyInventoryIsFlatZeroRevenue(t *testing.T) {
	projection := Project(ProjectionInput{
		MonthlyBudget:  500_000,
		ConversionRate: 3,
	})

	for _, m := range projection.Months {
		assert.Equal(t, 0.0, m.Revenue)
		assert.Equal(t, 0.0, m.Profit)
		assert.Equal(t, 0.0, m.ROAS)
		assert.Greater(t, m.AdSpend, 0.0)
	}
}

func TestInventoryAggregates(t *testing.T) {
	products := []Product{
		{CostPrice: 7000, SellPrice: 10000, Stock: 10},
		{CostPrice: 5000, SellPrice: 20000, Stock: 5},
		{CostPrice: 3000, SellPrice: 0, Stock: 7},
	}

	assert.Equal(t, 200_000.0, TotalInventoryValue(products))
	// Margins: 30, 75, 0 (undefined treated as 0) -> mean 35.
	assert.InDelta(t, 35.0, AverageMargin(products), 1e-9)
	assert.Equal(t, 0.0, AverageMargin(nil))
}
