// internal/engine/projection.go
package engine

import "math"

// monthLabels are the Indonesian month abbreviations used by the dashboard.
var monthLabels = [12]string{"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Agu", "Sep", "Okt", "Nov", "Des"}

// ProjectionInput are the four scalars the growth model is a pure function
// of. MonthlyBudget and ConversionRate come from the dashboard sliders;
// the other two are aggregates over the full product collection.
type ProjectionInput struct {
	MonthlyBudget       float64 `json:"monthly_budget"`
	ConversionRate      float64 `json:"conversion_rate"`
	TotalInventoryValue float64 `json:"total_inventory_value"`
	AverageMargin       float64 `json:"average_margin"`
}

// MonthProjection is one projected month.
type MonthProjection struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	AdSpend float64 `json:"ad_spend"`
	Profit  float64 `json:"profit"`
	ROAS    float64 `json:"roas"`
}

// Projection is the 12-month compounding projection plus its aggregates.
type Projection struct {
	Months       []MonthProjection `json:"months"`
	TotalRevenue float64           `json:"total_revenue"`
	TotalProfit  float64           `json:"total_profit"`
	AverageROAS  float64           `json:"average_roas"`
}

// Project computes the closed-form 12-month growth projection. Base revenue
// assumes 30% of inventory value sold per month; the marketing budget and
// conversion rate feed a compounding growth factor. All monthly values are
// non-negative; profit is floored at zero after subtracting ad spend.
func Project(in ProjectionInput) Projection {
	baseRevenue := in.TotalInventoryValue * 0.3
	budgetMultiplier := 1 + (in.MonthlyBudget/1_000_000)*0.15
	conversionMultiplier := 1 + (in.ConversionRate/100)*0.5

	months := make([]MonthProjection, 0, len(monthLabels))
	var totalRevenue, totalProfit, roasSum float64

	for i, label := range monthLabels {
		growthFactor := math.Pow(budgetMultiplier*conversionMultiplier, float64(i)*0.3)
		revenue := math.Round(baseRevenue * growthFactor * (1 + float64(i)*0.08))
		adSpend := math.Round(in.MonthlyBudget * (1 + float64(i)*0.1))
		profit := math.Max(0, math.Round(revenue*(in.AverageMargin/100)-adSpend))

		var roas float64
		if adSpend > 0 {
			roas = revenue / adSpend
		}

		months = append(months, MonthProjection{
			Month:   label,
			Revenue: revenue,
			AdSpend: adSpend,
			Profit:  profit,
			ROAS:    roas,
		})

		totalRevenue += revenue
		totalProfit += profit
		roasSum += roas
	}

	return Projection{
		Months:       months,
		TotalRevenue: totalRevenue,
		TotalProfit:  totalProfit,
		AverageROAS:  roasSum / float64(len(monthLabels)),
	}
}
