// internal/engine/product.go
package engine

// Product is an immutable snapshot of one inventory item, copied out of the
// persistence layer at analysis time so later edits to the live collection
// cannot change what was analyzed.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	CostPrice   float64 `json:"cost_price"`
	SellPrice   float64 `json:"sell_price"`
	Stock       int     `json:"stock"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
}

// BrandProfile carries the brand fields the engine actually reads. All
// fields may be empty; TargetMarket and BusinessName fall back to defaults.
type BrandProfile struct {
	BusinessName   string `json:"business_name"`
	BusinessType   string `json:"business_type"`
	TargetMarket   string `json:"target_market"`
	Description    string `json:"description"`
	Location       string `json:"location"`
	TargetAudience string `json:"target_audience"`
	UniqueValue    string `json:"unique_value"`
}

// Target market values as entered through the brand profile form.
const (
	TargetMarketLocal         = "lokal"
	TargetMarketNational      = "nasional"
	TargetMarketInternational = "internasional"
)

// Margin returns the margin percentage (sellPrice - costPrice) / sellPrice * 100.
// A sell price of zero makes the margin undefined; it is reported as 0 so
// that no NaN or Inf ever leaks into downstream arithmetic.
func (p Product) Margin() float64 {
	if p.SellPrice == 0 {
		return 0
	}
	return (p.SellPrice - p.CostPrice) / p.SellPrice * 100
}

// TotalInventoryValue sums sellPrice * stock over the whole collection.
func TotalInventoryValue(products []Product) float64 {
	var total float64
	for _, p := range products {
		total += p.SellPrice * float64(p.Stock)
	}
	return total
}

// AverageMargin is the mean of per-product margins, 0 for an empty collection.
func AverageMargin(products []Product) float64 {
	if len(products) == 0 {
		return 0
	}
	var sum float64
	for _, p := range products {
		sum += p.Margin()
	}
	return sum / float64(len(products))
}
