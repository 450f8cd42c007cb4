// internal/models/product.go
package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/tugaskuliahlouis-netizen/OptimaBiz-nk/internal/engine"
)

type Product struct {
	BaseModel
	OwnerID     uuid.UUID      `json:"owner_id" gorm:"type:uuid;not null;index"`
	Name        string         `json:"name" gorm:"size:255;not null"`
	Category    string         `json:"category" gorm:"size:100;index"`
	CostPrice   float64        `json:"cost_price" gorm:"type:decimal(12,2);not null"`
	SellPrice   float64        `json:"sell_price" gorm:"type:decimal(12,2);not null"`
	Stock       int            `json:"stock" gorm:"default:0"`
	Description string         `json:"description" gorm:"type:text"`
	ImageURL    string         `json:"image_url" gorm:"size:512"`
	Tags        pq.StringArray `json:"tags" gorm:"type:text[]"`

	// Relationships
	Owner User `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
}

// Margin returns the profit margin percentage, zero when no sell price is set.
func (p *Product) Margin() float64 {
	if p.SellPrice == 0 {
		return 0
	}
	return (p.SellPrice - p.CostPrice) / p.SellPrice * 100
}

// Snapshot converts the stored row into the engine's immutable product view.
func (p *Product) Snapshot() engine.Product {
	return engine.Product{
		ID:          p.ID.String(),
		Name:        p.Name,
		Category:    p.Category,
		CostPrice:   p.CostPrice,
		SellPrice:   p.SellPrice,
		Stock:       p.Stock,
		Description: p.Description,
		ImageURL:    p.ImageURL,
	}
}
