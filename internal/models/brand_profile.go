// internal/models/brand_profile.go
package models

import (
	"github.com/google/uuid"

	"github.com/tugaskuliahlouis-netizen/OptimaBiz-nk/internal/engine"
)

type BrandProfile struct {
	BaseModel
	UserID         uuid.UUID `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`
	BusinessName   string    `json:"business_name" gorm:"size:255;not null"`
	BusinessType   string    `json:"business_type" gorm:"size:100"`
	TargetMarket   string    `json:"target_market" gorm:"type:varchar(20);default:'lokal'"`
	Location       string    `json:"location" gorm:"size:255"`
	Description    string    `json:"description" gorm:"type:text"`
	TargetAudience string    `json:"target_audience" gorm:"size:255"`
	UniqueValue    string    `json:"unique_value" gorm:"type:text"`
}

// Snapshot converts the stored row into the engine's brand profile view.
func (b *BrandProfile) Snapshot() engine.BrandProfile {
	return engine.BrandProfile{
		BusinessName:   b.BusinessName,
		BusinessType:   b.BusinessType,
		TargetMarket:   b.TargetMarket,
		Description:    b.Description,
		Location:       b.Location,
		TargetAudience: b.TargetAudience,
		UniqueValue:    b.UniqueValue,
	}
}
