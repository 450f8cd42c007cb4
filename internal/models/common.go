// internal/models/common.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// JSONB type for PostgreSQL
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, j)
}

// Enums
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
)

// ProductCategories is the category vocabulary offered by the product form.
// Stored values are not strictly validated against it; unknown categories
// fall through to the engine's default recommendation entry.
var ProductCategories = []string{
	"Kuliner",
	"Fashion",
	"Elektronik",
	"Kecantikan",
	"Kesehatan",
	"Kerajinan",
	"Jasa",
	"Lainnya",
}

// BusinessTypes enumerates the brand profile business types.
var BusinessTypes = []string{
	"Kuliner & F&B",
	"Fashion & Apparel",
	"Kecantikan & Skincare",
	"Kerajinan & Handmade",
	"Elektronik & Gadget",
	"Kesehatan & Wellness",
	"Jasa & Service",
	"Retail & Toko",
	"Lainnya",
}

// TargetMarkets enumerates the brand profile target markets.
var TargetMarkets = []string{"lokal", "nasional", "internasional"}

func IsValidTargetMarket(market string) bool {
	for _, m := range TargetMarkets {
		if m == market {
			return true
		}
	}
	return false
}
