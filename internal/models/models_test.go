// internal/models/models_test.go
package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPasswordHashing(t *testing.T) {
	user := &User{}
	require.NoError(t, user.SetPassword("Rahasia123!"))

	assert.NotEqual(t, "Rahasia123!", user.PasswordHash)
	assert.NoError(t, user.CheckPassword("Rahasia123!"))
	assert.Error(t, user.CheckPassword("salah"))
}

func TestProductMargin(t *testing.T) {
	p := &Product{CostPrice: 7000, SellPrice: 10000}
	assert.InDelta(t, 30.0, p.Margin(), 1e-9)

	// No sell price means the margin is undefined, reported as zero.
	free := &Product{CostPrice: 7000, SellPrice: 0}
	assert.Zero(t, free.Margin())
}

func TestProductSnapshotCarriesEngineFields(t *testing.T) {
	p := &Product{
		BaseModel:   BaseModel{ID: uuid.New()},
		Name:        "Keripik Pisang",
		Category:    "Kuliner",
		CostPrice:   7000,
		SellPrice:   10000,
		Stock:       25,
		Description: "Keripik pisang original",
		ImageURL:    "https://cdn.example.com/keripik.jpg",
	}

	snap := p.Snapshot()
	assert.Equal(t, p.ID.String(), snap.ID)
	assert.Equal(t, p.Name, snap.Name)
	assert.Equal(t, p.Category, snap.Category)
	assert.Equal(t, p.CostPrice, snap.CostPrice)
	assert.Equal(t, p.SellPrice, snap.SellPrice)
	assert.Equal(t, p.Stock, snap.Stock)
	assert.Equal(t, p.ImageURL, snap.ImageURL)
}

func TestBrandProfileSnapshot(t *testing.T) {
	b := &BrandProfile{
		BusinessName: "Dapur Rasa",
		BusinessType: "Kuliner & F&B",
		TargetMarket: "lokal",
		Location:     "Bandung",
	}

	snap := b.Snapshot()
	assert.Equal(t, "Dapur Rasa", snap.BusinessName)
	assert.Equal(t, "lokal", snap.TargetMarket)
	assert.Equal(t, "Bandung", snap.Location)
}

func TestIsValidTargetMarket(t *testing.T) {
	for _, market := range TargetMarkets {
		assert.True(t, IsValidTargetMarket(market))
	}
	assert.False(t, IsValidTargetMarket("global"))
	assert.False(t, IsValidTargetMarket(""))
}
