// internal/services/brand_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tugaskuliahlouis-netizen/OptimaBiz-nk/internal/models"
	"github.com/tugaskuliahlouis-netizen/OptimaBiz-nk/internal/utils"
)

type BrandService struct {
	db *gorm.DB
}

type UpsertBrandProfileRequest struct {
	BusinessName   string `json:"business_name" validate:"required,min=2,max=255"`
	BusinessType   string `json:"business_type,omitempty"`
	TargetMarket   string `json:"target_market,omitempty"`
	Location       string `json:"location,omitempty"`
	Description    string `json:"description,omitempty"`
	TargetAudience string `json:"target_audience,omitempty"`
	UniqueValue    string `json:"unique_value,omitempty"`
}

func NewBrandService(db *gorm.DB) *BrandService {
	return &BrandService{db: db}
}

func (s *BrandService) GetProfile(userID uuid.UUID) (*models.BrandProfile, error) {
	var profile models.BrandProfile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("brand profile not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &profile, nil
}

// UpsertProfile creates the profile on first save and updates it afterwards.
// Each user keeps exactly one brand profile.
func (s *BrandService) UpsertProfile(userID uuid.UUID, req *UpsertBrandProfileRequest) (*models.BrandProfile, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.TargetMarket != "" && !models.IsValidTargetMarket(req.TargetMarket) {
		return nil, errors.New("invalid target market")
	}

	var profile models.BrandProfile
	err := s.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("database error: %w", err)
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = models.BrandProfile{
			UserID:       userID,
			TargetMarket: "lokal",
		}
	}

	profile.BusinessName = req.BusinessName
	profile.BusinessType = req.BusinessType
	if req.TargetMarket != "" {
		profile.TargetMarket = req.TargetMarket
	}
	profile.Location = req.Location
	profile.Description = req.Description
	profile.TargetAudience = req.TargetAudience
	profile.UniqueValue = req.UniqueValue

	if err := s.db.Save(&profile).Error; err != nil {
		return nil, fmt.Errorf("failed to save brand profile: %w", err)
	}

	return &profile, nil
}
