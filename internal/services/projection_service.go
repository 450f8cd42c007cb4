// internal/services/projection_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/tugaskuliahlouis-netizen/OptimaBiz-nk/internal/engine"
	"github.com/tugaskuliahlouis-netizen/OptimaBiz-nk/internal/utils"
)

type ProjectionService struct {
	products *ProductService
}

type ProjectionRequest struct {
	MonthlyBudget  float64 `json:"monthly_budget" validate:"min=0"`
	ConversionRate float64 `json:"conversion_rate" validate:"min=0,max=100"`
}

func NewProjectionService(products *ProductService) *ProjectionService {
	return &ProjectionService{products: products}
}

// Project computes the 12-month growth projection from the user's live
// inventory aggregates and the requested marketing parameters.
func (s *ProjectionService) Project(userID uuid.UUID, req *ProjectionRequest) (*engine.Projection, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.MonthlyBudget <= 0 {
		return nil, errors.New("monthly budget must be positive")
	}

	snapshots, err := s.products.Snapshots(userID)
	if err != nil {
		return nil, err
	}

	projection := engine.Project(engine.ProjectionInput{
		MonthlyBudget:       req.MonthlyBudget,
		ConversionRate:      req.ConversionRate,
		TotalInventoryValue: engine.TotalInventoryValue(snapshots),
		AverageMargin:       engine.AverageMargin(snapshots),
	})

	return &projection, nil
}
