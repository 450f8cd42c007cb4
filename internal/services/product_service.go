// internal/services/product_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/tugaskuliahlouis-netizen/OptimaBiz-nk/internal/engine"
	"github.com/tugaskuliahlouis-netizen/OptimaBiz-nk/internal/models"
	"github.com/tugaskuliahlouis-netizen/OptimaBiz-nk/internal/utils"
)

type ProductService struct {
	db *gorm.DB
}

type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=255"`
	Category    string   `json:"category" validate:"required"`
	CostPrice   float64  `json:"cost_price" validate:"min=0"`
	SellPrice   float64  `json:"sell_price" validate:"min=0"`
	Stock       int      `json:"stock" validate:"min=0"`
	Description string   `json:"description,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Category    *string  `json:"category,omitempty"`
	CostPrice   *float64 `json:"cost_price,omitempty" validate:"omitempty,min=0"`
	SellPrice   *float64 `json:"sell_price,omitempty" validate:"omitempty,min=0"`
	Stock       *int     `json:"stock,omitempty" validate:"omitempty,min=0"`
	Description *string  `json:"description,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// InventorySummary aggregates the owner's catalog for the dashboard header.
type InventorySummary struct {
	ProductCount  int64   `json:"product_count"`
	TotalStock    int64   `json:"total_stock"`
	TotalValue    float64 `json:"total_value"`
	AverageMargin float64 `json:"average_margin"`
	LowStockCount int64   `json:"low_stock_count"`
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

func (s *ProductService) CreateProduct(ownerID uuid.UUID, req *CreateProductRequest) (*models.Product, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Verify owner exists and is active
	var owner models.User
	if err := s.db.First(&owner, ownerID).Error; err != nil {
		return nil, fmt.Errorf("owner not found: %w", err)
	}

	if owner.Status != models.UserStatusActive {
		return nil, errors.New("owner account is not active")
	}

	product := &models.Product{
		OwnerID:     ownerID,
		Name:        req.Name,
		Category:    req.Category,
		CostPrice:   req.CostPrice,
		SellPrice:   req.SellPrice,
		Stock:       req.Stock,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Tags:        pq.StringArray(req.Tags),
	}

	if err := s.db.Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

func (s *ProductService) GetProduct(id uuid.UUID, ownerID uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if product.OwnerID != ownerID {
		return nil, errors.New("product not found")
	}

	return &product, nil
}

func (s *ProductService) UpdateProduct(id uuid.UUID, ownerID uuid.UUID, req *UpdateProductRequest) (*models.Product, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	product, err := s.GetProduct(id, ownerID)
	if err != nil {
		return nil, err
	}

	// Prepare updates
	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.CostPrice != nil {
		updates["cost_price"] = *req.CostPrice
	}
	if req.SellPrice != nil {
		updates["sell_price"] = *req.SellPrice
	}
	if req.Stock != nil {
		updates["stock"] = *req.Stock
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.Tags != nil {
		updates["tags"] = pq.StringArray(req.Tags)
	}

	if len(updates) == 0 {
		return product, nil
	}

	// Apply updates
	if err := s.db.Model(product).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}

func (s *ProductService) DeleteProduct(id uuid.UUID, ownerID uuid.UUID) error {
	product, err := s.GetProduct(id, ownerID)
	if err != nil {
		return err
	}

	// Soft delete
	if err := s.db.Delete(product).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}

func (s *ProductService) ListProducts(ownerID uuid.UUID, params utils.PaginationParams) ([]models.Product, int64, error) {
	query := s.db.Model(&models.Product{}).Where("owner_id = ?", ownerID)

	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", searchTerm, searchTerm)
	}

	// Get total count
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	// Apply sorting and pagination
	allowedSortFields := []string{"created_at", "updated_at", "name", "category", "sell_price", "stock"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, total, nil
}

// GetAllProducts returns the owner's full catalog without pagination. The
// analysis paths (strategy, audit, projection) always work on the whole set.
func (s *ProductService) GetAllProducts(ownerID uuid.UUID) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return products, nil
}

// Snapshots converts the owner's catalog into engine product views.
func (s *ProductService) Snapshots(ownerID uuid.UUID) ([]engine.Product, error) {
	products, err := s.GetAllProducts(ownerID)
	if err != nil {
		return nil, err
	}

	snapshots := make([]engine.Product, len(products))
	for i := range products {
		snapshots[i] = products[i].Snapshot()
	}
	return snapshots, nil
}

func (s *ProductService) GetInventorySummary(ownerID uuid.UUID) (*InventorySummary, error) {
	products, err := s.GetAllProducts(ownerID)
	if err != nil {
		return nil, err
	}

	summary := &InventorySummary{ProductCount: int64(len(products))}

	var marginSum float64
	for i := range products {
		p := &products[i]
		summary.TotalStock += int64(p.Stock)
		summary.TotalValue += p.SellPrice * float64(p.Stock)
		marginSum += p.Margin()
		if p.Stock < 10 {
			summary.LowStockCount++
		}
	}

	if len(products) > 0 {
		summary.AverageMargin = marginSum / float64(len(products))
	}

	return summary, nil
}

func (s *ProductService) SetProductImage(id uuid.UUID, ownerID uuid.UUID, imageURL string) (*models.Product, error) {
	product, err := s.GetProduct(id, ownerID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(product).Update("image_url", imageURL).Error; err != nil {
		return nil, fmt.Errorf("failed to update product image: %w", err)
	}

	return product, nil
}
