// internal/handlers/brand.go
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tugaskuliahlouis-netizen/OptimaBiz-nk/internal/i18n"
	"github.com/tugaskuliahlouis-netizen/OptimaBiz-nk/internal/services"
	"github.com/tugaskuliahlouis-netizen/OptimaBiz-nk/internal/utils"
)

type BrandHandler struct {
	brandService *services.BrandService
}

func NewBrandHandler(brandService *services.BrandService) *BrandHandler {
	return &BrandHandler{
		brandService: brandService,
	}
}

// GET /brand-profile
func (h *BrandHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := h.brandService.GetProfile(userID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "brand_profile")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"brand_profile": profile,
	})
}

// PUT /brand-profile
func (h *BrandHandler) UpsertProfile(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req services.UpsertBrandProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	// Validate request
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	profile, err := h.brandService.UpsertProfile(userID, &req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":       i18n.T(lang, i18n.KeyBrandProfileUpdated),
		"brand_profile": profile,
	})
}
