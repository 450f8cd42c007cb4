// internal/handlers/projection.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tugaskuliahlouis-netizen/OptimaBiz-nk/internal/i18n"
	"github.com/tugaskuliahlouis-netizen/OptimaBiz-nk/internal/services"
	"github.com/tugaskuliahlouis-netizen/OptimaBiz-nk/internal/utils"
)

// Projection slider defaults, matching the dashboard's initial values.
const (
	defaultMonthlyBudget  = 500_000
	defaultConversionRate = 3
)

type ProjectionHandler struct {
	projectionService *services.ProjectionService
}

func NewProjectionHandler(projectionService *services.ProjectionService) *ProjectionHandler {
	return &ProjectionHandler{
		projectionService: projectionService,
	}
}

// GET /analytics/projection?monthly_budget=500000&conversion_rate=3
func (h *ProjectionHandler) GetProjection(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	req := services.ProjectionRequest{
		MonthlyBudget:  defaultMonthlyBudget,
		ConversionRate: defaultConversionRate,
	}

	if raw := c.Query("monthly_budget"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "monthly_budget"), nil)
			return
		}
		req.MonthlyBudget = value
	}

	if raw := c.Query("conversion_rate"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "conversion_rate"), nil)
			return
		}
		req.ConversionRate = value
	}

	projection, err := h.projectionService.Project(userID, &req)
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyProjectionInvalidInput), err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"projection": projection,
	})
}
