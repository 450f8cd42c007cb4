// internal/handlers/strategy.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tugaskuliahlouis-netizen/OptimaBiz-nk/internal/engine"
	"github.com/tugaskuliahlouis-netizen/OptimaBiz-nk/internal/i18n"
	"github.com/tugaskuliahlouis-netizen/OptimaBiz-nk/internal/services"
	"github.com/tugaskuliahlouis-netizen/OptimaBiz-nk/internal/utils"
)

type StrategyHandler struct {
	strategyService *services.StrategyService
}

func NewStrategyHandler(strategyService *services.StrategyService) *StrategyHandler {
	return &StrategyHandler{
		strategyService: strategyService,
	}
}

func (h *StrategyHandler) workflowError(c *gin.Context, err error) {
	lang := utils.GetLangFromContext(c)

	switch {
	case errors.Is(err, engine.ErrEmptySelection):
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyStrategyEmptySelection), nil)
	case errors.Is(err, engine.ErrInvalidTransition):
		utils.ConflictResponse(c, i18n.T(lang, i18n.KeyStrategyInvalidTransition))
	default:
		utils.InternalErrorResponse(c, err.Error())
	}
}

// GET /strategy
func (h *StrategyHandler) GetStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	utils.SuccessResponse(c, h.strategyService.Status(userID))
}

// POST /strategy/select
func (h *StrategyHandler) ToggleSelection(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		ProductID string `json:"product_id" validate:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if err := h.strategyService.ToggleSelection(userID, req.ProductID); err != nil {
		h.workflowError(c, err)
		return
	}

	utils.SuccessResponse(c, h.strategyService.Status(userID))
}

// POST /strategy/select-all
func (h *StrategyHandler) SelectAll(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.strategyService.SelectAll(userID); err != nil {
		h.workflowError(c, err)
		return
	}

	utils.SuccessResponse(c, h.strategyService.Status(userID))
}

// POST /strategy/clear
func (h *StrategyHandler) ClearSelection(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.strategyService.ClearSelection(userID); err != nil {
		h.workflowError(c, err)
		return
	}

	utils.SuccessResponse(c, h.strategyService.Status(userID))
}

// POST /strategy/confirm
func (h *StrategyHandler) Confirm(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.strategyService.Confirm(userID); err != nil {
		h.workflowError(c, err)
		return
	}

	utils.SuccessResponse(c, h.strategyService.Status(userID))
}

// POST /strategy/back
func (h *StrategyHandler) Back(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.strategyService.Back(userID); err != nil {
		h.workflowError(c, err)
		return
	}

	utils.SuccessResponse(c, h.strategyService.Status(userID))
}

// POST /strategy/generate
func (h *StrategyHandler) Generate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.strategyService.Generate(userID); err != nil {
		h.workflowError(c, err)
		return
	}

	utils.SuccessResponse(c, h.strategyService.Status(userID))
}

// GET /strategy/result
func (h *StrategyHandler) GetResult(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	strategy, reveal, err := h.strategyService.Result(userID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusConflict, "NOT_READY", i18n.T(lang, i18n.KeyStrategyNotReady), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"strategy": strategy,
		"reveal":   reveal,
	})
}

// POST /strategy/reset
func (h *StrategyHandler) Reset(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	h.strategyService.Reset(userID)
	utils.SuccessResponse(c, h.strategyService.Status(userID))
}
