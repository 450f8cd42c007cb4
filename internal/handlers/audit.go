// internal/handlers/audit.go
package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tugaskuliahlouis-netizen/OptimaBiz-nk/internal/i18n"
	"github.com/tugaskuliahlouis-netizen/OptimaBiz-nk/internal/services"
	"github.com/tugaskuliahlouis-netizen/OptimaBiz-nk/internal/utils"
)

type AuditHandler struct {
	auditService *services.AuditService
}

func NewAuditHandler(auditService *services.AuditService) *AuditHandler {
	return &AuditHandler{
		auditService: auditService,
	}
}

// POST /audit/run
func (h *AuditHandler) RunAudit(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	findings, err := h.auditService.RunAudit(userID)
	if err != nil {
		if strings.Contains(err.Error(), "no products to audit") {
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeyAuditEmptyCatalog))
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"findings": findings,
	})
}

// GET /audit/findings
func (h *AuditHandler) GetFindings(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	findings, err := h.auditService.GetFindings(userID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", i18n.T(lang, i18n.KeyAuditNoFindings), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"findings": findings,
	})
}

// POST /audit/findings/:id/toggle
func (h *AuditHandler) ToggleFinding(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	findingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "finding id"), nil)
		return
	}

	finding, err := h.auditService.ToggleFinding(userID, findingID)
	if err != nil {
		if strings.Contains(err.Error(), "no audit findings") {
			utils.ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", i18n.T(lang, i18n.KeyAuditNoFindings), nil)
			return
		}
		utils.ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", i18n.T(lang, i18n.KeyAuditFindingNotFound), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"finding": finding,
	})
}
