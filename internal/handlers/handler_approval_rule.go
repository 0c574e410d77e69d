package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/SscSPs/ledger_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

type approvalRuleHandler struct {
	ruleService portssvc.ApprovalRuleSvcFacade
}

// RegisterApprovalRuleRoutes registers the approval rule routes.
func RegisterApprovalRuleRoutes(orgGroup *gin.RouterGroup, ruleService portssvc.ApprovalRuleSvcFacade) {
	h := &approvalRuleHandler{ruleService: ruleService}

	rules := orgGroup.Group("/approval-rules")
	{
		rules.POST("", h.createRule)
		rules.GET("", h.listRules)
	}
}

// createRule godoc
// @Summary Create an approval rule
// @Tags approval-rules
// @Accept  json
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   rule body dto.CreateApprovalRuleRequest true "Rule details"
// @Success 201 {object} dto.ApprovalRuleResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /organizations/{orgID}/approval-rules [post]
func (h *approvalRuleHandler) createRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateApprovalRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateApprovalRule", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}

	rule, err := h.ruleService.CreateApprovalRule(c.Request.Context(), c.Param("orgID"), req, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to create approval rule")
		return
	}
	c.JSON(http.StatusCreated, dto.ToApprovalRuleResponse(rule))
}

// listRules godoc
// @Summary List approval rules
// @Description Lists the rules in evaluation order
// @Tags approval-rules
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Success 200 {array} dto.ApprovalRuleResponse
// @Security BearerAuth
// @Router /organizations/{orgID}/approval-rules [get]
func (h *approvalRuleHandler) listRules(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}

	rules, err := h.ruleService.ListApprovalRules(c.Request.Context(), c.Param("orgID"), userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list approval rules")
		return
	}
	c.JSON(http.StatusOK, dto.ToApprovalRuleResponses(rules))
}
