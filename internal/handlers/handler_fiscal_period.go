package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/SscSPs/ledger_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

type fiscalPeriodHandler struct {
	periodService portssvc.FiscalPeriodSvcFacade
}

// RegisterFiscalPeriodRoutes registers the fiscal calendar routes.
func RegisterFiscalPeriodRoutes(orgGroup *gin.RouterGroup, periodService portssvc.FiscalPeriodSvcFacade) {
	h := &fiscalPeriodHandler{periodService: periodService}

	periods := orgGroup.Group("/fiscal-periods")
	{
		periods.POST("", h.createPeriod)
		periods.GET("", h.listPeriods)
		periods.PATCH("/:periodID/status", h.changePeriodStatus)
	}
}

// createPeriod godoc
// @Summary Create a fiscal period
// @Tags fiscal-periods
// @Accept  json
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   period body dto.CreateFiscalPeriodRequest true "Period details"
// @Success 201 {object} dto.FiscalPeriodResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Period overlaps or already exists"
// @Security BearerAuth
// @Router /organizations/{orgID}/fiscal-periods [post]
func (h *fiscalPeriodHandler) createPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateFiscalPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePeriod", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}

	period, err := h.periodService.CreatePeriod(c.Request.Context(), c.Param("orgID"), req, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to create fiscal period")
		return
	}

	logger.Info("Fiscal period created", slog.String("period_id", period.PeriodID))
	c.JSON(http.StatusCreated, dto.ToFiscalPeriodResponse(period))
}

// listPeriods godoc
// @Summary List the fiscal periods of a year
// @Tags fiscal-periods
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   year query int true "Fiscal year"
// @Success 200 {array} dto.FiscalPeriodResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Security BearerAuth
// @Router /organizations/{orgID}/fiscal-periods [get]
func (h *fiscalPeriodHandler) listPeriods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListFiscalPeriodsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}

	periods, err := h.periodService.ListPeriods(c.Request.Context(), c.Param("orgID"), params.Year, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list fiscal periods")
		return
	}
	c.JSON(http.StatusOK, dto.ToFiscalPeriodResponses(periods))
}

// changePeriodStatus godoc
// @Summary Change the status of a fiscal period
// @Description Soft-closes, reopens or closes a period. Closing requires an admin.
// @Tags fiscal-periods
// @Accept  json
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   periodID path string true "Period ID"
// @Param   status body dto.UpdatePeriodStatusRequest true "New status"
// @Success 200 {object} dto.FiscalPeriodResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Invalid status change"
// @Security BearerAuth
// @Router /organizations/{orgID}/fiscal-periods/{periodID}/status [patch]
func (h *fiscalPeriodHandler) changePeriodStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdatePeriodStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}

	period, err := h.periodService.ChangePeriodStatus(c.Request.Context(), c.Param("orgID"), c.Param("periodID"), req.Status, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to change fiscal period status")
		return
	}

	logger.Info("Fiscal period status changed", slog.String("period_id", period.PeriodID), slog.String("status", string(period.Status)))
	c.JSON(http.StatusOK, dto.ToFiscalPeriodResponse(period))
}
