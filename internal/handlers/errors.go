package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// errorStatuses maps error kinds to HTTP statuses, checked in order with errors.Is.
var errorStatuses = []struct {
	kind   error
	status int
}{
	{domain.ErrInsufficientEntries, http.StatusUnprocessableEntity},
	{domain.ErrZeroAmount, http.StatusUnprocessableEntity},
	{domain.ErrNegativeAmount, http.StatusUnprocessableEntity},
	{domain.ErrFunctionalAmountZero, http.StatusUnprocessableEntity},
	{domain.ErrAccountNotFound, http.StatusUnprocessableEntity},
	{domain.ErrAccountInactive, http.StatusUnprocessableEntity},
	{domain.ErrAccountNoDirectPosting, http.StatusUnprocessableEntity},
	{domain.ErrUnknownAccountType, http.StatusUnprocessableEntity},
	{domain.ErrInvalidDirection, http.StatusUnprocessableEntity},
	{domain.ErrNoExchangeRate, http.StatusUnprocessableEntity},
	{domain.ErrUnbalancedTransaction, http.StatusUnprocessableEntity},
	{domain.ErrRejectionReasonRequired, http.StatusUnprocessableEntity},
	{domain.ErrVoidReasonRequired, http.StatusUnprocessableEntity},
	{domain.ErrNoFiscalPeriod, http.StatusUnprocessableEntity},

	{domain.ErrInsufficientRole, http.StatusForbidden},
	{domain.ErrExceedsApprovalLimit, http.StatusForbidden},
	{apperrors.ErrForbidden, http.StatusForbidden},

	{domain.ErrInvalidTransition, http.StatusConflict},
	{domain.ErrInvalidPeriodTransition, http.StatusConflict},
	{domain.ErrPriorPeriodOpen, http.StatusConflict},
	{domain.ErrPeriodClosed, http.StatusConflict},
	{domain.ErrPeriodSoftClosed, http.StatusConflict},
	{domain.ErrConcurrentModification, http.StatusConflict},
	{apperrors.ErrDuplicate, http.StatusConflict},
	{apperrors.ErrConflict, http.StatusConflict},

	{domain.ErrRateNotFound, http.StatusNotFound},
	{apperrors.ErrNotFound, http.StatusNotFound},
	{apperrors.ErrValidation, http.StatusBadRequest},
	{apperrors.ErrUnauthorized, http.StatusUnauthorized},
}

// statusForError picks the HTTP status for a service error.
func statusForError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.kind) {
			return e.status
		}
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Code != 0 {
		return appErr.Code
	}
	return http.StatusInternalServerError
}

// handleServiceError writes the JSON error response for err. Server errors are
// logged and hidden behind fallbackMsg.
func handleServiceError(c *gin.Context, logger *slog.Logger, err error, fallbackMsg string) {
	status := statusForError(err)
	if status >= http.StatusInternalServerError {
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": fallbackMsg})
		return
	}
	logger.Warn(fallbackMsg, slog.String("error", err.Error()), slog.Int("status", status))
	c.JSON(status, gin.H{"error": err.Error()})
}
