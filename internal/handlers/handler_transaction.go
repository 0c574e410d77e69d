package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/SscSPs/ledger_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests for the transaction lifecycle.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// RegisterTransactionRoutes registers the transaction routes on an organization-scoped group.
func RegisterTransactionRoutes(orgGroup *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := orgGroup.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:transactionID", h.getTransaction)
		transactions.POST("/:transactionID/submit", h.submitTransaction)
		transactions.POST("/:transactionID/approve", h.approveTransaction)
		transactions.POST("/:transactionID/reject", h.rejectTransaction)
		transactions.POST("/:transactionID/post", h.postTransaction)
		transactions.POST("/:transactionID/void", h.voidTransaction)
	}
}

// createTransaction godoc
// @Summary Create a draft transaction
// @Description Validates the entries, converts them to the functional currency and stores a draft
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 422 {object} map[string]string "Ledger validation failed"
// @Failure 500 {object} map[string]string "Failed to create transaction"
// @Security BearerAuth
// @Router /organizations/{orgID}/transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("organization_id", orgID))
	logger.Info("Received request to create transaction", slog.Int("entry_count", len(req.Entries)))

	txn, err := h.transactionService.CreateDraft(c.Request.Context(), orgID, req, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to create transaction")
		return
	}

	logger.Info("Draft transaction created", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists the transactions of an organization, newest first, with token pagination
// @Tags transactions
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Param   status query string false "Filter by status"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Security BearerAuth
// @Router /organizations/{orgID}/transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}

	resp, err := h.transactionService.ListTransactions(c.Request.Context(), orgID, userID, params)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getTransaction godoc
// @Summary Get a transaction
// @Description Retrieves a transaction with its ledger entries
// @Tags transactions
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   transactionID path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to retrieve transaction"
// @Security BearerAuth
// @Router /organizations/{orgID}/transactions/{transactionID} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}

	txn, err := h.transactionService.GetTransaction(c.Request.Context(), c.Param("orgID"), c.Param("transactionID"), userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// submitTransaction godoc
// @Summary Submit a draft for approval
// @Tags transactions
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   transactionID path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 409 {object} map[string]string "Invalid status transition"
// @Security BearerAuth
// @Router /organizations/{orgID}/transactions/{transactionID}/submit [post]
func (h *transactionHandler) submitTransaction(c *gin.Context) {
	h.transition(c, "Failed to submit transaction", func(orgID, txnID, userID string) (*domain.Transaction, error) {
		return h.transactionService.Submit(c.Request.Context(), orgID, txnID, userID)
	})
}

// approveTransaction godoc
// @Summary Approve a pending transaction
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   transactionID path string true "Transaction ID"
// @Param   approval body dto.ApproveTransactionRequest false "Approval notes"
// @Success 200 {object} dto.TransactionResponse
// @Failure 403 {object} map[string]string "Role or approval limit insufficient"
// @Failure 409 {object} map[string]string "Invalid status transition"
// @Security BearerAuth
// @Router /organizations/{orgID}/transactions/{transactionID}/approve [post]
func (h *transactionHandler) approveTransaction(c *gin.Context) {
	var req dto.ApproveTransactionRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	h.transition(c, "Failed to approve transaction", func(orgID, txnID, userID string) (*domain.Transaction, error) {
		return h.transactionService.Approve(c.Request.Context(), orgID, txnID, userID, req.Notes)
	})
}

// rejectTransaction godoc
// @Summary Reject a pending transaction
// @Description Sends a pending transaction back to draft. A reason is required.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   transactionID path string true "Transaction ID"
// @Param   rejection body dto.RejectTransactionRequest true "Rejection reason"
// @Success 200 {object} dto.TransactionResponse
// @Failure 409 {object} map[string]string "Invalid status transition"
// @Failure 422 {object} map[string]string "Reason missing"
// @Security BearerAuth
// @Router /organizations/{orgID}/transactions/{transactionID}/reject [post]
func (h *transactionHandler) rejectTransaction(c *gin.Context) {
	var req dto.RejectTransactionRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	h.transition(c, "Failed to reject transaction", func(orgID, txnID, userID string) (*domain.Transaction, error) {
		return h.transactionService.Reject(c.Request.Context(), orgID, txnID, userID, req.Reason)
	})
}

// postTransaction godoc
// @Summary Post an approved transaction
// @Description Writes the entries to the ledger, assigning account versions and running balances
// @Tags transactions
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   transactionID path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 409 {object} map[string]string "Invalid transition, period closed or concurrent modification"
// @Security BearerAuth
// @Router /organizations/{orgID}/transactions/{transactionID}/post [post]
func (h *transactionHandler) postTransaction(c *gin.Context) {
	h.transition(c, "Failed to post transaction", func(orgID, txnID, userID string) (*domain.Transaction, error) {
		return h.transactionService.Post(c.Request.Context(), orgID, txnID, userID)
	})
}

// voidTransaction godoc
// @Summary Void a posted transaction
// @Description Posts a reversing transaction and marks the original as voided
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   transactionID path string true "Transaction ID"
// @Param   void body dto.VoidTransactionRequest true "Void reason"
// @Success 200 {object} dto.VoidTransactionResponse
// @Failure 409 {object} map[string]string "Invalid status transition"
// @Failure 422 {object} map[string]string "Reason missing"
// @Security BearerAuth
// @Router /organizations/{orgID}/transactions/{transactionID}/void [post]
func (h *transactionHandler) voidTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.VoidTransactionRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}

	txnID := c.Param("transactionID")
	logger = logger.With(slog.String("transaction_id", txnID))

	original, reversal, err := h.transactionService.Void(c.Request.Context(), c.Param("orgID"), txnID, userID, req.Reason)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to void transaction")
		return
	}

	logger.Info("Transaction voided", slog.String("reversal_id", reversal.TransactionID))
	c.JSON(http.StatusOK, dto.VoidTransactionResponse{
		Original: dto.ToTransactionResponse(original),
		Reversal: dto.ToTransactionResponse(reversal),
	})
}

// transition runs a lifecycle action on the transaction in the path and writes the result.
func (h *transactionHandler) transition(c *gin.Context, failureMsg string, action func(orgID, txnID, userID string) (*domain.Transaction, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}

	txnID := c.Param("transactionID")
	logger = logger.With(slog.String("transaction_id", txnID))

	txn, err := action(c.Param("orgID"), txnID, userID)
	if err != nil {
		handleServiceError(c, logger, err, failureMsg)
		return
	}

	logger.Info("Transaction status changed", slog.String("status", string(txn.Status)))
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// bindOptionalJSON binds a JSON body when one is present.
func bindOptionalJSON(c *gin.Context, obj any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(obj); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind JSON body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return false
	}
	return true
}
