package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/muhamadbasim/Lokanant/internal/core/ports/services"
	"github.com/muhamadbasim/Lokanant/internal/dto"
	"github.com/muhamadbasim/Lokanant/internal/middleware"
)

// transactionHandler handles HTTP requests for a business ledger.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(svc portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: svc}
}

// registerTransactionRoutes registers ledger routes under a /businesses/:business_id group.
func registerTransactionRoutes(rg *gin.RouterGroup, svc portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(svc)

	txns := rg.Group("/transactions")
	{
		txns.GET("", h.listTransactions)
		txns.POST("", h.createTransaction)
		txns.GET("/stats", h.getStats)
		txns.GET("/monthly", h.getMonthlyPerformance)
		txns.PUT("/:transaction_id", h.updateTransaction)
		txns.DELETE("/:transaction_id", h.deleteTransaction)
	}
}

// createTransaction godoc
// @Summary Record a ledger entry
// @Description Records an income or expense. The stored amount is signed by category and the running balance is derived from the latest entry of the business.
// @Tags transactions
// @Accept json
// @Produce json
// @Param business_id path string true "Business ID"
// @Param transaction body dto.CreateTransactionRequest true "Entry details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Business not found"
// @Failure 500 {object} map[string]string "Failed to record transaction"
// @Router /businesses/{business_id}/transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	draft, err := req.ToDraft(businessID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger = logger.With(slog.String("business_id", businessID))
	txn, err := h.transactionService.RecordTransaction(c.Request.Context(), draft)
	if err != nil {
		respondError(c, logger, err, "Business not found", "Failed to record transaction")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List ledger entries
// @Description Lists entries of a business newest first, with optional date range and category filters and token pagination.
// @Tags transactions
// @Produce json
// @Param business_id path string true "Business ID"
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD or RFC 3339)"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD or RFC 3339)"
// @Param category query string false "Income or Expense"
// @Param limit query int false "Page size"
// @Param next_token query string false "Token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Router /businesses/{business_id}/transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for ListTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	filter, err := params.ToFilter(businessID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	txns, nextToken, err := h.transactionService.ListTransactions(c.Request.Context(), filter)
	if err != nil {
		respondError(c, logger, err, "Business not found", "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns, nextToken))
}

// getStats godoc
// @Summary Ledger statistics
// @Description Total income, total expense, net profit and entry count of a business.
// @Tags transactions
// @Produce json
// @Param business_id path string true "Business ID"
// @Success 200 {object} domain.TransactionStats
// @Failure 500 {object} map[string]string "Failed to compute statistics"
// @Router /businesses/{business_id}/transactions/stats [get]
func (h *transactionHandler) getStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")

	stats, err := h.transactionService.TransactionStats(c.Request.Context(), businessID)
	if err != nil {
		respondError(c, logger, err, "Business not found", "Failed to compute statistics")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// getMonthlyPerformance godoc
// @Summary Monthly performance
// @Description Revenue, expenses and profit per calendar month, plus the month-over-month revenue change.
// @Tags transactions
// @Produce json
// @Param business_id path string true "Business ID"
// @Param months query int false "Number of most recent months (0 for all)" default(6)
// @Success 200 {object} domain.MonthlyPerformance
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to compute monthly performance"
// @Router /businesses/{business_id}/transactions/monthly [get]
func (h *transactionHandler) getMonthlyPerformance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")

	var params dto.MonthlyPerformanceParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	perf, err := h.transactionService.MonthlyPerformance(c.Request.Context(), businessID, params.Months)
	if err != nil {
		respondError(c, logger, err, "Business not found", "Failed to compute monthly performance")
		return
	}
	c.JSON(http.StatusOK, perf)
}

// updateTransaction godoc
// @Summary Update a ledger entry
// @Description Updates date, description, category or amount. The amount sign follows the category; the stored balance is not recomputed.
// @Tags transactions
// @Accept json
// @Produce json
// @Param business_id path string true "Business ID"
// @Param transaction_id path string true "Transaction ID"
// @Param transaction body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to update transaction"
// @Router /businesses/{business_id}/transactions/{transaction_id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")
	transactionID := c.Param("transaction_id")

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	patch, err := req.ToPatch()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger = logger.With(slog.String("business_id", businessID), slog.String("transaction_id", transactionID))
	txn, err := h.transactionService.UpdateTransaction(c.Request.Context(), businessID, transactionID, patch)
	if err != nil {
		respondError(c, logger, err, "Transaction not found", "Failed to update transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete a ledger entry
// @Tags transactions
// @Param business_id path string true "Business ID"
// @Param transaction_id path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to delete transaction"
// @Router /businesses/{business_id}/transactions/{transaction_id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")
	transactionID := c.Param("transaction_id")

	logger = logger.With(slog.String("business_id", businessID), slog.String("transaction_id", transactionID))
	if err := h.transactionService.DeleteTransaction(c.Request.Context(), businessID, transactionID); err != nil {
		respondError(c, logger, err, "Transaction not found", "Failed to delete transaction")
		return
	}
	c.Status(http.StatusNoContent)
}
