package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/muhamadbasim/Lokanant/internal/core/ports/services"
	"github.com/muhamadbasim/Lokanant/internal/dto"
	"github.com/muhamadbasim/Lokanant/internal/middleware"
	"github.com/shopspring/decimal"
)

// loanHandler handles loan simulation requests.
type loanHandler struct {
	loanService portssvc.LoanSvcFacade
}

func registerBusinessLoanRoutes(business *gin.RouterGroup, svc portssvc.LoanSvcFacade) {
	h := &loanHandler{loanService: svc}
	business.GET("/loan-quote", h.quoteBusinessLoan)
}

func registerLoanRoutes(rg *gin.RouterGroup, svc portssvc.LoanSvcFacade) {
	h := &loanHandler{loanService: svc}
	rg.POST("/loans/quote", h.quoteLoan)
}

// quoteBusinessLoan godoc
// @Summary Simulate a loan for a business
// @Description Computes the monthly installment against the business's loan offer. Defaults are half the maximum amount over the full term.
// @Tags loans
// @Produce json
// @Param business_id path string true "Business ID"
// @Param principal query string false "Requested principal"
// @Param term query int false "Term in months" minimum(1) maximum(600)
// @Param schedule query bool false "Include the amortization schedule"
// @Success 200 {object} domain.LoanQuote
// @Failure 400 {object} map[string]string "Principal or term out of range"
// @Failure 404 {object} map[string]string "Business not found"
// @Failure 500 {object} map[string]string "Failed to simulate loan"
// @Router /businesses/{business_id}/loan-quote [get]
func (h *loanHandler) quoteBusinessLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")

	var params dto.BusinessLoanQuoteParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for loan quote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	var principal *decimal.Decimal
	if params.Principal != "" {
		p, err := decimal.NewFromString(params.Principal)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid principal: " + err.Error()})
			return
		}
		principal = &p
	}

	quote, err := h.loanService.QuoteBusinessLoan(c.Request.Context(), businessID, principal, params.Term, params.Schedule)
	if err != nil {
		respondError(c, logger.With(slog.String("business_id", businessID)), err, "Business not found", "Failed to simulate loan")
		return
	}
	c.JSON(http.StatusOK, quote)
}

// quoteLoan godoc
// @Summary Simulate a loan
// @Description Computes the monthly installment, totals and optionally the amortization schedule for explicit parameters.
// @Tags loans
// @Accept json
// @Produce json
// @Param request body dto.LoanQuoteRequest true "Loan parameters"
// @Success 200 {object} domain.LoanQuote
// @Failure 400 {object} map[string]string "Invalid input format or parameters out of range"
// @Failure 500 {object} map[string]string "Failed to simulate loan"
// @Router /loans/quote [post]
func (h *loanHandler) quoteLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoanQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for loan quote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	quote, err := h.loanService.QuoteLoan(c.Request.Context(), req.Parameters(), req.Principal, req.TermMonths, req.Schedule)
	if err != nil {
		respondError(c, logger, err, "Not found", "Failed to simulate loan")
		return
	}
	c.JSON(http.StatusOK, quote)
}
