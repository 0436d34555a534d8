package services

import (
	"context"

	"github.com/muhamadbasim/Lokanant/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LoanSvcFacade defines loan simulation operations
type LoanSvcFacade interface {
	// QuoteLoan simulates a loan against explicit offer parameters.
	QuoteLoan(ctx context.Context, params domain.LoanParameters, principal decimal.Decimal, termMonths int, withSchedule bool) (*domain.LoanQuote, error)

	// QuoteBusinessLoan simulates a loan against the offer of a business.
	// A nil principal defaults to half the maximum amount and a nil term to the full term.
	QuoteBusinessLoan(ctx context.Context, businessID string, principal *decimal.Decimal, termMonths *int, withSchedule bool) (*domain.LoanQuote, error)
}
