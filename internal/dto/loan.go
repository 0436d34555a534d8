package dto

import (
	"github.com/muhamadbasim/Lokanant/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LoanQuoteRequest simulates a loan with explicit parameters.
// MaxAmount and MaxTermMonths default to the requested principal and term.
type LoanQuoteRequest struct {
	Principal                 decimal.Decimal  `json:"principal" swaggertype:"string" example:"100000000"`
	AnnualInterestRatePercent decimal.Decimal  `json:"annualInterestRatePercent" swaggertype:"string" example:"8.5"`
	TermMonths                int              `json:"termMonths" binding:"required,min=1,max=600" example:"24"`
	MaxAmount                 *decimal.Decimal `json:"maxAmount,omitempty" swaggertype:"string"`
	MaxTermMonths             *int             `json:"maxTermMonths,omitempty" binding:"omitempty,min=1,max=600"`
	Schedule                  bool             `json:"schedule"`
}

// Parameters returns the offer the request is validated against.
func (r LoanQuoteRequest) Parameters() domain.LoanParameters {
	params := domain.LoanParameters{
		MaxAmount:                 r.Principal,
		AnnualInterestRatePercent: r.AnnualInterestRatePercent,
		TermMonths:                r.TermMonths,
	}
	if r.MaxAmount != nil {
		params.MaxAmount = *r.MaxAmount
	}
	if r.MaxTermMonths != nil {
		params.TermMonths = *r.MaxTermMonths
	}
	return params
}

// BusinessLoanQuoteParams defines query parameters for a business's loan simulation.
// Omitted values fall back to the business's defaults.
type BusinessLoanQuoteParams struct {
	Principal string `form:"principal"`
	Term      *int   `form:"term" binding:"omitempty,min=1,max=600"`
	Schedule  bool   `form:"schedule"`
}
