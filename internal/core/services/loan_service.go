package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/muhamadbasim/Lokanant/internal/core/domain"
	portsrepo "github.com/muhamadbasim/Lokanant/internal/core/ports/repositories"
	portssvc "github.com/muhamadbasim/Lokanant/internal/core/ports/services"
	"github.com/muhamadbasim/Lokanant/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

// loanService simulates loans. It is stateless apart from the business lookup.
type loanService struct {
	BaseService
	businessRepo portsrepo.BusinessRepositoryFacade
}

// NewLoanService creates a new loan simulation service.
func NewLoanService(businessRepo portsrepo.BusinessRepositoryFacade) portssvc.LoanSvcFacade {
	return &loanService{businessRepo: businessRepo}
}

var _ portssvc.LoanSvcFacade = (*loanService)(nil)

func (s *loanService) QuoteLoan(ctx context.Context, params domain.LoanParameters, principal decimal.Decimal, termMonths int, withSchedule bool) (*domain.LoanQuote, error) {
	quote, err := accounting.QuoteLoan(params, principal, termMonths, withSchedule)
	if err != nil {
		s.LogDebug(ctx, "Loan quote rejected",
			slog.String("principal", principal.String()),
			slog.Int("term", termMonths),
			slog.String("error", err.Error()))
		return nil, err
	}
	return &quote, nil
}

func (s *loanService) QuoteBusinessLoan(ctx context.Context, businessID string, principal *decimal.Decimal, termMonths *int, withSchedule bool) (*domain.LoanQuote, error) {
	business, err := s.businessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to get business %s: %w", businessID, err)
	}
	params := business.LoanEligibility

	p := params.MaxAmount.Div(two)
	if principal != nil {
		p = *principal
	}
	term := params.TermMonths
	if termMonths != nil {
		term = *termMonths
	}

	quote, err := s.QuoteLoan(ctx, params, p, term, withSchedule)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Loan quote generated",
		slog.String("business_id", businessID),
		slog.String("principal", quote.Principal.String()),
		slog.Int("term", quote.TermMonths),
		slog.String("monthly_payment", quote.RoundedMonthlyPayment.String()))
	return quote, nil
}
