package accounting

import (
	"fmt"

	"github.com/muhamadbasim/Lokanant/internal/apperrors"
	"github.com/muhamadbasim/Lokanant/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MaxTermMonths is the longest loan term accepted, fifty years.
const MaxTermMonths = 600

// growthPrecision bounds the decimal places kept while compounding the monthly rate.
const growthPrecision = 32

var (
	monthsPerYear = decimal.NewFromInt(12)
	one           = decimal.NewFromInt(1)
)

// MonthlyRate converts an annual percentage rate (8.5 for 8.5%) to a monthly fraction.
func MonthlyRate(annualInterestRatePercent decimal.Decimal) decimal.Decimal {
	return annualInterestRatePercent.Div(hundred).Div(monthsPerYear)
}

// MonthlyPayment returns the fixed installment that amortizes principal over termMonths.
// The value is not rounded. A zero rate returns principal / termMonths exactly.
func MonthlyPayment(principal, annualInterestRatePercent decimal.Decimal, termMonths int) (decimal.Decimal, error) {
	if !principal.IsPositive() {
		return decimal.Zero, apperrors.NewInvalidParameter("principal", "must be greater than zero")
	}
	if termMonths <= 0 {
		return decimal.Zero, apperrors.NewInvalidParameter("term", "must be greater than zero")
	}
	if termMonths > MaxTermMonths {
		return decimal.Zero, apperrors.NewInvalidParameter("term", fmt.Sprintf("must not exceed %d months", MaxTermMonths))
	}
	if annualInterestRatePercent.IsNegative() {
		return decimal.Zero, apperrors.NewInvalidParameter("rate", "must not be negative")
	}

	n := decimal.NewFromInt(int64(termMonths))
	if annualInterestRatePercent.IsZero() {
		return principal.Div(n), nil
	}

	r := MonthlyRate(annualInterestRatePercent)
	growth, err := one.Add(r).PowWithPrecision(n, growthPrecision)
	if err != nil {
		return decimal.Zero, fmt.Errorf("compound monthly rate: %w", err)
	}
	return principal.Mul(r).Mul(growth).Div(growth.Sub(one)), nil
}

// ValidateLoanRequest checks a simulated (principal, term) pair against an offer.
func ValidateLoanRequest(params domain.LoanParameters, principal decimal.Decimal, termMonths int) error {
	switch {
	case !principal.IsPositive():
		return apperrors.NewInvalidParameter("principal", "must be greater than zero")
	case principal.GreaterThan(params.MaxAmount):
		return apperrors.NewInvalidParameter("principal", "must not exceed "+params.MaxAmount.String())
	case termMonths <= 0:
		return apperrors.NewInvalidParameter("term", "must be greater than zero")
	case termMonths > MaxTermMonths:
		return apperrors.NewInvalidParameter("term", fmt.Sprintf("must not exceed %d months", MaxTermMonths))
	case termMonths > params.TermMonths:
		return apperrors.NewInvalidParameter("term", "must not exceed the offered term")
	case params.AnnualInterestRatePercent.IsNegative():
		return apperrors.NewInvalidParameter("rate", "must not be negative")
	}
	return nil
}

// QuoteLoan validates the request and computes the display figures of a loan.
// Totals are derived from the payment rounded to whole currency units.
func QuoteLoan(params domain.LoanParameters, principal decimal.Decimal, termMonths int, withSchedule bool) (domain.LoanQuote, error) {
	if err := ValidateLoanRequest(params, principal, termMonths); err != nil {
		return domain.LoanQuote{}, err
	}
	payment, err := MonthlyPayment(principal, params.AnnualInterestRatePercent, termMonths)
	if err != nil {
		return domain.LoanQuote{}, err
	}

	rounded := payment.Round(0)
	total := rounded.Mul(decimal.NewFromInt(int64(termMonths)))
	quote := domain.LoanQuote{
		Principal:                 principal,
		AnnualInterestRatePercent: params.AnnualInterestRatePercent,
		TermMonths:                termMonths,
		MonthlyPayment:            payment,
		RoundedMonthlyPayment:     rounded,
		TotalRepayment:            total,
		TotalInterest:             total.Sub(principal),
	}
	if withSchedule {
		quote.Schedule, err = AmortizationSchedule(principal, params.AnnualInterestRatePercent, termMonths)
		if err != nil {
			return domain.LoanQuote{}, err
		}
	}
	return quote, nil
}

// AmortizationSchedule splits every installment into interest and principal.
// The running balance uses the unrounded payment; rows are rounded to two places.
// The last row absorbs the residual so the remaining balance ends at zero.
func AmortizationSchedule(principal, annualInterestRatePercent decimal.Decimal, termMonths int) ([]domain.ScheduleEntry, error) {
	payment, err := MonthlyPayment(principal, annualInterestRatePercent, termMonths)
	if err != nil {
		return nil, err
	}
	r := MonthlyRate(annualInterestRatePercent)

	entries := make([]domain.ScheduleEntry, 0, termMonths)
	balance := principal
	for month := 1; month <= termMonths; month++ {
		interest := balance.Mul(r)
		principalPart := payment.Sub(interest)
		installment := payment
		if month == termMonths {
			principalPart = balance
			installment = interest.Add(balance)
		}
		balance = balance.Sub(principalPart)

		entries = append(entries, domain.ScheduleEntry{
			Month:            month,
			Payment:          installment.Round(2),
			Interest:         interest.Round(2),
			Principal:        principalPart.Round(2),
			RemainingBalance: balance.Round(2),
		})
	}
	return entries, nil
}
