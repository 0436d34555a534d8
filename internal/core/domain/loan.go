package domain

import "github.com/shopspring/decimal"

// LoanParameters is the simulated loan offer a business is eligible for.
type LoanParameters struct {
	MaxAmount                 decimal.Decimal `json:"maxAmount"`
	AnnualInterestRatePercent decimal.Decimal `json:"annualInterestRatePercent"` // 8.5 means 8.5% per year
	TermMonths                int             `json:"termMonths"`
}

// LoanQuote is the result of simulating one (principal, term) pair.
type LoanQuote struct {
	Principal                 decimal.Decimal `json:"principal"`
	AnnualInterestRatePercent decimal.Decimal `json:"annualInterestRatePercent"`
	TermMonths                int             `json:"termMonths"`
	MonthlyPayment            decimal.Decimal `json:"monthlyPayment"`        // unrounded
	RoundedMonthlyPayment     decimal.Decimal `json:"roundedMonthlyPayment"` // whole currency units
	TotalRepayment            decimal.Decimal `json:"totalRepayment"`        // rounded payment * term
	TotalInterest             decimal.Decimal `json:"totalInterest"`
	Schedule                  []ScheduleEntry `json:"schedule,omitempty"`
}

// ScheduleEntry is one installment of an amortization schedule.
type ScheduleEntry struct {
	Month            int             `json:"month"`
	Payment          decimal.Decimal `json:"payment"`
	Interest         decimal.Decimal `json:"interest"`
	Principal        decimal.Decimal `json:"principal"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
}
