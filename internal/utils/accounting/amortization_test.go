package accounting

import (
	"testing"

	"github.com/muhamadbasim/Lokanant/internal/apperrors"
	"github.com/muhamadbasim/Lokanant/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyPayment_AmortizesPrincipal(t *testing.T) {
	principal := dec("100000000")
	rate := dec("8.5")
	term := 24

	payment, err := MonthlyPayment(principal, rate, term)
	require.NoError(t, err)
	assert.True(t, payment.IsPositive())

	r := MonthlyRate(rate)
	balance := principal
	for i := 0; i < term; i++ {
		balance = balance.Add(balance.Mul(r)).Sub(payment)
	}
	assert.True(t, balance.Abs().LessThanOrEqual(decimal.NewFromInt(1)), "remaining balance %s", balance)

	// 100M over 24 months at 8.5% is roughly 4.546M per month
	assert.Equal(t, "4545567", payment.Round(0).String())
}

func TestMonthlyPayment_ZeroRate(t *testing.T) {
	payment, err := MonthlyPayment(dec("120000000"), decimal.Zero, 12)
	require.NoError(t, err)
	assert.True(t, dec("10000000").Equal(payment), "got %s", payment)
}

func TestMonthlyPayment_InvalidParameters(t *testing.T) {
	tests := []struct {
		name      string
		principal string
		rate      string
		term      int
		field     string
	}{
		{"zero principal", "0", "8.5", 12, "principal"},
		{"negative principal", "-1", "8.5", 12, "principal"},
		{"zero term", "1000", "8.5", 0, "term"},
		{"term beyond fifty years", "1000", "8.5", MaxTermMonths + 1, "term"},
		{"negative rate", "1000", "-1", 12, "rate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MonthlyPayment(dec(tt.principal), dec(tt.rate), tt.term)
			var ipe *apperrors.InvalidParameterError
			require.ErrorAs(t, err, &ipe)
			assert.Equal(t, tt.field, ipe.Field)
		})
	}
}

func TestQuoteLoan(t *testing.T) {
	params := domain.LoanParameters{MaxAmount: dec("150000000"), AnnualInterestRatePercent: dec("8.5"), TermMonths: 24}

	quote, err := QuoteLoan(params, dec("100000000"), 24, false)
	require.NoError(t, err)

	assert.True(t, quote.MonthlyPayment.Round(0).Equal(quote.RoundedMonthlyPayment))
	assert.True(t, quote.RoundedMonthlyPayment.Mul(decimal.NewFromInt(24)).Equal(quote.TotalRepayment))
	assert.True(t, quote.TotalRepayment.Sub(dec("100000000")).Equal(quote.TotalInterest))
	assert.Nil(t, quote.Schedule)

	zero := domain.LoanParameters{MaxAmount: dec("150000000"), AnnualInterestRatePercent: decimal.Zero, TermMonths: 12}
	quote, err = QuoteLoan(zero, dec("120000000"), 12, true)
	require.NoError(t, err)
	assert.True(t, dec("120000000").Equal(quote.TotalRepayment))
	assert.True(t, quote.TotalInterest.IsZero())
	assert.Len(t, quote.Schedule, 12)
}

func TestValidateLoanRequest(t *testing.T) {
	params := domain.LoanParameters{MaxAmount: dec("80000000"), AnnualInterestRatePercent: dec("10.5"), TermMonths: 18}

	assert.NoError(t, ValidateLoanRequest(params, dec("80000000"), 18))
	assert.NoError(t, ValidateLoanRequest(params, dec("1"), 1))

	for _, tc := range []struct {
		principal string
		term      int
	}{
		{"0", 12},
		{"80000000.01", 12},
		{"1000", 0},
		{"1000", 19},
	} {
		err := ValidateLoanRequest(params, dec(tc.principal), tc.term)
		assert.ErrorIs(t, err, apperrors.ErrInvalidParameter, "principal=%s term=%d", tc.principal, tc.term)
	}
}

func TestAmortizationSchedule(t *testing.T) {
	schedule, err := AmortizationSchedule(dec("100000000"), dec("8.5"), 24)
	require.NoError(t, err)
	require.Len(t, schedule, 24)

	assert.Equal(t, 1, schedule[0].Month)
	// first month interest is principal * 8.5% / 12
	assert.Equal(t, "708333.33", schedule[0].Interest.StringFixed(2))
	assert.True(t, schedule[23].RemainingBalance.IsZero())

	paid := decimal.Zero
	for i, e := range schedule {
		paid = paid.Add(e.Principal)
		if i > 0 {
			assert.True(t, e.Interest.LessThan(schedule[i-1].Interest), "interest should fall every month")
		}
	}
	assert.True(t, paid.Sub(dec("100000000")).Abs().LessThanOrEqual(dec("0.25")), "principal paid %s", paid)
}

func TestQuoteLoan_RejectsOverlongTerm(t *testing.T) {
	// An offer that allows any term must still be refused before compounding starts.
	params := domain.LoanParameters{MaxAmount: dec("1000"), AnnualInterestRatePercent: dec("8.5"), TermMonths: 2000000000}

	_, err := QuoteLoan(params, dec("1000"), 2000000000, false)

	var ipe *apperrors.InvalidParameterError
	require.ErrorAs(t, err, &ipe)
	assert.Equal(t, "term", ipe.Field)
}

func TestMonthlyPayment_LongestTerm(t *testing.T) {
	payment, err := MonthlyPayment(dec("1000"), dec("8.5"), MaxTermMonths)
	require.NoError(t, err)

	r := MonthlyRate(dec("8.5"))
	balance := dec("1000")
	for i := 0; i < MaxTermMonths; i++ {
		balance = balance.Add(balance.Mul(r)).Sub(payment).Round(12)
	}
	assert.True(t, balance.Abs().LessThan(dec("0.01")), "remaining balance %s", balance)
}
