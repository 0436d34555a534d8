package accounting

import (
	"testing"
	"time"

	"github.com/muhamadbasim/Lokanant/internal/apperrors"
	"github.com/muhamadbasim/Lokanant/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestDeriveBalance(t *testing.T) {
	tests := []struct {
		name        string
		previous    string
		category    domain.Category
		entered     string
		wantSigned  string
		wantBalance string
	}{
		{"expense reduces balance", "15000000", domain.Expense, "6000000", "-6000000", "9000000"},
		{"income on empty ledger", "0", domain.Income, "2500000", "2500000", "2500000"},
		{"expense can go negative", "1000", domain.Expense, "2500.50", "-2500.50", "-1500.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signed, balance, err := DeriveBalance(dec(tt.previous), tt.category, dec(tt.entered))
			require.NoError(t, err)
			assert.True(t, dec(tt.wantSigned).Equal(signed), "signed amount: got %s", signed)
			assert.True(t, dec(tt.wantBalance).Equal(balance), "balance: got %s", balance)
		})
	}
}

func TestDeriveBalance_RejectsNonPositiveAmount(t *testing.T) {
	for _, amount := range []string{"0", "-5"} {
		_, _, err := DeriveBalance(decimal.Zero, domain.Income, dec(amount))
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidParameter)

		var ipe *apperrors.InvalidParameterError
		require.ErrorAs(t, err, &ipe)
		assert.Equal(t, "amount", ipe.Field)
	}
}

func TestSignedAmount_ScaleAndMagnitude(t *testing.T) {
	signed, err := SignedAmount(domain.Expense, dec("100.500"))
	require.NoError(t, err)
	assert.True(t, dec("-100.5").Equal(signed))

	signed, err = SignedAmount(domain.Income, dec("9999999999999999.99"))
	require.NoError(t, err)
	assert.True(t, dec("9999999999999999.99").Equal(signed))

	for _, amount := range []string{"100.005", "0.001", "10000000000000000", "12345678901234567.5"} {
		_, err := SignedAmount(domain.Income, dec(amount))
		var ipe *apperrors.InvalidParameterError
		require.ErrorAs(t, err, &ipe, "amount %s", amount)
		assert.Equal(t, "amount", ipe.Field)
	}
}

func TestDeriveBalance_RejectsBalanceOverflow(t *testing.T) {
	_, _, err := DeriveBalance(dec("9999999999999999"), domain.Income, dec("1"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidParameter)

	_, balance, err := DeriveBalance(dec("9999999999999999"), domain.Expense, dec("1"))
	require.NoError(t, err)
	assert.True(t, dec("9999999999999998").Equal(balance))
}

func TestDeriveBalance_RejectsUnknownCategory(t *testing.T) {
	_, _, err := DeriveBalance(decimal.Zero, domain.Category("Transfer"), dec("10"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestLatestBalance(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, LatestBalance(nil).IsZero())

	txns := []domain.Transaction{
		{TransactionID: "a", Date: day, Sequence: 1, Balance: dec("100")},
		{TransactionID: "c", Date: day.AddDate(0, 0, 1), Sequence: 2, Balance: dec("300")},
		{TransactionID: "b", Date: day.AddDate(0, 0, 1), Sequence: 3, Balance: dec("250")},
		{TransactionID: "d", Date: day.AddDate(0, 0, -3), Sequence: 4, Balance: dec("999")},
	}
	// same date: the later insertion wins
	assert.True(t, dec("250").Equal(LatestBalance(txns)))
}
