package accounting

import (
	"github.com/muhamadbasim/Lokanant/internal/apperrors"
	"github.com/muhamadbasim/Lokanant/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AmountScale is the number of decimal places stored for amounts and balances.
const AmountScale = 2

// storedMagnitudeLimit is the exclusive bound of a NUMERIC(18, 2) column.
var storedMagnitudeLimit = decimal.New(1, 16)

// SignedAmount applies the sign implied by the category to an unsigned entered amount.
// Income is stored positive, Expense negative.
func SignedAmount(category domain.Category, enteredAmount decimal.Decimal) (decimal.Decimal, error) {
	if !enteredAmount.IsPositive() {
		return decimal.Zero, apperrors.NewInvalidParameter("amount", "must be greater than zero")
	}
	if !enteredAmount.Equal(enteredAmount.Truncate(AmountScale)) {
		return decimal.Zero, apperrors.NewInvalidParameter("amount", "must not have more than two decimal places")
	}
	if enteredAmount.GreaterThanOrEqual(storedMagnitudeLimit) {
		return decimal.Zero, apperrors.NewInvalidParameter("amount", "must be less than "+storedMagnitudeLimit.String())
	}
	switch category {
	case domain.Income:
		return enteredAmount, nil
	case domain.Expense:
		return enteredAmount.Neg(), nil
	default:
		return decimal.Zero, apperrors.NewInvalidParameter("category", "must be Income or Expense")
	}
}

// DeriveBalance computes the stored amount and running balance of a new entry.
// The repository applies it inside the insert's database transaction.
func DeriveBalance(previousBalance decimal.Decimal, category domain.Category, enteredAmount decimal.Decimal) (signed, newBalance decimal.Decimal, err error) {
	signed, err = SignedAmount(category, enteredAmount)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	newBalance = previousBalance.Add(signed)
	if newBalance.Abs().GreaterThanOrEqual(storedMagnitudeLimit) {
		return decimal.Zero, decimal.Zero, apperrors.NewInvalidParameter("amount", "would take the balance out of range")
	}
	return signed, newBalance, nil
}

// LatestBalance returns the balance of the most recent transaction, or zero for an empty ledger.
// Recency is by date, then by insertion order.
func LatestBalance(transactions []domain.Transaction) decimal.Decimal {
	if len(transactions) == 0 {
		return decimal.Zero
	}
	latest := transactions[0]
	for _, t := range transactions[1:] {
		if t.NewerThan(latest) {
			latest = t
		}
	}
	return latest.Balance
}
