package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Category classifies a ledger entry as money coming in or going out.
type Category string

const (
	Income  Category = "Income"
	Expense Category = "Expense"
)

// ParseCategory accepts the canonical names and the Indonesian labels used by the dashboard.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income", "pemasukan":
		return Income, nil
	case "expense", "pengeluaran":
		return Expense, nil
	}
	return "", fmt.Errorf("unknown transaction category %q", s)
}

// Valid reports whether c is one of the two known categories.
func (c Category) Valid() bool {
	return c == Income || c == Expense
}

// Transaction is one ledger entry of a business.
type Transaction struct {
	TransactionID string          `json:"id"`
	BusinessID    string          `json:"businessId"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	Category      Category        `json:"category"`
	Amount        decimal.Decimal `json:"amount"`  // positive for Income, negative for Expense
	Balance       decimal.Decimal `json:"balance"` // running balance after this entry
	Sequence      int64           `json:"-"`       // store insertion order, tie-break for equal dates
	AuditFields
}

// SignMatchesCategory reports whether the stored amount carries the sign its category implies.
// A zero amount is treated as consistent with either category.
func (t Transaction) SignMatchesCategory() bool {
	switch t.Category {
	case Income:
		return !t.Amount.IsNegative()
	case Expense:
		return !t.Amount.IsPositive()
	}
	return false
}

// NewerThan orders transactions by date, then by insertion order.
func (t Transaction) NewerThan(other Transaction) bool {
	if !t.Date.Equal(other.Date) {
		return t.Date.After(other.Date)
	}
	return t.Sequence > other.Sequence
}

// TransactionDraft is a new entry as entered by a user, before its balance is derived.
type TransactionDraft struct {
	BusinessID    string
	Date          time.Time
	Description   string
	Category      Category
	EnteredAmount decimal.Decimal // unsigned, must be > 0
}

// TransactionPatch carries the fields of an update; nil means unchanged.
type TransactionPatch struct {
	Date        *time.Time
	Description *string
	Category    *Category
	Amount      *decimal.Decimal // unsigned; the sign is taken from the resulting category
}

// TransactionFilter narrows a transaction listing.
type TransactionFilter struct {
	BusinessID string
	StartDate  *time.Time
	EndDate    *time.Time
	Category   *Category
	Limit      int
	NextToken  *string
}
