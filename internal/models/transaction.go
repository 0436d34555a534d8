package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table.
// The validate tags describe the shape a row must have before it reaches the ledger core.
type Transaction struct {
	TransactionID string          `json:"id" db:"transaction_id" validate:"required"`
	BusinessID    string          `json:"businessId" db:"business_id" validate:"required"`
	Date          time.Time       `json:"date" db:"date" validate:"required"`
	Description   string          `json:"description" db:"description"`
	Category      string          `json:"category" db:"category" validate:"required,oneof=Income Expense"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	Balance       decimal.Decimal `json:"balance" db:"balance"`
	Seq           int64           `json:"-" db:"seq"`
	AuditFields
}
