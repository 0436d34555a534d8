package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Business is a row of the businesses table.
type Business struct {
	BusinessID       string          `db:"business_id"`
	Name             string          `db:"name"`
	Category         string          `db:"category"`
	Location         string          `db:"location"`
	Established      sql.NullTime    `db:"established"`
	Phone            string          `db:"phone"`
	Email            string          `db:"email"`
	Employees        int             `db:"employees"`
	Description      string          `db:"description"`
	CreditScore      int             `db:"credit_score"`
	LoanMaxAmount    decimal.Decimal `db:"loan_max_amount"`
	LoanInterestRate decimal.Decimal `db:"loan_interest_rate"`
	LoanTermMonths   int             `db:"loan_term_months"`
	AuditFields
}

// ScoreFactor is a row of the credit_score_factors table.
type ScoreFactor struct {
	BusinessID string `db:"business_id"`
	Factor     string `db:"factor"`
	Weight     int    `db:"weight"`
	Score      int    `db:"score"`
	MaxScore   int    `db:"max_score"`
	Position   int    `db:"position"`
}
