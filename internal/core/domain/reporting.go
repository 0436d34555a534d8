package domain

import "github.com/shopspring/decimal"

// TransactionStats is the ledger aggregate of one business.
type TransactionStats struct {
	TotalIncome      decimal.Decimal `json:"totalIncome"`
	TotalExpense     decimal.Decimal `json:"totalExpense"`
	NetProfit        decimal.Decimal `json:"netProfit"`
	TransactionCount int             `json:"transactionCount"`
}

// MonthlyFigure is revenue, expenses and profit for one calendar month.
type MonthlyFigure struct {
	Year     int             `json:"year"`
	Month    int             `json:"month"` // 1-12
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
	Profit   decimal.Decimal `json:"profit"`
}

// MonthlyPerformance is a chronological series of monthly figures.
type MonthlyPerformance struct {
	Months []MonthlyFigure `json:"months"`
	// RevenueChangePercent compares the last month with the one before it.
	RevenueChangePercent decimal.Decimal `json:"revenueChangePercent"`
}
