package accounting

import (
	"sort"
	"time"

	"github.com/muhamadbasim/Lokanant/internal/apperrors"
	"github.com/muhamadbasim/Lokanant/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

func inconsistent(t domain.Transaction) error {
	return &apperrors.InconsistentRecordWarning{
		TransactionID: t.TransactionID,
		Category:      string(t.Category),
		Amount:        t.Amount.String(),
	}
}

// SummarizeTransactions totals income and expense for one business's ledger.
// Income is summed as stored and expense by absolute value. Records whose amount sign
// disagrees with their category are still summed; each one yields a warning in the
// returned slice so the caller can log it.
func SummarizeTransactions(transactions []domain.Transaction) (domain.TransactionStats, []error) {
	var warnings []error
	income := decimal.Zero
	expense := decimal.Zero

	for _, t := range transactions {
		if !t.SignMatchesCategory() {
			warnings = append(warnings, inconsistent(t))
		}
		switch t.Category {
		case domain.Income:
			income = income.Add(t.Amount)
		case domain.Expense:
			expense = expense.Add(t.Amount.Abs())
		}
	}

	return domain.TransactionStats{
		TotalIncome:      income,
		TotalExpense:     expense,
		NetProfit:        income.Sub(expense),
		TransactionCount: len(transactions),
	}, warnings
}

type monthKey struct {
	year  int
	month time.Month
}

// MonthlyPerformance groups a ledger by calendar month (UTC) in chronological order.
// When months > 0 only the most recent months are kept.
func MonthlyPerformance(transactions []domain.Transaction, months int) (domain.MonthlyPerformance, []error) {
	var warnings []error
	buckets := make(map[monthKey]*domain.MonthlyFigure)

	for _, t := range transactions {
		if !t.SignMatchesCategory() {
			warnings = append(warnings, inconsistent(t))
		}
		d := t.Date.UTC()
		key := monthKey{year: d.Year(), month: d.Month()}
		fig, ok := buckets[key]
		if !ok {
			fig = &domain.MonthlyFigure{
				Year:     key.year,
				Month:    int(key.month),
				Revenue:  decimal.Zero,
				Expenses: decimal.Zero,
			}
			buckets[key] = fig
		}
		switch t.Category {
		case domain.Income:
			fig.Revenue = fig.Revenue.Add(t.Amount)
		case domain.Expense:
			fig.Expenses = fig.Expenses.Add(t.Amount.Abs())
		}
	}

	figures := make([]domain.MonthlyFigure, 0, len(buckets))
	for _, fig := range buckets {
		fig.Profit = fig.Revenue.Sub(fig.Expenses)
		figures = append(figures, *fig)
	}
	sort.Slice(figures, func(i, j int) bool {
		if figures[i].Year != figures[j].Year {
			return figures[i].Year < figures[j].Year
		}
		return figures[i].Month < figures[j].Month
	})
	if months > 0 && len(figures) > months {
		figures = figures[len(figures)-months:]
	}

	return domain.MonthlyPerformance{
		Months:               figures,
		RevenueChangePercent: revenueChange(figures),
	}, warnings
}

// revenueChange is the percent change of the last month's revenue against the month before.
func revenueChange(figures []domain.MonthlyFigure) decimal.Decimal {
	if len(figures) < 2 {
		return decimal.Zero
	}
	prev := figures[len(figures)-2].Revenue
	last := figures[len(figures)-1].Revenue
	if prev.IsZero() {
		return decimal.Zero
	}
	return last.Sub(prev).Div(prev).Mul(hundred).Round(2)
}
