package dto

import (
	"fmt"
	"time"

	"github.com/muhamadbasim/Lokanant/internal/core/domain"
	"github.com/shopspring/decimal"
)

const dateOnly = "2006-01-02"

// ParseDate accepts a calendar date (2006-01-02) or a full RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD or RFC 3339", s)
	}
	return t.UTC(), nil
}

// CreateTransactionRequest defines the data needed to record a ledger entry.
// Amount is the unsigned value as typed by the user; the sign follows the category.
type CreateTransactionRequest struct {
	Date        string          `json:"date" binding:"required" example:"2024-05-20"`
	Description string          `json:"description" binding:"required,max=255" example:"Penjualan kain tenun"`
	Category    string          `json:"category" binding:"required,ledgercategory" example:"Income"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"2500000"`
}

// ToDraft converts the request into a domain draft for a business.
func (r CreateTransactionRequest) ToDraft(businessID string) (domain.TransactionDraft, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return domain.TransactionDraft{}, err
	}
	category, err := domain.ParseCategory(r.Category)
	if err != nil {
		return domain.TransactionDraft{}, err
	}
	return domain.TransactionDraft{
		BusinessID:    businessID,
		Date:          date,
		Description:   r.Description,
		Category:      category,
		EnteredAmount: r.Amount,
	}, nil
}

// UpdateTransactionRequest defines the fields allowed when updating an entry.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateTransactionRequest struct {
	Date        *string          `json:"date"`
	Description *string          `json:"description" binding:"omitempty,max=255"`
	Category    *string          `json:"category" binding:"omitempty,ledgercategory"`
	Amount      *decimal.Decimal `json:"amount" swaggertype:"string"`
}

// ToPatch converts the request into a domain patch.
func (r UpdateTransactionRequest) ToPatch() (domain.TransactionPatch, error) {
	var patch domain.TransactionPatch
	if r.Date != nil {
		date, err := ParseDate(*r.Date)
		if err != nil {
			return patch, err
		}
		patch.Date = &date
	}
	if r.Category != nil {
		category, err := domain.ParseCategory(*r.Category)
		if err != nil {
			return patch, err
		}
		patch.Category = &category
	}
	patch.Description = r.Description
	patch.Amount = r.Amount
	return patch, nil
}

// ListTransactionsParams defines query parameters for listing entries.
type ListTransactionsParams struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Category  string `form:"category" binding:"omitempty,ledgercategory"`
	Limit     int    `form:"limit" binding:"omitempty,min=1"`
	NextToken string `form:"next_token"`
}

// ToFilter converts the query into a domain filter. A date-only end date covers the whole day.
func (p ListTransactionsParams) ToFilter(businessID string) (domain.TransactionFilter, error) {
	filter := domain.TransactionFilter{BusinessID: businessID, Limit: p.Limit}
	if p.StartDate != "" {
		start, err := ParseDate(p.StartDate)
		if err != nil {
			return filter, err
		}
		filter.StartDate = &start
	}
	if p.EndDate != "" {
		end, err := ParseDate(p.EndDate)
		if err != nil {
			return filter, err
		}
		if _, dateOnlyErr := time.Parse(dateOnly, p.EndDate); dateOnlyErr == nil {
			end = end.Add(24*time.Hour - time.Nanosecond)
		}
		filter.EndDate = &end
	}
	if p.Category != "" {
		category, err := domain.ParseCategory(p.Category)
		if err != nil {
			return filter, err
		}
		filter.Category = &category
	}
	if p.NextToken != "" {
		token := p.NextToken
		filter.NextToken = &token
	}
	return filter, nil
}

// TransactionResponse defines the data returned for a ledger entry.
type TransactionResponse struct {
	TransactionID string          `json:"id"`
	BusinessID    string          `json:"businessId"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	Category      domain.Category `json:"category"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"string"`
	Balance       decimal.Decimal `json:"balance" swaggertype:"string"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ListTransactionsResponse is one page of entries.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to its DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		BusinessID:    t.BusinessID,
		Date:          t.Date,
		Description:   t.Description,
		Category:      t.Category,
		Amount:        t.Amount,
		Balance:       t.Balance,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

// ToListTransactionsResponse converts a page of domain transactions.
func ToListTransactionsResponse(txns []domain.Transaction, nextToken *string) ListTransactionsResponse {
	res := ListTransactionsResponse{
		Transactions: make([]TransactionResponse, len(txns)),
		NextToken:    nextToken,
	}
	for i := range txns {
		res.Transactions[i] = ToTransactionResponse(&txns[i])
	}
	return res
}

// MonthlyPerformanceParams defines query parameters for the monthly view.
type MonthlyPerformanceParams struct {
	Months int `form:"months,default=6" binding:"min=0,max=120"`
}
