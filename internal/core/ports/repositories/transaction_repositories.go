package repositories

import (
	"context"

	"github.com/muhamadbasim/Lokanant/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionReader defines read operations for ledger entries
type TransactionReader interface {
	// FindTransactionByID retrieves one entry of a business. Returns apperrors.ErrNotFound when missing.
	FindTransactionByID(ctx context.Context, businessID, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a filtered page ordered by date DESC, then insertion order DESC.
	// It returns the transactions, a token for the next page, and an error.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, *string, error)

	// ListAllTransactions retrieves every entry of a business, used for aggregation.
	ListAllTransactions(ctx context.Context, businessID string) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for ledger entries
type TransactionWriter interface {
	// SaveTransaction derives the amount and running balance of the entry from the latest
	// balance of the business and inserts it, all within one database transaction.
	// enteredAmount is unsigned; the stored sign follows txn.Category.
	SaveTransaction(ctx context.Context, txn domain.Transaction, enteredAmount decimal.Decimal) (*domain.Transaction, error)

	// UpdateTransaction overwrites date, description, category and amount. The balance is not touched.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes one entry of a business.
	DeleteTransaction(ctx context.Context, businessID, transactionID string) error
}

// TransactionRepositoryFacade combines all ledger repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
