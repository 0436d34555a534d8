package services

import (
	"context"

	"github.com/muhamadbasim/Lokanant/internal/core/domain"
)

// TransactionReaderSvc defines read operations on a business ledger
type TransactionReaderSvc interface {
	// ListTransactions returns one page of entries and the token of the next page, if any.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, *string, error)
}

// TransactionWriterSvc defines write operations on a business ledger
type TransactionWriterSvc interface {
	// RecordTransaction validates the draft and stores it with its derived balance.
	RecordTransaction(ctx context.Context, draft domain.TransactionDraft) (*domain.Transaction, error)

	// UpdateTransaction applies a patch; the amount sign follows the resulting category.
	UpdateTransaction(ctx context.Context, businessID, transactionID string, patch domain.TransactionPatch) (*domain.Transaction, error)

	DeleteTransaction(ctx context.Context, businessID, transactionID string) error
}

// LedgerReportingSvc defines the aggregate views of a ledger
type LedgerReportingSvc interface {
	// TransactionStats totals income, expense and net profit. Inconsistent records are logged, not rejected.
	TransactionStats(ctx context.Context, businessID string) (*domain.TransactionStats, error)

	// MonthlyPerformance groups the ledger by month, keeping the last `months` months when months > 0.
	MonthlyPerformance(ctx context.Context, businessID string, months int) (*domain.MonthlyPerformance, error)
}

// TransactionSvcFacade combines all ledger service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
	LedgerReportingSvc
}
