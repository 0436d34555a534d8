package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/muhamadbasim/Lokanant/internal/apperrors"
	"github.com/muhamadbasim/Lokanant/internal/core/domain"
	portsrepo "github.com/muhamadbasim/Lokanant/internal/core/ports/repositories"
	portssvc "github.com/muhamadbasim/Lokanant/internal/core/ports/services"
	"github.com/muhamadbasim/Lokanant/internal/utils/accounting"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// transactionService owns a business's ledger: recording entries with their running balance,
// listing them, and aggregating them.
type transactionService struct {
	BaseService
	txnRepo         portsrepo.TransactionRepositoryFacade
	defaultPageSize int
	maxPageSize     int
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithPageSizes overrides the default and maximum listing page sizes.
func WithPageSizes(defaultSize, maxSize int) TransactionServiceOption {
	return func(s *transactionService) {
		if defaultSize > 0 {
			s.defaultPageSize = defaultSize
		}
		if maxSize > 0 {
			s.maxPageSize = maxSize
		}
	}
}

// WithTransactionClock replaces the clock used for audit timestamps.
func WithTransactionClock(now func() time.Time) TransactionServiceOption {
	return func(s *transactionService) {
		s.now = now
	}
}

// NewTransactionService creates a new transaction service with the provided options
func NewTransactionService(repo portsrepo.TransactionRepositoryFacade, options ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		txnRepo:         repo,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, *string, error) {
	if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.After(*filter.EndDate) {
		return nil, nil, apperrors.NewInvalidParameter("startDate", "must not be after endDate")
	}
	if filter.Category != nil && !filter.Category.Valid() {
		return nil, nil, apperrors.NewInvalidParameter("category", "must be Income or Expense")
	}
	switch {
	case filter.Limit <= 0:
		filter.Limit = s.defaultPageSize
	case filter.Limit > s.maxPageSize:
		filter.Limit = s.maxPageSize
	}

	txns, next, err := s.txnRepo.ListTransactions(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("business_id", filter.BusinessID))
		return nil, nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, next, nil
}

func (s *transactionService) RecordTransaction(ctx context.Context, draft domain.TransactionDraft) (*domain.Transaction, error) {
	if strings.TrimSpace(draft.BusinessID) == "" {
		return nil, apperrors.NewInvalidParameter("businessId", "is required")
	}
	if strings.TrimSpace(draft.Description) == "" {
		return nil, apperrors.NewInvalidParameter("description", "is required")
	}
	if draft.Date.IsZero() {
		return nil, apperrors.NewInvalidParameter("date", "is required")
	}
	// Fail fast on amount and category before touching the store.
	if _, err := accounting.SignedAmount(draft.Category, draft.EnteredAmount); err != nil {
		return nil, err
	}

	now := s.Now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		BusinessID:    draft.BusinessID,
		Date:          draft.Date.UTC(),
		Description:   strings.TrimSpace(draft.Description),
		Category:      draft.Category,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	saved, err := s.txnRepo.SaveTransaction(ctx, txn, draft.EnteredAmount)
	if err != nil {
		s.LogError(ctx, err, "Failed to record transaction",
			slog.String("business_id", draft.BusinessID),
			slog.String("category", string(draft.Category)))
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", saved.TransactionID),
		slog.String("business_id", saved.BusinessID),
		slog.String("amount", saved.Amount.String()),
		slog.String("balance", saved.Balance.String()))
	return saved, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, businessID, transactionID string, patch domain.TransactionPatch) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, businessID, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	if patch.Date != nil {
		if patch.Date.IsZero() {
			return nil, apperrors.NewInvalidParameter("date", "must not be empty")
		}
		txn.Date = patch.Date.UTC()
	}
	if patch.Description != nil {
		desc := strings.TrimSpace(*patch.Description)
		if desc == "" {
			return nil, apperrors.NewInvalidParameter("description", "must not be empty")
		}
		txn.Description = desc
	}
	if patch.Category != nil {
		if !patch.Category.Valid() {
			return nil, apperrors.NewInvalidParameter("category", "must be Income or Expense")
		}
		txn.Category = *patch.Category
	}

	// Re-derive the sign from the resulting category.
	magnitude := txn.Amount.Abs()
	if patch.Amount != nil {
		magnitude = *patch.Amount
	}
	if patch.Amount != nil || !magnitude.IsZero() {
		signed, err := accounting.SignedAmount(txn.Category, magnitude)
		if err != nil {
			return nil, err
		}
		txn.Amount = signed
	}
	txn.UpdatedAt = s.Now()

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction %s: %w", transactionID, err)
	}

	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", transactionID))
	return txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, businessID, transactionID string) error {
	if err := s.txnRepo.DeleteTransaction(ctx, businessID, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

func (s *transactionService) TransactionStats(ctx context.Context, businessID string) (*domain.TransactionStats, error) {
	txns, err := s.txnRepo.ListAllTransactions(ctx, businessID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger for statistics", slog.String("business_id", businessID))
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	stats, warnings := accounting.SummarizeTransactions(txns)
	s.logInconsistencies(ctx, businessID, warnings)
	return &stats, nil
}

func (s *transactionService) MonthlyPerformance(ctx context.Context, businessID string, months int) (*domain.MonthlyPerformance, error) {
	if months < 0 {
		return nil, apperrors.NewInvalidParameter("months", "must not be negative")
	}
	txns, err := s.txnRepo.ListAllTransactions(ctx, businessID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger for monthly performance", slog.String("business_id", businessID))
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	perf, warnings := accounting.MonthlyPerformance(txns, months)
	s.logInconsistencies(ctx, businessID, warnings)
	return &perf, nil
}

func (s *transactionService) logInconsistencies(ctx context.Context, businessID string, warnings []error) {
	for _, w := range warnings {
		var rec *apperrors.InconsistentRecordWarning
		if !errors.As(w, &rec) {
			s.LogWarn(ctx, "Ledger aggregation warning", slog.String("business_id", businessID), slog.String("detail", w.Error()))
			continue
		}
		s.LogWarn(ctx, "Transaction amount sign does not match its category",
			slog.String("business_id", businessID),
			slog.String("transaction_id", rec.TransactionID),
			slog.String("category", rec.Category),
			slog.String("amount", rec.Amount))
	}
}

