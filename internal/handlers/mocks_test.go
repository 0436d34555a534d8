package handlers_test

import (
	"context"

	"github.com/muhamadbasim/Lokanant/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, filter)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), next, args.Error(2)
}

func (m *MockTransactionService) RecordTransaction(ctx context.Context, draft domain.TransactionDraft) (*domain.Transaction, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, businessID, transactionID string, patch domain.TransactionPatch) (*domain.Transaction, error) {
	args := m.Called(ctx, businessID, transactionID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, businessID, transactionID string) error {
	return m.Called(ctx, businessID, transactionID).Error(0)
}

func (m *MockTransactionService) TransactionStats(ctx context.Context, businessID string) (*domain.TransactionStats, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionStats), args.Error(1)
}

func (m *MockTransactionService) MonthlyPerformance(ctx context.Context, businessID string, months int) (*domain.MonthlyPerformance, error) {
	args := m.Called(ctx, businessID, months)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyPerformance), args.Error(1)
}

// --- Mock BusinessService ---
type MockBusinessService struct {
	mock.Mock
}

func (m *MockBusinessService) ListBusinesses(ctx context.Context, limit, offset int) ([]domain.Business, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Business), args.Error(1)
}

func (m *MockBusinessService) GetBusiness(ctx context.Context, businessID string) (*domain.Business, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}

// --- Mock LoanService ---
type MockLoanService struct {
	mock.Mock
}

func (m *MockLoanService) QuoteLoan(ctx context.Context, params domain.LoanParameters, principal decimal.Decimal, termMonths int, withSchedule bool) (*domain.LoanQuote, error) {
	args := m.Called(ctx, params, principal, termMonths, withSchedule)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanQuote), args.Error(1)
}

func (m *MockLoanService) QuoteBusinessLoan(ctx context.Context, businessID string, principal *decimal.Decimal, termMonths *int, withSchedule bool) (*domain.LoanQuote, error) {
	args := m.Called(ctx, businessID, principal, termMonths, withSchedule)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanQuote), args.Error(1)
}
