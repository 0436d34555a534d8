package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/muhamadbasim/Lokanant/internal/apperrors"
	"github.com/muhamadbasim/Lokanant/internal/core/domain"
	portssvc "github.com/muhamadbasim/Lokanant/internal/core/ports/services"
	"github.com/muhamadbasim/Lokanant/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var fixedNow = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  portssvc.TransactionSvcFacade
	ctx      context.Context
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.service = services.NewTransactionService(
		suite.mockRepo,
		services.WithPageSizes(10, 50),
		services.WithTransactionClock(func() time.Time { return fixedNow }),
	)
	suite.ctx = context.Background()
}

func (suite *TransactionServiceTestSuite) TestRecordTransaction_Success() {
	draft := domain.TransactionDraft{
		BusinessID:    "UMK001",
		Date:          time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
		Description:   "  Beli benang  ",
		Category:      domain.Expense,
		EnteredAmount: decimal.NewFromInt(6000000),
	}
	saved := &domain.Transaction{
		TransactionID: "t-1",
		BusinessID:    "UMK001",
		Category:      domain.Expense,
		Amount:        decimal.NewFromInt(-6000000),
		Balance:       decimal.NewFromInt(9000000),
	}

	suite.mockRepo.On("SaveTransaction", suite.ctx,
		mock.MatchedBy(func(t domain.Transaction) bool {
			return t.TransactionID != "" &&
				t.BusinessID == "UMK001" &&
				t.Description == "Beli benang" &&
				t.Category == domain.Expense &&
				t.CreatedAt.Equal(fixedNow)
		}),
		decimal.NewFromInt(6000000),
	).Return(saved, nil).Once()

	got, err := suite.service.RecordTransaction(suite.ctx, draft)

	suite.Require().NoError(err)
	suite.Equal(saved, got)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestRecordTransaction_InvalidDraft() {
	base := domain.TransactionDraft{
		BusinessID:    "UMK001",
		Date:          fixedNow,
		Description:   "Penjualan",
		Category:      domain.Income,
		EnteredAmount: decimal.NewFromInt(100),
	}
	cases := map[string]func(d *domain.TransactionDraft){
		"zero amount":      func(d *domain.TransactionDraft) { d.EnteredAmount = decimal.Zero },
		"negative amount":  func(d *domain.TransactionDraft) { d.EnteredAmount = decimal.NewFromInt(-1) },
		"sub-cent amount":  func(d *domain.TransactionDraft) { d.EnteredAmount = decimal.RequireFromString("100.005") },
		"oversized amount": func(d *domain.TransactionDraft) { d.EnteredAmount = decimal.RequireFromString("12345678901234567") },
		"unknown category": func(d *domain.TransactionDraft) { d.Category = "Transfer" },
		"no description":   func(d *domain.TransactionDraft) { d.Description = " " },
		"no date":          func(d *domain.TransactionDraft) { d.Date = time.Time{} },
		"no business":      func(d *domain.TransactionDraft) { d.BusinessID = "" },
	}
	for name, mutate := range cases {
		suite.Run(name, func() {
			d := base
			mutate(&d)
			_, err := suite.service.RecordTransaction(suite.ctx, d)
			suite.ErrorIs(err, apperrors.ErrInvalidParameter)
		})
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestRecordTransaction_RepoError() {
	suite.mockRepo.On("SaveTransaction", suite.ctx, mock.AnythingOfType("domain.Transaction"), mock.Anything).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.RecordTransaction(suite.ctx, domain.TransactionDraft{
		BusinessID: "UMK404", Date: fixedNow, Description: "x", Category: domain.Income, EnteredAmount: decimal.NewFromInt(1),
	})

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_CategoryFlipRenormalizesSign() {
	existing := &domain.Transaction{
		TransactionID: "t-1",
		BusinessID:    "UMK001",
		Description:   "Penjualan",
		Category:      domain.Income,
		Amount:        decimal.NewFromInt(500),
		Balance:       decimal.NewFromInt(1500),
	}
	suite.mockRepo.On("FindTransactionByID", suite.ctx, "UMK001", "t-1").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateTransaction", suite.ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	expense := domain.Expense
	got, err := suite.service.UpdateTransaction(suite.ctx, "UMK001", "t-1", domain.TransactionPatch{Category: &expense})

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(-500).Equal(got.Amount))
	suite.True(decimal.NewFromInt(1500).Equal(got.Balance), "balance is not recomputed")
	suite.Equal(fixedNow, got.UpdatedAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_RejectsSubCentAmount() {
	existing := &domain.Transaction{TransactionID: "t-3", BusinessID: "UMK001", Category: domain.Income, Amount: decimal.NewFromInt(10)}
	suite.mockRepo.On("FindTransactionByID", suite.ctx, "UMK001", "t-3").Return(existing, nil).Once()

	amount := decimal.RequireFromString("10.125")
	_, err := suite.service.UpdateTransaction(suite.ctx, "UMK001", "t-3", domain.TransactionPatch{Amount: &amount})

	suite.ErrorIs(err, apperrors.ErrInvalidParameter)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_NewAmount() {
	existing := &domain.Transaction{TransactionID: "t-2", BusinessID: "UMK001", Category: domain.Expense, Amount: decimal.NewFromInt(-10)}
	suite.mockRepo.On("FindTransactionByID", suite.ctx, "UMK001", "t-2").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateTransaction", suite.ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Amount.Equal(decimal.NewFromInt(-25))
	})).Return(nil).Once()

	amount := decimal.NewFromInt(25)
	_, err := suite.service.UpdateTransaction(suite.ctx, "UMK001", "t-2", domain.TransactionPatch{Amount: &amount})

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_NotFound() {
	suite.mockRepo.On("FindTransactionByID", suite.ctx, "UMK001", "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateTransaction(suite.ctx, "UMK001", "missing", domain.TransactionPatch{})

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction() {
	suite.mockRepo.On("DeleteTransaction", suite.ctx, "UMK001", "t-1").Return(nil).Once()
	suite.NoError(suite.service.DeleteTransaction(suite.ctx, "UMK001", "t-1"))

	suite.mockRepo.On("DeleteTransaction", suite.ctx, "UMK001", "t-9").Return(apperrors.ErrNotFound).Once()
	suite.ErrorIs(suite.service.DeleteTransaction(suite.ctx, "UMK001", "t-9"), apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_ClampsLimit() {
	next := "token"
	suite.mockRepo.On("ListTransactions", suite.ctx, mock.MatchedBy(func(f domain.TransactionFilter) bool {
		return f.Limit == 50
	})).Return([]domain.Transaction{}, &next, nil).Once()

	_, gotNext, err := suite.service.ListTransactions(suite.ctx, domain.TransactionFilter{BusinessID: "UMK001", Limit: 500})

	suite.Require().NoError(err)
	suite.Equal(&next, gotNext)

	suite.mockRepo.On("ListTransactions", suite.ctx, mock.MatchedBy(func(f domain.TransactionFilter) bool {
		return f.Limit == 10
	})).Return([]domain.Transaction{}, nil, nil).Once()
	_, gotNext, err = suite.service.ListTransactions(suite.ctx, domain.TransactionFilter{BusinessID: "UMK001"})
	suite.Require().NoError(err)
	suite.Nil(gotNext)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_InvalidRange() {
	start := fixedNow
	end := fixedNow.AddDate(0, -1, 0)

	_, _, err := suite.service.ListTransactions(suite.ctx, domain.TransactionFilter{BusinessID: "UMK001", StartDate: &start, EndDate: &end})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestTransactionStats() {
	txns := []domain.Transaction{
		{TransactionID: "1", Category: domain.Income, Amount: decimal.NewFromInt(15000000), Date: fixedNow},
		{TransactionID: "2", Category: domain.Expense, Amount: decimal.NewFromInt(-6000000), Date: fixedNow},
		// inconsistent sign: summed as stored, logged as a warning
		{TransactionID: "3", Category: domain.Expense, Amount: decimal.NewFromInt(1000000), Date: fixedNow},
	}
	suite.mockRepo.On("ListAllTransactions", suite.ctx, "UMK001").Return(txns, nil).Once()

	stats, err := suite.service.TransactionStats(suite.ctx, "UMK001")

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(15000000).Equal(stats.TotalIncome))
	suite.True(decimal.NewFromInt(7000000).Equal(stats.TotalExpense))
	suite.True(decimal.NewFromInt(8000000).Equal(stats.NetProfit))
	suite.Equal(3, stats.TransactionCount)
}

func (suite *TransactionServiceTestSuite) TestTransactionStats_RepoError() {
	suite.mockRepo.On("ListAllTransactions", suite.ctx, "UMK001").Return(nil, fmt.Errorf("boom")).Once()

	stats, err := suite.service.TransactionStats(suite.ctx, "UMK001")

	suite.Error(err)
	suite.Nil(stats)
}

func (suite *TransactionServiceTestSuite) TestMonthlyPerformance() {
	txns := []domain.Transaction{
		{TransactionID: "1", Category: domain.Income, Amount: decimal.NewFromInt(100), Date: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)},
		{TransactionID: "2", Category: domain.Income, Amount: decimal.NewFromInt(150), Date: time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC)},
	}
	suite.mockRepo.On("ListAllTransactions", suite.ctx, "UMK001").Return(txns, nil).Once()

	perf, err := suite.service.MonthlyPerformance(suite.ctx, "UMK001", 6)

	suite.Require().NoError(err)
	suite.Len(perf.Months, 2)
	suite.True(decimal.NewFromInt(50).Equal(perf.RevenueChangePercent))

	_, err = suite.service.MonthlyPerformance(suite.ctx, "UMK001", -1)
	suite.ErrorIs(err, apperrors.ErrInvalidParameter)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

func TestNewTransactionService_Defaults(t *testing.T) {
	repo := new(MockTransactionRepository)
	svc := services.NewTransactionService(repo)

	repo.On("ListTransactions", mock.Anything, mock.MatchedBy(func(f domain.TransactionFilter) bool {
		return f.Limit == 20
	})).Return([]domain.Transaction{}, nil, nil).Once()

	_, _, err := svc.ListTransactions(context.Background(), domain.TransactionFilter{BusinessID: "UMK001"})
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
