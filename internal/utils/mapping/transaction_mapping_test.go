package mapping

import (
	"testing"
	"time"

	"github.com/muhamadbasim/Lokanant/internal/core/domain"
	"github.com/muhamadbasim/Lokanant/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRow() models.Transaction {
	return models.Transaction{
		TransactionID: "txn-1",
		BusinessID:    "UMK001",
		Date:          time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Description:   "Penjualan kain tenun",
		Category:      "Income",
		Amount:        decimal.NewFromInt(2500000),
		Balance:       decimal.NewFromInt(2500000),
		Seq:           7,
	}
}

func TestToDomainTransactionSlice(t *testing.T) {
	ds, err := ToDomainTransactionSlice([]models.Transaction{validRow()})
	require.NoError(t, err)
	require.Len(t, ds, 1)
	assert.Equal(t, domain.Income, ds[0].Category)
	assert.Equal(t, int64(7), ds[0].Sequence)
	assert.True(t, decimal.NewFromInt(2500000).Equal(ds[0].Balance))
}

func TestToDomainTransactionSlice_RejectsMalformedRows(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Transaction)
	}{
		{"unknown category", func(m *models.Transaction) { m.Category = "Transfer" }},
		{"missing business", func(m *models.Transaction) { m.BusinessID = "" }},
		{"missing date", func(m *models.Transaction) { m.Date = time.Time{} }},
		{"missing id", func(m *models.Transaction) { m.TransactionID = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := validRow()
			tt.mutate(&row)
			_, err := ToDomainTransactionSlice([]models.Transaction{validRow(), row})
			assert.Error(t, err)
		})
	}
}

func TestToModelTransaction(t *testing.T) {
	d := ToDomainTransaction(validRow())
	assert.Equal(t, validRow(), ToModelTransaction(d))
}
