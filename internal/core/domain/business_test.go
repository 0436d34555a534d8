package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreditStatusForScore(t *testing.T) {
	assert.Equal(t, StatusGreen, CreditStatusForScore(850))
	assert.Equal(t, StatusGreen, CreditStatusForScore(800))
	assert.Equal(t, StatusYellow, CreditStatusForScore(799))
	assert.Equal(t, StatusYellow, CreditStatusForScore(650))
	assert.Equal(t, StatusRed, CreditStatusForScore(649))
	assert.Equal(t, StatusRed, CreditStatusForScore(0))
}

func TestBusinessRecommendations(t *testing.T) {
	b := Business{ScoreFactors: []ScoreFactor{
		{Factor: "Riwayat Pembayaran", Weight: 35, Score: 300, MaxScore: 350},
		{Factor: "Stabilitas Pendapatan", Weight: 25, Score: 150, MaxScore: 250},
		{Factor: "Dokumen Legal", Weight: 15, Score: 0, MaxScore: 0},
	}}

	recs := b.Recommendations()

	assert.Equal(t, []string{"Tingkatkan stabilitas pendapatan untuk meningkatkan credit score"}, recs)
	assert.Empty(t, Business{}.Recommendations())
}

func TestParseCategory(t *testing.T) {
	for in, want := range map[string]Category{
		"Income": Income, "income": Income, "Pemasukan": Income,
		"Expense": Expense, " PENGELUARAN ": Expense,
	} {
		got, err := ParseCategory(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseCategory("transfer")
	assert.Error(t, err)
}
