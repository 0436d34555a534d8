package domain

import (
	"fmt"
	"strings"
	"time"
)

// CreditStatus is the traffic-light classification of a credit score.
type CreditStatus string

const (
	StatusGreen  CreditStatus = "hijau"
	StatusYellow CreditStatus = "kuning"
	StatusRed    CreditStatus = "merah"
)

// Score thresholds for CreditStatusForScore.
const (
	GreenScoreThreshold  = 800
	YellowScoreThreshold = 650
)

// weakFactorRatio is the share of a factor's max score below which a recommendation is issued.
const weakFactorRatio = 0.7

// CreditStatusForScore maps a 0-1000 credit score to its status.
func CreditStatusForScore(score int) CreditStatus {
	switch {
	case score >= GreenScoreThreshold:
		return StatusGreen
	case score >= YellowScoreThreshold:
		return StatusYellow
	default:
		return StatusRed
	}
}

// ScoreFactor is one weighted component of a business's credit score.
type ScoreFactor struct {
	Factor   string `json:"factor"`
	Weight   int    `json:"weight"`
	Score    int    `json:"score"`
	MaxScore int    `json:"maxScore"`
}

// Weak reports whether the factor scored under 70% of its maximum.
func (f ScoreFactor) Weak() bool {
	if f.MaxScore <= 0 {
		return false
	}
	return float64(f.Score)/float64(f.MaxScore) < weakFactorRatio
}

// Business is an UMKM registered in the dashboard.
type Business struct {
	BusinessID      string         `json:"id"`
	Name            string         `json:"name"`
	Category        string         `json:"category"`
	Location        string         `json:"location"`
	Established     *time.Time     `json:"established,omitempty"`
	Phone           string         `json:"phone"`
	Email           string         `json:"email"`
	Employees       int            `json:"employees"`
	Description     string         `json:"description"`
	CreditScore     int            `json:"creditScore"`
	LoanEligibility LoanParameters `json:"loanEligibility"`
	ScoreFactors    []ScoreFactor  `json:"scoreFactors"`
	AuditFields
}

// Status derives the credit status from the current score.
func (b Business) Status() CreditStatus {
	return CreditStatusForScore(b.CreditScore)
}

// Recommendations lists improvement hints for every weak score factor.
func (b Business) Recommendations() []string {
	recs := make([]string, 0)
	for _, f := range b.ScoreFactors {
		if f.Weak() {
			recs = append(recs, fmt.Sprintf("Tingkatkan %s untuk meningkatkan credit score", strings.ToLower(f.Factor)))
		}
	}
	return recs
}
