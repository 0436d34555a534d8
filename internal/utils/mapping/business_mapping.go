package mapping

import (
	"github.com/muhamadbasim/Lokanant/internal/core/domain"
	"github.com/muhamadbasim/Lokanant/internal/models"
)

// ToDomainBusiness converts a business row and its score factor rows to a domain Business.
func ToDomainBusiness(m models.Business, factors []models.ScoreFactor) domain.Business {
	b := domain.Business{
		BusinessID:  m.BusinessID,
		Name:        m.Name,
		Category:    m.Category,
		Location:    m.Location,
		Phone:       m.Phone,
		Email:       m.Email,
		Employees:   m.Employees,
		Description: m.Description,
		CreditScore: m.CreditScore,
		LoanEligibility: domain.LoanParameters{
			MaxAmount:                 m.LoanMaxAmount,
			AnnualInterestRatePercent: m.LoanInterestRate,
			TermMonths:                m.LoanTermMonths,
		},
		ScoreFactors: make([]domain.ScoreFactor, 0, len(factors)),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
	if m.Established.Valid {
		est := m.Established.Time
		b.Established = &est
	}
	for _, f := range factors {
		b.ScoreFactors = append(b.ScoreFactors, domain.ScoreFactor{
			Factor:   f.Factor,
			Weight:   f.Weight,
			Score:    f.Score,
			MaxScore: f.MaxScore,
		})
	}
	return b
}
