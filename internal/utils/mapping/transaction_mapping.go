package mapping

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/muhamadbasim/Lokanant/internal/core/domain"
	"github.com/muhamadbasim/Lokanant/internal/models"
)

// recordValidator checks rows read from the store before they are converted.
var recordValidator = validator.New(validator.WithRequiredStructEnabled())

// ValidateTransactionModel checks a stored row against the Transaction shape.
func ValidateTransactionModel(m models.Transaction) error {
	if err := recordValidator.Struct(m); err != nil {
		return fmt.Errorf("transaction record %q failed validation: %w", m.TransactionID, err)
	}
	return nil
}

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		BusinessID:    d.BusinessID,
		Date:          d.Date,
		Description:   d.Description,
		Category:      string(d.Category),
		Amount:        d.Amount,
		Balance:       d.Balance,
		Seq:           d.Sequence,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		BusinessID:    m.BusinessID,
		Date:          m.Date,
		Description:   m.Description,
		Category:      domain.Category(m.Category),
		Amount:        m.Amount,
		Balance:       m.Balance,
		Sequence:      m.Seq,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice validates and converts a slice of model Transactions.
func ToDomainTransactionSlice(ms []models.Transaction) ([]domain.Transaction, error) {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		if err := ValidateTransactionModel(m); err != nil {
			return nil, err
		}
		ds[i] = ToDomainTransaction(m)
	}
	return ds, nil
}
