// Package ledgerfile reads exported ledgers from YAML (or JSON) files.
package ledgerfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muhamadbasim/Lokanant/internal/core/domain"
	"github.com/muhamadbasim/Lokanant/internal/dto"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Entry is one ledger row as it appears in a file. Amount is signed as stored.
type Entry struct {
	ID          string `yaml:"id"`
	BusinessID  string `yaml:"businessId"`
	Date        string `yaml:"date"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
	Amount      string `yaml:"amount"`
	Balance     string `yaml:"balance,omitempty"`
}

// Load reads and parses a ledger file.
func Load(path string) ([]domain.Transaction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger file: %w", err)
	}
	return Parse(bytes.NewReader(data))
}

// Parse decodes a list of entries. Unknown fields are rejected.
// File order becomes the insertion sequence.
func Parse(r io.Reader) ([]domain.Transaction, error) {
	var entries []Entry
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&entries); err != nil {
		if errors.Is(err, io.EOF) {
			return []domain.Transaction{}, nil
		}
		return nil, fmt.Errorf("failed to parse ledger: %w", err)
	}

	txns := make([]domain.Transaction, 0, len(entries))
	for i, e := range entries {
		t, err := e.toDomain(int64(i + 1))
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		txns = append(txns, t)
	}
	return txns, nil
}

func (e Entry) toDomain(seq int64) (domain.Transaction, error) {
	date, err := dto.ParseDate(strings.TrimSpace(e.Date))
	if err != nil {
		return domain.Transaction{}, err
	}
	category, err := domain.ParseCategory(e.Category)
	if err != nil {
		return domain.Transaction{}, err
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(e.Amount))
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("invalid amount %q: %w", e.Amount, err)
	}
	balance := decimal.Zero
	if strings.TrimSpace(e.Balance) != "" {
		if balance, err = decimal.NewFromString(strings.TrimSpace(e.Balance)); err != nil {
			return domain.Transaction{}, fmt.Errorf("invalid balance %q: %w", e.Balance, err)
		}
	}

	id := e.ID
	if id == "" {
		id = fmt.Sprintf("row-%d", seq)
	}
	return domain.Transaction{
		TransactionID: id,
		BusinessID:    e.BusinessID,
		Date:          date,
		Description:   e.Description,
		Category:      category,
		Amount:        amount,
		Balance:       balance,
		Sequence:      seq,
	}, nil
}
