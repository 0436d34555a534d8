package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/muhamadbasim/Lokanant/internal/apperrors"
	"github.com/muhamadbasim/Lokanant/internal/core/domain"
	portsrepo "github.com/muhamadbasim/Lokanant/internal/core/ports/repositories"
	"github.com/muhamadbasim/Lokanant/internal/models"
	"github.com/muhamadbasim/Lokanant/internal/utils/accounting"
	"github.com/muhamadbasim/Lokanant/internal/utils/mapping"
	"github.com/muhamadbasim/Lokanant/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

const transactionColumns = `transaction_id, business_id, date, description, category, amount, balance, seq, created_at, updated_at`

// Listings are newest first; seq breaks ties between entries on the same date.
const transactionOrder = `ORDER BY date DESC, seq DESC`

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for ledger entries.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.BusinessID,
		&m.Date,
		&m.Description,
		&m.Category,
		&m.Amount,
		&m.Balance,
		&m.Seq,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func collectTransactions(rows pgx.Rows) ([]models.Transaction, error) {
	defer rows.Close()
	var out []models.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return out, nil
}

// SaveTransaction locks the business row so concurrent inserts for the same business
// serialize, reads the latest balance, derives the new one and inserts the entry.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, enteredAmount decimal.Decimal) (*domain.Transaction, error) {
	err := r.InTx(ctx, func(tx pgx.Tx) error {
		var lockedID string
		err := tx.QueryRow(ctx, `SELECT business_id FROM businesses WHERE business_id = $1 FOR UPDATE`, txn.BusinessID).Scan(&lockedID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("business %s: %w", txn.BusinessID, apperrors.ErrNotFound)
			}
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to lock business "+txn.BusinessID, err)
		}

		previous := decimal.Zero
		err = tx.QueryRow(ctx,
			`SELECT balance FROM transactions WHERE business_id = $1 `+transactionOrder+` LIMIT 1`,
			txn.BusinessID,
		).Scan(&previous)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to read latest balance for business "+txn.BusinessID, err)
		}

		signed, balance, err := accounting.DeriveBalance(previous, txn.Category, enteredAmount)
		if err != nil {
			return err
		}
		txn.Amount = signed
		txn.Balance = balance

		m := mapping.ToModelTransaction(txn)
		err = tx.QueryRow(ctx, `
			INSERT INTO transactions (transaction_id, business_id, date, description, category, amount, balance, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING seq;
		`,
			m.TransactionID,
			m.BusinessID,
			m.Date,
			m.Description,
			m.Category,
			m.Amount,
			m.Balance,
			m.CreatedAt,
			m.UpdatedAt,
		).Scan(&txn.Sequence)
		if err != nil {
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to insert transaction "+m.TransactionID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, businessID, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE business_id = $1 AND transaction_id = $2;`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, businessID, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	if err := mapping.ValidateTransactionModel(m); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "stored transaction is malformed", err)
	}
	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

// ListTransactions retrieves a filtered page using keyset pagination on (date, seq).
// It returns the transactions, a token for the next page, and an error.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, *string, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	conditions := []string{"business_id = $1"}
	args := []any{filter.BusinessID}
	next := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.StartDate != nil {
		conditions = append(conditions, "date >= "+next(*filter.StartDate))
	}
	if filter.EndDate != nil {
		conditions = append(conditions, "date <= "+next(*filter.EndDate))
	}
	if filter.Category != nil {
		conditions = append(conditions, "category = "+next(string(*filter.Category)))
	}
	if filter.NextToken != nil && *filter.NextToken != "" {
		lastDate, lastSeq, decodeErr := pagination.DecodeToken(*filter.NextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewInvalidParameter("nextToken", decodeErr.Error())
		}
		// Tuple comparison is concise and efficient in Postgres
		conditions = append(conditions, "(date, seq) < ("+next(lastDate)+", "+next(lastSeq)+")")
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE ` +
		strings.Join(conditions, " AND ") + " " + transactionOrder + " LIMIT " + next(fetchLimit) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query transactions for business "+filter.BusinessID, err)
	}
	ms, err := collectTransactions(rows)
	if err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to read transactions for business "+filter.BusinessID, err)
	}

	var nextToken *string
	if len(ms) > limit {
		// The token points to the last item included in this page.
		last := ms[limit-1]
		token := pagination.EncodeToken(last.Date, last.Seq)
		nextToken = &token
		ms = ms[:limit]
	}

	txns, err := mapping.ToDomainTransactionSlice(ms)
	if err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "stored transaction is malformed", err)
	}
	return txns, nextToken, nil
}

func (r *PgxTransactionRepository) ListAllTransactions(ctx context.Context, businessID string) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE business_id = $1 ` + transactionOrder + `;`
	rows, err := r.Pool.Query(ctx, query, businessID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query transactions for business "+businessID, err)
	}
	ms, err := collectTransactions(rows)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to read transactions for business "+businessID, err)
	}
	txns, err := mapping.ToDomainTransactionSlice(ms)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "stored transaction is malformed", err)
	}
	return txns, nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE transactions
		SET date = $1, description = $2, category = $3, amount = $4, updated_at = $5
		WHERE business_id = $6 AND transaction_id = $7;
	`, m.Date, m.Description, m.Category, m.Amount, m.UpdatedAt, m.BusinessID, m.TransactionID)
	if err != nil {
		return fmt.Errorf("failed to execute update transaction %s: %w", m.TransactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, businessID, transactionID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE business_id = $1 AND transaction_id = $2;`, businessID, transactionID)
	if err != nil {
		return fmt.Errorf("failed to execute delete transaction %s: %w", transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
