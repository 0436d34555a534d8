package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/muhamadbasim/Lokanant/internal/apperrors"
	"github.com/muhamadbasim/Lokanant/internal/core/domain"
	portsrepo "github.com/muhamadbasim/Lokanant/internal/core/ports/repositories"
	"github.com/muhamadbasim/Lokanant/internal/models"
	"github.com/muhamadbasim/Lokanant/internal/utils/mapping"
)

const businessColumns = `business_id, name, category, location, established, phone, email, employees, description,
	credit_score, loan_max_amount, loan_interest_rate, loan_term_months, created_at, updated_at`

type PgxBusinessRepository struct {
	pool *pgxpool.Pool
}

func newPgxBusinessRepository(pool *pgxpool.Pool) portsrepo.BusinessRepositoryFacade {
	return &PgxBusinessRepository{pool: pool}
}

var _ portsrepo.BusinessRepositoryFacade = (*PgxBusinessRepository)(nil)

func scanBusiness(row pgx.Row) (models.Business, error) {
	var m models.Business
	err := row.Scan(
		&m.BusinessID,
		&m.Name,
		&m.Category,
		&m.Location,
		&m.Established,
		&m.Phone,
		&m.Email,
		&m.Employees,
		&m.Description,
		&m.CreditScore,
		&m.LoanMaxAmount,
		&m.LoanInterestRate,
		&m.LoanTermMonths,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func (r *PgxBusinessRepository) FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE business_id = $1;`
	m, err := scanBusiness(r.pool.QueryRow(ctx, query, businessID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find business by ID %s: %w", businessID, err)
	}

	factors, err := r.findScoreFactors(ctx, []string{businessID})
	if err != nil {
		return nil, err
	}
	b := mapping.ToDomainBusiness(m, factors[businessID])
	return &b, nil
}

func (r *PgxBusinessRepository) ListBusinesses(ctx context.Context, limit, offset int) ([]domain.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses ORDER BY business_id LIMIT $1 OFFSET $2;`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query businesses: %w", err)
	}
	defer rows.Close()

	var ms []models.Business
	ids := make([]string, 0, limit)
	for rows.Next() {
		m, err := scanBusiness(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan business row: %w", err)
		}
		ms = append(ms, m)
		ids = append(ids, m.BusinessID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating business rows: %w", err)
	}

	factors, err := r.findScoreFactors(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Business, len(ms))
	for i, m := range ms {
		out[i] = mapping.ToDomainBusiness(m, factors[m.BusinessID])
	}
	return out, nil
}

// findScoreFactors loads score factors for several businesses, grouped by business id.
func (r *PgxBusinessRepository) findScoreFactors(ctx context.Context, businessIDs []string) (map[string][]models.ScoreFactor, error) {
	result := make(map[string][]models.ScoreFactor, len(businessIDs))
	if len(businessIDs) == 0 {
		return result, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT business_id, factor, weight, score, max_score, position
		FROM credit_score_factors
		WHERE business_id = ANY($1)
		ORDER BY business_id, position;
	`, businessIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query score factors: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var f models.ScoreFactor
		if err := rows.Scan(&f.BusinessID, &f.Factor, &f.Weight, &f.Score, &f.MaxScore, &f.Position); err != nil {
			return nil, fmt.Errorf("failed to scan score factor row: %w", err)
		}
		result[f.BusinessID] = append(result[f.BusinessID], f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating score factor rows: %w", err)
	}
	return result, nil
}
