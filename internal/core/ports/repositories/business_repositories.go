package repositories

import (
	"context"

	"github.com/muhamadbasim/Lokanant/internal/core/domain"
)

// BusinessReader defines read operations for the UMKM registry
type BusinessReader interface {
	// FindBusinessByID retrieves a business with its score factors. Returns apperrors.ErrNotFound when missing.
	FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error)

	// ListBusinesses retrieves businesses ordered by id.
	ListBusinesses(ctx context.Context, limit, offset int) ([]domain.Business, error)
}

// BusinessRepositoryFacade is the facade services depend on
type BusinessRepositoryFacade interface {
	BusinessReader
}
