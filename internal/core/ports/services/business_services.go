package services

import (
	"context"

	"github.com/muhamadbasim/Lokanant/internal/core/domain"
)

// BusinessSvcFacade defines operations on the UMKM registry
type BusinessSvcFacade interface {
	ListBusinesses(ctx context.Context, limit, offset int) ([]domain.Business, error)
	GetBusiness(ctx context.Context, businessID string) (*domain.Business, error)
}
