package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/muhamadbasim/Lokanant/internal/core/domain"
	portsrepo "github.com/muhamadbasim/Lokanant/internal/core/ports/repositories"
	portssvc "github.com/muhamadbasim/Lokanant/internal/core/ports/services"
)

type businessService struct {
	BaseService
	businessRepo    portsrepo.BusinessRepositoryFacade
	defaultPageSize int
	maxPageSize     int
}

// BusinessServiceOption is a functional option for configuring the business service
type BusinessServiceOption func(*businessService)

// WithBusinessPageSizes overrides the default and maximum registry page sizes.
func WithBusinessPageSizes(defaultSize, maxSize int) BusinessServiceOption {
	return func(s *businessService) {
		if defaultSize > 0 {
			s.defaultPageSize = defaultSize
		}
		if maxSize > 0 {
			s.maxPageSize = maxSize
		}
	}
}

// NewBusinessService creates a new business registry service.
func NewBusinessService(repo portsrepo.BusinessRepositoryFacade, options ...BusinessServiceOption) portssvc.BusinessSvcFacade {
	svc := &businessService{
		businessRepo:    repo,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.BusinessSvcFacade = (*businessService)(nil)

func (s *businessService) ListBusinesses(ctx context.Context, limit, offset int) ([]domain.Business, error) {
	switch {
	case limit <= 0:
		limit = s.defaultPageSize
	case limit > s.maxPageSize:
		limit = s.maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	businesses, err := s.businessRepo.ListBusinesses(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list businesses", slog.Int("limit", limit), slog.Int("offset", offset))
		return nil, fmt.Errorf("failed to list businesses: %w", err)
	}
	return businesses, nil
}

func (s *businessService) GetBusiness(ctx context.Context, businessID string) (*domain.Business, error) {
	business, err := s.businessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		s.LogDebug(ctx, "Business lookup failed", slog.String("business_id", businessID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get business %s: %w", businessID, err)
	}
	return business, nil
}
