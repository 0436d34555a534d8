package services

import (
	portsrepo "github.com/muhamadbasim/Lokanant/internal/core/ports/repositories"
	portssvc "github.com/muhamadbasim/Lokanant/internal/core/ports/services"
	"github.com/muhamadbasim/Lokanant/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Business: NewBusinessService(
			repos.BusinessRepo,
			WithBusinessPageSizes(cfg.DefaultPageSize, cfg.MaxPageSize),
		),
		Transaction: NewTransactionService(
			repos.TransactionRepo,
			WithPageSizes(cfg.DefaultPageSize, cfg.MaxPageSize),
		),
		Loan: NewLoanService(repos.BusinessRepo),
	}
}
