package services

import (
	portsrepo "github.com/adiwira-dev/stockledger/internal/core/ports/repositories"
	portssvc "github.com/adiwira-dev/stockledger/internal/core/ports/services"
	"github.com/adiwira-dev/stockledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.ItemSvc = NewItemService(repos.ItemRepo)
	container.TransactionSvc = NewTransactionService(repos.TransactionRepo)
	container.ReportingSvc = NewReportingService(repos.ReportingRepo)
	container.UserSvc = NewUserService(repos.UserRepo)
	container.AuthSvc = NewAuthService(cfg, container.UserSvc)

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.ItemSvcFacade        = (*itemService)(nil)
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
	_ portssvc.ReportingSvcFacade   = (*reportingService)(nil)
	_ portssvc.UserSvcFacade        = (*userService)(nil)
	_ portssvc.AuthSvcFacade        = (*authService)(nil)
)
