package services

import (
	portsrepo "github.com/SscSPs/lifedash/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/lifedash/internal/core/ports/services"
	"github.com/SscSPs/lifedash/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.TokenService = NewTokenService(cfg)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)

	// Finance first since the garage posts fuel expenses through it
	container.Finance = NewLedgerService(repos.AccountRepo, repos.TransactionRepo, repos.SubscriptionRepo)
	container.Garage = NewGarageService(repos.VehicleRepo, container.Finance)
	container.Task = NewTaskService(repos.TaskRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.UserSvcFacade    = (*userService)(nil)
	_ portssvc.FinanceSvcFacade = (*ledgerService)(nil)
	_ portssvc.GarageSvcFacade  = (*garageService)(nil)
	_ portssvc.TaskSvcFacade    = (*taskService)(nil)
)
