package services

import (
	portsrepo "github.com/rmirandadev06/dashboard-braseiro/internal/core/ports/repositories"
	portssvc "github.com/rmirandadev06/dashboard-braseiro/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		User:        NewUserService(repos.UserRepo),
		Transaction: NewTransactionService(repos.TransactionRepo),
		Dashboard:   NewDashboardService(repos.DashboardRepo),
		Export:      NewExportService(repos.DashboardRepo),
	}
}
