package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/rmirandadev06/dashboard-braseiro/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgx repositories over a shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:        newPgxUserRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		DashboardRepo:   newDashboardRepository(dbPool),
	}
}
