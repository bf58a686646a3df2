package repositories

// RepositoryProvider bundles all repository implementations for injection
// into the service layer. No hidden process-wide store handle exists; the
// pool travels through this provider only.
type RepositoryProvider struct {
	UserRepo        UserRepository
	TransactionRepo TransactionRepository
	DashboardRepo   DashboardRepository
}
