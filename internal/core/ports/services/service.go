package services

// ServiceContainer holds all service facades used by the handler layer.
type ServiceContainer struct {
	User        UserSvcFacade
	Transaction TransactionSvcFacade
	Dashboard   DashboardSvcFacade
	Export      ExportSvcFacade
}
