package services

// ServiceContainer aggregates all service facades for injection into handlers.
type ServiceContainer struct {
	ItemSvc        ItemSvcFacade
	TransactionSvc TransactionSvcFacade
	ReportingSvc   ReportingSvcFacade
	UserSvc        UserSvcFacade
	AuthSvc        AuthSvcFacade
}
