package services

// ServiceContainer holds instances of all the application services.
// Handlers and CLI commands reach the business logic through it.
type ServiceContainer struct {
	Session   SessionSvcFacade
	Expense   ExpenseSvcFacade
	Client    ClientSvcFacade
	Settings  SettingsSvcFacade
	Reporting ReportingService
	Invoice   InvoiceSvcFacade
	Auth      AuthSvcFacade
}
