package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// Both storage backends fill it in, so the service container does not care
// which one is active.
type RepositoryProvider struct {
	SessionRepo        SessionRepositoryFacade
	ExpenseRepo        ExpenseRepositoryFacade
	ClientRepo         ClientRepositoryFacade
	BusinessConfigRepo BusinessConfigRepositoryFacade
}
