package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	AccountRepo      AccountRepositoryFacade
	DimensionRepo    DimensionReader
	ExchangeRateRepo ExchangeRateRepositoryFacade
	OrganizationRepo OrganizationReader
	FiscalPeriodRepo FiscalPeriodRepositoryFacade
	ApprovalRuleRepo ApprovalRuleRepositoryFacade
	TransactionRepo  TransactionRepositoryWithTx
}
