package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	TxManager         TransactionManager
	LedgerRepo        LedgerRepositoryFacade
	AccountRepo       AccountTransactionSupport
	CashflowRepo      CashflowTransactionReader
	ManualJournalRepo ManualJournalReader
	TenantRepo        TenantReader
}
