package services

import (
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Ledger storage first since the posting services depend on it
	container.LedgerStorage = NewLedgerStorageService(repos.TxManager, repos.LedgerRepo, repos.AccountRepo)

	container.CashflowJournal = NewCashflowJournalService(repos.TxManager, repos.CashflowRepo, repos.AccountRepo, container.LedgerStorage)
	container.ManualJournal = NewManualJournalService(repos.TxManager, repos.ManualJournalRepo, repos.AccountRepo, container.LedgerStorage)
	container.JournalSheet = NewJournalSheetService(repos.LedgerRepo, repos.TenantRepo, WithDefaultBaseCurrency(cfg.DefaultBaseCurrency))

	return container
}
