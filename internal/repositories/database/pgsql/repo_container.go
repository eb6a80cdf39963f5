package pgsql

import (
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:         &BaseRepository{Pool: dbPool},
		LedgerRepo:        newPgxLedgerRepository(dbPool),
		AccountRepo:       newPgxAccountRepository(dbPool),
		CashflowRepo:      newPgxCashflowRepository(dbPool),
		ManualJournalRepo: newPgxManualJournalRepository(dbPool),
		TenantRepo:        newPgxTenantRepository(dbPool),
	}
}
