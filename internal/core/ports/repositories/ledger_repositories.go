package repositories

import (
	"context"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// LedgerEntryWriter defines write operations on posted ledger entries.
// Every method runs inside the caller's transaction.
type LedgerEntryWriter interface {
	// InsertLedgerEntries persists all entries for the tenant in one batch.
	// A second posting of the same (transactionType, transactionId, index) fails with apperrors.ErrDuplicate.
	InsertLedgerEntries(ctx context.Context, tx pgx.Tx, tenantID string, entries []domain.LedgerEntry) error

	// DeleteLedgerEntriesByReference removes every entry of transactionID posted under any of the given types.
	// It returns the number of rows removed; zero is not an error.
	DeleteLedgerEntriesByReference(ctx context.Context, tx pgx.Tx, tenantID, transactionID string, types []domain.TransactionType) (int64, error)
}

// LedgerEntryReader defines read operations on posted ledger entries.
type LedgerEntryReader interface {
	// FindLedgerEntriesByReference loads the entries of transactionID posted under any of the given types, ordered by type and index.
	FindLedgerEntriesByReference(ctx context.Context, tx pgx.Tx, tenantID, transactionID string, types []domain.TransactionType) ([]domain.LedgerEntry, error)

	// ListLedgerEntries returns the tenant's entries matching the report query,
	// ordered by date, transaction and index.
	ListLedgerEntries(ctx context.Context, tenantID string, query domain.JournalReportQuery) ([]domain.LedgerEntry, error)
}

// LedgerRepositoryFacade combines all ledger-related repository interfaces
type LedgerRepositoryFacade interface {
	LedgerEntryReader
	LedgerEntryWriter
}

// LedgerRepositoryWithTx extends LedgerRepositoryFacade with transaction capabilities
type LedgerRepositoryWithTx interface {
	LedgerRepositoryFacade
	TransactionManager
}
