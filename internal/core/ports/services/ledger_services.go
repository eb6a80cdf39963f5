package services

import (
	"context"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// Every posting method takes an optional transaction. When tx is nil the
// service begins its own and commits or rolls it back before returning.

// LedgerStorageSvc commits and removes posted ledger entries.
type LedgerStorageSvc interface {
	// Commit asserts the ledger balances, then persists its entries and applies the account balance deltas.
	Commit(ctx context.Context, tx pgx.Tx, tenantID string, ledger *domain.Ledger, userID string) error

	// DeleteByReference removes the entries of transactionID posted under any of types and reverses their balance deltas.
	// Deleting a reference with no entries is a no-op.
	DeleteByReference(ctx context.Context, tx pgx.Tx, tenantID, transactionID string, types []domain.TransactionType, userID string) error
}

// JournalPostingSvc drives the write/revert lifecycle of one business transaction kind.
type JournalPostingSvc interface {
	// WriteJournalEntries loads the business record, maps it to a ledger and commits it.
	WriteJournalEntries(ctx context.Context, tx pgx.Tx, tenantID, transactionID, userID string) error

	// RevertJournalEntries deletes every entry the business record was ever posted under. It is idempotent.
	RevertJournalEntries(ctx context.Context, tx pgx.Tx, tenantID, transactionID, userID string) error

	// RewriteJournalEntries reverts then writes inside one transaction (edit flow).
	RewriteJournalEntries(ctx context.Context, tx pgx.Tx, tenantID, transactionID, userID string) error
}

// JournalSheetSvc builds the journal report.
type JournalSheetSvc interface {
	// GetJournalSheet groups the posted entries matching query by originating transaction.
	GetJournalSheet(ctx context.Context, tenantID string, query domain.JournalReportQuery) (*domain.JournalReport, error)
}
