package repositories

import (
	"context"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// ManualJournalReader loads manual journals for posting.
type ManualJournalReader interface {
	// FindManualJournalForUpdate loads and row-locks the journal with its lines ordered by index,
	// returning apperrors.ErrNotFound if it does not exist.
	FindManualJournalForUpdate(ctx context.Context, tx pgx.Tx, tenantID, journalID string) (*domain.ManualJournal, error)
}
