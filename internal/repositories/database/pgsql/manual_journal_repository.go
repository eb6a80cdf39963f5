package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_engine/internal/models"
	"github.com/SscSPs/ledger_engine/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxManualJournalRepository reads manual journals for posting.
type PgxManualJournalRepository struct {
	pool *pgxpool.Pool
}

func newPgxManualJournalRepository(pool *pgxpool.Pool) *PgxManualJournalRepository {
	return &PgxManualJournalRepository{pool: pool}
}

var _ portsrepo.ManualJournalReader = (*PgxManualJournalRepository)(nil)

// FindManualJournalForUpdate locks the journal header and loads its lines.
func (r *PgxManualJournalRepository) FindManualJournalForUpdate(ctx context.Context, tx pgx.Tx, tenantID, journalID string) (*domain.ManualJournal, error) {
	headerQuery := `
		SELECT id, tenant_id, journal_number, COALESCE(reference_no, ''), journal_date, currency_code, exchange_rate,
			COALESCE(branch_id, ''), user_id, created_at, created_by, last_updated_at, last_updated_by
		FROM manual_journals
		WHERE tenant_id = $1 AND id = $2
		FOR UPDATE;
	`

	var m models.ManualJournal
	err := tx.QueryRow(ctx, headerQuery, tenantID, journalID).Scan(
		&m.ID,
		&m.TenantID,
		&m.JournalNumber,
		&m.ReferenceNo,
		&m.JournalDate,
		&m.CurrencyCode,
		&m.ExchangeRate,
		&m.BranchID,
		&m.UserID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load manual journal %s: %w", journalID, err)
	}

	linesQuery := `
		SELECT manual_journal_id, line_index, account_id, debit, credit, COALESCE(note, '')
		FROM manual_journal_entries
		WHERE manual_journal_id = $1
		ORDER BY line_index;
	`
	rows, err := tx.Query(ctx, linesQuery, journalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines of manual journal %s: %w", journalID, err)
	}
	defer rows.Close()

	var lines []models.ManualJournalEntry
	for rows.Next() {
		var l models.ManualJournalEntry
		if err := rows.Scan(&l.ManualJournalID, &l.LineIndex, &l.AccountID, &l.Debit, &l.Credit, &l.Note); err != nil {
			return nil, fmt.Errorf("failed to scan manual journal line: %w", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating manual journal lines: %w", err)
	}

	journal := mapping.ToDomainManualJournal(m, lines)
	return &journal, nil
}
