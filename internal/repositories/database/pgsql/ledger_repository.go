package pgsql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_engine/internal/models"
	"github.com/SscSPs/ledger_engine/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const ledgerEntrySelect = `
	SELECT entry_id, tenant_id, account_id, account_normal, debit, credit, entry_date, currency_code, exchange_rate,
		transaction_type, transaction_id, COALESCE(transaction_number, ''), COALESCE(reference_no, ''),
		COALESCE(branch_id, ''), user_id, entry_index, created_at
	FROM ledger_entries`

// PgxLedgerRepository persists posted ledger entries.
type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for ledger entries.
func newPgxLedgerRepository(pool *pgxpool.Pool) *PgxLedgerRepository {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepositoryWithTx = (*PgxLedgerRepository)(nil)

// InsertLedgerEntries inserts all entries with one batch on the caller's transaction.
func (r *PgxLedgerRepository) InsertLedgerEntries(ctx context.Context, tx pgx.Tx, tenantID string, entries []domain.LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}

	query := `
		INSERT INTO ledger_entries (entry_id, tenant_id, account_id, account_normal, debit, credit, entry_date, currency_code, exchange_rate,
			transaction_type, transaction_id, transaction_number, reference_no, branch_id, user_id, entry_index, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	now := time.Now().UTC()

	batch := &pgx.Batch{}
	for _, entry := range entries {
		m := mapping.ToModelLedgerEntry(tenantID, entry)
		m.EntryID = uuid.NewString()
		m.CreatedAt = now
		batch.Queue(query,
			m.EntryID,
			m.TenantID,
			m.AccountID,
			m.AccountNormal,
			m.Debit,
			m.Credit,
			m.EntryDate,
			m.CurrencyCode,
			m.ExchangeRate,
			m.TransactionType,
			m.TransactionID,
			nullIfEmpty(m.TransactionNumber),
			nullIfEmpty(m.ReferenceNo),
			nullIfEmpty(m.BranchID),
			m.UserID,
			m.EntryIndex,
			m.CreatedAt,
		)
	}

	br := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return mapWriteError(err, fmt.Sprintf("insert ledger entry %d of %s", entries[i].Index, entries[i].Reference()))
		}
	}
	if err := br.Close(); err != nil {
		return mapWriteError(err, "close ledger insert batch")
	}
	return nil
}

// DeleteLedgerEntriesByReference deletes the entries of transactionID under any of types.
func (r *PgxLedgerRepository) DeleteLedgerEntriesByReference(ctx context.Context, tx pgx.Tx, tenantID, transactionID string, types []domain.TransactionType) (int64, error) {
	if len(types) == 0 {
		return 0, nil
	}

	query := `
		DELETE FROM ledger_entries
		WHERE tenant_id = $1 AND transaction_id = $2 AND transaction_type = ANY($3);
	`
	ct, err := tx.Exec(ctx, query, tenantID, transactionID, typeStrings(types))
	if err != nil {
		return 0, fmt.Errorf("failed to delete ledger entries of %s: %w", transactionID, err)
	}
	return ct.RowsAffected(), nil
}

// FindLedgerEntriesByReference loads and locks the entries of transactionID under any of types.
func (r *PgxLedgerRepository) FindLedgerEntriesByReference(ctx context.Context, tx pgx.Tx, tenantID, transactionID string, types []domain.TransactionType) ([]domain.LedgerEntry, error) {
	if len(types) == 0 {
		return []domain.LedgerEntry{}, nil
	}

	query := ledgerEntrySelect + `
	WHERE tenant_id = $1 AND transaction_id = $2 AND transaction_type = ANY($3)
	ORDER BY transaction_type, entry_index
	FOR UPDATE;`

	rows, err := tx.Query(ctx, query, tenantID, transactionID, typeStrings(types))
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries of %s: %w", transactionID, err)
	}
	return collectLedgerEntries(rows)
}

// ListLedgerEntries returns the tenant's entries matching the report query.
func (r *PgxLedgerRepository) ListLedgerEntries(ctx context.Context, tenantID string, query domain.JournalReportQuery) ([]domain.LedgerEntry, error) {
	sql, args := buildLedgerListQuery(tenantID, query)

	rows, err := r.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries for tenant %s: %w", tenantID, err)
	}
	return collectLedgerEntries(rows)
}

// buildLedgerListQuery turns the report filters into a parameterized query.
func buildLedgerListQuery(tenantID string, query domain.JournalReportQuery) (string, []any) {
	args := []any{tenantID}
	conds := []string{"tenant_id = $1"}

	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if !query.FromDate.IsZero() {
		add("entry_date >= $%d", query.FromDate)
	}
	if !query.ToDate.IsZero() {
		add("entry_date <= $%d", query.ToDate)
	}
	if len(query.AccountIDs) > 0 {
		add("account_id = ANY($%d)", query.AccountIDs)
	}
	if len(query.BranchIDs) > 0 {
		add("branch_id = ANY($%d)", query.BranchIDs)
	}
	if len(query.TransactionTypes) > 0 {
		add("transaction_type = ANY($%d)", typeStrings(query.TransactionTypes))
	}

	sql := ledgerEntrySelect + "\n\tWHERE " + strings.Join(conds, " AND ") +
		"\n\tORDER BY entry_date, created_at, transaction_id, transaction_type, entry_index;"
	return sql, args
}

func collectLedgerEntries(rows pgx.Rows) ([]domain.LedgerEntry, error) {
	defer rows.Close()

	entries := make([]models.LedgerEntry, 0)
	for rows.Next() {
		var m models.LedgerEntry
		err := rows.Scan(
			&m.EntryID,
			&m.TenantID,
			&m.AccountID,
			&m.AccountNormal,
			&m.Debit,
			&m.Credit,
			&m.EntryDate,
			&m.CurrencyCode,
			&m.ExchangeRate,
			&m.TransactionType,
			&m.TransactionID,
			&m.TransactionNumber,
			&m.ReferenceNo,
			&m.BranchID,
			&m.UserID,
			&m.EntryIndex,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry row: %w", err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger entry rows: %w", err)
	}
	return mapping.ToDomainLedgerEntrySlice(entries), nil
}

func typeStrings(types []domain.TransactionType) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}
