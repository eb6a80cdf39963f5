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

// PgxCashflowRepository reads cashflow transactions for posting.
type PgxCashflowRepository struct {
	pool *pgxpool.Pool
}

func newPgxCashflowRepository(pool *pgxpool.Pool) *PgxCashflowRepository {
	return &PgxCashflowRepository{pool: pool}
}

var _ portsrepo.CashflowTransactionReader = (*PgxCashflowRepository)(nil)

// FindCashflowTransactionForUpdate loads the transaction and holds a row lock on it until tx ends.
func (r *PgxCashflowRepository) FindCashflowTransactionForUpdate(ctx context.Context, tx pgx.Tx, tenantID, transactionID string) (*domain.CashflowTransaction, error) {
	query := `
		SELECT id, tenant_id, transaction_type, COALESCE(transaction_number, ''), COALESCE(reference_no, ''), transaction_date,
			amount, currency_code, exchange_rate, cashflow_account_id, credit_account_id, COALESCE(branch_id, ''), user_id,
			created_at, created_by, last_updated_at, last_updated_by
		FROM cashflow_transactions
		WHERE tenant_id = $1 AND id = $2
		FOR UPDATE;
	`

	var m models.CashflowTransaction
	err := tx.QueryRow(ctx, query, tenantID, transactionID).Scan(
		&m.ID,
		&m.TenantID,
		&m.TransactionType,
		&m.TransactionNumber,
		&m.ReferenceNo,
		&m.TransactionDate,
		&m.Amount,
		&m.CurrencyCode,
		&m.ExchangeRate,
		&m.CashflowAccountID,
		&m.CreditAccountID,
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
		return nil, fmt.Errorf("failed to load cashflow transaction %s: %w", transactionID, err)
	}

	txn := mapping.ToDomainCashflowTransaction(m)
	return &txn, nil
}
