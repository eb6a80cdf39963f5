package repositories

import (
	"context"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// CashflowTransactionReader loads cashflow transactions for posting.
type CashflowTransactionReader interface {
	// FindCashflowTransactionForUpdate loads and row-locks the transaction, returning apperrors.ErrNotFound if it does not exist.
	FindCashflowTransactionForUpdate(ctx context.Context, tx pgx.Tx, tenantID, transactionID string) (*domain.CashflowTransaction, error)
}
