package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AccountTransactionSupport defines operations that support ledger postings
type AccountTransactionSupport interface {
	// FindAccountsByIDsInTx reads accounts inside a transaction without locking them.
	FindAccountsByIDsInTx(ctx context.Context, tx pgx.Tx, tenantID string, accountIDs []string) (map[string]domain.Account, error)

	// FindAccountsByIDsForUpdate selects accounts and locks them for update within a transaction.
	FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, tenantID string, accountIDs []string) (map[string]domain.Account, error)

	// UpdateAccountBalancesInTx adds the signed deltas to the balance of each account within a given transaction.
	UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, tenantID string, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error
}
