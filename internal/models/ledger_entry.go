package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry represents a persisted row of ledger_entries.
// (TenantID, TransactionType, TransactionID, EntryIndex) is unique.
type LedgerEntry struct {
	EntryID       string          `db:"entry_id"` // Primary Key (UUID)
	TenantID      string          `db:"tenant_id"`
	AccountID     string          `db:"account_id"`
	AccountNormal string          `db:"account_normal"`
	Debit         decimal.Decimal `db:"debit"`
	Credit        decimal.Decimal `db:"credit"`
	EntryDate     time.Time       `db:"entry_date"`
	CurrencyCode  string          `db:"currency_code"`
	ExchangeRate  decimal.Decimal `db:"exchange_rate"`

	TransactionType   string `db:"transaction_type"`
	TransactionID     string `db:"transaction_id"`
	TransactionNumber string `db:"transaction_number"` // Nullable
	ReferenceNo       string `db:"reference_no"`       // Nullable
	BranchID          string `db:"branch_id"`          // Nullable
	UserID            string `db:"user_id"`
	EntryIndex        int    `db:"entry_index"`

	CreatedAt time.Time `db:"created_at"`
}
