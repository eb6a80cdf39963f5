package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashflowTransaction represents a row of cashflow_transactions.
type CashflowTransaction struct {
	ID                string          `db:"id"`
	TenantID          string          `db:"tenant_id"`
	TransactionType   string          `db:"transaction_type"` // snake_case kind, e.g. owner_contribution
	TransactionNumber string          `db:"transaction_number"`
	ReferenceNo       string          `db:"reference_no"`
	TransactionDate   time.Time       `db:"transaction_date"`
	Amount            decimal.Decimal `db:"amount"`
	CurrencyCode      string          `db:"currency_code"`
	ExchangeRate      decimal.Decimal `db:"exchange_rate"`
	CashflowAccountID string          `db:"cashflow_account_id"`
	CreditAccountID   string          `db:"credit_account_id"`
	BranchID          string          `db:"branch_id"`
	UserID            string          `db:"user_id"`
	AuditFields
}
