package models

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// Account represents a row of the accounts table.
// Balance is signed by the normal side: DEBIT accounts grow with debits, CREDIT accounts with credits.
type Account struct {
	AccountID     string          `db:"account_id"`
	TenantID      string          `db:"tenant_id"`
	Code          string          `db:"code"`
	Name          string          `db:"name"`
	AccountType   AccountType     `db:"account_type"`
	AccountNormal string          `db:"account_normal"`
	CurrencyCode  string          `db:"currency_code"`
	IsActive      bool            `db:"is_active"`
	AuditFields
	Balance       decimal.Decimal `db:"balance"`
}
