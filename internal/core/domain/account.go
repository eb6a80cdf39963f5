package domain

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

// NormalFor returns the normal balance side of an account type, or "" when unknown.
func NormalFor(t AccountType) AccountNormal {
	switch t {
	case Asset, Expense:
		return Debit
	case Liability, Equity, Income:
		return Credit
	default:
		return ""
	}
}

// Account is the slice of the chart of accounts the ledger needs.
type Account struct {
	AccountID     string          `json:"accountId"`
	TenantID      string          `json:"tenantId"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	AccountType   AccountType     `json:"accountType"`
	AccountNormal AccountNormal   `json:"accountNormal"`
	CurrencyCode  string          `json:"currencyCode"`
	IsActive      bool            `json:"isActive"`
	Balance       decimal.Decimal `json:"balance"`
	AuditFields
}
