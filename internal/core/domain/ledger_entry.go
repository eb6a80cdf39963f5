package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountNormal is the side on which an account's balance grows.
type AccountNormal string

const (
	Debit  AccountNormal = "DEBIT"
	Credit AccountNormal = "CREDIT"
)

// IsValid reports whether n is one of the two known normal sides.
func (n AccountNormal) IsValid() bool {
	return n == Debit || n == Credit
}

// TransactionType tags the business event a ledger entry originated from (e.g. "OwnerContribution", "Journal").
type TransactionType string

// LedgerEntry is one side of one posting.
type LedgerEntry struct {
	AccountID     string          `json:"accountId"`
	AccountNormal AccountNormal   `json:"accountNormal"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`

	Date         time.Time       `json:"date"`
	CurrencyCode string          `json:"currencyCode"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`

	TransactionType   TransactionType `json:"transactionType"`
	TransactionID     string          `json:"transactionId"`
	TransactionNumber string          `json:"transactionNumber"`
	ReferenceNo       string          `json:"referenceNo"`

	BranchID string `json:"branchId"`
	UserID   string `json:"userId"`

	// Index is the 1-based position of the entry inside its transaction.
	Index int `json:"index"`
}

// Reference returns the composite "transactionId-transactionType" key of the entry.
func (e LedgerEntry) Reference() string {
	return e.TransactionID + "-" + string(e.TransactionType)
}
