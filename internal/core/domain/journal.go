package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ManualJournalLedgerType is the ledger tag of manual journal postings.
const ManualJournalLedgerType TransactionType = "Journal"

// ManualJournal is a user-entered balanced journal with any number of lines.
type ManualJournal struct {
	ID            string              `json:"id"`
	TenantID      string              `json:"tenantId"`
	JournalNumber string              `json:"journalNumber"`
	ReferenceNo   string              `json:"referenceNo"`
	Date          time.Time           `json:"date"`
	CurrencyCode  string              `json:"currencyCode"`
	ExchangeRate  decimal.Decimal     `json:"exchangeRate"`
	BranchID      string              `json:"branchId"`
	UserID        string              `json:"userId"`
	Lines         []ManualJournalLine `json:"lines"`
}

// ManualJournalLine is one line of a manual journal. Exactly one of Debit or Credit is non-zero.
type ManualJournalLine struct {
	Index     int             `json:"index"`
	AccountID string          `json:"accountId"`
	Account   *Account        `json:"account,omitempty"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	Note      string          `json:"note"`
}
