package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ManualJournal represents a row of manual_journals.
type ManualJournal struct {
	ID            string          `db:"id"`
	TenantID      string          `db:"tenant_id"`
	JournalNumber string          `db:"journal_number"`
	ReferenceNo   string          `db:"reference_no"`
	JournalDate   time.Time       `db:"journal_date"`
	CurrencyCode  string          `db:"currency_code"`
	ExchangeRate  decimal.Decimal `db:"exchange_rate"`
	BranchID      string          `db:"branch_id"`
	UserID        string          `db:"user_id"`
	AuditFields
}

// ManualJournalEntry represents one line of a manual journal (manual_journal_entries).
type ManualJournalEntry struct {
	ManualJournalID string          `db:"manual_journal_id"`
	LineIndex       int             `db:"line_index"`
	AccountID       string          `db:"account_id"`
	Debit           decimal.Decimal `db:"debit"`
	Credit          decimal.Decimal `db:"credit"`
	Note            string          `db:"note"`
}
