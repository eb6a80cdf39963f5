package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// NegativeFormat controls how negative report amounts are rendered.
type NegativeFormat string

const (
	NegativeMines       NegativeFormat = "mines"
	NegativeParentheses NegativeFormat = "parentheses"
)

// FormatMoney controls where the currency symbol is printed.
type FormatMoney string

const (
	FormatMoneyNone   FormatMoney = "none"
	FormatMoneyTotal  FormatMoney = "total"
	FormatMoneyAlways FormatMoney = "always"
)

// NumberFormat holds report number rendering options.
type NumberFormat struct {
	Precision      int            `json:"precision"`
	DivideOn1000   bool           `json:"divideOn1000"`
	ShowZero       bool           `json:"showZero"`
	NegativeFormat NegativeFormat `json:"negativeFormat"`
	FormatMoney    FormatMoney    `json:"formatMoney"`
}

// DefaultNumberFormat mirrors the defaults of the financial sheets.
func DefaultNumberFormat() NumberFormat {
	return NumberFormat{
		Precision:      2,
		ShowZero:       false,
		NegativeFormat: NegativeMines,
		FormatMoney:    FormatMoneyTotal,
	}
}

// JournalReportQuery selects the posted entries of a journal sheet.
type JournalReportQuery struct {
	FromDate         time.Time         `json:"fromDate"`
	ToDate           time.Time         `json:"toDate"`
	AccountIDs       []string          `json:"accountIds,omitempty"`
	BranchIDs        []string          `json:"branchIds,omitempty"`
	TransactionTypes []TransactionType `json:"transactionTypes,omitempty"`
	NumberFormat     NumberFormat      `json:"numberFormat"`
}

// JournalReportEntriesGroup aggregates the posted entries of one originating transaction.
type JournalReportEntriesGroup struct {
	ID              string          `json:"id"`
	Entries         []LedgerEntry   `json:"entries"`
	CurrencyCode    string          `json:"currencyCode"`
	Credit          decimal.Decimal `json:"credit"`
	Debit           decimal.Decimal `json:"debit"`
	FormattedCredit string          `json:"formattedCredit"`
	FormattedDebit  string          `json:"formattedDebit"`
}

// JournalReport is the journal sheet output.
type JournalReport struct {
	TenantID     string                      `json:"tenantId"`
	BaseCurrency string                      `json:"baseCurrency"`
	Query        JournalReportQuery          `json:"query"`
	Groups       []JournalReportEntriesGroup `json:"data"`
}
