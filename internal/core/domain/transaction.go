package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CashflowTransactionType is the stored kind of a cashflow transaction.
type CashflowTransactionType string

const (
	OwnerContribution   CashflowTransactionType = "owner_contribution"
	OtherIncome         CashflowTransactionType = "other_income"
	TransferFromAccount CashflowTransactionType = "transfer_from_account"
	OwnerDrawing        CashflowTransactionType = "owner_drawing"
	OtherExpense        CashflowTransactionType = "other_expense"
	TransferToAccount   CashflowTransactionType = "transfer_to_account"
)

// CashflowDirection tells whether money enters or leaves the cash account.
type CashflowDirection string

const (
	CashIn  CashflowDirection = "IN"
	CashOut CashflowDirection = "OUT"
)

var cashflowDirections = map[CashflowTransactionType]CashflowDirection{
	OwnerContribution:   CashIn,
	OtherIncome:         CashIn,
	TransferFromAccount: CashIn,
	OwnerDrawing:        CashOut,
	OtherExpense:        CashOut,
	TransferToAccount:   CashOut,
}

// CashflowTransactionTypes lists every known cashflow type in a stable order.
func CashflowTransactionTypes() []CashflowTransactionType {
	return []CashflowTransactionType{
		OwnerContribution,
		OtherIncome,
		TransferFromAccount,
		OwnerDrawing,
		OtherExpense,
		TransferToAccount,
	}
}

// Direction returns the cash direction of t and whether t is known.
func (t CashflowTransactionType) Direction() (CashflowDirection, bool) {
	d, ok := cashflowDirections[t]
	return d, ok
}

// LedgerType converts the stored snake_case kind into its ledger tag, e.g. owner_contribution -> OwnerContribution.
func (t CashflowTransactionType) LedgerType() TransactionType {
	var b strings.Builder
	for _, part := range strings.FieldsFunc(string(t), func(r rune) bool { return r == '_' || r == '-' || r == ' ' }) {
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(strings.ToLower(part[1:]))
	}
	return TransactionType(b.String())
}

// CashflowLedgerTypes returns the ledger tags of all cashflow kinds. Reverting a cashflow
// transaction deletes across all of them since an edit may have changed its kind.
func CashflowLedgerTypes() []TransactionType {
	types := CashflowTransactionTypes()
	out := make([]TransactionType, len(types))
	for i, t := range types {
		out[i] = t.LedgerType()
	}
	return out
}

// CashflowTransaction is a money movement on a cash or bank account against one contra account.
type CashflowTransaction struct {
	ID                string                  `json:"id"`
	TenantID          string                  `json:"tenantId"`
	TransactionType   CashflowTransactionType `json:"transactionType"`
	TransactionNumber string                  `json:"transactionNumber"`
	ReferenceNo       string                  `json:"referenceNo"`
	Date              time.Time               `json:"date"`

	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`

	CashflowAccountID string   `json:"cashflowAccountId"`
	CreditAccountID   string   `json:"creditAccountId"`
	CreditAccount     *Account `json:"creditAccount,omitempty"`

	BranchID string `json:"branchId"`
	UserID   string `json:"userId"`
}

// LocalAmount is the amount expressed in the tenant's base currency, rounded to AmountScale.
func (t CashflowTransaction) LocalAmount() decimal.Decimal {
	return LocalizeAmount(t.Amount, t.ExchangeRate)
}

// IsCashDebit is true when money flows into the cash account.
func (t CashflowTransaction) IsCashDebit() bool {
	d, _ := t.TransactionType.Direction()
	return d == CashIn
}

// IsCashCredit is true when money flows out of the cash account.
func (t CashflowTransaction) IsCashCredit() bool {
	d, _ := t.TransactionType.Direction()
	return d == CashOut
}
