package accounting

import (
	"fmt"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// cashflowCommonEntry holds the fields shared by both sides of a cashflow posting.
func cashflowCommonEntry(txn domain.CashflowTransaction) domain.LedgerEntry {
	return domain.LedgerEntry{
		Date:         txn.Date,
		CurrencyCode: txn.CurrencyCode,
		ExchangeRate: txn.ExchangeRate,

		TransactionType:   txn.TransactionType.LedgerType(),
		TransactionID:     txn.ID,
		TransactionNumber: txn.TransactionNumber,
		ReferenceNo:       txn.ReferenceNo,

		BranchID: txn.BranchID,
		UserID:   txn.UserID,
	}
}

func amountIf(cond bool, amount decimal.Decimal) decimal.Decimal {
	if cond {
		return amount
	}
	return decimal.Zero
}

// CashflowEntries maps a cashflow transaction into its two GL entries: the cash side
// (always DEBIT-normal, index 1) and the contra side (index 2) with mirrored amounts.
// The contra account must be loaded on the transaction.
func CashflowEntries(txn domain.CashflowTransaction) ([]domain.LedgerEntry, error) {
	if txn.CreditAccount == nil {
		return nil, &apperrors.UnknownAccountNormalError{AccountID: txn.CreditAccountID}
	}
	if !txn.CreditAccount.AccountNormal.IsValid() {
		return nil, &apperrors.UnknownAccountNormalError{AccountID: txn.CreditAccountID, Normal: string(txn.CreditAccount.AccountNormal)}
	}
	isCashDebit, isCashCredit := txn.IsCashDebit(), txn.IsCashCredit()
	if isCashDebit == isCashCredit {
		return nil, fmt.Errorf("%w: unknown cashflow transaction type %q", apperrors.ErrValidation, txn.TransactionType)
	}
	amount := txn.LocalAmount()

	cash := cashflowCommonEntry(txn)
	cash.AccountID = txn.CashflowAccountID
	cash.AccountNormal = domain.Debit
	cash.Debit = amountIf(isCashDebit, amount)
	cash.Credit = amountIf(isCashCredit, amount)
	cash.Index = 1

	contra := cashflowCommonEntry(txn)
	contra.AccountID = txn.CreditAccountID
	contra.AccountNormal = txn.CreditAccount.AccountNormal
	contra.Debit = amountIf(isCashCredit, amount)
	contra.Credit = amountIf(isCashDebit, amount)
	contra.Index = 2

	return []domain.LedgerEntry{cash, contra}, nil
}

// CashflowLedger wraps CashflowEntries into a ledger.
func CashflowLedger(txn domain.CashflowTransaction) (*domain.Ledger, error) {
	entries, err := CashflowEntries(txn)
	if err != nil {
		return nil, err
	}
	return domain.NewLedger(entries), nil
}
