package accounting

import (
	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateSignedAmount returns the effect of a debit/credit pair on an account balance.
// DEBIT-normal accounts grow with debits, CREDIT-normal accounts with credits.
func CalculateSignedAmount(accountID string, normal domain.AccountNormal, debit, credit decimal.Decimal) (decimal.Decimal, error) {
	switch normal {
	case domain.Debit:
		return debit.Sub(credit), nil
	case domain.Credit:
		return credit.Sub(debit), nil
	default:
		return decimal.Zero, &apperrors.UnknownAccountNormalError{AccountID: accountID, Normal: string(normal)}
	}
}

// CalculateBalanceChanges aggregates the signed balance effect of the entries per account.
// Accounts whose net change is zero are left out.
func CalculateBalanceChanges(entries []domain.LedgerEntry) (map[string]decimal.Decimal, error) {
	changes := make(map[string]decimal.Decimal)
	for _, e := range entries {
		signed, err := CalculateSignedAmount(e.AccountID, e.AccountNormal, e.Debit, e.Credit)
		if err != nil {
			return nil, err
		}
		changes[e.AccountID] = changes[e.AccountID].Add(signed)
	}
	for id, delta := range changes {
		if delta.IsZero() {
			delete(changes, id)
		}
	}
	return changes, nil
}
