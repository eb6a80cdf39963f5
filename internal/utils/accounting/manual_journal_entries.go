package accounting

import (
	"fmt"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
)

// ManualJournalEntries maps each journal line to one GL entry, keeping line order.
// Each line is localized and rounded on its own, the way the rows are stored, so a
// journal whose rounded lines no longer net to zero fails AssertBalanced.
// Lines must carry their loaded account so the entry gets the account's normal side.
func ManualJournalEntries(journal domain.ManualJournal) ([]domain.LedgerEntry, error) {
	if len(journal.Lines) < 2 {
		return nil, fmt.Errorf("%w: journal %s must have at least two lines", apperrors.ErrValidation, journal.ID)
	}

	entries := make([]domain.LedgerEntry, 0, len(journal.Lines))
	for i, line := range journal.Lines {
		if line.Account == nil || !line.Account.AccountNormal.IsValid() {
			normal := ""
			if line.Account != nil {
				normal = string(line.Account.AccountNormal)
			}
			return nil, &apperrors.UnknownAccountNormalError{AccountID: line.AccountID, Normal: normal}
		}
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return nil, fmt.Errorf("%w: journal %s line %d has a negative amount", apperrors.ErrValidation, journal.ID, i+1)
		}
		if line.Debit.IsZero() == line.Credit.IsZero() {
			return nil, fmt.Errorf("%w: journal %s line %d must have exactly one of debit or credit", apperrors.ErrValidation, journal.ID, i+1)
		}

		entries = append(entries, domain.LedgerEntry{
			AccountID:         line.AccountID,
			AccountNormal:     line.Account.AccountNormal,
			Debit:             domain.LocalizeAmount(line.Debit, journal.ExchangeRate),
			Credit:            domain.LocalizeAmount(line.Credit, journal.ExchangeRate),
			Date:              journal.Date,
			CurrencyCode:      journal.CurrencyCode,
			ExchangeRate:      journal.ExchangeRate,
			TransactionType:   domain.ManualJournalLedgerType,
			TransactionID:     journal.ID,
			TransactionNumber: journal.JournalNumber,
			ReferenceNo:       journal.ReferenceNo,
			BranchID:          journal.BranchID,
			UserID:            journal.UserID,
			Index:             i + 1,
		})
	}
	return entries, nil
}

// ManualJournalLedger wraps ManualJournalEntries into a ledger.
func ManualJournalLedger(journal domain.ManualJournal) (*domain.Ledger, error) {
	entries, err := ManualJournalEntries(journal)
	if err != nil {
		return nil, err
	}
	return domain.NewLedger(entries), nil
}
