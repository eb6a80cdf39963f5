package mapping

import (
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/models"
)

// ToDomainCashflowTransaction converts a cashflow_transactions row to a domain CashflowTransaction.
// The contra account is attached separately by the loader.
func ToDomainCashflowTransaction(m models.CashflowTransaction) domain.CashflowTransaction {
	return domain.CashflowTransaction{
		ID:                m.ID,
		TenantID:          m.TenantID,
		TransactionType:   domain.CashflowTransactionType(m.TransactionType),
		TransactionNumber: m.TransactionNumber,
		ReferenceNo:       m.ReferenceNo,
		Date:              m.TransactionDate,
		Amount:            m.Amount,
		CurrencyCode:      m.CurrencyCode,
		ExchangeRate:      m.ExchangeRate,
		CashflowAccountID: m.CashflowAccountID,
		CreditAccountID:   m.CreditAccountID,
		BranchID:          m.BranchID,
		UserID:            m.UserID,
	}
}

// ToDomainManualJournal converts a manual_journals row and its lines to a domain ManualJournal.
func ToDomainManualJournal(m models.ManualJournal, lines []models.ManualJournalEntry) domain.ManualJournal {
	out := domain.ManualJournal{
		ID:            m.ID,
		TenantID:      m.TenantID,
		JournalNumber: m.JournalNumber,
		ReferenceNo:   m.ReferenceNo,
		Date:          m.JournalDate,
		CurrencyCode:  m.CurrencyCode,
		ExchangeRate:  m.ExchangeRate,
		BranchID:      m.BranchID,
		UserID:        m.UserID,
		Lines:         make([]domain.ManualJournalLine, len(lines)),
	}
	for i, l := range lines {
		out.Lines[i] = domain.ManualJournalLine{
			Index:     l.LineIndex,
			AccountID: l.AccountID,
			Debit:     l.Debit,
			Credit:    l.Credit,
			Note:      l.Note,
		}
	}
	return out
}
