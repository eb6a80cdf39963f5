package mapping

import (
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/models"
)

// ToModelLedgerEntry converts a domain LedgerEntry into a row for the given tenant.
// EntryID and CreatedAt are left to the repository.
func ToModelLedgerEntry(tenantID string, d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		TenantID:          tenantID,
		AccountID:         d.AccountID,
		AccountNormal:     string(d.AccountNormal),
		Debit:             d.Debit,
		Credit:            d.Credit,
		EntryDate:         d.Date,
		CurrencyCode:      d.CurrencyCode,
		ExchangeRate:      d.ExchangeRate,
		TransactionType:   string(d.TransactionType),
		TransactionID:     d.TransactionID,
		TransactionNumber: d.TransactionNumber,
		ReferenceNo:       d.ReferenceNo,
		BranchID:          d.BranchID,
		UserID:            d.UserID,
		EntryIndex:        d.Index,
	}
}

// ToDomainLedgerEntry converts a ledger_entries row back into a domain LedgerEntry
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		AccountID:         m.AccountID,
		AccountNormal:     domain.AccountNormal(m.AccountNormal),
		Debit:             m.Debit,
		Credit:            m.Credit,
		Date:              m.EntryDate,
		CurrencyCode:      m.CurrencyCode,
		ExchangeRate:      m.ExchangeRate,
		TransactionType:   domain.TransactionType(m.TransactionType),
		TransactionID:     m.TransactionID,
		TransactionNumber: m.TransactionNumber,
		ReferenceNo:       m.ReferenceNo,
		BranchID:          m.BranchID,
		UserID:            m.UserID,
		Index:             m.EntryIndex,
	}
}

// ToDomainLedgerEntrySlice converts a slice of rows to domain entries
func ToDomainLedgerEntrySlice(ms []models.LedgerEntry) []domain.LedgerEntry {
	ds := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerEntry(m)
	}
	return ds
}
