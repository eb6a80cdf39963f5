package domain

import (
	"sort"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Ledger is the transient, ordered set of entries produced for one business transaction.
// It is never persisted itself; the storage service consumes it and discards it.
type Ledger struct {
	entries []LedgerEntry
}

// NewLedger builds a ledger keeping the given entry order.
func NewLedger(entries []LedgerEntry) *Ledger {
	cp := make([]LedgerEntry, len(entries))
	copy(cp, entries)
	return &Ledger{entries: cp}
}

// Entries returns the entries in insertion order.
func (l *Ledger) Entries() []LedgerEntry {
	out := make([]LedgerEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// DebitTotal sums the debit side.
func (l *Ledger) DebitTotal() decimal.Decimal {
	total := decimal.Zero
	for _, e := range l.entries {
		total = total.Add(e.Debit)
	}
	return total
}

// CreditTotal sums the credit side.
func (l *Ledger) CreditTotal() decimal.Decimal {
	total := decimal.Zero
	for _, e := range l.entries {
		total = total.Add(e.Credit)
	}
	return total
}

// Filter returns a new ledger holding the entries accepted by keep.
func (l *Ledger) Filter(keep func(LedgerEntry) bool) *Ledger {
	filtered := make([]LedgerEntry, 0, len(l.entries))
	for _, e := range l.entries {
		if keep(e) {
			filtered = append(filtered, e)
		}
	}
	return &Ledger{entries: filtered}
}

// Reverse returns a ledger with every entry's debit and credit swapped.
func (l *Ledger) Reverse() *Ledger {
	reversed := make([]LedgerEntry, len(l.entries))
	for i, e := range l.entries {
		e.Debit, e.Credit = e.Credit, e.Debit
		reversed[i] = e
	}
	return &Ledger{entries: reversed}
}

// AccountIDs returns the distinct account ids touched by the ledger, sorted.
func (l *Ledger) AccountIDs() []string {
	seen := make(map[string]struct{}, len(l.entries))
	ids := make([]string, 0, len(l.entries))
	for _, e := range l.entries {
		if _, ok := seen[e.AccountID]; ok {
			continue
		}
		seen[e.AccountID] = struct{}{}
		ids = append(ids, e.AccountID)
	}
	sort.Strings(ids)
	return ids
}

// AssertBalanced fails with an UnbalancedLedgerError when debits and credits differ.
func (l *Ledger) AssertBalanced() error {
	debit, credit := l.DebitTotal(), l.CreditTotal()
	if debit.Equal(credit) {
		return nil
	}
	ref := ""
	if len(l.entries) > 0 {
		ref = l.entries[0].Reference()
	}
	return &apperrors.UnbalancedLedgerError{Reference: ref, Debit: debit, Credit: credit}
}
