package accounting_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func manualJournal(lines ...domain.ManualJournalLine) domain.ManualJournal {
	return domain.ManualJournal{
		ID:            "mj-1",
		TenantID:      "tenant-1",
		JournalNumber: "MJ-0001",
		Date:          time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC),
		CurrencyCode:  "USD",
		UserID:        "user-1",
		Lines:         lines,
	}
}

func line(accountID string, normal domain.AccountNormal, debit, credit string) domain.ManualJournalLine {
	return domain.ManualJournalLine{
		AccountID: accountID,
		Account:   &domain.Account{AccountID: accountID, AccountNormal: normal},
		Debit:     decimal.RequireFromString(debit),
		Credit:    decimal.RequireFromString(credit),
	}
}

func TestManualJournalEntries_KeepsLineOrderAndNormals(t *testing.T) {
	journal := manualJournal(
		line("rent", domain.Debit, "1200", "0"),
		line("utilities", domain.Debit, "300", "0"),
		line("bank", domain.Debit, "0", "1500"),
	)

	entries, err := accounting.ManualJournalEntries(journal)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	for i, e := range entries {
		assert.Equal(t, i+1, e.Index)
		assert.Equal(t, domain.ManualJournalLedgerType, e.TransactionType)
		assert.Equal(t, "mj-1", e.TransactionID)
		assert.Equal(t, "MJ-0001", e.TransactionNumber)
	}
	assert.Equal(t, "rent", entries[0].AccountID)
	assert.Equal(t, "bank", entries[2].AccountID)

	ledger, err := accounting.ManualJournalLedger(journal)
	require.NoError(t, err)
	assert.NoError(t, ledger.AssertBalanced())
}

func TestManualJournalEntries_AppliesExchangeRate(t *testing.T) {
	journal := manualJournal(
		line("a", domain.Debit, "10", "0"),
		line("b", domain.Credit, "0", "10"),
	)
	journal.ExchangeRate = decimal.RequireFromString("3.5")

	entries, err := accounting.ManualJournalEntries(journal)
	require.NoError(t, err)

	assert.True(t, entries[0].Debit.Equal(decimal.RequireFromString("35")))
	assert.True(t, entries[1].Credit.Equal(decimal.RequireFromString("35")))
}

func TestManualJournalLedger_RoundsEachLineToStorageScale(t *testing.T) {
	journal := manualJournal(
		line("a", domain.Debit, "1", "0"),
		line("b", domain.Debit, "1", "0"),
		line("c", domain.Credit, "0", "2"),
	)
	journal.ExchangeRate = decimal.RequireFromString("0.3333333333")

	ledger, err := accounting.ManualJournalLedger(journal)
	require.NoError(t, err)

	entries := ledger.Entries()
	assert.Equal(t, "0.33333333", entries[0].Debit.String())
	assert.Equal(t, "0.33333333", entries[1].Debit.String())
	assert.Equal(t, "0.66666667", entries[2].Credit.String())

	// The rounded rows no longer net to zero, so the ledger must be refused before any write.
	err = ledger.AssertBalanced()
	assert.ErrorIs(t, err, apperrors.ErrUnbalancedLedger)
}

func TestManualJournalLedger_BalancesAtStorageScale(t *testing.T) {
	rng := rand.New(rand.NewSource(20240402))
	normals := []domain.AccountNormal{domain.Debit, domain.Credit}

	for i := 0; i < 500; i++ {
		debits := 1 + rng.Intn(5)
		lines := make([]domain.ManualJournalLine, 0, debits+1)
		total := decimal.Zero
		for j := 0; j < debits; j++ {
			amount := decimal.New(1+rng.Int63n(100_000_000), -2)
			total = total.Add(amount)
			lines = append(lines, domain.ManualJournalLine{
				AccountID: "debit",
				Account:   &domain.Account{AccountID: "debit", AccountNormal: normals[rng.Intn(2)]},
				Debit:     amount,
			})
		}
		lines = append(lines, domain.ManualJournalLine{
			AccountID: "credit",
			Account:   &domain.Account{AccountID: "credit", AccountNormal: normals[rng.Intn(2)]},
			Credit:    total,
		})

		journal := manualJournal(lines...)
		// Rates with up to ten decimal places, as stored in NUMERIC(20, 10).
		journal.ExchangeRate = decimal.New(1+rng.Int63n(10_000_000_000), -int32(rng.Intn(11)))

		ledger, err := accounting.ManualJournalLedger(journal)
		require.NoError(t, err)

		storedDebit, storedCredit := decimal.Zero, decimal.Zero
		for _, e := range ledger.Entries() {
			require.True(t, e.Debit.Equal(e.Debit.Round(domain.AmountScale)), "debit %s exceeds storage scale", e.Debit)
			require.True(t, e.Credit.Equal(e.Credit.Round(domain.AmountScale)), "credit %s exceeds storage scale", e.Credit)
			storedDebit = storedDebit.Add(e.Debit.Round(domain.AmountScale))
			storedCredit = storedCredit.Add(e.Credit.Round(domain.AmountScale))
		}

		// A ledger accepted by AssertBalanced is balanced as stored; one whose stored rows differ is refused.
		if ledger.AssertBalanced() == nil {
			assert.True(t, storedDebit.Equal(storedCredit), "accepted ledger stores debit %s credit %s", storedDebit, storedCredit)
		} else {
			assert.False(t, storedDebit.Equal(storedCredit))
		}

		// Rates with at most four decimals multiply out exactly and always balance.
		journal.ExchangeRate = decimal.New(1+rng.Int63n(100_000), -4)
		exact, err := accounting.ManualJournalLedger(journal)
		require.NoError(t, err)
		assert.NoError(t, exact.AssertBalanced())
	}
}

func TestManualJournalEntries_Errors(t *testing.T) {
	tests := []struct {
		name    string
		journal domain.ManualJournal
		wantErr error
	}{
		{
			name:    "single line",
			journal: manualJournal(line("a", domain.Debit, "1", "0")),
			wantErr: apperrors.ErrValidation,
		},
		{
			name: "line with both sides",
			journal: manualJournal(
				line("a", domain.Debit, "1", "1"),
				line("b", domain.Credit, "0", "0"),
			),
			wantErr: apperrors.ErrValidation,
		},
		{
			name: "negative amount",
			journal: manualJournal(
				line("a", domain.Debit, "-1", "0"),
				line("b", domain.Credit, "0", "-1"),
			),
			wantErr: apperrors.ErrValidation,
		},
		{
			name: "account without normal",
			journal: manualJournal(
				line("a", domain.Debit, "1", "0"),
				domain.ManualJournalLine{AccountID: "ghost", Credit: decimal.NewFromInt(1)},
			),
			wantErr: apperrors.ErrUnknownAccountNormal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := accounting.ManualJournalEntries(tt.journal)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
