package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sheetEntry(txnID, txnType string, debit, credit int64) domain.LedgerEntry {
	return domain.LedgerEntry{
		AccountID:       "acc-" + txnID,
		TransactionID:   txnID,
		TransactionType: domain.TransactionType(txnType),
		Debit:           decimal.NewFromInt(debit),
		Credit:          decimal.NewFromInt(credit),
		CurrencyCode:    "EUR",
	}
}

func plainFormat() domain.NumberFormat {
	return domain.NumberFormat{Precision: 2, NegativeFormat: domain.NegativeMines, FormatMoney: domain.FormatMoneyNone}
}

func TestBuildJournalGroups_GroupsByReference(t *testing.T) {
	entries := []domain.LedgerEntry{
		sheetEntry("A", "1", 100, 0),
		sheetEntry("A", "1", 0, 100),
		sheetEntry("B", "1", 50, 50),
	}

	groups := services.BuildJournalGroups(entries, "USD", plainFormat())

	require.Len(t, groups, 2)
	assert.Equal(t, "A-1", groups[0].ID)
	assert.True(t, groups[0].Debit.Equal(decimal.NewFromInt(100)))
	assert.True(t, groups[0].Credit.Equal(decimal.NewFromInt(100)))
	assert.Len(t, groups[0].Entries, 2)
	assert.Equal(t, "100.00", groups[0].FormattedDebit)
	assert.Equal(t, "100.00", groups[0].FormattedCredit)

	assert.Equal(t, "B-1", groups[1].ID)
	assert.True(t, groups[1].Debit.Equal(decimal.NewFromInt(50)))
	assert.True(t, groups[1].Credit.Equal(decimal.NewFromInt(50)))
	assert.Len(t, groups[1].Entries, 1)
}

func TestBuildJournalGroups_KeepsFirstAppearanceOrder(t *testing.T) {
	entries := []domain.LedgerEntry{
		sheetEntry("9", "Journal", 5, 0),
		sheetEntry("1", "OwnerContribution", 7, 0),
		sheetEntry("9", "Journal", 0, 5),
		sheetEntry("1", "OwnerContribution", 0, 7),
	}

	groups := services.BuildJournalGroups(entries, "USD", plainFormat())

	require.Len(t, groups, 2)
	assert.Equal(t, "9-Journal", groups[0].ID)
	assert.Equal(t, "1-OwnerContribution", groups[1].ID)
}

func TestBuildJournalGroups_TagsBaseCurrency(t *testing.T) {
	groups := services.BuildJournalGroups([]domain.LedgerEntry{sheetEntry("A", "1", 1, 1)}, "JPY", plainFormat())

	require.Len(t, groups, 1)
	assert.Equal(t, "JPY", groups[0].CurrencyCode)
	assert.Equal(t, "JPY", groups[0].Entries[0].CurrencyCode)
}

func TestBuildJournalGroups_Empty(t *testing.T) {
	groups := services.BuildJournalGroups(nil, "USD", plainFormat())
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

func TestBuildJournalGroups_HidesZeroTotals(t *testing.T) {
	groups := services.BuildJournalGroups([]domain.LedgerEntry{sheetEntry("A", "1", 0, 0)}, "USD", plainFormat())
	assert.Equal(t, "", groups[0].FormattedDebit)
}

func TestGetJournalSheet(t *testing.T) {
	ctx := context.Background()
	query := domain.JournalReportQuery{NumberFormat: plainFormat()}
	entries := []domain.LedgerEntry{sheetEntry("A", "1", 100, 0), sheetEntry("A", "1", 0, 100)}

	t.Run("uses tenant base currency", func(t *testing.T) {
		ledgerRepo := new(MockLedgerReader)
		tenantRepo := new(MockTenantRepository)
		tenantRepo.On("FindTenantByID", ctx, tenantID).Return(&domain.Tenant{TenantID: tenantID, BaseCurrency: "GBP"}, nil).Once()
		ledgerRepo.On("ListLedgerEntries", ctx, tenantID, query).Return(entries, nil).Once()

		svc := services.NewJournalSheetService(ledgerRepo, tenantRepo, services.WithDefaultBaseCurrency("USD"))
		report, err := svc.GetJournalSheet(ctx, tenantID, query)

		require.NoError(t, err)
		assert.Equal(t, "GBP", report.BaseCurrency)
		assert.Equal(t, tenantID, report.TenantID)
		require.Len(t, report.Groups, 1)
		assert.Equal(t, "GBP", report.Groups[0].CurrencyCode)
		ledgerRepo.AssertExpectations(t)
		tenantRepo.AssertExpectations(t)
	})

	t.Run("falls back to default currency", func(t *testing.T) {
		ledgerRepo := new(MockLedgerReader)
		tenantRepo := new(MockTenantRepository)
		tenantRepo.On("FindTenantByID", ctx, tenantID).Return(&domain.Tenant{TenantID: tenantID}, nil).Once()
		ledgerRepo.On("ListLedgerEntries", ctx, tenantID, query).Return([]domain.LedgerEntry{}, nil).Once()

		svc := services.NewJournalSheetService(ledgerRepo, tenantRepo, services.WithDefaultBaseCurrency("INR"))
		report, err := svc.GetJournalSheet(ctx, tenantID, query)

		require.NoError(t, err)
		assert.Equal(t, "INR", report.BaseCurrency)
		assert.Empty(t, report.Groups)
	})

	t.Run("unknown tenant", func(t *testing.T) {
		ledgerRepo := new(MockLedgerReader)
		tenantRepo := new(MockTenantRepository)
		tenantRepo.On("FindTenantByID", ctx, "nope").Return(nil, apperrors.ErrNotFound).Once()

		svc := services.NewJournalSheetService(ledgerRepo, tenantRepo)
		_, err := svc.GetJournalSheet(ctx, "nope", query)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		ledgerRepo.AssertNotCalled(t, "ListLedgerEntries", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("storage failure", func(t *testing.T) {
		ledgerRepo := new(MockLedgerReader)
		tenantRepo := new(MockTenantRepository)
		tenantRepo.On("FindTenantByID", ctx, tenantID).Return(&domain.Tenant{TenantID: tenantID, BaseCurrency: "USD"}, nil).Once()
		ledgerRepo.On("ListLedgerEntries", ctx, tenantID, query).Return(nil, errors.New("boom")).Once()

		svc := services.NewJournalSheetService(ledgerRepo, tenantRepo)
		_, err := svc.GetJournalSheet(ctx, tenantID, query)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 500, appErr.Code)
	})
}

func TestBuildJournalGroups_TotalsCarrySymbolWithFormatMoneyTotal(t *testing.T) {
	entries := []domain.LedgerEntry{sheetEntry("A", "1", 100, 0), sheetEntry("A", "1", 0, 100)}
	format := plainFormat()
	format.FormatMoney = domain.FormatMoneyTotal

	groups := services.BuildJournalGroups(entries, "USD", format)

	require.Len(t, groups, 1)
	assert.NotEqual(t, "100.00", groups[0].FormattedDebit)
	assert.True(t, strings.HasSuffix(groups[0].FormattedDebit, "100.00"))
	assert.True(t, strings.HasSuffix(groups[0].FormattedCredit, "100.00"))

	format.FormatMoney = domain.FormatMoneyNone
	groups = services.BuildJournalGroups(entries, "USD", format)
	assert.Equal(t, "100.00", groups[0].FormattedDebit)
}
