package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine/internal/utils"
	"github.com/shopspring/decimal"
)

// journalSheetService builds the journal report from posted entries.
type journalSheetService struct {
	BaseService
	ledgerRepo          portsrepo.LedgerEntryReader
	tenantRepo          portsrepo.TenantReader
	defaultBaseCurrency string
}

// JournalSheetOption is a functional option for configuring the journal sheet service
type JournalSheetOption func(*journalSheetService)

// WithDefaultBaseCurrency sets the currency used when a tenant has none configured.
func WithDefaultBaseCurrency(code string) JournalSheetOption {
	return func(s *journalSheetService) {
		s.defaultBaseCurrency = code
	}
}

// NewJournalSheetService creates a new JournalSheetSvc.
func NewJournalSheetService(ledgerRepo portsrepo.LedgerEntryReader, tenantRepo portsrepo.TenantReader, options ...JournalSheetOption) portssvc.JournalSheetSvc {
	svc := &journalSheetService{
		ledgerRepo:          ledgerRepo,
		tenantRepo:          tenantRepo,
		defaultBaseCurrency: "USD",
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.JournalSheetSvc = (*journalSheetService)(nil)

// GetJournalSheet implements portssvc.JournalSheetSvc.
func (s *journalSheetService) GetJournalSheet(ctx context.Context, tenantID string, query domain.JournalReportQuery) (*domain.JournalReport, error) {
	baseCurrency, err := s.baseCurrency(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	entries, err := s.ledgerRepo.ListLedgerEntries(ctx, tenantID, query)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger entries", slog.String("tenant_id", tenantID))
		return nil, apperrors.NewAppError(500, "failed to load journal entries", err)
	}

	s.LogDebug(ctx, "Building journal sheet",
		slog.String("tenant_id", tenantID),
		slog.Int("entries", len(entries)))

	return &domain.JournalReport{
		TenantID:     tenantID,
		BaseCurrency: baseCurrency,
		Query:        query,
		Groups:       BuildJournalGroups(entries, baseCurrency, query.NumberFormat),
	}, nil
}

func (s *journalSheetService) baseCurrency(ctx context.Context, tenantID string) (string, error) {
	tenant, err := s.tenantRepo.FindTenantByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.NewNotFoundError("tenant " + tenantID + " not found")
		}
		return "", err
	}
	if tenant.BaseCurrency == "" {
		return s.defaultBaseCurrency, nil
	}
	return tenant.BaseCurrency, nil
}

// BuildJournalGroups groups entries by "transactionId-transactionType" in order of first
// appearance and totals each group. Every entry and group is tagged with the base currency.
func BuildJournalGroups(entries []domain.LedgerEntry, baseCurrency string, format domain.NumberFormat) []domain.JournalReportEntriesGroup {
	groups := make([]domain.JournalReportEntriesGroup, 0)
	positions := make(map[string]int)

	for _, entry := range entries {
		key := entry.Reference()
		pos, ok := positions[key]
		if !ok {
			pos = len(groups)
			positions[key] = pos
			groups = append(groups, domain.JournalReportEntriesGroup{
				ID:           key,
				CurrencyCode: baseCurrency,
				Debit:        decimal.Zero,
				Credit:       decimal.Zero,
			})
		}

		entry.CurrencyCode = baseCurrency
		group := &groups[pos]
		group.Entries = append(group.Entries, entry)
		group.Debit = group.Debit.Add(entry.Debit)
		group.Credit = group.Credit.Add(entry.Credit)
	}

	// Group debit and credit are per-transaction totals.
	for i := range groups {
		groups[i].FormattedDebit = utils.FormatNumber(groups[i].Debit, format, baseCurrency, true)
		groups[i].FormattedCredit = utils.FormatNumber(groups[i].Credit, format, baseCurrency, true)
	}
	return groups
}
