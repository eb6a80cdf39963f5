package services

import (
	"context"
	"errors"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine/internal/utils/accounting"
	"github.com/jackc/pgx/v5"
)

var manualJournalTypes = []domain.TransactionType{domain.ManualJournalLedgerType}

// manualJournalService posts manual journals to the ledger.
type manualJournalService struct {
	BaseService
	journalRepo   portsrepo.ManualJournalReader
	accountRepo   portsrepo.AccountTransactionSupport
	ledgerStorage portssvc.LedgerStorageSvc
}

// NewManualJournalService creates the JournalPostingSvc for manual journals.
func NewManualJournalService(txManager portsrepo.TransactionManager, journalRepo portsrepo.ManualJournalReader, accountRepo portsrepo.AccountTransactionSupport, ledgerStorage portssvc.LedgerStorageSvc) portssvc.JournalPostingSvc {
	return &manualJournalService{
		BaseService:   BaseService{TxManager: txManager},
		journalRepo:   journalRepo,
		accountRepo:   accountRepo,
		ledgerStorage: ledgerStorage,
	}
}

var _ portssvc.JournalPostingSvc = (*manualJournalService)(nil)

// WriteJournalEntries implements portssvc.JournalPostingSvc.
func (s *manualJournalService) WriteJournalEntries(ctx context.Context, tx pgx.Tx, tenantID, journalID, userID string) error {
	return s.RunInTx(ctx, tx, func(tx pgx.Tx) error {
		journal, err := s.load(ctx, tx, tenantID, journalID)
		if err != nil {
			return err
		}
		return s.post(ctx, tx, tenantID, journal, userID)
	})
}

// RevertJournalEntries implements portssvc.JournalPostingSvc.
func (s *manualJournalService) RevertJournalEntries(ctx context.Context, tx pgx.Tx, tenantID, journalID, userID string) error {
	return s.RunInTx(ctx, tx, func(tx pgx.Tx) error {
		return s.ledgerStorage.DeleteByReference(ctx, tx, tenantID, journalID, manualJournalTypes, userID)
	})
}

// RewriteJournalEntries implements portssvc.JournalPostingSvc.
func (s *manualJournalService) RewriteJournalEntries(ctx context.Context, tx pgx.Tx, tenantID, journalID, userID string) error {
	return s.RunInTx(ctx, tx, func(tx pgx.Tx) error {
		journal, err := s.load(ctx, tx, tenantID, journalID)
		if err != nil {
			return err
		}
		if err := s.ledgerStorage.DeleteByReference(ctx, tx, tenantID, journalID, manualJournalTypes, userID); err != nil {
			return err
		}
		return s.post(ctx, tx, tenantID, journal, userID)
	})
}

// load locks the journal and attaches the account of every line.
func (s *manualJournalService) load(ctx context.Context, tx pgx.Tx, tenantID, journalID string) (*domain.ManualJournal, error) {
	journal, err := s.journalRepo.FindManualJournalForUpdate(ctx, tx, tenantID, journalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, &apperrors.TransactionNotFoundError{TenantID: tenantID, TransactionID: journalID, TransactionKind: "manual journal"}
		}
		return nil, err
	}

	ids := make([]string, 0, len(journal.Lines))
	seen := make(map[string]struct{}, len(journal.Lines))
	for _, line := range journal.Lines {
		if _, ok := seen[line.AccountID]; ok {
			continue
		}
		seen[line.AccountID] = struct{}{}
		ids = append(ids, line.AccountID)
	}

	accounts, err := s.accountRepo.FindAccountsByIDsInTx(ctx, tx, tenantID, ids)
	if err != nil {
		return nil, err
	}
	for i := range journal.Lines {
		if account, ok := accounts[journal.Lines[i].AccountID]; ok {
			journal.Lines[i].Account = &account
		}
	}
	return journal, nil
}

func (s *manualJournalService) post(ctx context.Context, tx pgx.Tx, tenantID string, journal *domain.ManualJournal, userID string) error {
	ledger, err := accounting.ManualJournalLedger(*journal)
	if err != nil {
		s.LogError(ctx, err, "Failed to map manual journal")
		return err
	}
	return s.ledgerStorage.Commit(ctx, tx, tenantID, ledger, userID)
}
