package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine/internal/utils/accounting"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ledgerStorageService persists ledgers and keeps account balances in step with the posted entries.
type ledgerStorageService struct {
	BaseService
	ledgerRepo  portsrepo.LedgerRepositoryFacade
	accountRepo portsrepo.AccountTransactionSupport
	now         func() time.Time
}

// LedgerStorageOption is a functional option for configuring the ledger storage service
type LedgerStorageOption func(*ledgerStorageService)

// WithLedgerClock overrides the clock used for audit timestamps.
func WithLedgerClock(now func() time.Time) LedgerStorageOption {
	return func(s *ledgerStorageService) {
		s.now = now
	}
}

// NewLedgerStorageService creates a new LedgerStorageSvc.
func NewLedgerStorageService(txManager portsrepo.TransactionManager, ledgerRepo portsrepo.LedgerRepositoryFacade, accountRepo portsrepo.AccountTransactionSupport, options ...LedgerStorageOption) portssvc.LedgerStorageSvc {
	svc := &ledgerStorageService{
		BaseService: BaseService{TxManager: txManager},
		ledgerRepo:  ledgerRepo,
		accountRepo: accountRepo,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.LedgerStorageSvc = (*ledgerStorageService)(nil)

// Commit implements portssvc.LedgerStorageSvc.
func (s *ledgerStorageService) Commit(ctx context.Context, tx pgx.Tx, tenantID string, ledger *domain.Ledger, userID string) error {
	if ledger == nil || ledger.Len() == 0 {
		s.LogDebug(ctx, "Empty ledger, nothing to commit", slog.String("tenant_id", tenantID))
		return nil
	}

	if err := ledger.AssertBalanced(); err != nil {
		s.LogError(ctx, err, "Refusing to commit unbalanced ledger", slog.String("tenant_id", tenantID))
		return err
	}

	entries := ledger.Entries()
	reference := entries[0].Reference()

	changes, err := accounting.CalculateBalanceChanges(entries)
	if err != nil {
		return err
	}

	err = s.RunInTx(ctx, tx, func(tx pgx.Tx) error {
		if err := s.ledgerRepo.InsertLedgerEntries(ctx, tx, tenantID, entries); err != nil {
			return err
		}
		return s.applyBalanceChanges(ctx, tx, tenantID, changes, userID)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to commit ledger",
			slog.String("tenant_id", tenantID),
			slog.String("reference", reference))
		return &apperrors.StorageCommitError{TenantID: tenantID, Reference: reference, Err: err}
	}

	s.LogInfo(ctx, "Ledger committed",
		slog.String("tenant_id", tenantID),
		slog.String("reference", reference),
		slog.Int("entries", len(entries)))
	return nil
}

// DeleteByReference implements portssvc.LedgerStorageSvc.
func (s *ledgerStorageService) DeleteByReference(ctx context.Context, tx pgx.Tx, tenantID, transactionID string, types []domain.TransactionType, userID string) error {
	var deleted int64
	err := s.RunInTx(ctx, tx, func(tx pgx.Tx) error {
		existing, err := s.ledgerRepo.FindLedgerEntriesByReference(ctx, tx, tenantID, transactionID, types)
		if err != nil {
			return err
		}
		if len(existing) == 0 {
			return nil
		}

		changes, err := accounting.CalculateBalanceChanges(domain.NewLedger(existing).Reverse().Entries())
		if err != nil {
			return err
		}
		if err := s.applyBalanceChanges(ctx, tx, tenantID, changes, userID); err != nil {
			return err
		}

		deleted, err = s.ledgerRepo.DeleteLedgerEntriesByReference(ctx, tx, tenantID, transactionID, types)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete ledger entries",
			slog.String("tenant_id", tenantID),
			slog.String("transaction_id", transactionID))
		return &apperrors.StorageDeleteError{
			TenantID:         tenantID,
			TransactionID:    transactionID,
			TransactionTypes: typeNames(types),
			Err:              err,
		}
	}

	s.LogInfo(ctx, "Ledger entries deleted",
		slog.String("tenant_id", tenantID),
		slog.String("transaction_id", transactionID),
		slog.Int64("entries", deleted))
	return nil
}

// applyBalanceChanges locks the touched accounts and adds the signed deltas to their balances.
func (s *ledgerStorageService) applyBalanceChanges(ctx context.Context, tx pgx.Tx, tenantID string, changes map[string]decimal.Decimal, userID string) error {
	if len(changes) == 0 {
		return nil
	}

	ids := make([]string, 0, len(changes))
	for id := range changes {
		ids = append(ids, id)
	}

	// Fails with apperrors.ErrNotFound when any account is missing.
	if _, err := s.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, tenantID, ids); err != nil {
		return fmt.Errorf("failed to lock accounts: %w", err)
	}

	return s.accountRepo.UpdateAccountBalancesInTx(ctx, tx, tenantID, changes, userID, s.now())
}

func typeNames(types []domain.TransactionType) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}
