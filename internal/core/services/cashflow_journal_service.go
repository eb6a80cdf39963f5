package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine/internal/utils/accounting"
	"github.com/jackc/pgx/v5"
)

// cashflowJournalService posts cashflow transactions to the ledger.
type cashflowJournalService struct {
	BaseService
	cashflowRepo  portsrepo.CashflowTransactionReader
	accountRepo   portsrepo.AccountTransactionSupport
	ledgerStorage portssvc.LedgerStorageSvc
}

// NewCashflowJournalService creates the JournalPostingSvc for cashflow transactions.
func NewCashflowJournalService(txManager portsrepo.TransactionManager, cashflowRepo portsrepo.CashflowTransactionReader, accountRepo portsrepo.AccountTransactionSupport, ledgerStorage portssvc.LedgerStorageSvc) portssvc.JournalPostingSvc {
	return &cashflowJournalService{
		BaseService:   BaseService{TxManager: txManager},
		cashflowRepo:  cashflowRepo,
		accountRepo:   accountRepo,
		ledgerStorage: ledgerStorage,
	}
}

var _ portssvc.JournalPostingSvc = (*cashflowJournalService)(nil)

// WriteJournalEntries implements portssvc.JournalPostingSvc.
func (s *cashflowJournalService) WriteJournalEntries(ctx context.Context, tx pgx.Tx, tenantID, transactionID, userID string) error {
	return s.RunInTx(ctx, tx, func(tx pgx.Tx) error {
		return s.write(ctx, tx, tenantID, transactionID, userID)
	})
}

// RevertJournalEntries implements portssvc.JournalPostingSvc.
// The delete spans every cashflow tag because an edit may have changed the transaction kind.
func (s *cashflowJournalService) RevertJournalEntries(ctx context.Context, tx pgx.Tx, tenantID, transactionID, userID string) error {
	return s.RunInTx(ctx, tx, func(tx pgx.Tx) error {
		return s.ledgerStorage.DeleteByReference(ctx, tx, tenantID, transactionID, domain.CashflowLedgerTypes(), userID)
	})
}

// RewriteJournalEntries implements portssvc.JournalPostingSvc.
func (s *cashflowJournalService) RewriteJournalEntries(ctx context.Context, tx pgx.Tx, tenantID, transactionID, userID string) error {
	return s.RunInTx(ctx, tx, func(tx pgx.Tx) error {
		// Lock the record first so the revert and the write see the same version.
		txn, err := s.load(ctx, tx, tenantID, transactionID)
		if err != nil {
			return err
		}
		if err := s.ledgerStorage.DeleteByReference(ctx, tx, tenantID, transactionID, domain.CashflowLedgerTypes(), userID); err != nil {
			return err
		}
		return s.post(ctx, tx, tenantID, txn, userID)
	})
}

func (s *cashflowJournalService) write(ctx context.Context, tx pgx.Tx, tenantID, transactionID, userID string) error {
	txn, err := s.load(ctx, tx, tenantID, transactionID)
	if err != nil {
		return err
	}
	return s.post(ctx, tx, tenantID, txn, userID)
}

// load locks the cashflow transaction and attaches its contra account.
func (s *cashflowJournalService) load(ctx context.Context, tx pgx.Tx, tenantID, transactionID string) (*domain.CashflowTransaction, error) {
	txn, err := s.cashflowRepo.FindCashflowTransactionForUpdate(ctx, tx, tenantID, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, &apperrors.TransactionNotFoundError{TenantID: tenantID, TransactionID: transactionID, TransactionKind: "cashflow transaction"}
		}
		s.LogError(ctx, err, "Failed to load cashflow transaction", slog.String("transaction_id", transactionID))
		return nil, err
	}

	accounts, err := s.accountRepo.FindAccountsByIDsInTx(ctx, tx, tenantID, []string{txn.CreditAccountID})
	if err != nil {
		return nil, err
	}
	if account, ok := accounts[txn.CreditAccountID]; ok {
		txn.CreditAccount = &account
	}
	return txn, nil
}

func (s *cashflowJournalService) post(ctx context.Context, tx pgx.Tx, tenantID string, txn *domain.CashflowTransaction, userID string) error {
	ledger, err := accounting.CashflowLedger(*txn)
	if err != nil {
		s.LogError(ctx, err, "Failed to map cashflow transaction",
			slog.String("transaction_id", txn.ID),
			slog.String("transaction_type", string(txn.TransactionType)))
		return err
	}
	return s.ledgerStorage.Commit(ctx, tx, tenantID, ledger, userID)
}
