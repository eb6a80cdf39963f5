package services_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// fakeTx is an opaque transaction handle. Calling any pgx.Tx method on it panics.
type fakeTx struct {
	pgx.Tx
}

type ledgerState struct {
	entries  map[string][]domain.LedgerEntry
	accounts map[string]domain.Account
}

func (s ledgerState) clone() ledgerState {
	out := ledgerState{
		entries:  make(map[string][]domain.LedgerEntry, len(s.entries)),
		accounts: make(map[string]domain.Account, len(s.accounts)),
	}
	for tenant, rows := range s.entries {
		out.entries[tenant] = append([]domain.LedgerEntry(nil), rows...)
	}
	for id, acc := range s.accounts {
		out.accounts[id] = acc
	}
	return out
}

// fakeLedgerStore keeps ledger rows and account balances in memory with
// snapshot transactions: writes become visible only after Commit.
type fakeLedgerStore struct {
	mu        sync.Mutex
	committed ledgerState
	open      map[*fakeTx]*ledgerState

	begins    int
	commits   int
	rollbacks int

	failInsert error
	failCommit error
}

var (
	_ portsrepo.TransactionManager        = (*fakeLedgerStore)(nil)
	_ portsrepo.LedgerRepositoryFacade    = (*fakeLedgerStore)(nil)
	_ portsrepo.AccountTransactionSupport = (*fakeLedgerStore)(nil)
)

func newFakeLedgerStore(accounts ...domain.Account) *fakeLedgerStore {
	s := &fakeLedgerStore{
		committed: ledgerState{
			entries:  map[string][]domain.LedgerEntry{},
			accounts: map[string]domain.Account{},
		},
		open: map[*fakeTx]*ledgerState{},
	}
	for _, acc := range accounts {
		s.committed.accounts[acc.AccountID] = acc
	}
	return s
}

func (s *fakeLedgerStore) Begin(ctx context.Context) (pgx.Tx, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx := &fakeTx{}
	st := s.committed.clone()
	s.open[tx] = &st
	s.begins++
	return tx, nil
}

func (s *fakeLedgerStore) Commit(ctx context.Context, tx pgx.Tx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failCommit != nil {
		return s.failCommit
	}
	ftx := tx.(*fakeTx)
	st, ok := s.open[ftx]
	if !ok {
		return errors.New("transaction is closed")
	}
	s.committed = *st
	delete(s.open, ftx)
	s.commits++
	return nil
}

func (s *fakeLedgerStore) Rollback(ctx context.Context, tx pgx.Tx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.open, tx.(*fakeTx))
	s.rollbacks++
	return nil
}

func (s *fakeLedgerStore) state(tx pgx.Tx) (*ledgerState, error) {
	ftx, ok := tx.(*fakeTx)
	if !ok {
		return nil, errors.New("not a fake transaction")
	}
	st, ok := s.open[ftx]
	if !ok {
		return nil, errors.New("transaction is closed")
	}
	return st, nil
}

func matchesReference(e domain.LedgerEntry, transactionID string, types []domain.TransactionType) bool {
	if e.TransactionID != transactionID {
		return false
	}
	for _, t := range types {
		if e.TransactionType == t {
			return true
		}
	}
	return false
}

func (s *fakeLedgerStore) InsertLedgerEntries(ctx context.Context, tx pgx.Tx, tenantID string, entries []domain.LedgerEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failInsert != nil {
		return s.failInsert
	}
	st, err := s.state(tx)
	if err != nil {
		return err
	}
	for _, e := range entries {
		for _, existing := range st.entries[tenantID] {
			if existing.TransactionType == e.TransactionType && existing.TransactionID == e.TransactionID && existing.Index == e.Index {
				return fmt.Errorf("%w: %s index %d", apperrors.ErrDuplicate, e.Reference(), e.Index)
			}
		}
	}
	st.entries[tenantID] = append(st.entries[tenantID], entries...)
	return nil
}

func (s *fakeLedgerStore) DeleteLedgerEntriesByReference(ctx context.Context, tx pgx.Tx, tenantID, transactionID string, types []domain.TransactionType) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.state(tx)
	if err != nil {
		return 0, err
	}
	kept := st.entries[tenantID][:0:0]
	var deleted int64
	for _, e := range st.entries[tenantID] {
		if matchesReference(e, transactionID, types) {
			deleted++
			continue
		}
		kept = append(kept, e)
	}
	st.entries[tenantID] = kept
	return deleted, nil
}

func (s *fakeLedgerStore) FindLedgerEntriesByReference(ctx context.Context, tx pgx.Tx, tenantID, transactionID string, types []domain.TransactionType) ([]domain.LedgerEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.state(tx)
	if err != nil {
		return nil, err
	}
	var out []domain.LedgerEntry
	for _, e := range st.entries[tenantID] {
		if matchesReference(e, transactionID, types) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *fakeLedgerStore) ListLedgerEntries(ctx context.Context, tenantID string, query domain.JournalReportQuery) ([]domain.LedgerEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.LedgerEntry(nil), s.committed.entries[tenantID]...), nil
}

func (s *fakeLedgerStore) accountsIn(tx pgx.Tx, tenantID string, ids []string) (map[string]domain.Account, error) {
	st, err := s.state(tx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]domain.Account, len(ids))
	for _, id := range ids {
		if acc, ok := st.accounts[id]; ok && acc.TenantID == tenantID {
			out[id] = acc
		}
	}
	return out, nil
}

func (s *fakeLedgerStore) FindAccountsByIDsInTx(ctx context.Context, tx pgx.Tx, tenantID string, accountIDs []string) (map[string]domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accountsIn(tx, tenantID, accountIDs)
}

func (s *fakeLedgerStore) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, tenantID string, accountIDs []string) (map[string]domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	accounts, err := s.accountsIn(tx, tenantID, accountIDs)
	if err != nil {
		return nil, err
	}
	if len(accounts) != len(accountIDs) {
		return nil, fmt.Errorf("%w: could not find or lock all requested accounts", apperrors.ErrNotFound)
	}
	return accounts, nil
}

func (s *fakeLedgerStore) UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, tenantID string, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.state(tx)
	if err != nil {
		return err
	}
	for id, delta := range balanceChanges {
		acc, ok := st.accounts[id]
		if !ok {
			return apperrors.ErrNotFound
		}
		acc.Balance = acc.Balance.Add(delta)
		acc.LastUpdatedBy = userID
		acc.LastUpdatedAt = now
		st.accounts[id] = acc
	}
	return nil
}

// rows returns the committed entries of a tenant.
func (s *fakeLedgerStore) rows(tenantID string) []domain.LedgerEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.LedgerEntry(nil), s.committed.entries[tenantID]...)
}

// balance returns the committed balance of an account.
func (s *fakeLedgerStore) balance(accountID string) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.committed.accounts[accountID].Balance
}

// fakeCashflowRepo serves cashflow transactions from memory.
type fakeCashflowRepo struct {
	txns map[string]domain.CashflowTransaction
}

var _ portsrepo.CashflowTransactionReader = (*fakeCashflowRepo)(nil)

func (r *fakeCashflowRepo) FindCashflowTransactionForUpdate(ctx context.Context, tx pgx.Tx, tenantID, transactionID string) (*domain.CashflowTransaction, error) {
	txn, ok := r.txns[transactionID]
	if !ok || txn.TenantID != tenantID {
		return nil, apperrors.NewNotFoundError("cashflow transaction not found")
	}
	return &txn, nil
}

// fakeManualJournalRepo serves manual journals from memory.
type fakeManualJournalRepo struct {
	journals map[string]domain.ManualJournal
}

var _ portsrepo.ManualJournalReader = (*fakeManualJournalRepo)(nil)

func (r *fakeManualJournalRepo) FindManualJournalForUpdate(ctx context.Context, tx pgx.Tx, tenantID, journalID string) (*domain.ManualJournal, error) {
	j, ok := r.journals[journalID]
	if !ok || j.TenantID != tenantID {
		return nil, apperrors.NewNotFoundError("manual journal not found")
	}
	j.Lines = append([]domain.ManualJournalLine(nil), j.Lines...)
	return &j, nil
}

// --- Mock TenantReader ---
type MockTenantRepository struct {
	mock.Mock
}

var _ portsrepo.TenantReader = (*MockTenantRepository)(nil)

func (m *MockTenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

// --- Mock LedgerEntryReader ---
type MockLedgerReader struct {
	mock.Mock
}

var _ portsrepo.LedgerEntryReader = (*MockLedgerReader)(nil)

func (m *MockLedgerReader) FindLedgerEntriesByReference(ctx context.Context, tx pgx.Tx, tenantID, transactionID string, types []domain.TransactionType) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, tx, tenantID, transactionID, types)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerReader) ListLedgerEntries(ctx context.Context, tenantID string, query domain.JournalReportQuery) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, tenantID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

// --- Mock TransactionManager ---
type MockTxManager struct {
	mock.Mock
}

var _ portsrepo.TransactionManager = (*MockTxManager)(nil)

func (m *MockTxManager) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockTxManager) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockTxManager) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}
