package apperrors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrUnbalancedLedger     = errors.New("ledger entries are not balanced")
	ErrTransactionNotFound  = errors.New("business transaction not found")
	ErrStorageCommit        = errors.New("failed to commit ledger entries")
	ErrStorageDelete        = errors.New("failed to delete ledger entries")
	ErrUnknownAccountNormal = errors.New("unknown account normal")
)

// UnbalancedLedgerError is returned before any write when sum(debit) != sum(credit).
type UnbalancedLedgerError struct {
	Reference string
	Debit     decimal.Decimal
	Credit    decimal.Decimal
}

func (e *UnbalancedLedgerError) Error() string {
	return fmt.Sprintf("%s: reference %q debit %s credit %s", ErrUnbalancedLedger, e.Reference, e.Debit.String(), e.Credit.String())
}

func (e *UnbalancedLedgerError) Is(target error) bool {
	return target == ErrUnbalancedLedger
}

// TransactionNotFoundError means the source business record could not be loaded.
type TransactionNotFoundError struct {
	TenantID        string
	TransactionID   string
	TransactionKind string
}

func (e *TransactionNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s %s in tenant %s", ErrTransactionNotFound, e.TransactionKind, e.TransactionID, e.TenantID)
}

func (e *TransactionNotFoundError) Is(target error) bool {
	return target == ErrTransactionNotFound || target == ErrNotFound
}

// StorageCommitError wraps a storage failure while inserting ledger rows.
type StorageCommitError struct {
	TenantID  string
	Reference string
	Err       error
}

func (e *StorageCommitError) Error() string {
	return fmt.Sprintf("%s: tenant %s reference %q: %v", ErrStorageCommit, e.TenantID, e.Reference, e.Err)
}

func (e *StorageCommitError) Is(target error) bool {
	return target == ErrStorageCommit
}

func (e *StorageCommitError) Unwrap() error {
	return e.Err
}

// StorageDeleteError wraps a storage failure while deleting ledger rows.
type StorageDeleteError struct {
	TenantID         string
	TransactionID    string
	TransactionTypes []string
	Err              error
}

func (e *StorageDeleteError) Error() string {
	return fmt.Sprintf("%s: tenant %s transaction %s types [%s]: %v", ErrStorageDelete, e.TenantID, e.TransactionID, strings.Join(e.TransactionTypes, ","), e.Err)
}

func (e *StorageDeleteError) Is(target error) bool {
	return target == ErrStorageDelete
}

func (e *StorageDeleteError) Unwrap() error {
	return e.Err
}

// UnknownAccountNormalError means the contra account metadata is missing or invalid.
type UnknownAccountNormalError struct {
	AccountID string
	Normal    string
}

func (e *UnknownAccountNormalError) Error() string {
	return fmt.Sprintf("%s %q for account %s", ErrUnknownAccountNormal, e.Normal, e.AccountID)
}

func (e *UnknownAccountNormalError) Is(target error) bool {
	return target == ErrUnknownAccountNormal
}
