package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_engine/internal/middleware"
	"github.com/jackc/pgx/v5"
)

// BaseService provides common functionality for all services
type BaseService struct {
	TxManager portsrepo.TransactionManager
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		// Return a default logger if not found in context
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// RunInTx runs fn inside tx when the caller supplied one. Otherwise it begins a
// transaction, commits it when fn succeeds and rolls it back on error or panic.
func (s *BaseService) RunInTx(ctx context.Context, tx pgx.Tx, fn func(tx pgx.Tx) error) (err error) {
	if tx != nil {
		return fn(tx)
	}
	if s.TxManager == nil {
		return apperrors.NewAppError(500, "no transaction manager configured", nil)
	}

	tx, err = s.TxManager.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = s.TxManager.Rollback(ctx, tx)
			panic(p)
		}
		if err != nil {
			if rbErr := s.TxManager.Rollback(ctx, tx); rbErr != nil {
				s.LogError(ctx, rbErr, "Failed to rollback transaction")
			}
			return
		}
		if commitErr := s.TxManager.Commit(ctx, tx); commitErr != nil {
			err = fmt.Errorf("failed to commit transaction: %w", commitErr)
		}
	}()

	return fn(tx)
}
