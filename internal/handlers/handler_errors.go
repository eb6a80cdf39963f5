package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/dto"
	"github.com/gin-gonic/gin"
)

// statusForError maps the service error taxonomy onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrUnbalancedLedger), errors.Is(err, apperrors.ErrUnknownAccountNormal):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Code >= 400 && appErr.Code < 600 {
		return appErr.Code
	}
	return http.StatusInternalServerError
}

// respondError writes err as JSON. Server errors hide their cause from the client.
func respondError(c *gin.Context, logger *slog.Logger, err error, message string) {
	status := statusForError(err)
	if status >= http.StatusInternalServerError {
		logger.Error(message, slog.String("error", err.Error()))
		c.JSON(status, dto.ErrorResponse{Error: message})
		return
	}
	logger.Warn(message, slog.Int("status", status), slog.String("error", err.Error()))
	c.JSON(status, dto.ErrorResponse{Error: err.Error()})
}
