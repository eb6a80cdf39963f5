package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ledger_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine/internal/dto"
	"github.com/SscSPs/ledger_engine/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalPostingHandler exposes the write/rewrite/revert triggers of one business transaction kind.
type journalPostingHandler struct {
	postingService portssvc.JournalPostingSvc
	kind           string
	idParam        string
}

func newJournalPostingHandler(ps portssvc.JournalPostingSvc, kind, idParam string) *journalPostingHandler {
	return &journalPostingHandler{
		postingService: ps,
		kind:           kind,
		idParam:        idParam,
	}
}

// registerJournalPostingRoutes registers POST/PUT/DELETE on the journal of the records under path.
func registerJournalPostingRoutes(rg *gin.RouterGroup, path, kind string, ps portssvc.JournalPostingSvc) {
	const idParam = "transaction_id"
	h := newJournalPostingHandler(ps, kind, idParam)

	journal := rg.Group(path + "/:" + idParam + "/journal")
	{
		journal.POST("", h.writeJournal)
		journal.PUT("", h.rewriteJournal)
		journal.DELETE("", h.revertJournal)
	}
}

// requestScope pulls the tenant, record and user ids a posting call needs.
func (h *journalPostingHandler) requestScope(c *gin.Context) (tenantID, transactionID, userID string, logger *slog.Logger, ok bool) {
	logger = middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID = c.Param("tenant_id")
	transactionID = c.Param(h.idParam)
	if tenantID == "" || transactionID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Tenant ID and transaction ID are required in path"})
		return "", "", "", logger, false
	}

	userID, found := middleware.GetUserIDFromContext(c.Request.Context())
	if !found {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return "", "", "", logger, false
	}

	logger = logger.With(
		slog.String("transaction_kind", h.kind),
		slog.String("transaction_id", transactionID),
	)
	return tenantID, transactionID, userID, logger, true
}

// writeJournal godoc
// @Summary Post the journal entries of a business transaction
// @Tags journal
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param transaction_id path string true "Business transaction ID"
// @Success 201 {object} dto.PostingResponse
// @Failure 404 {object} dto.ErrorResponse "Transaction not found"
// @Failure 409 {object} dto.ErrorResponse "Already posted"
// @Failure 422 {object} dto.ErrorResponse "Unbalanced entries"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/cashflow/transactions/{transaction_id}/journal [post]
// @Router /tenants/{tenant_id}/manual-journals/{transaction_id}/journal [post]
func (h *journalPostingHandler) writeJournal(c *gin.Context) {
	tenantID, transactionID, userID, logger, ok := h.requestScope(c)
	if !ok {
		return
	}

	if err := h.postingService.WriteJournalEntries(c.Request.Context(), nil, tenantID, transactionID, userID); err != nil {
		respondError(c, logger, err, "Failed to write journal entries")
		return
	}

	logger.Info("Journal entries written")
	c.JSON(http.StatusCreated, dto.PostingResponse{TenantID: tenantID, TransactionID: transactionID, Kind: h.kind})
}

// rewriteJournal godoc
// @Summary Replace the journal entries of an edited business transaction
// @Tags journal
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param transaction_id path string true "Business transaction ID"
// @Success 200 {object} dto.PostingResponse
// @Failure 404 {object} dto.ErrorResponse "Transaction not found"
// @Failure 422 {object} dto.ErrorResponse "Unbalanced entries"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/cashflow/transactions/{transaction_id}/journal [put]
// @Router /tenants/{tenant_id}/manual-journals/{transaction_id}/journal [put]
func (h *journalPostingHandler) rewriteJournal(c *gin.Context) {
	tenantID, transactionID, userID, logger, ok := h.requestScope(c)
	if !ok {
		return
	}

	if err := h.postingService.RewriteJournalEntries(c.Request.Context(), nil, tenantID, transactionID, userID); err != nil {
		respondError(c, logger, err, "Failed to rewrite journal entries")
		return
	}

	logger.Info("Journal entries rewritten")
	c.JSON(http.StatusOK, dto.PostingResponse{TenantID: tenantID, TransactionID: transactionID, Kind: h.kind})
}

// revertJournal godoc
// @Summary Delete the journal entries of a business transaction
// @Description Idempotent: reverting a transaction with no posted entries succeeds.
// @Tags journal
// @Param tenant_id path string true "Tenant ID"
// @Param transaction_id path string true "Business transaction ID"
// @Success 204
// @Failure 500 {object} dto.ErrorResponse "Failed to revert"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/cashflow/transactions/{transaction_id}/journal [delete]
// @Router /tenants/{tenant_id}/manual-journals/{transaction_id}/journal [delete]
func (h *journalPostingHandler) revertJournal(c *gin.Context) {
	tenantID, transactionID, userID, logger, ok := h.requestScope(c)
	if !ok {
		return
	}

	if err := h.postingService.RevertJournalEntries(c.Request.Context(), nil, tenantID, transactionID, userID); err != nil {
		respondError(c, logger, err, "Failed to revert journal entries")
		return
	}

	logger.Info("Journal entries reverted")
	c.Status(http.StatusNoContent)
}
