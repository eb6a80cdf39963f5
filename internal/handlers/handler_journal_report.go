package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/ledger_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine/internal/dto"
	"github.com/SscSPs/ledger_engine/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalReportHandler serves the journal sheet.
type journalReportHandler struct {
	journalSheetService portssvc.JournalSheetSvc
	now                 func() time.Time
}

func newJournalReportHandler(js portssvc.JournalSheetSvc) *journalReportHandler {
	return &journalReportHandler{
		journalSheetService: js,
		now:                 time.Now,
	}
}

func registerReportRoutes(rg *gin.RouterGroup, js portssvc.JournalSheetSvc) {
	h := newJournalReportHandler(js)

	reports := rg.Group("/reports")
	{
		reports.GET("/journal", h.getJournalSheet)
	}
}

// getJournalSheet godoc
// @Summary Journal sheet
// @Description Posted entries grouped by originating transaction with debit/credit totals
// @Tags reports
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param fromDate query string false "Start date (YYYY-MM-DD)"
// @Param toDate query string false "End date (YYYY-MM-DD)"
// @Param accountIds query []string false "Account IDs"
// @Param branchIds query []string false "Branch IDs"
// @Param transactionTypes query []string false "Ledger transaction types"
// @Param precision query int false "Decimal places" default(2)
// @Param divideOn1000 query bool false "Divide amounts by 1000"
// @Param showZero query bool false "Show zero totals"
// @Param negativeFormat query string false "mines or parentheses"
// @Param formatMoney query string false "none, total or always"
// @Success 200 {object} dto.JournalReportResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Failure 404 {object} dto.ErrorResponse "Tenant not found"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/reports/journal [get]
func (h *journalReportHandler) getJournalSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")

	var params dto.JournalReportQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid journal report query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	query, err := params.ToDomain(h.now())
	if err != nil {
		logger.Warn("Invalid journal report range", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	report, err := h.journalSheetService.GetJournalSheet(c.Request.Context(), tenantID, query)
	if err != nil {
		respondError(c, logger, err, "Failed to build journal sheet")
		return
	}

	logger.Info("Journal sheet generated", slog.Int("group_count", len(report.Groups)))
	c.JSON(http.StatusOK, dto.ToJournalReportResponse(report))
}
