package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

// JournalReportQueryParams is the query string of GET /reports/journal.
type JournalReportQueryParams struct {
	FromDate         string   `form:"fromDate" binding:"omitempty,datetime=2006-01-02"`
	ToDate           string   `form:"toDate" binding:"omitempty,datetime=2006-01-02"`
	AccountIDs       []string `form:"accountIds" binding:"omitempty,dive,required"`
	BranchIDs        []string `form:"branchIds" binding:"omitempty,dive,required"`
	TransactionTypes []string `form:"transactionTypes" binding:"omitempty,dive,required"`

	Precision      *int   `form:"precision" binding:"omitempty,min=0,max=8"`
	DivideOn1000   bool   `form:"divideOn1000"`
	ShowZero       bool   `form:"showZero"`
	NegativeFormat string `form:"negativeFormat" binding:"omitempty,negative_format"`
	FormatMoney    string `form:"formatMoney" binding:"omitempty,format_money"`
}

// ToDomain converts the bound params into a report query.
// Missing dates default to the calendar year containing now.
func (p JournalReportQueryParams) ToDomain(now time.Time) (domain.JournalReportQuery, error) {
	q := domain.JournalReportQuery{
		FromDate:     time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC),
		ToDate:       time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, time.UTC),
		AccountIDs:   p.AccountIDs,
		BranchIDs:    p.BranchIDs,
		NumberFormat: domain.DefaultNumberFormat(),
	}

	if p.FromDate != "" {
		from, err := time.Parse(dateLayout, p.FromDate)
		if err != nil {
			return q, fmt.Errorf("invalid fromDate %q: %w", p.FromDate, err)
		}
		q.FromDate = from
	}
	if p.ToDate != "" {
		to, err := time.Parse(dateLayout, p.ToDate)
		if err != nil {
			return q, fmt.Errorf("invalid toDate %q: %w", p.ToDate, err)
		}
		q.ToDate = to
	}
	if q.ToDate.Before(q.FromDate) {
		return q, fmt.Errorf("toDate %s is before fromDate %s", q.ToDate.Format(dateLayout), q.FromDate.Format(dateLayout))
	}

	for _, t := range p.TransactionTypes {
		q.TransactionTypes = append(q.TransactionTypes, domain.TransactionType(t))
	}

	if p.Precision != nil {
		q.NumberFormat.Precision = *p.Precision
	}
	q.NumberFormat.DivideOn1000 = p.DivideOn1000
	q.NumberFormat.ShowZero = p.ShowZero
	if p.NegativeFormat != "" {
		q.NumberFormat.NegativeFormat = domain.NegativeFormat(p.NegativeFormat)
	}
	if p.FormatMoney != "" {
		q.NumberFormat.FormatMoney = domain.FormatMoney(p.FormatMoney)
	}
	return q, nil
}

// JournalReportMeta describes the report context.
type JournalReportMeta struct {
	BaseCurrency string `json:"baseCurrency"`
	TenantID     string `json:"tenantId"`
}

// JournalReportResponse is the journal sheet payload.
type JournalReportResponse struct {
	Data  []domain.JournalReportEntriesGroup `json:"data"`
	Query domain.JournalReportQuery          `json:"query"`
	Meta  JournalReportMeta                  `json:"meta"`
}

// ToJournalReportResponse wraps a built report for the API.
func ToJournalReportResponse(r *domain.JournalReport) JournalReportResponse {
	data := r.Groups
	if data == nil {
		data = []domain.JournalReportEntriesGroup{}
	}
	return JournalReportResponse{
		Data:  data,
		Query: r.Query,
		Meta: JournalReportMeta{
			BaseCurrency: r.BaseCurrency,
			TenantID:     r.TenantID,
		},
	}
}

// RegisterValidations adds the report-specific validation tags to v.
func RegisterValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("negative_format", func(fl validator.FieldLevel) bool {
		switch domain.NegativeFormat(fl.Field().String()) {
		case domain.NegativeMines, domain.NegativeParentheses:
			return true
		}
		return false
	}); err != nil {
		return err
	}
	return v.RegisterValidation("format_money", func(fl validator.FieldLevel) bool {
		switch domain.FormatMoney(fl.Field().String()) {
		case domain.FormatMoneyNone, domain.FormatMoneyTotal, domain.FormatMoneyAlways:
			return true
		}
		return false
	})
}
