package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/northbooks/tally/internal/domain"
	"github.com/northbooks/tally/internal/handler"
	"github.com/northbooks/tally/internal/service"
	"github.com/northbooks/tally/internal/tenant"
)

// ReportHandler serves tax summaries and the CSV deduction export.
type ReportHandler struct {
	reports *service.ReportService
}

// NewReportHandler creates a new report handler.
func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// yearParam reads ?year=, defaulting to the current year.
func yearParam(r *http.Request, op string) (int, error) {
	param := r.URL.Query().Get("year")
	if param == "" {
		return time.Now().Year(), nil
	}
	year, err := strconv.Atoi(param)
	if err != nil {
		return 0, domain.Invalid(op, "year must be an integer")
	}
	return year, nil
}

// Summary handles GET /api/reports/summary?year=.
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r, "report.summary")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	summary, err := h.reports.TaxSummary(r.Context(), tenant.IDFromContext(r.Context()), year)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, summary)
}

// Export handles GET /api/reports/export?year= and responds with a CSV
// attachment.
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r, "report.export")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	csv, err := h.reports.ExportCSV(r.Context(), tenant.IDFromContext(r.Context()), year)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="tax-report-%d.csv"`, year))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(csv))
}
