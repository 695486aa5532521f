package http

import (
	"net/http"
	"strconv"

	"rentgear-backend/internal/service"
)

type ReportHandler struct {
	reports service.ReportService
}

func NewReportHandler(reports service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Monthly serves GET /api/admin/reports/monthly?year=2025&month=3
func (h *ReportHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	verr := &service.ValidationError{}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 2000 || year > 2200 {
		verr.Fields = append(verr.Fields, service.FieldError{Field: "year", Message: "must be a valid year"})
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		verr.Fields = append(verr.Fields, service.FieldError{Field: "month", Message: "must be a number between 1 and 12"})
	}
	if len(verr.Fields) > 0 {
		respondError(w, verr)
		return
	}

	report, err := h.reports.MonthlySummary(r.Context(), year, month)
	if err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, report)
}
