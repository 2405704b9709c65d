package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tala-hr/payroll-backend-go/internal/domain/report"
	"github.com/tala-hr/payroll-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	ContributionRemittance(w http.ResponseWriter, r *http.Request)
	PayrollRegister(w http.ResponseWriter, r *http.Request)
	PayslipPDF(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// ContributionRemittance implements ReportHandler.
func (h *reportHandlerImpl) ContributionRemittance(w http.ResponseWriter, r *http.Request) {
	program := chi.URLParam(r, "program")

	format, ok := formatFromQuery(r)
	if !ok {
		response.BadRequest(w, "Format must be 'xlsx' or 'csv'", nil)
		return
	}

	file, err := h.reportService.ContributionRemittance(r.Context(), program, format)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.File(w, file.Name, file.ContentType, file.Content)
}

// PayrollRegister implements ReportHandler.
func (h *reportHandlerImpl) PayrollRegister(w http.ResponseWriter, r *http.Request) {
	periodID := chi.URLParam(r, "periodID")

	format, ok := formatFromQuery(r)
	if !ok {
		response.BadRequest(w, "Format must be 'xlsx' or 'csv'", nil)
		return
	}

	file, err := h.reportService.PayrollRegister(r.Context(), periodID, format)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.File(w, file.Name, file.ContentType, file.Content)
}

// PayslipPDF implements ReportHandler.
func (h *reportHandlerImpl) PayslipPDF(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	periodID := chi.URLParam(r, "periodID")

	file, err := h.reportService.PayslipPDF(r.Context(), employeeID, periodID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.File(w, file.Name, file.ContentType, file.Content)
}

func formatFromQuery(r *http.Request) (report.Format, bool) {
	format := report.Format(r.URL.Query().Get("format"))
	if format == "" {
		format = report.FormatXLSX
	}
	return format, format.Valid()
}
