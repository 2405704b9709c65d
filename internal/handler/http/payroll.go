package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tala-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/tala-hr/payroll-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	CreatePeriod(w http.ResponseWriter, r *http.Request)
	ListPeriods(w http.ResponseWriter, r *http.Request)
	UpdatePeriodStatus(w http.ResponseWriter, r *http.Request)
	Generate(w http.ResponseWriter, r *http.Request)
	ListPeriodComponents(w http.ResponseWriter, r *http.Request)
	GetPayslip(w http.ResponseWriter, r *http.Request)
	GetMyPayslip(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// CreatePeriod implements PayrollHandler.
func (h *payrollHandlerImpl) CreatePeriod(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreatePeriodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.payrollService.CreatePeriod(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if resp == nil {
		// A period already covers the requested date.
		response.SuccessWithMessage(w, "Period already exists for this cutoff", nil)
		return
	}
	response.Created(w, "Payroll period created", resp)
}

// ListPeriods implements PayrollHandler.
func (h *payrollHandlerImpl) ListPeriods(w http.ResponseWriter, r *http.Request) {
	resp, err := h.payrollService.ListPeriods(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// UpdatePeriodStatus implements PayrollHandler.
func (h *payrollHandlerImpl) UpdatePeriodStatus(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpdatePeriodStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.payrollService.UpdatePeriodStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// Generate implements PayrollHandler.
func (h *payrollHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req payroll.GeneratePayrollRequest
	// The body is optional; omitting it runs the whole roster.
	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("Failed to decode request body", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}
	req.PeriodID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.payrollService.GeneratePayroll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Payroll generated", resp)
}

// ListPeriodComponents implements PayrollHandler.
func (h *payrollHandlerImpl) ListPeriodComponents(w http.ResponseWriter, r *http.Request) {
	resp, err := h.payrollService.ListPeriodComponents(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// GetPayslip implements PayrollHandler.
func (h *payrollHandlerImpl) GetPayslip(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	periodID := chi.URLParam(r, "periodID")

	resp, err := h.payrollService.GetPayslip(r.Context(), employeeID, periodID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// GetMyPayslip implements PayrollHandler.
func (h *payrollHandlerImpl) GetMyPayslip(w http.ResponseWriter, r *http.Request) {
	resp, err := h.payrollService.GetMyPayslip(r.Context(), chi.URLParam(r, "periodID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
