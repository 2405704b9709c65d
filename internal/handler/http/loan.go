package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tala-hr/payroll-backend-go/internal/domain/loan"
	"github.com/tala-hr/payroll-backend-go/internal/handler/http/response"
)

type LoanHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListMyLoans(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type loanHandlerImpl struct {
	loanService loan.LoanService
}

func NewLoanHandler(loanService loan.LoanService) LoanHandler {
	return &loanHandlerImpl{
		loanService: loanService,
	}
}

// Apply implements LoanHandler.
func (h *loanHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	var req loan.ApplyLoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.loanService.Apply(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Loan application submitted", resp)
}

// Get implements LoanHandler.
func (h *loanHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.loanService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// List implements LoanHandler.
func (h *loanHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := loan.LoanFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Status:     r.URL.Query().Get("status"),
		Variant:    r.URL.Query().Get("variant"),
	}

	resp, err := h.loanService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// ListMyLoans implements LoanHandler.
func (h *loanHandlerImpl) ListMyLoans(w http.ResponseWriter, r *http.Request) {
	resp, err := h.loanService.ListMyLoans(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// Approve implements LoanHandler.
func (h *loanHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	resp, err := h.loanService.Approve(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Loan approved", resp)
}

// Reject implements LoanHandler.
func (h *loanHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	var req loan.RejectLoanRequest
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

	resp, err := h.loanService.Reject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Loan rejected", resp)
}
