package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tala-hr/payroll-backend-go/internal/domain/contribution"
	"github.com/tala-hr/payroll-backend-go/internal/handler/http/response"
)

type ContributionHandler interface {
	CreateTable(w http.ResponseWriter, r *http.Request)
	GetTable(w http.ResponseWriter, r *http.Request)
	ListTables(w http.ResponseWriter, r *http.Request)
	ActivateTable(w http.ResponseWriter, r *http.Request)
	DeleteTable(w http.ResponseWriter, r *http.Request)
}

type contributionHandlerImpl struct {
	contributionService contribution.Service
}

func NewContributionHandler(contributionService contribution.Service) ContributionHandler {
	return &contributionHandlerImpl{
		contributionService: contributionService,
	}
}

// CreateTable implements ContributionHandler.
func (h *contributionHandlerImpl) CreateTable(w http.ResponseWriter, r *http.Request) {
	var req contribution.CreateTableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.contributionService.CreateTable(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Contribution table created", resp)
}

// GetTable implements ContributionHandler.
func (h *contributionHandlerImpl) GetTable(w http.ResponseWriter, r *http.Request) {
	resp, err := h.contributionService.GetTable(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// ListTables implements ContributionHandler.
func (h *contributionHandlerImpl) ListTables(w http.ResponseWriter, r *http.Request) {
	resp, err := h.contributionService.ListTables(r.Context(), r.URL.Query().Get("type"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// ActivateTable implements ContributionHandler.
func (h *contributionHandlerImpl) ActivateTable(w http.ResponseWriter, r *http.Request) {
	if err := h.contributionService.ActivateTable(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Contribution table activated", nil)
}

// DeleteTable implements ContributionHandler.
func (h *contributionHandlerImpl) DeleteTable(w http.ResponseWriter, r *http.Request) {
	if err := h.contributionService.DeleteTable(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Contribution table deleted", nil)
}
