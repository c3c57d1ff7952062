package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/financeflow/backend/internal/dto"
	"github.com/financeflow/backend/internal/errs"
	"github.com/financeflow/backend/internal/models"
	"github.com/financeflow/backend/internal/response"
)

type MappingService interface {
	Get(ctx context.Context, bankName string) (*models.ImportMapping, error)
	Save(ctx context.Context, bankName string, columns map[string]string) (*models.ImportMapping, error)
}

type mappingHandlers struct {
	ResponseHandler response.ResponseHandler
	MappingSvc      MappingService
}

func NewMappingHandlers(deps *Deps) *mappingHandlers {
	return &mappingHandlers{
		ResponseHandler: deps.ResponseHandler,
		MappingSvc:      deps.MappingSvc,
	}
}

func (h *mappingHandlers) MappingRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.GetMapping)
	r.Post("/", h.SaveMapping)
	return r
}

func (h *mappingHandlers) GetMapping(w http.ResponseWriter, r *http.Request) {
	bankName := r.URL.Query().Get("bankName")

	m, err := h.MappingSvc.Get(r.Context(), bankName)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	// m is nil when no preference has been saved for this bank
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, m)
}

func (h *mappingHandlers) SaveMapping(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveMappingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}

	saved, err := h.MappingSvc.Save(r.Context(), req.BankName, req.Mapping)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, saved)
}
