package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/financeflow/backend/internal/dto"
	"github.com/financeflow/backend/internal/errs"
	"github.com/financeflow/backend/internal/response"
)

type ImportService interface {
	ParseStatement(ctx context.Context, filename string, content io.Reader, bankName string) (dto.ParseStatementResult, error)
	Import(ctx context.Context, req dto.ImportRequest) (dto.ImportResult, error)
}

type TemplateService interface {
	Workbook() (*bytes.Buffer, error)
}

type importHandlers struct {
	ResponseHandler response.ResponseHandler
	ImportSvc       ImportService
	TemplateSvc     TemplateService
}

func NewImportHandlers(deps *Deps) *importHandlers {
	return &importHandlers{
		ResponseHandler: deps.ResponseHandler,
		ImportSvc:       deps.ImportSvc,
		TemplateSvc:     deps.TemplateSvc,
	}
}

func (h *importHandlers) ImportRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/parse", h.ParseStatement)
	return r
}

func (h *importHandlers) TransactionRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/import", h.ImportTransactions)
	r.Get("/template", h.DownloadTemplate)
	return r
}

// ParseStatement accepts a multipart upload (field "file", optional
// field "bankName") and responds with the parsed table and the seeded
// initial mapping.
func (h *importHandlers) ParseStatement(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("file is required"))
		return
	}
	defer file.Close()

	bankName := r.FormValue("bankName")
	result, err := h.ImportSvc.ParseStatement(r.Context(), header.Filename, file, bankName)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}

func (h *importHandlers) ImportTransactions(w http.ResponseWriter, r *http.Request) {
	var req dto.ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}

	result, err := h.ImportSvc.Import(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}

func (h *importHandlers) DownloadTemplate(w http.ResponseWriter, r *http.Request) {
	buf, err := h.TemplateSvc.Workbook()
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename=transactions-template.xlsx`)
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
