package v1

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/kosolapovrs/deal_importer/internal/domain"
	"github.com/kosolapovrs/deal_importer/internal/importer"
)

type ImportOrchestrator interface {
	ProcessStorageFile(ctx context.Context, userID, providerID, fileID string, opts importer.Options) (*importer.ImportOutcome, error)
}

type ImportsRepository interface {
	ByID(ctx context.Context, id uuid.UUID) (*domain.ImportRecord, error)
	ByDeal(ctx context.Context, dealID string, limit, offset uint64) ([]*domain.ImportRecord, int, error)
}

type ReportGenerator interface {
	Generate(record *domain.ImportRecord) ([]byte, error)
}

type ImportsHandler struct {
	orchestrator ImportOrchestrator
	imports      ImportsRepository
	reports      ReportGenerator
}

func NewImportsHandler(
	orchestrator ImportOrchestrator,
	imports ImportsRepository,
	reports ReportGenerator,
) *ImportsHandler {
	return &ImportsHandler{
		orchestrator: orchestrator,
		imports:      imports,
		reports:      reports,
	}
}

type ImportFileRequest struct {
	DealID    string         `json:"deal_id"`
	ContactID string         `json:"contact_id"`
	Pipelines []domain.Stage `json:"pipelines"`
	DryRun    bool           `json:"dry_run"`
	Force     bool           `json:"force"`
}

type DuplicateImportResponse struct {
	Error  string               `json:"error"`
	Record *domain.ImportRecord `json:"record"`
}

func (h *ImportsHandler) ImportFile(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-ID")
	if userID == "" {
		http.Error(w, "missing X-User-ID header", http.StatusBadRequest)
		return
	}

	providerID := chi.URLParam(r, "provider")
	fileID := chi.URLParam(r, "file_id")

	var req ImportFileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	outcome, err := h.orchestrator.ProcessStorageFile(r.Context(), userID, providerID, fileID, importer.Options{
		DealID:    req.DealID,
		ContactID: req.ContactID,
		Pipelines: req.Pipelines,
		DryRun:    req.DryRun,
		Force:     req.Force,
	})
	if err != nil {
		h.writeImportError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, outcome)
}

func (h *ImportsHandler) writeImportError(w http.ResponseWriter, err error) {
	var dup *importer.DuplicateImportError
	if errors.As(err, &dup) {
		writeJSON(w, http.StatusConflict, DuplicateImportResponse{
			Error:  err.Error(),
			Record: dup.Record,
		})
		return
	}

	var extraction *importer.ExtractionError
	if errors.As(err, &extraction) {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	http.Error(w, err.Error(), http.StatusInternalServerError)
}

type ListDealImportsResponse struct {
	Imports    []*domain.ImportRecord `json:"imports"`
	Pagination Pagination             `json:"pagination"`
}

func (h *ImportsHandler) ListDealImports(w http.ResponseWriter, r *http.Request) {
	dealID := chi.URLParam(r, "deal_id")

	page, limit, err := h.parsePagination(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	offset := (page - 1) * limit

	records, total, err := h.imports.ByDeal(r.Context(), dealID, limit, offset)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, ListDealImportsResponse{
		Imports: records,
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: (total + int(limit) - 1) / int(limit),
		},
	})
}

func (h *ImportsHandler) ImportReport(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "import_id"))
	if err != nil {
		http.Error(w, "invalid import id", http.StatusBadRequest)
		return
	}

	record, err := h.imports.ByID(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	report, err := h.reports.Generate(record)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="import-report.pdf"`)
	w.Write(report)
}

func (h *ImportsHandler) parsePagination(r *http.Request) (page uint64, limit uint64, err error) {
	page, limit = 1, 10

	if p := r.URL.Query().Get("page"); p != "" {
		page, err = strconv.ParseUint(p, 10, 64)
		if err != nil || page == 0 {
			return 0, 0, errors.New("invalid page")
		}
	}

	if l := r.URL.Query().Get("limit"); l != "" {
		limit, err = strconv.ParseUint(l, 10, 64)
		if err != nil || limit < 1 || limit > 100 {
			return 0, 0, errors.New("invalid limit, must be in [1;100]")
		}
	}

	return page, limit, nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}
