package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/editorial-backend/internal/domain"
	"github.com/heartmarshall/editorial-backend/internal/service/catalog"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportFilename  = "dominios.xlsx"
)

type catalogService interface {
	ListCategories(ctx context.Context) ([]domain.DomainCategory, error)
	CreateCategory(ctx context.Context, name string) (*domain.DomainCategory, error)
	UpdateCategory(ctx context.Context, id int64, name string) (*domain.DomainCategory, error)
	DeleteCategory(ctx context.Context, id int64) error
	ListDomains(ctx context.Context) ([]domain.Domain, error)
	CreateDomain(ctx context.Context, in catalog.CreateDomainInput) (*domain.Domain, error)
	UpdateDomain(ctx context.Context, id int64, in catalog.UpdateDomainInput) (*domain.Domain, error)
	DeleteDomain(ctx context.Context, id int64) error
	ExportDomains(ctx context.Context) ([]byte, error)
}

// DomainHandler serves /api/domains.
type DomainHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewDomainHandler creates a DomainHandler.
func NewDomainHandler(svc catalogService, logger *slog.Logger) *DomainHandler {
	return &DomainHandler{svc: svc, log: logger.With("handler", "domains")}
}

type categoryRequest struct {
	Name string `json:"name"`
}

type createDomainRequest struct {
	Name       string `json:"name"`
	FullURL    string `json:"full_url"`
	Domain     string `json:"domain"`
	CategoryID int64  `json:"category_id"`
}

type updateDomainRequest struct {
	Name       *string `json:"name"`
	FullURL    *string `json:"full_url"`
	Domain     *string `json:"domain"`
	CategoryID *int64  `json:"category_id"`
}

// ListCategories handles GET /api/domains/categories.
func (h *DomainHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.ListCategories(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(cats, toDomainCategoryResponse))
}

// CreateCategory handles POST /api/domains/categories.
func (h *DomainHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	cat, err := h.svc.CreateCategory(r.Context(), req.Name)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDomainCategoryResponse(*cat))
}

// UpdateCategory handles PUT /api/domains/categories/{id}.
func (h *DomainHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req categoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	cat, err := h.svc.UpdateCategory(r.Context(), id, req.Name)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDomainCategoryResponse(*cat))
}

// DeleteCategory handles DELETE /api/domains/categories/{id}.
func (h *DomainHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteCategory(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// List handles GET /api/domains/.
func (h *DomainHandler) List(w http.ResponseWriter, r *http.Request) {
	domains, err := h.svc.ListDomains(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(domains, func(d domain.Domain) domainResponse { return toDomainResponse(&d) }))
}

// Create handles POST /api/domains/.
func (h *DomainHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDomainRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	d, err := h.svc.CreateDomain(r.Context(), catalog.CreateDomainInput{
		Name:       req.Name,
		FullURL:    req.FullURL,
		Host:       req.Domain,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDomainResponse(d))
}

// Update handles PUT /api/domains/{id}.
func (h *DomainHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req updateDomainRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	d, err := h.svc.UpdateDomain(r.Context(), id, catalog.UpdateDomainInput{
		Name:       req.Name,
		FullURL:    req.FullURL,
		Host:       req.Domain,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDomainResponse(d))
}

// Delete handles DELETE /api/domains/{id}.
func (h *DomainHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteDomain(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Export handles GET /api/domains/export.
func (h *DomainHandler) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.svc.ExportDomains(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+exportFilename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data) //nolint:errcheck
}
