package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/editorial-backend/internal/domain"
	"github.com/heartmarshall/editorial-backend/internal/service/topic"
)

type topicService interface {
	ListAutoTopics(ctx context.Context) ([]domain.AutoTopic, error)
	CreateAutoTopic(ctx context.Context, in topic.CreateAutoTopicInput) (*domain.AutoTopic, error)
	UpdateAutoTopic(ctx context.Context, id int64, in topic.UpdateAutoTopicInput) (*domain.AutoTopic, error)
	DeleteAutoTopic(ctx context.Context, id int64) error
	ApplyAutoTopics(ctx context.Context) ([]domain.DailyTopic, error)

	ListCategories(ctx context.Context) ([]domain.TopicCategory, error)
	CreateCategory(ctx context.Context, in topic.CategoryInput) (*domain.TopicCategory, error)
	UpdateCategory(ctx context.Context, id int64, in topic.CategoryInput) (*domain.TopicCategory, error)
	DeleteCategory(ctx context.Context, id int64) error

	ListDailyTopics(ctx context.Context) ([]domain.DailyTopic, error)
	CreateDailyTopic(ctx context.Context, in topic.CreateDailyTopicInput) (*domain.DailyTopic, error)
	UpdateDailyTopic(ctx context.Context, id int64, in topic.UpdateDailyTopicInput) (*domain.DailyTopic, error)
	DeleteDailyTopic(ctx context.Context, id int64) error
}

// TopicHandler serves /api/topics except the digest endpoints.
type TopicHandler struct {
	svc topicService
	log *slog.Logger
}

// NewTopicHandler creates a TopicHandler.
func NewTopicHandler(svc topicService, logger *slog.Logger) *TopicHandler {
	return &TopicHandler{svc: svc, log: logger.With("handler", "topics")}
}

type createAutoTopicRequest struct {
	Title        string `json:"title"`
	DisplayOrder int    `json:"display_order"`
}

type updateAutoTopicRequest struct {
	Title        *string `json:"title"`
	IsActive     *bool   `json:"is_active"`
	DisplayOrder *int    `json:"display_order"`
}

type topicCategoryRequest struct {
	Name         string `json:"name"`
	DisplayOrder int    `json:"display_order"`
}

type createDailyTopicRequest struct {
	Title          string  `json:"title"`
	URL            *string `json:"url"`
	IncludeURL     bool    `json:"include_url"`
	Observation    *string `json:"observation"`
	CategoryID     *int64  `json:"category_id"`
	OriginalSource *string `json:"original_source"`
	OriginalURL    *string `json:"original_url"`
}

type updateDailyTopicRequest struct {
	Title       *string `json:"title"`
	URL         *string `json:"url"`
	IncludeURL  *bool   `json:"include_url"`
	Observation *string `json:"observation"`
	CategoryID  *int64  `json:"category_id"`
}

// ---------------------------------------------------------------------------
// Auto topics
// ---------------------------------------------------------------------------

// ListAuto handles GET /api/topics/auto.
func (h *TopicHandler) ListAuto(w http.ResponseWriter, r *http.Request) {
	autos, err := h.svc.ListAutoTopics(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(autos, toAutoTopicResponse))
}

// CreateAuto handles POST /api/topics/auto.
func (h *TopicHandler) CreateAuto(w http.ResponseWriter, r *http.Request) {
	var req createAutoTopicRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	a, err := h.svc.CreateAutoTopic(r.Context(), topic.CreateAutoTopicInput(req))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAutoTopicResponse(*a))
}

// UpdateAuto handles PUT /api/topics/auto/{id}.
func (h *TopicHandler) UpdateAuto(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req updateAutoTopicRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	a, err := h.svc.UpdateAutoTopic(r.Context(), id, topic.UpdateAutoTopicInput(req))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAutoTopicResponse(*a))
}

// DeleteAuto handles DELETE /api/topics/auto/{id}.
func (h *TopicHandler) DeleteAuto(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteAutoTopic(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ApplyAuto handles POST /api/topics/auto/apply.
func (h *TopicHandler) ApplyAuto(w http.ResponseWriter, r *http.Request) {
	created, err := h.svc.ApplyAutoTopics(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapSlice(created, toDailyTopicResponse))
}

// ---------------------------------------------------------------------------
// Categories
// ---------------------------------------------------------------------------

// ListCategories handles GET /api/topics/categories.
func (h *TopicHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.ListCategories(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(cats, toTopicCategoryResponse))
}

// CreateCategory handles POST /api/topics/categories.
func (h *TopicHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req topicCategoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	c, err := h.svc.CreateCategory(r.Context(), topic.CategoryInput(req))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTopicCategoryResponse(*c))
}

// UpdateCategory handles PUT /api/topics/categories/{id}.
func (h *TopicHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req topicCategoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	c, err := h.svc.UpdateCategory(r.Context(), id, topic.CategoryInput(req))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTopicCategoryResponse(*c))
}

// DeleteCategory handles DELETE /api/topics/categories/{id}.
func (h *TopicHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
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

// ---------------------------------------------------------------------------
// Daily topics
// ---------------------------------------------------------------------------

// ListDaily handles GET /api/topics/added.
func (h *TopicHandler) ListDaily(w http.ResponseWriter, r *http.Request) {
	topics, err := h.svc.ListDailyTopics(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(topics, toDailyTopicResponse))
}

// CreateDaily handles POST /api/topics/added.
func (h *TopicHandler) CreateDaily(w http.ResponseWriter, r *http.Request) {
	var req createDailyTopicRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	t, err := h.svc.CreateDailyTopic(r.Context(), topic.CreateDailyTopicInput(req))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDailyTopicResponse(*t))
}

// UpdateDaily handles PUT /api/topics/added/{id}.
func (h *TopicHandler) UpdateDaily(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req updateDailyTopicRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	t, err := h.svc.UpdateDailyTopic(r.Context(), id, topic.UpdateDailyTopicInput(req))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDailyTopicResponse(*t))
}

// DeleteDaily handles DELETE /api/topics/added/{id}.
func (h *TopicHandler) DeleteDaily(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteDailyTopic(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
