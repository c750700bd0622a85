package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/editorial-backend/internal/domain"
	"github.com/heartmarshall/editorial-backend/internal/service/digest"
	"github.com/heartmarshall/editorial-backend/internal/transport/dataloader"
)

type digestService interface {
	Preview(ctx context.Context, in digest.PreviewInput) (*digest.Preview, error)
	SendDigest(ctx context.Context, in digest.SendInput) (*domain.EmailLog, error)
	ListLogs(ctx context.Context, in digest.ListLogsInput) ([]domain.EmailLog, int, error)
}

// DigestHandler serves the digest endpoints under /api/topics.
type DigestHandler struct {
	svc digestService
	log *slog.Logger
}

// NewDigestHandler creates a DigestHandler.
func NewDigestHandler(svc digestService, logger *slog.Logger) *DigestHandler {
	return &DigestHandler{svc: svc, log: logger.With("handler", "digest")}
}

type previewRequest struct {
	Subject  string  `json:"subject"`
	Message  string  `json:"message"`
	TopicIDs []int64 `json:"topic_ids"`
}

type previewResponse struct {
	Subject    string   `json:"subject"`
	Recipients []string `json:"recipients"`
	Message    string   `json:"message"`
	HTML       string   `json:"html"`
	TopicIDs   []int64  `json:"topic_ids"`
}

type sendRequest struct {
	Recipients []string `json:"recipients"`
	Subject    string   `json:"subject"`
	HTMLBody   string   `json:"html_body"`
	TopicIDs   []int64  `json:"topic_ids"`
}

// Preview handles POST /api/topics/digest/preview. An empty body previews
// today's digest with defaults.
func (h *DigestHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(w, r, &req); err != nil {
			handleError(w, r, h.log, err)
			return
		}
	}

	p, err := h.svc.Preview(r.Context(), digest.PreviewInput(req))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := previewResponse(*p)
	if resp.Recipients == nil {
		resp.Recipients = []string{}
	}
	if resp.TopicIDs == nil {
		resp.TopicIDs = []int64{}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Send handles POST /api/topics/send.
func (h *DigestHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req sendRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if _, err := h.svc.SendDigest(r.Context(), digest.SendInput(req)); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Logs handles GET /api/topics/logs?limit=&offset=. Senders are resolved in
// one batch through the request's user loader.
func (h *DigestHandler) Logs(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	logs, total, err := h.svc.ListLogs(r.Context(), digest.ListLogsInput{Limit: limit, Offset: offset})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	senders, err := h.loadSenders(r.Context(), logs)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	items := make([]emailLogResponse, len(logs))
	for i, l := range logs {
		var sender *domain.User
		if l.SenderID != nil {
			sender = senders[*l.SenderID]
		}
		items[i] = toEmailLogResponse(l, sender)
	}
	writeJSON(w, http.StatusOK, emailLogPage{Items: items, Total: total})
}

func (h *DigestHandler) loadSenders(ctx context.Context, logs []domain.EmailLog) (map[int64]*domain.User, error) {
	seen := make(map[int64]struct{}, len(logs))
	var ids []int64
	for _, l := range logs {
		if l.SenderID == nil {
			continue
		}
		if _, ok := seen[*l.SenderID]; ok {
			continue
		}
		seen[*l.SenderID] = struct{}{}
		ids = append(ids, *l.SenderID)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	users, errs := dataloader.FromContext(ctx).UserByID.LoadMany(ctx, ids)()
	byID := make(map[int64]*domain.User, len(ids))
	for i, id := range ids {
		if i < len(errs) && errs[i] != nil {
			return nil, errs[i]
		}
		byID[id] = users[i]
	}
	return byID, nil
}
