package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/editorial-backend/internal/domain"
	"github.com/heartmarshall/editorial-backend/internal/service/sports"
)

// APIKeyHeader authenticates the sports feed pusher.
const APIKeyHeader = "X-Api-Key"

type sportsService interface {
	ReplaceEvents(ctx context.Context, apiKey string, events []sports.EventInput) ([]domain.SportEvent, error)
	ListEvents(ctx context.Context) ([]domain.SportEvent, error)
}

// SportsHandler serves /api/sports.
type SportsHandler struct {
	svc sportsService
	log *slog.Logger
}

// NewSportsHandler creates a SportsHandler.
func NewSportsHandler(svc sportsService, logger *slog.Logger) *SportsHandler {
	return &SportsHandler{svc: svc, log: logger.With("handler", "sports")}
}

// sportEventRequest keeps pointers so an absent key can be told apart
// from an empty string; the feed sends "" for unknown values.
type sportEventRequest struct {
	Dia         *string `json:"dia"`
	Fecha       *string `json:"fecha"`
	Deporte     *string `json:"deporte"`
	Hora        *string `json:"hora"`
	Competicion *string `json:"competicion"`
	Evento      *string `json:"evento"`
	Canal       *string `json:"canal"`
}

type batchEventsRequest struct {
	Events []sportEventRequest `json:"events"`
}

// decodeEventBatch accepts the bare array the feed posts as well as the
// {"events": [...]} envelope.
func decodeEventBatch(w http.ResponseWriter, r *http.Request) ([]sportEventRequest, error) {
	var raw json.RawMessage
	if err := decodeJSON(w, r, &raw); err != nil {
		return nil, err
	}

	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, errInvalidBody
	}

	switch trimmed[0] {
	case '[':
		var events []sportEventRequest
		if err := json.Unmarshal(trimmed, &events); err != nil {
			return nil, domain.WrapError(domain.ErrValidation, "Cuerpo de la petición inválido", err)
		}
		return events, nil
	case '{':
		var req batchEventsRequest
		if err := json.Unmarshal(trimmed, &req); err != nil {
			return nil, domain.WrapError(domain.ErrValidation, "Cuerpo de la petición inválido", err)
		}
		return req.Events, nil
	default:
		return nil, errInvalidBody
	}
}

func (e sportEventRequest) toInput(i int, errs *[]domain.FieldError) sports.EventInput {
	field := func(name string, v *string) string {
		if v == nil {
			*errs = append(*errs, domain.FieldError{Field: fmt.Sprintf("[%d].%s", i, name), Message: "required"})
			return ""
		}
		return *v
	}
	return sports.EventInput{
		DayName:     field("dia", e.Dia),
		EventDate:   field("fecha", e.Fecha),
		Sport:       field("deporte", e.Deporte),
		Time:        field("hora", e.Hora),
		Competition: field("competicion", e.Competicion),
		Event:       field("evento", e.Evento),
		Channel:     e.Canal,
	}
}

// ReplaceBatch handles POST /api/sports/events/batch, authorized by the
// feed key rather than a session.
func (h *SportsHandler) ReplaceBatch(w http.ResponseWriter, r *http.Request) {
	batch, err := decodeEventBatch(w, r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var missing []domain.FieldError
	in := make([]sports.EventInput, 0, len(batch))
	for i, e := range batch {
		in = append(in, e.toInput(i, &missing))
	}
	if len(missing) > 0 {
		handleError(w, r, h.log, &domain.ValidationError{Errors: missing})
		return
	}

	events, err := h.svc.ReplaceEvents(r.Context(), r.Header.Get(APIKeyHeader), in)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapSlice(events, toSportEventResponse))
}

// List handles GET /api/sports/events.
func (h *SportsHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.ListEvents(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(events, toSportEventResponse))
}
