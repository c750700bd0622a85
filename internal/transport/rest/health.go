package rest

import (
	"context"
	"net/http"
	"time"
)

const healthCheckTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

type mailRelay interface {
	Enabled() bool
}

// HealthHandler serves the probes and the component health report.
type HealthHandler struct {
	db      dbPinger
	mail    mailRelay
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, mail mailRelay, version string) *HealthHandler {
	return &HealthHandler{db: db, mail: mail, version: version}
}

// HealthResponse is the body of every health endpoint.
type HealthResponse struct {
	Status     string                     `json:"status"`
	Version    string                     `json:"version,omitempty"`
	Components map[string]ComponentHealth `json:"components,omitempty"`
	Timestamp  time.Time                  `json:"timestamp"`
}

// ComponentHealth is one dependency's state.
type ComponentHealth struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live handles GET /live. The process answering is enough.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready handles GET /ready: 503 until the database answers.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.checkDB(r.Context())
	writeJSON(w, statusCode(db.Status), HealthResponse{Status: db.Status, Timestamp: time.Now()})
}

// Health handles GET /api/health. An unconfigured mail relay is reported
// but does not degrade the overall status; only sending needs it.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db := h.checkDB(r.Context())

	smtp := ComponentHealth{Status: "disabled"}
	if h.mail != nil && h.mail.Enabled() {
		smtp.Status = "ok"
	}

	writeJSON(w, statusCode(db.Status), HealthResponse{
		Status:  db.Status,
		Version: h.version,
		Components: map[string]ComponentHealth{
			"database": db,
			"smtp":     smtp,
		},
		Timestamp: time.Now(),
	})
}

func (h *HealthHandler) checkDB(ctx context.Context) ComponentHealth {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return ComponentHealth{Status: "down"}
	}
	return ComponentHealth{Status: "ok", Latency: time.Since(start).String()}
}

func statusCode(status string) int {
	if status == "ok" {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}
