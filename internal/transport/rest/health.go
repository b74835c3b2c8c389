package rest

import (
	"context"
	"net/http"
	"time"
)

const pingTimeout = 3 * time.Second

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the keep-alive and health check endpoints.
type HealthHandler struct {
	db      dbPinger
	version string
	started time.Time
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version, started: time.Now()}
}

// HealthResponse is the JSON response for /, /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Uptime     string                `json:"uptime,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe used by hosting keep-alive pings.
// Always returns 200 and never touches the store.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. Pings DB: 200 if OK, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	code := http.StatusOK
	if _, err := h.ping(r.Context()); err != nil {
		status, code = "down", http.StatusServiceUnavailable
	}

	writeJSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
	})
}

// Health is the full health check: DB latency, version and uptime.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:     "ok",
		Version:    h.version,
		Uptime:     time.Since(h.started).Round(time.Second).String(),
		Components: make(map[string]CompStatus, 1),
	}
	code := http.StatusOK

	latency, err := h.ping(r.Context())
	if err != nil {
		resp.Components["database"] = CompStatus{Status: "down"}
		resp.Status = "down"
		code = http.StatusServiceUnavailable
	} else {
		resp.Components["database"] = CompStatus{Status: "ok", Latency: latency.String()}
	}

	resp.Timestamp = time.Now()
	writeJSON(w, code, resp)
}

func (h *HealthHandler) ping(ctx context.Context) (time.Duration, error) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	err := h.db.Ping(ctx)
	return time.Since(start), err
}
