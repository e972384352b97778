package api

import (
	"net/http"
	"time"

	"github.com/wbuf81/oscar/internal/history"
	"github.com/wbuf81/oscar/internal/scan"
)

const defaultMaxBodySize = 1 << 22 // 4MB, page snapshots carry full link lists

// Handler serves the scan and history endpoints.
type Handler struct {
	orchestrator *scan.Orchestrator
	history      *history.Store
	maxBodySize  int64
}

// Option configures a Handler.
type Option func(*Handler)

// WithMaxBodySize overrides the request body size limit.
func WithMaxBodySize(size int64) Option {
	return func(h *Handler) {
		h.maxBodySize = size
	}
}

// NewHandler creates a Handler backed by the given orchestrator and history store.
func NewHandler(orchestrator *scan.Orchestrator, hist *history.Store, opts ...Option) *Handler {
	h := &Handler{
		orchestrator: orchestrator,
		history:      hist,
		maxBodySize:  defaultMaxBodySize,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// HealthResponse is the health check payload.
type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

// handleHealth returns service health.
func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Service:   "oscar",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
