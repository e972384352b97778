package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// requestTimeout bounds a single request, deep-scan fetches included.
const requestTimeout = 90 * time.Second

// NewRouter builds the HTTP router for the scan service.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Heartbeat("/ping"))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.handleHealth)

		r.Post("/scan", h.handleScan)
		r.Post("/scan/compare", h.handleCompare)
		r.Post("/deepscan", h.handleDeepScan)

		r.Route("/history", func(r chi.Router) {
			r.Get("/", h.handleHistoryList)
			r.Delete("/", h.handleHistoryClear)
			r.Get("/{id}", h.handleHistoryGet)
			r.Delete("/{id}", h.handleHistoryDelete)
		})
	})

	return r
}
