package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wbuf81/oscar/internal/history"
)

// handleHistoryList returns all retained scan records, newest first.
func (h *Handler) handleHistoryList(w http.ResponseWriter, _ *http.Request) {
	respondData(w, http.StatusOK, h.history.List())
}

// handleHistoryGet returns a single scan record by id.
func (h *Handler) handleHistoryGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec, err := h.history.Get(id)
	if err != nil {
		if errors.Is(err, history.ErrNotFound) {
			respondError(w, http.StatusNotFound, errCodeNotFound, "scan record not found")
			return
		}

		respondError(w, http.StatusInternalServerError, errCodeInternal, "failed to load scan record")

		return
	}

	respondData(w, http.StatusOK, rec)
}

// handleHistoryDelete removes a single scan record by id.
func (h *Handler) handleHistoryDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.history.Delete(id); err != nil {
		if errors.Is(err, history.ErrNotFound) {
			respondError(w, http.StatusNotFound, errCodeNotFound, "scan record not found")
			return
		}

		respondError(w, http.StatusInternalServerError, errCodeInternal, "failed to delete scan record")

		return
	}

	respondData(w, http.StatusOK, map[string]string{"deleted": id})
}

// handleHistoryClear removes all scan records.
func (h *Handler) handleHistoryClear(w http.ResponseWriter, _ *http.Request) {
	h.history.Clear()

	respondData(w, http.StatusOK, map[string]bool{"cleared": true})
}
