package api

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/wbuf81/oscar/internal/deepscan"
	"github.com/wbuf81/oscar/internal/history"
	"github.com/wbuf81/oscar/internal/page"
)

// ScanRequest is the POST /api/scan request body.
type ScanRequest struct {
	Page page.Snapshot `json:"page"`
}

// CompareRequest is the POST /api/scan/compare request body.
type CompareRequest struct {
	Pages []page.Snapshot `json:"pages"`
}

// DeepScanRequest is the POST /api/deepscan request body.
type DeepScanRequest struct {
	ID string `json:"id"`
}

// handleScan scans a single page snapshot and returns the persisted record.
func (h *Handler) handleScan(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	var req ScanRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, errCodeInvalidRequest, ErrInvalidRequestBody.Error())
		return
	}

	if req.Page.URL == "" {
		respondError(w, http.StatusBadRequest, errCodeInvalidRequest, ErrSnapshotRequired.Error())
		return
	}

	rec := h.orchestrator.Scan(req.Page)

	respondData(w, http.StatusOK, rec)
}

// handleCompare scans a batch of page snapshots and returns their records in
// request order.
func (h *Handler) handleCompare(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	var req CompareRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, errCodeInvalidRequest, ErrInvalidRequestBody.Error())
		return
	}

	if len(req.Pages) == 0 {
		respondError(w, http.StatusBadRequest, errCodeInvalidRequest, ErrNoSnapshots.Error())
		return
	}

	for _, snap := range req.Pages {
		if snap.URL == "" {
			respondError(w, http.StatusBadRequest, errCodeInvalidRequest, ErrSnapshotRequired.Error())
			return
		}
	}

	records := h.orchestrator.ScanAll(req.Pages)

	respondData(w, http.StatusOK, records)
}

// handleDeepScan runs the document pass for an existing scan record and
// returns the updated record.
func (h *Handler) handleDeepScan(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	var req DeepScanRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, errCodeInvalidRequest, ErrInvalidRequestBody.Error())
		return
	}

	if req.ID == "" {
		respondError(w, http.StatusBadRequest, errCodeInvalidRequest, ErrRecordIDRequired.Error())
		return
	}

	rec, err := h.orchestrator.DeepScan(r.Context(), req.ID)

	switch {
	case errors.Is(err, history.ErrNotFound):
		respondError(w, http.StatusNotFound, errCodeNotFound, "scan record not found")
		return
	case errors.Is(err, deepscan.ErrNoDocuments):
		respondError(w, http.StatusConflict, errCodeConflict, "record has no documents to scan")
		return
	case err != nil:
		log.Error().Err(err).Str("record", req.ID).Msg("deep scan failed")
		respondError(w, http.StatusInternalServerError, errCodeInternal, "deep scan failed")

		return
	}

	respondData(w, http.StatusOK, rec)
}
