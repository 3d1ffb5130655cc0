package web

import (
	"net/http"

	"invoicegen/internal/app"
)

// previewTotals handles POST /api/totals/preview — computes totals for a
// not-yet-saved document. Nothing is persisted.
func (h *Handler) previewTotals(w http.ResponseWriter, r *http.Request) {
	var req app.TotalsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	totals, err := h.svc.PreviewTotals(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, totals)
}

// stats handles GET /api/stats.
func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetStatistics(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, stats)
}
