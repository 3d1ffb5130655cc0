package web

import (
	"net/http"

	"invoicegen/internal/app"
	"invoicegen/internal/core"
)

// listReceipts handles GET /api/receipts.
func (h *Handler) listReceipts(w http.ResponseWriter, r *http.Request) {
	receipts, err := h.svc.ListReceipts(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, receipts)
}

// createReceipt handles POST /api/receipts.
func (h *Handler) createReceipt(w http.ResponseWriter, r *http.Request) {
	var req app.ReceiptRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rec, err := h.svc.CreateReceipt(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, rec)
}

// getReceipt handles GET /api/receipts/{id}.
func (h *Handler) getReceipt(w http.ResponseWriter, r *http.Request) {
	rec, err := h.svc.GetReceipt(r.Context(), recordID(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, rec)
}

// receiptPDF handles GET /api/receipts/{id}/pdf — streams the rendered PDF.
func (h *Handler) receiptPDF(w http.ResponseWriter, r *http.Request) {
	rec, err := h.svc.GetReceipt(r.Context(), recordID(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	buf, err := h.renderer.RenderReceipt(r.Context(), *rec)
	if err != nil {
		writeError(w, r, "pdf rendering failed: "+err.Error(), "PDF_FAILED", http.StatusInternalServerError)
		return
	}

	filename := core.SanitizeFileName(rec.Number) + ".pdf"
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	_, _ = w.Write(buf)
}

// deleteReceipt handles DELETE /api/receipts/{id}.
func (h *Handler) deleteReceipt(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteReceipt(r.Context(), recordID(r)); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
