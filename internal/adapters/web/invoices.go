package web

import (
	"net/http"

	"invoicegen/internal/app"
	"invoicegen/internal/core"
)

// listInvoices handles GET /api/invoices. Optional ?status= filter.
func (h *Handler) listInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.svc.ListInvoices(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, invoices)
}

// createInvoice handles POST /api/invoices.
func (h *Handler) createInvoice(w http.ResponseWriter, r *http.Request) {
	var req app.InvoiceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	inv, err := h.svc.CreateInvoice(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, inv)
}

// getInvoice handles GET /api/invoices/{id}.
func (h *Handler) getInvoice(w http.ResponseWriter, r *http.Request) {
	inv, err := h.svc.GetInvoice(r.Context(), recordID(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, inv)
}

// updateInvoice handles PUT /api/invoices/{id}.
func (h *Handler) updateInvoice(w http.ResponseWriter, r *http.Request) {
	var req app.InvoiceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	inv, err := h.svc.UpdateInvoice(r.Context(), recordID(r), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, inv)
}

// setInvoiceStatus handles PATCH /api/invoices/{id}/status.
// Body: { status }
func (h *Handler) setInvoiceStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status string `json:"status"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}

	inv, err := h.svc.SetInvoiceStatus(r.Context(), recordID(r), core.InvoiceStatus(body.Status))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, inv)
}

// invoicePDF handles GET /api/invoices/{id}/pdf — streams the rendered PDF.
func (h *Handler) invoicePDF(w http.ResponseWriter, r *http.Request) {
	inv, err := h.svc.GetInvoice(r.Context(), recordID(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	buf, err := h.renderer.RenderInvoice(r.Context(), *inv)
	if err != nil {
		writeError(w, r, "pdf rendering failed: "+err.Error(), "PDF_FAILED", http.StatusInternalServerError)
		return
	}

	filename := core.SanitizeFileName(inv.Number) + ".pdf"
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	_, _ = w.Write(buf)
}

// deleteInvoice handles DELETE /api/invoices/{id}.
func (h *Handler) deleteInvoice(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteInvoice(r.Context(), recordID(r)); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
