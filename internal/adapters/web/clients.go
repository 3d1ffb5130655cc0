package web

import (
	"net/http"

	"invoicegen/internal/app"
)

// listClients handles GET /api/clients.
func (h *Handler) listClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.svc.ListClients(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, clients)
}

// createClient handles POST /api/clients.
func (h *Handler) createClient(w http.ResponseWriter, r *http.Request) {
	var req app.ClientRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	client, err := h.svc.CreateClient(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, client)
}

// getClient handles GET /api/clients/{id}.
func (h *Handler) getClient(w http.ResponseWriter, r *http.Request) {
	client, err := h.svc.GetClient(r.Context(), recordID(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, client)
}

// updateClient handles PUT /api/clients/{id}.
func (h *Handler) updateClient(w http.ResponseWriter, r *http.Request) {
	var req app.ClientRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	client, err := h.svc.UpdateClient(r.Context(), recordID(r), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, client)
}

// deleteClient handles DELETE /api/clients/{id}.
func (h *Handler) deleteClient(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteClient(r.Context(), recordID(r)); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
