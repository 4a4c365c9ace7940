package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/compliport/compliport/internal/storage"
)

// handleListClients returns all clients.
func (s *Server) handleListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := s.clientSvc.ListClients(r.Context())
	if err != nil {
		httpErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, clients)
}

// handleCreateClient registers a new client.
func (s *Server) handleCreateClient(w http.ResponseWriter, r *http.Request) {
	var client storage.Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		writeError(w, http.StatusBadRequest, errInvalidJSONBody)
		return
	}

	created, err := s.clientSvc.CreateClient(r.Context(), &client)
	if err != nil {
		httpErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// handleGetClient returns a single client by ID.
func (s *Server) handleGetClient(w http.ResponseWriter, r *http.Request) {
	client, err := s.clientSvc.GetClient(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, client)
}

// handleUpdateClient updates an existing client.
func (s *Server) handleUpdateClient(w http.ResponseWriter, r *http.Request) {
	var client storage.Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		writeError(w, http.StatusBadRequest, errInvalidJSONBody)
		return
	}

	updated, err := s.clientSvc.UpdateClient(r.Context(), chi.URLParam(r, "id"), &client)
	if err != nil {
		httpErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// handleDeleteClient removes a client and, through foreign keys, its
// documents, holidays, schedules and notifications.
func (s *Server) handleDeleteClient(w http.ResponseWriter, r *http.Request) {
	if err := s.clientSvc.DeleteClient(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
