package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/compliport/compliport/internal/schedule"
	"github.com/compliport/compliport/internal/storage"
)

// documentRequest is the JSON body for creating or updating a document.
// expiry_date is a calendar date (YYYY-MM-DD, DD/MM/YYYY or DD-MM-YYYY).
type documentRequest struct {
	Name       string `json:"name"`
	ExpiryDate string `json:"expiry_date"`
}

func (req documentRequest) toDocument(w http.ResponseWriter) (*storage.LegalDocument, bool) {
	doc := &storage.LegalDocument{Name: req.Name}
	if req.ExpiryDate != "" {
		d, ok := schedule.ParseDate(req.ExpiryDate)
		if !ok {
			writeError(w, http.StatusBadRequest, "expiry_date must be a valid calendar date")
			return nil, false
		}
		doc.ExpiryDate = d
	}
	return doc, true
}

// handleListDocuments returns all documents belonging to a client.
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := s.documentSvc.ListDocuments(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

// handleCreateDocument adds a legal document under a client.
func (s *Server) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	var req documentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errInvalidJSONBody)
		return
	}
	doc, ok := req.toDocument(w)
	if !ok {
		return
	}

	created, err := s.documentSvc.CreateDocument(r.Context(), chi.URLParam(r, "id"), doc)
	if err != nil {
		httpErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// handleUpdateDocument updates a document's name or expiry date.
func (s *Server) handleUpdateDocument(w http.ResponseWriter, r *http.Request) {
	var req documentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errInvalidJSONBody)
		return
	}
	doc, ok := req.toDocument(w)
	if !ok {
		return
	}

	updated, err := s.documentSvc.UpdateDocument(r.Context(), chi.URLParam(r, "id"), doc)
	if err != nil {
		httpErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// handleDeleteDocument removes a document. Its notifications are retracted on
// the next reconciliation pass.
func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	if err := s.documentSvc.DeleteDocument(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
