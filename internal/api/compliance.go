package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/compliport/compliport/internal/expiry"
)

// reconcileDay resolves the optional ?as_of= date used to reconcile as of a
// day other than today.
func reconcileDay(r *http.Request) (time.Time, bool) {
	raw := r.URL.Query().Get("as_of")
	if raw == "" {
		return time.Now(), true
	}
	d, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// handleReconcileAll runs a reconciliation pass over every client.
func (s *Server) handleReconcileAll(w http.ResponseWriter, r *http.Request) {
	today, ok := reconcileDay(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "as_of must be YYYY-MM-DD")
		return
	}

	res, err := s.complianceSvc.ReconcileAll(r.Context(), today)
	if err != nil {
		httpErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleReconcileClient runs a reconciliation pass scoped to one client.
func (s *Server) handleReconcileClient(w http.ResponseWriter, r *http.Request) {
	today, ok := reconcileDay(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "as_of must be YYYY-MM-DD")
		return
	}

	res, err := s.complianceSvc.ReconcileClient(r.Context(), chi.URLParam(r, "id"), today)
	if err != nil {
		httpErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleListAllNotifications returns the portal-wide notification feed.
// Defaults to the ADMIN audience; ?audience= and ?client_id= narrow it.
func (s *Server) handleListAllNotifications(w http.ResponseWriter, r *http.Request) {
	audience := expiry.Audience(r.URL.Query().Get("audience"))
	if audience == "" {
		audience = expiry.AudienceAdmin
	}

	rows, err := s.complianceSvc.ListNotifications(r.Context(), r.URL.Query().Get("client_id"), audience)
	if err != nil {
		httpErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// handleListClientNotifications returns one client's notification feed.
// Defaults to the CLIENT audience, which is what the client portal shows.
func (s *Server) handleListClientNotifications(w http.ResponseWriter, r *http.Request) {
	audience := expiry.Audience(r.URL.Query().Get("audience"))
	if audience == "" {
		audience = expiry.AudienceClient
	}

	rows, err := s.complianceSvc.ListNotifications(r.Context(), chi.URLParam(r, "id"), audience)
	if err != nil {
		httpErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}
