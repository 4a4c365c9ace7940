package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/compliport/compliport/internal/storage"
)

// maxCalendarBytes caps uploaded YAML calendars.
const maxCalendarBytes = 1 << 20

// handleListHolidays returns a client's holiday calendar.
func (s *Server) handleListHolidays(w http.ResponseWriter, r *http.Request) {
	holidays, err := s.holidaySvc.ListHolidays(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, holidays)
}

// handleReplaceHolidays swaps a client's whole holiday calendar.
func (s *Server) handleReplaceHolidays(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Holidays []storage.Holiday `json:"holidays"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, errInvalidJSONBody)
		return
	}

	clientID := chi.URLParam(r, "id")
	if err := s.holidaySvc.ReplaceHolidays(r.Context(), clientID, body.Holidays); err != nil {
		httpErr(w, err)
		return
	}

	holidays, err := s.holidaySvc.ListHolidays(r.Context(), clientID)
	if err != nil {
		httpErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, holidays)
}

// handleImportHolidays replaces a client's calendar from an uploaded YAML
// document.
func (s *Server) handleImportHolidays(w http.ResponseWriter, r *http.Request) {
	src, err := io.ReadAll(io.LimitReader(r.Body, maxCalendarBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read calendar body")
		return
	}

	count, err := s.holidaySvc.ImportCalendar(r.Context(), chi.URLParam(r, "id"), src)
	if err != nil {
		httpErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"imported": count})
}
