package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/compliport/compliport/internal/schedule"
)

// handleListSchedule returns a client's persisted schedule rows, optionally
// filtered by ?category=.
func (s *Server) handleListSchedule(w http.ResponseWriter, r *http.Request) {
	entries, err := s.scheduleSvc.ListSchedule(
		r.Context(), chi.URLParam(r, "id"), r.URL.Query().Get("category"))
	if err != nil {
		httpErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// handleGenerateSchedule generates and persists a compliance schedule for a
// client. The optional from date anchors generation; it defaults to today.
func (s *Server) handleGenerateSchedule(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Category string   `json:"category"`
		Titles   []string `json:"titles"`
		Count    int      `json:"count"`
		From     string   `json:"from"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, errInvalidJSONBody)
		return
	}

	from := time.Now()
	if body.From != "" {
		d, ok := schedule.ParseDate(body.From)
		if !ok {
			writeError(w, http.StatusBadRequest, "from must be a valid calendar date")
			return
		}
		from = d
	}

	entries, err := s.scheduleSvc.GenerateCompliance(
		r.Context(), chi.URLParam(r, "id"), body.Category, body.Titles, body.Count, from)
	if err != nil {
		httpErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entries)
}

// handleTrainingCalendar computes a one-year training calendar for a client.
// Nothing is persisted.
func (s *Server) handleTrainingCalendar(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Names []string `json:"names"`
		Mode  string   `json:"mode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, errInvalidJSONBody)
		return
	}

	mode := schedule.CalendarMode(body.Mode)
	if body.Mode == "" {
		mode = schedule.ModeFuture
	}

	entries, err := s.scheduleSvc.TrainingCalendar(
		r.Context(), chi.URLParam(r, "id"), body.Names, mode, time.Now())
	if err != nil {
		httpErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
