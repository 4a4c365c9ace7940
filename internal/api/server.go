// Package api implements the REST handlers for the compliance portal.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/compliport/compliport/internal/service"
)

const errInvalidJSONBody = "invalid JSON body"

// Server holds all dependencies for the REST API handlers.
type Server struct {
	clientSvc       service.ClientService
	documentSvc     service.DocumentService
	holidaySvc      service.HolidayService
	scheduleSvc     service.ScheduleService
	complianceSvc   service.ComplianceService
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// New creates a new API Server backed by the provided services.
func New(
	clientSvc service.ClientService,
	documentSvc service.DocumentService,
	holidaySvc service.HolidayService,
	scheduleSvc service.ScheduleService,
	complianceSvc service.ComplianceService,
	notificationSvc service.NotificationService,
	logger *slog.Logger,
) *Server {
	return &Server{
		clientSvc:       clientSvc,
		documentSvc:     documentSvc,
		holidaySvc:      holidaySvc,
		scheduleSvc:     scheduleSvc,
		complianceSvc:   complianceSvc,
		notificationSvc: notificationSvc,
		logger:          logger,
	}
}

// Mount registers all API routes under the given router.
func (s *Server) Mount(r chi.Router) {
	// Clients CRUD
	r.Get("/clients", s.handleListClients)
	r.Post("/clients", s.handleCreateClient)
	r.Get("/clients/{id}", s.handleGetClient)
	r.Put("/clients/{id}", s.handleUpdateClient)
	r.Delete("/clients/{id}", s.handleDeleteClient)

	// Legal documents
	r.Get("/clients/{id}/documents", s.handleListDocuments)
	r.Post("/clients/{id}/documents", s.handleCreateDocument)
	r.Put("/documents/{id}", s.handleUpdateDocument)
	r.Delete("/documents/{id}", s.handleDeleteDocument)

	// Holiday calendar
	r.Get("/clients/{id}/holidays", s.handleListHolidays)
	r.Put("/clients/{id}/holidays", s.handleReplaceHolidays)
	r.Post("/clients/{id}/holidays/import", s.handleImportHolidays)

	// Schedules
	r.Get("/clients/{id}/schedule", s.handleListSchedule)
	r.Post("/clients/{id}/schedule/generate", s.handleGenerateSchedule)
	r.Post("/clients/{id}/calendar", s.handleTrainingCalendar)

	// Compliance notifications
	r.Post("/reconcile", s.handleReconcileAll)
	r.Post("/clients/{id}/reconcile", s.handleReconcileClient)
	r.Get("/notifications", s.handleListAllNotifications)
	r.Get("/clients/{id}/notifications", s.handleListClientNotifications)

	// Notification settings + delivery log
	r.Get("/notification-settings", s.handleGetNotificationSettings)
	r.Put("/notification-settings", s.handleUpdateNotificationSettings)
	r.Post("/notification-settings/test", s.handleTestNotification)
	r.Get("/notification-log", s.handleListNotificationLog)

	r.Get("/version", s.handleVersion)
}

// ─── Shared helpers ───────────────────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// httpErr maps service errors to HTTP status codes.
func httpErr(w http.ResponseWriter, err error) {
	switch e := err.(type) {
	case *service.NotFoundError:
		writeError(w, http.StatusNotFound, e.Error())
	case *service.ValidationError:
		writeError(w, http.StatusBadRequest, e.Error())
	case *service.ConflictError:
		writeError(w, http.StatusConflict, e.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
