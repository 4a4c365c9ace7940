package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/compliport/compliport/internal/api"
	"github.com/compliport/compliport/internal/config"
	"github.com/compliport/compliport/internal/eventbus"
	"github.com/compliport/compliport/internal/logger"
	"github.com/compliport/compliport/internal/notification"
	"github.com/compliport/compliport/internal/scheduler"
	"github.com/compliport/compliport/internal/server"
	"github.com/compliport/compliport/internal/service"
	"github.com/compliport/compliport/internal/storage"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  "Start the portal API server and the daily expiry reconciliation sweep.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "HTTP server port (overrides PORT env var)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port, _ = cmd.Flags().GetInt("port")
	}

	log, err := logger.NewSystemLogger(cfg.LogDir(), cfg.SlogLevel())
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db, created, err := storage.NewSQLiteDB(cfg.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()
	if created {
		log.Info("created new database", "path", cfg.DBPath())
	}

	clientStore := storage.NewSQLiteClientStore(db)
	documentStore := storage.NewSQLiteDocumentStore(db)
	holidayStore := storage.NewSQLiteHolidayStore(db)
	scheduleStore := storage.NewSQLiteScheduleStore(db)
	complianceStore := storage.NewSQLiteComplianceStore(db)
	notificationStore := storage.NewSQLiteNotificationStore(db)
	settingsStore := storage.NewSQLiteSettingsStore(db)

	settingsMgr, err := config.NewSettingsManager(settingsStore)
	if err != nil {
		return fmt.Errorf("loading portal settings: %w", err)
	}

	bus := eventbus.New(3)
	defer bus.Close()

	clientSvc := service.NewClientService(clientStore, log)
	documentSvc := service.NewDocumentService(documentStore, clientStore, log)
	holidaySvc := service.NewHolidayService(holidayStore, clientStore, log)
	scheduleSvc := service.NewScheduleService(scheduleStore, holidayStore, clientStore, log)
	complianceSvc := service.NewComplianceService(complianceStore, documentStore, clientStore, bus, log)
	notificationSvc := service.NewNotificationService(settingsMgr, notificationStore)

	handler := notification.NewNotificationHandler(notificationSettingsLoader(settingsMgr), notificationStore)
	bus.Subscribe(func(e eventbus.Event) {
		handler.Handle(e.Type, e.Payload)
	})

	sched, err := scheduler.New(scheduler.Config{
		Clients:        clientStore,
		Compliance:     complianceSvc,
		Logger:         log,
		ReconcileAt:    cfg.ReconcileAt,
		MaxConcurrency: cfg.ReconcileMaxConcurrency,
		EventPublisher: bus,
	})
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}
	if err := sched.Start(ctx); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}
	defer func() {
		if serr := sched.Stop(); serr != nil {
			log.Error("stopping scheduler", "error", serr)
		}
	}()

	apiSrv := api.New(clientSvc, documentSvc, holidaySvc, scheduleSvc, complianceSvc, notificationSvc, log)
	srv := server.New(apiSrv, cfg.Port, log)

	fmt.Fprintf(os.Stderr, "Compliport API listening on http://localhost:%d\n", cfg.Port)
	log.Info("server starting", "port", cfg.Port, "data_dir", cfg.DataDir, "reconcile_at", cfg.ReconcileAt)

	return srv.Run(ctx)
}

// notificationSettingsLoader adapts the settings manager to the loader the
// notification handler expects. Notification settings live in the portal
// settings row as a JSON blob so the schema can evolve without migrations.
func notificationSettingsLoader(mgr *config.SettingsManager) notification.SettingsLoader {
	return func() (*notification.NotificationSettings, error) {
		raw := mgr.Get().NotificationSettings
		if raw == "" || raw == "{}" {
			return &notification.NotificationSettings{}, nil
		}
		var ns notification.NotificationSettings
		if err := json.Unmarshal([]byte(raw), &ns); err != nil {
			return nil, fmt.Errorf("parsing notification settings: %w", err)
		}
		return &ns, nil
	}
}
