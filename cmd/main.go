package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pipeline_dashboard/internal/config"
	"pipeline_dashboard/internal/crm"
	"pipeline_dashboard/internal/handlers"
	"pipeline_dashboard/internal/logger"
	"pipeline_dashboard/internal/logring"
	"pipeline_dashboard/internal/models"
	"pipeline_dashboard/internal/repository"
	"pipeline_dashboard/internal/repository/db"
	"pipeline_dashboard/internal/server"
	"pipeline_dashboard/internal/service"
	"pipeline_dashboard/internal/voice"
)

const shutdownTimeout = 10 * time.Second

// @title           Pipeline Dashboard API
// @version         1.0
// @description     CRM pipeline sync with demo fallback, system log and voice session handshake.
// @BasePath        /
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.Get(logger.Options{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})
	defer func() { _ = log.Sync() }()

	ring := logring.New(cfg.Logs.Capacity)
	ring.Info("SERVER BOOT: starting pipeline dashboard")

	repos, closer, err := openStore(cfg, log)
	if err != nil {
		log.Fatalw("failed to open settings store", "driver", cfg.Store.Driver, "err", err)
	}
	defer func() {
		if cerr := closer.Close(); cerr != nil {
			log.Errorw("failed to close settings store", "err", cerr)
		}
	}()

	// wire dependencies
	deps := service.Deps{
		CRM: crm.NewClient(crm.Config{
			BaseURL:    cfg.CRM.BaseURL,
			APIVersion: cfg.CRM.APIVersion,
			Timeout:    cfg.CRM.Timeout,
			MaxResults: cfg.CRM.MaxResults,
		}),
		Voice: voice.NewClient(voice.Config{
			BaseURL: cfg.Voice.BaseURL,
			Timeout: cfg.Voice.Timeout,
		}),
		Ring: ring,
		Log:  log,
	}
	opts := service.Options{
		AppID:       cfg.AppID,
		SetupPortal: cfg.Sync.SetupPortal,
		WinRate:     cfg.Stats.WinRate,
		AIActions:   cfg.Stats.AIActions,
	}
	services := service.NewService(repos, deps, opts)
	apiHandler := handlers.NewHandler(services, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	seedCredentials(ctx, service.NewConfigStoreService(repos.Settings, cfg.AppID, ring, log), log)

	go services.Scheduler.Run(ctx, cfg.Sync.Interval)

	srv := server.New(server.Options{
		WriteTimeout: server.WriteTimeoutFor(max(cfg.CRM.Timeout, cfg.Voice.Timeout)),
	})
	runHTTPServer(srv, cfg.Port, apiHandler, log)
	ring.Info(fmt.Sprintf("SERVER IS LIVE ON PORT %s", cfg.Port))
	log.Infow("server_started", "port", cfg.Port, "store", cfg.Store.Driver)

	waitForShutdown(cancel, srv, log)
}

// openStore opens the credentials document store selected by store.driver.
func openStore(cfg *config.Config, log *logger.Logger) (*repository.Repository, io.Closer, error) {
	switch cfg.Store.Driver {
	case config.StoreBadger:
		bdb, err := db.OpenBadger(cfg.Store.BadgerDir)
		if err != nil {
			return nil, nil, err
		}
		log.Infow("settings_store_opened", "driver", config.StoreBadger, "dir", cfg.Store.BadgerDir)
		return repository.NewBadgerRepository(bdb), bdb, nil
	default:
		sqlDB, err := db.InitDB(cfg.DB.Path)
		if err != nil {
			return nil, nil, err
		}
		log.Infow("settings_store_opened", "driver", config.StoreSQLite, "path", cfg.DB.Path)
		return repository.NewRepository(sqlDB), sqlDB, nil
	}
}

// seedCredentials writes environment-supplied credentials on first run only.
func seedCredentials(ctx context.Context, store *service.ConfigStoreService, log *logger.Logger) {
	b := config.BootstrapFromEnv()
	if b.Empty() {
		return
	}
	seeded, err := store.Seed(ctx, models.Credentials{
		CrmAccessToken: b.CrmAccessToken,
		CrmLocationID:  b.CrmLocationID,
		VoiceAPIKey:    b.VoiceAPIKey,
		VoiceAgentID:   b.VoiceAgentID,
	})
	if err != nil {
		log.Errorw("credential_seed_failed", "err", err)
		return
	}
	log.Infow("credential_seed", "written", seeded)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "3000"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background sync
	cancel()

	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
