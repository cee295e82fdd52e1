// @title Baby Journal API
// @version 1.0
// @description Diario de eventos del bebé: registro, importación CSV/JSON, volcado SQL y sincronización con la tabla remota.
// @BasePath /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"baby-journal/internal/adapters/storage"
	"baby-journal/internal/platform/config"
	"baby-journal/internal/platform/logger"
	"baby-journal/internal/remote"
	"baby-journal/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.FromStrings("error", "text", "baby-journal").Error("invalid config", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	log := logger.FromStrings(cfg.LogLevel, cfg.LogFormat, cfg.AppName)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closer, err := storage.Open(ctx, cfg.StoreDSN)
	if err != nil {
		log.Error("open store", map[string]any{"backend": storage.Backend(cfg.StoreDSN), "error": err.Error()})
		os.Exit(1)
	}
	defer closer.Close()

	r := router.NewRouter(router.Options{
		Store:       store,
		EventsSlot:  cfg.EventsSlot,
		ProfileSlot: cfg.ProfileSlot,
		Remote: remote.Config{
			Endpoint: cfg.RemoteURL,
			Token:    cfg.RemoteToken,
			Timeout:  cfg.RemoteTimeout,
		},
		Logger:         log,
		ImportLocation: cfg.ImportLocation,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("starting server", map[string]any{"addr": cfg.Addr(), "store": storage.Backend(cfg.StoreDSN)})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	log.Info("server stopped", nil)
}
