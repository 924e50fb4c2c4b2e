package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/Kolpa/ulanzi-election/internal/app"
	"github.com/Kolpa/ulanzi-election/internal/config"
	"github.com/Kolpa/ulanzi-election/internal/dpa"
	"github.com/Kolpa/ulanzi-election/internal/mqtt"
	"github.com/Kolpa/ulanzi-election/internal/platform/logging"
	"github.com/Kolpa/ulanzi-election/internal/server"
	"github.com/Kolpa/ulanzi-election/internal/version"
)

const shutdownTimeout = 10 * time.Second

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	// Initialize structured logging
	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting",
		"env", cfg.AppEnv,
		"version", version.Get().Version,
		"election", cfg.ElectionID,
		"stage", cfg.ElectionStage,
		"poll_interval", cfg.PollInterval,
		"topic", cfg.MQTTTopic,
	)

	fetcher := dpa.NewClient(cfg.APIURL, cfg.ElectionID, cfg.ElectionStage)
	publisher := mqtt.NewPublisher(cfg.MQTTBroker, cfg.MQTTPort, cfg.MQTTTopic)
	svc := app.NewService(fetcher, publisher, clock, cfg.PollInterval, cfg.Threshold, cfg.Location())

	srv := server.New(cfg.MetricsAddr)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Ops server error", "error", err)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc.Run(ctx)

	slog.Info("Shutdown signal received, cleaning up...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}
}
