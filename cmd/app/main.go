package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/morrowland/archetype-report/internal/accesscode"
	"github.com/morrowland/archetype-report/internal/archetype"
	"github.com/morrowland/archetype-report/internal/config"
	"github.com/morrowland/archetype-report/internal/payment"
	"github.com/morrowland/archetype-report/internal/report"
	"github.com/morrowland/archetype-report/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	initLogger(cfg)

	// Extraction runs once, blocking startup. A missing document is not
	// fatal; the service degrades to "report not found" responses.
	narratives := archetype.LoadDocument(cfg.SourceDocument)
	registry := archetype.LoadRegistry(cfg.RegistryFiles)

	codeStore, closeStore, err := newCodeStore(cfg)
	if err != nil {
		slog.Error("Failed to open access code store", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	if cfg.StripeSecretKey == "" {
		slog.Warn("STRIPE_SECRET_KEY not set; checkout session creation will fail")
	}

	reportService := report.NewService(narratives, registry)
	gateway := payment.NewStripeGateway(cfg.StripeSecretKey, cfg.Domain)

	srv := server.NewServer(cfg.Port, cfg.Version, reportService, codeStore, gateway, narratives)

	// Graceful shutdown on SIGINT/SIGTERM
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		slog.Info("Shutting down server")
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Stop(ctx); err != nil {
			slog.Error("Server forced shutdown", "error", err)
		}
	}()

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}

// newCodeStore builds the configured access-code backend. The returned close
// function is a no-op for the file store.
func newCodeStore(cfg *config.Config) (accesscode.Store, func(), error) {
	switch cfg.CodeStoreBackend {
	case config.StoreBackendSQLite:
		store, err := accesscode.NewSQLiteStore(cfg.CodeStorePath)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {
			if err := store.Close(); err != nil {
				slog.Error("Failed to close code store", "error", err)
			}
		}, nil
	case config.StoreBackendFile:
		return accesscode.NewFileStore(cfg.CodeStorePath), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown code store backend %q", cfg.CodeStoreBackend)
	}
}
