package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campus-ledger/config"
	"campus-ledger/internal/app"
	httpHandler "campus-ledger/internal/adapter/http/handler"
	"campus-ledger/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("store", cfg.Store.Driver).
		Int("port", cfg.Server.Port).
		Bool("pin_simulated", cfg.Ledger.PinSimulated).
		Msg("Starting Campus Ledger")

	ctx := context.Background()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize ledger")
	}
	defer a.Close()

	log.Info().Str("mode", string(a.Modes.Mode())).Msg("Ledger ready")

	// Restore the wallet session from the previous run, never prompting.
	a.Connection.AutoReconnect(ctx)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Ledger:         a.Ledger,
		Connection:     a.Connection,
		Modes:          a.Modes,
		HealthCheckers: a.HealthCheckers,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	// In-flight remote writes may still be polling for confirmation.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Retry.ConfirmBudget()+10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
