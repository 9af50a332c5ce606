/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the Royal Stay booking ledger server.
  Handles configuration, dependency wiring, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load configuration (.env / environment)
  2. Open the SQLite archive
  3. Build the ledger with payment gateways and archive attached
  4. Optionally seed sample rooms and guests
  5. Start the HTTP server with graceful shutdown

CONFIGURATION (environment, see config package):
  HTTP_ADDR    Listen address (default :8080)
  ARCHIVE_DB   SQLite archive path; use ":memory:" for ephemeral
  APP_ENV      "dev" enables console-friendly logs
  SEED         "true" loads the demo inventory

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Close the archive
  4. Exit

SEE ALSO:
  - api/server.go: Router configuration
  - hotel/ledger.go: The engine being served
*/
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/royalstay/ledger/api"
	"github.com/royalstay/ledger/config"
	"github.com/royalstay/ledger/gateway"
	"github.com/royalstay/ledger/hotel"
	"github.com/royalstay/ledger/store/sqlite"
)

func main() {
	cfg := config.Load()
	log := newLogger(cfg.Env)

	// Archive
	archive, err := sqlite.New(cfg.ArchivePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open archive")
	}
	defer archive.Close()

	// Ledger with gateways and archive wired in
	opts := append(gateway.Options(),
		hotel.WithArchive(archive),
		hotel.WithLogger(log),
	)
	ledger := hotel.NewLedger(opts...)

	if cfg.Seed {
		if err := api.SeedSampleData(ledger); err != nil {
			log.Fatal().Err(err).Msg("failed to seed sample data")
		}
		log.Info().Msg("sample data loaded")
	}

	// Router and server
	router := api.NewRouter(api.NewHandler(ledger), log)
	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}
	log.Info().Msg("server stopped")
}

// newLogger returns a zerolog logger; dev environments get a
// human-friendly console writer.
func newLogger(env string) zerolog.Logger {
	l := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if env == "dev" || env == "development" {
		l = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			With().Timestamp().Logger()
	}
	return l
}
