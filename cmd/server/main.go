// main is the entry point for the event board server.
//
// It reads configuration, loads the seed catalog, wires the catalog into
// the HTTP handlers and the websocket change feed, and starts listening.
// This is the only place the packages are composed; each of them stays
// testable on its own.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Elizabethomito/eventboard/internal/catalog"
	"github.com/Elizabethomito/eventboard/internal/config"
	"github.com/Elizabethomito/eventboard/internal/handlers"
	"github.com/Elizabethomito/eventboard/internal/logging"
	"github.com/Elizabethomito/eventboard/internal/middleware"
	"github.com/Elizabethomito/eventboard/internal/notify"
	"github.com/Elizabethomito/eventboard/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	log := logging.New(os.Stderr, cfg.LogLevel, cfg.IsProduction())
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	// ── Seed ─────────────────────────────────────────────────────────
	// The embedded catalog unless SEED_FILE points elsewhere. With
	// SEED_ANCHOR=now the demo events are shifted around the current time.
	data, err := seed.Load(cfg.SeedFile, loc)
	if err != nil {
		return err
	}
	anchored, err := data.Anchored(cfg.SeedAnchor, time.Now())
	if err != nil {
		return err
	}

	// ── Catalog ──────────────────────────────────────────────────────
	cat := catalog.New(anchored.Users, anchored.Events, catalog.WithLocation(loc))
	log.Info("catalog ready", "users", len(anchored.Users), "events", len(anchored.Events))

	// ── Change feed ──────────────────────────────────────────────────
	hub := notify.NewHub(log, middleware.AllowOrigin(cfg.CORSOrigins))
	detach := hub.Attach(cat)
	defer detach()

	// ── Handlers ─────────────────────────────────────────────────────
	host, _, err := net.SplitHostPort(cfg.Addr)
	if err != nil || host == "" {
		host = "localhost"
	}
	srv := &handlers.Server{
		Catalog:    cat,
		Secret:     cfg.CheckInSecret,
		Seed:       data,
		SeedAnchor: cfg.SeedAnchor,
		Host:       host,
		Log:        log,
	}

	handler := middleware.CORS(cfg.CORSOrigins)(middleware.Logger(log)(srv.Routes(hub)))

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("event board listening", "addr", cfg.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", "ws_clients", hub.Count())
	hub.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
