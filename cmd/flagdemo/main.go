// Command flagdemo exercises the feature flag engine: it walks through
// rollout, targeting, kill-switch and A/B scenarios, or serves the admin
// API when started with -serve.
//
//	flagdemo                 # run the demo scenarios
//	flagdemo -serve :8080    # serve the flag admin API
//	FF_AGGRESSIVE_CAPTURE=50 flagdemo
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Saastronomical/flagkit/pkg/feature"
	"github.com/Saastronomical/flagkit/pkg/flagadmin"
)

func main() {
	addr := flag.String("serve", "", "serve the flag admin API on this address instead of running the demo")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := feature.LoadConfig()
	if err != nil {
		logger.Error("failed to load engine config", "error", err)
		os.Exit(1)
	}
	registry := feature.NewFromConfig(cfg, feature.WithLogger(logger))

	if *addr != "" {
		if err := serveAdmin(*addr, registry, logger); err != nil {
			logger.Error("admin server failed", "error", err)
			os.Exit(1)
		}
		return
	}

	runDemo(registry)
}

func serveAdmin(addr string, registry *feature.Registry, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	router := chi.NewRouter()
	router.Mount("/", flagadmin.Router(registry, flagadmin.WithLogger(logger)))

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("flag admin API listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logger.Info("flag admin API stopped")
	return nil
}
