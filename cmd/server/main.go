package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"symbology/internal/platform/config"
	"symbology/internal/platform/httpserver"
	"symbology/internal/platform/logger"
	"symbology/internal/platform/metrics"
	httptransport "symbology/internal/transport/http"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// All parsing logic lives in the internal domain packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	m := metrics.New()
	handler := httptransport.New(log, m)
	router := httptransport.NewRouter(handler, cfg.RequestTimeout)
	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting symbology server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
