package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/contre95/mediastore/src/features/hosting"
	"github.com/contre95/mediastore/src/features/mediastore"
	"github.com/contre95/mediastore/src/features/metrics"
	"github.com/contre95/mediastore/src/infra/watcher"
	"github.com/contre95/mediastore/src/media"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

func newServeCommand(r *session) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP bridge for the host UI",
		Long: `Run the HTTP bridge on the configured host and port.

The bridge exposes the media operations as a JSON API under /api/media,
serves stored files under /asset and a small library page under /ui.
Stop it with Ctrl+C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, r)
		},
	}
}

func serve(ctx context.Context, r *session) error {
	cfg := r.cfg.Get()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		metrics.NewLibraryCollector(r.store),
	)
	service := mediastore.NewService(r.store, metrics.NewRecorder(reg))

	root, err := service.ResolveBasePath(ctx)
	if err != nil {
		return fmt.Errorf("failed to prepare media root: %w", err)
	}
	slog.Info("Media root ready", "path", root)

	if cfg.Watcher.Enabled {
		events := make(chan media.FileEvent, 64)
		w, err := watcher.NewWatcher(events)
		if err != nil {
			return fmt.Errorf("failed to create watcher: %w", err)
		}
		if err := service.StartWatcher(ctx, w, events); err != nil {
			return err
		}
		defer service.StopWatcher()
	}

	server := hosting.NewServer(r.cfg, service, reg)
	errc := make(chan error, 1)
	go func() {
		errc <- server.Start()
	}()
	slog.Info("Server started. Press Ctrl+C to shut down.", "addr", server.Addr())

	select {
	case err := <-errc:
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down server...")
	if err := server.Shutdown(); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	slog.Info("Server gracefully shut down.")
	return nil
}
