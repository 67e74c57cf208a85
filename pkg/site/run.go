package site

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/mchmarny/navmenu/pkg/config"
	"github.com/mchmarny/navmenu/pkg/logger"
	"github.com/mchmarny/navmenu/pkg/server"
)

// Options configures Run.
type Options struct {
	// ConfigPath is the YAML site definition to serve.
	ConfigPath string

	// Port overrides server.DefaultPort when set.
	Port int

	// Watch reloads the definition whenever the file changes.
	Watch bool

	// Build metadata, logged at startup.
	Version string
	Commit  string
	Date    string
}

// Run loads the site definition and serves it until the context is canceled
// or an error occurs. Extra server options are applied after the defaults.
func Run(ctx context.Context, opts Options, extra ...server.Option) error {
	logger.SetDefaultLogger("navmenu", opts.Version)
	slog.Info("starting navmenu", "commit", opts.Commit, "date", opts.Date, "config", opts.ConfigPath)

	s, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	h := NewHandler(s, reg)

	serverOpts := []server.Option{
		server.WithRegistry(reg),
		server.WithPrometheusMetrics(),
		server.WithSimpleHealth(),
		server.WithReadiness(h),
		server.WithHandler("/menu.json", h.TreeHandler()),
		server.WithHandler("/", h),
	}
	if opts.Port > 0 {
		serverOpts = append(serverOpts, server.WithPort(opts.Port))
	}
	srv := server.New(append(serverOpts, extra...)...)

	var w *config.Watcher
	if opts.Watch {
		if w, err = config.NewWatcher(opts.ConfigPath, h.SetSite); err != nil {
			return err
		}
		if err := w.Start(ctx); err != nil {
			w.Stop()
			return fmt.Errorf("failed to start config watcher: %w", err)
		}
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Serve(gCtx)
	})

	if w != nil {
		g.Go(func() error {
			<-gCtx.Done()
			w.Stop()
			return nil
		})
	}

	return g.Wait()
}
