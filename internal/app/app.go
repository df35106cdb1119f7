// Package app wires the storefront together: configuration, the catalog
// source, the availability monitor, the session, and the terminal UI.
package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/storefront-go/storefront/internal/catalog/embedded"
	"github.com/storefront-go/storefront/internal/catalog/remote"
	"github.com/storefront-go/storefront/internal/domain/catalog"
	"github.com/storefront-go/storefront/internal/session"
	"github.com/storefront-go/storefront/internal/ui"
	"github.com/storefront-go/storefront/pkg/monitor"
)

// Run creates all dependencies and runs the terminal storefront until the
// user quits or the context is cancelled. It is the single wiring point for
// the application.
func Run(ctx context.Context, lg *zap.Logger, cfg *Config) error {
	lg.Info("Initializing",
		zap.String("catalog_url", cfg.CatalogURL),
		zap.Bool("demo", cfg.Demo),
	)
	ctx = zctx.Base(ctx, lg)

	// Catalog source.
	var source catalog.Source
	if cfg.Demo {
		source = embedded.New()
	} else {
		source = remote.New(remote.Config{
			BaseURL:    cfg.CatalogURL,
			Timeout:    cfg.Fetch.Timeout,
			MaxRetries: cfg.Fetch.MaxRetries,
		})
	}

	// Availability monitor driving the UI status line.
	var mon *monitor.Monitor
	if cfg.Monitor.Enabled {
		mon = monitor.New()
		mon.Add("catalog", cfg.Fetch.Timeout, func(ctx context.Context) error {
			_, err := source.Fetch(ctx)
			return err
		})
		mon.Add("goroutines", time.Second, monitor.GoroutineCountCheck(10000))
		mon.Start(ctx, cfg.Monitor.Interval)
		defer mon.Stop()
	}

	// One interactive session owns the cart and the order flow. The manager
	// exists so embedding callers can run several independent carts.
	sessions := session.NewManager()
	sess := sessions.New()
	defer sessions.End(sess.ID())

	program := tea.NewProgram(
		ui.New(ctx, sess, source, mon),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := program.Run(); err != nil {
		return errors.Wrap(err, "run ui")
	}

	lg.Info("Storefront closed")
	return nil
}
