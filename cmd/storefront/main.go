// Command storefront runs the interactive terminal storefront: it fetches
// the product catalog once, then serves a browse / cart / checkout loop
// backed entirely by in-memory state.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/storefront-go/storefront/internal/app"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := app.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "storefront:", err)
		os.Exit(1)
	}

	lg, err := newLogger(cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "storefront:", err)
		os.Exit(1)
	}
	defer func() { _ = lg.Sync() }()

	if err := app.Run(ctx, lg, cfg); err != nil {
		lg.Error("Storefront failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "storefront:", err)
		os.Exit(1)
	}
}

// newLogger builds a production zap logger writing to the given file; the
// terminal itself belongs to the UI.
func newLogger(path string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}
