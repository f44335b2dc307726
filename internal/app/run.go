package app

import (
	"context"
	"fmt"

	"github.com/vk/cellgrid/internal/ctxlog"
	"github.com/vk/cellgrid/internal/watch"
	"golang.org/x/sync/errgroup"
)

// Run loads the sheet and reports its cells. With watching or the HTTP
// server enabled it then keeps running until ctx is canceled.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	// The watcher starts before the first load so no edit is missed.
	var w *watch.Watcher
	if a.config.Watch {
		var err error
		w, err = watch.New([]string{a.config.SheetPath}, ".hcl", a.config.Debounce)
		if err != nil {
			return fmt.Errorf("failed to start watcher: %w", err)
		}
		defer w.Close()
	}

	if err := a.Reload(ctx); err != nil {
		return err
	}
	if err := a.Report(ctx); err != nil {
		return err
	}

	if w == nil && a.config.HTTPPort <= 0 {
		a.logger.Debug("App.Run method finished.")
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	if a.config.HTTPPort > 0 {
		g.Go(func() error { return a.serve(gctx) })
	}
	if w != nil {
		g.Go(func() error { return w.Run(gctx, a.onChange) })
	}

	err := g.Wait()
	a.logger.Debug("App.Run method finished.")
	return err
}

// onChange reloads after the sheet files changed. A broken sheet is logged
// and the previous grid keeps serving.
func (a *App) onChange(ctx context.Context, paths []string) {
	ctx = ctxlog.With(ctx, "trigger", "watch")
	logger := ctxlog.FromContext(ctx)
	if err := a.Reload(ctx); err != nil {
		logger.Error("Reload failed, keeping previous sheet.", "error", err, "changed", paths)
		return
	}
	if err := a.Report(ctx); err != nil {
		logger.Error("Report failed.", "error", err)
	}
}
