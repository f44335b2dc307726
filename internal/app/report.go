package app

import (
	"context"
	"fmt"
	"slices"

	"github.com/vk/cellgrid/internal/coord"
	"github.com/vk/cellgrid/internal/ctxlog"
)

// Result is the outcome of reading one cell.
type Result struct {
	Coordinate coord.Coordinate
	Value      int64
	Err        error
}

// Evaluate reads the reported cells: the configured list, or every cell the
// sheet declares, sorted by coordinate.
func (a *App) Evaluate() []Result {
	a.mu.Lock()
	defer a.mu.Unlock()

	cells := a.report
	if len(cells) == 0 && a.model != nil {
		cells = make([]coord.Coordinate, 0, len(a.model.Cells))
		for _, def := range a.model.Cells {
			cells = append(cells, def.Coordinate)
		}
		slices.SortFunc(cells, coord.Compare)
	}

	results := make([]Result, 0, len(cells))
	for _, c := range cells {
		v, err := a.grid.Read(c)
		results = append(results, Result{Coordinate: c, Value: v, Err: err})
	}
	return results
}

// Report writes one line per reported cell to the output writer.
func (a *App) Report(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	results := a.Evaluate()

	failed := 0
	for _, r := range results {
		var err error
		if r.Err != nil {
			failed++
			_, err = fmt.Fprintf(a.outW, "%s\terror: %v\n", r.Coordinate, r.Err)
		} else {
			_, err = fmt.Fprintf(a.outW, "%s\t%d\n", r.Coordinate, r.Value)
		}
		if err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	logger.Debug("Report written.", "cells", len(results), "failed", failed)
	return nil
}
