package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/cellgrid/internal/config"
	"github.com/vk/cellgrid/internal/coord"
	"github.com/vk/cellgrid/internal/ctxlog"
	"github.com/vk/cellgrid/internal/formula"
)

// Reload reads the sheet again and brings the grid in line with it. Only
// cells whose formula changed are rebound, so unchanged cells keep their
// cached values unless something they depend on was rebound. Cells that
// disappeared from the sheet are reset to zero.
//
// A grid holding a node tripped by a cycle is replaced by a fresh one,
// since a tripped node never recovers. On a load error the current grid is
// left untouched.
func (a *App) Reload(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading sheet...", "path", a.config.SheetPath)

	model, err := a.loader.Load(ctx, a.config.SheetPath)
	if err != nil {
		return fmt.Errorf("failed to load sheet: %w", err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.tripped() {
		logger.Warn("Grid holds a cycle, rebuilding.")
		a.reset()
	}

	changed, err := a.apply(model)
	if errors.Is(err, formula.ErrCycle) {
		logger.Warn("Rebinding hit a cycle, rebuilding grid.", "error", err)
		a.reset()
		changed, err = a.apply(model)
	}
	if err != nil {
		return fmt.Errorf("failed to apply sheet: %w", err)
	}

	a.model = model
	logger.Info("Sheet loaded.", "cells", len(model.Cells), "formulas", len(model.Formulas), "rebound", changed)
	return nil
}

// apply rebinds changed cells and returns how many bindings it touched.
func (a *App) apply(model *config.Model) (int, error) {
	seen := make(map[coord.Coordinate]struct{}, len(model.Cells))
	changed := 0

	for _, def := range model.Cells {
		seen[def.Coordinate] = struct{}{}
		sig := def.Signature()
		if prev, ok := a.applied[def.Coordinate]; ok && prev == sig {
			continue
		}
		if err := a.grid.Set(def.Coordinate, def.Formula); err != nil {
			return changed, err
		}
		a.applied[def.Coordinate] = sig
		changed++
	}

	for c := range a.applied {
		if _, ok := seen[c]; ok {
			continue
		}
		if err := a.grid.Set(c, formula.Int(0)); err != nil {
			return changed, err
		}
		delete(a.applied, c)
		changed++
	}
	return changed, nil
}

func (a *App) tripped() bool {
	for _, c := range a.grid.Coordinates() {
		if f, ok := a.grid.Binding(c); ok && f.Tripped() {
			return true
		}
	}
	return false
}

func (a *App) reset() {
	a.grid = a.newGrid()
	clear(a.applied)
}
