package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/cellgrid/internal/config"
	"github.com/vk/cellgrid/internal/coord"
	"github.com/vk/cellgrid/internal/ctxlog"
	"github.com/vk/cellgrid/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL sheet loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file under paths and translates all blocks into
// the model. Named formulas from every file are translated before any cell,
// in load order, so a formula may only use formulas declared before it while
// a cell may use any of them.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	roots := make([]*fileRoot, 0, len(files))
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}
		roots = append(roots, &root)
	}

	model := &config.Model{
		Formulas: make(map[string]*config.FormulaDef),
	}
	tr := newTranslator()

	for _, root := range roots {
		for _, block := range root.Formulas {
			if prev, exists := model.Formulas[block.Name]; exists {
				return nil, duplicateError("formula", block.Name, block.Value.Range(), prev.Range)
			}
			f, diags := tr.translate(block.Value)
			if diags.HasErrors() {
				return nil, fmt.Errorf("failed to translate formula %q: %w", block.Name, diags)
			}
			tr.formulas[block.Name] = f
			model.Formulas[block.Name] = &config.FormulaDef{Name: block.Name, Formula: f, Range: block.Value.Range()}
		}
	}

	seen := make(map[coord.Coordinate]*config.CellDef)
	for _, root := range roots {
		for _, block := range root.Cells {
			c, err := coord.Parse(block.Coordinate)
			if err != nil {
				return nil, fmt.Errorf("cell block at %s: %w", block.Value.Range(), err)
			}
			if prev, exists := seen[c]; exists {
				return nil, duplicateError("cell", c.String(), block.Value.Range(), prev.Range)
			}
			f, diags := tr.translate(block.Value)
			if diags.HasErrors() {
				return nil, fmt.Errorf("failed to translate cell %s: %w", c, diags)
			}
			def := &config.CellDef{Coordinate: c, Formula: f, Range: block.Value.Range()}
			seen[c] = def
			model.Cells = append(model.Cells, def)
		}
	}

	logger.Debug("HCL loading complete.", "files", len(files), "formulas", len(model.Formulas), "cells", len(model.Cells))
	return model, nil
}

func duplicateError(kind, name string, rng, prev hcl.Range) error {
	return hcl.Diagnostics{{
		Severity: hcl.DiagError,
		Summary:  fmt.Sprintf("Duplicate %s %q", kind, name),
		Detail:   fmt.Sprintf("The %s %q was already defined at %s.", kind, name, prev),
		Subject:  rng.Ptr(),
	}}
}
