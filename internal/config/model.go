package config

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/vk/cellgrid/internal/coord"
	"github.com/vk/cellgrid/internal/formula"
)

// Model is the unified, format-agnostic representation of a sheet.
type Model struct {
	// Cells are ordered as declared across the loaded files.
	Cells []*CellDef
	// Formulas holds the named, shareable nodes by name.
	Formulas map[string]*FormulaDef
}

// CellDef binds a formula node to a coordinate.
type CellDef struct {
	Coordinate coord.Coordinate
	Formula    *formula.Formula
	Range      hcl.Range
}

// Signature identifies what the cell computes. Two definitions with equal
// signatures evaluate identically on the same grid.
func (d *CellDef) Signature() string {
	return d.Formula.String()
}

// FormulaDef is a named formula node. Every cell that mentions the name is
// bound to, or embeds, this very node.
type FormulaDef struct {
	Name    string
	Formula *formula.Formula
	Range   hcl.Range
}

// Cell returns the definition for c, if the model has one.
func (m *Model) Cell(c coord.Coordinate) (*CellDef, bool) {
	for _, def := range m.Cells {
		if def.Coordinate == c {
			return def, true
		}
	}
	return nil, false
}
