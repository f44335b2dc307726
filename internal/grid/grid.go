package grid

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/vk/cellgrid/internal/coord"
	"github.com/vk/cellgrid/internal/formula"
)

// Grid maps coordinates to formula nodes.
type Grid struct {
	cells   map[coord.Coordinate]*formula.Formula
	logger  *slog.Logger
	metrics *Metrics
}

// Option configures a Grid.
type Option func(*Grid)

// WithLogger sets the logger used for debug traces of writes, implicit
// bindings and cycles.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Grid) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithMetrics makes the grid report to m.
func WithMetrics(m *Metrics) Option {
	return func(g *Grid) {
		g.metrics = m
	}
}

// New creates an empty grid.
func New(opts ...Option) *Grid {
	g := &Grid{
		cells:  make(map[coord.Coordinate]*formula.Formula),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Get returns the node bound at c. An unbound coordinate is bound to
// Constant(0) first and stays bound.
func (g *Grid) Get(c coord.Coordinate) *formula.Formula {
	if f, ok := g.cells[c]; ok {
		return f
	}
	f := formula.NewConstant(0)
	g.cells[c] = f
	g.logger.Debug("Bound unset coordinate to zero.", "coord", c.String())
	g.metrics.bound(true, len(g.cells))
	return f
}

// Set binds v at c. The previous binding, if any, is invalidated first so
// that its dependents drop their caches. If that invalidation fails the
// previous binding stays in place.
func (g *Grid) Set(c coord.Coordinate, v formula.Operand) error {
	if !c.Valid() {
		return fmt.Errorf("write: %w: %w: %q", formula.ErrPrecondition, coord.ErrInvalidCoordinate, c.String())
	}
	f, err := formula.Make(v)
	if err != nil {
		return fmt.Errorf("write %s: %w", c, err)
	}

	if old, ok := g.cells[c]; ok {
		if err := old.Invalidate(g); err != nil {
			g.noteCycle(c, err)
			return fmt.Errorf("write %s: %w", c, err)
		}
	}

	g.cells[c] = f
	g.logger.Debug("Cell bound.", "coord", c.String(), "formula", f.String())
	g.metrics.write()
	g.metrics.bound(false, len(g.cells))
	return nil
}

// Read evaluates the node bound at c.
func (g *Grid) Read(c coord.Coordinate) (int64, error) {
	if !c.Valid() {
		return 0, fmt.Errorf("read: %w: %w: %q", formula.ErrPrecondition, coord.ErrInvalidCoordinate, c.String())
	}
	g.metrics.read()
	v, err := g.Get(c).Value(g)
	if err != nil {
		g.noteCycle(c, err)
		return 0, fmt.Errorf("read %s: %w", c, err)
	}
	return v, nil
}

// Write is Set under the name used by the indexing surface.
func (g *Grid) Write(c coord.Coordinate, v formula.Operand) error {
	return g.Set(c, v)
}

// ReadAt parses raw as a coordinate and reads it.
func (g *Grid) ReadAt(raw string) (int64, error) {
	c, err := coord.Parse(raw)
	if err != nil {
		return 0, err
	}
	return g.Read(c)
}

// WriteAt parses raw as a coordinate and writes v there.
func (g *Grid) WriteAt(raw string, v formula.Operand) error {
	c, err := coord.Parse(raw)
	if err != nil {
		return err
	}
	return g.Set(c, v)
}

// Binding returns the node bound at c without binding anything.
func (g *Grid) Binding(c coord.Coordinate) (*formula.Formula, bool) {
	f, ok := g.cells[c]
	return f, ok
}

// Coordinates returns every bound coordinate in column-then-row order.
func (g *Grid) Coordinates() []coord.Coordinate {
	out := make([]coord.Coordinate, 0, len(g.cells))
	for c := range g.cells {
		out = append(out, c)
	}
	slices.SortFunc(out, coord.Compare)
	return out
}

// Len returns the number of bound coordinates.
func (g *Grid) Len() int {
	return len(g.cells)
}

func (g *Grid) noteCycle(c coord.Coordinate, err error) {
	if errors.Is(err, formula.ErrCycle) {
		g.logger.Debug("Cycle detected.", "coord", c.String())
		g.metrics.cycle()
	}
}
