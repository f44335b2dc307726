package formula

import (
	"github.com/vk/cellgrid/internal/coord"
	"github.com/vk/cellgrid/internal/listener"
)

// Resolver looks up the node currently bound at a coordinate. Implementations
// must never return nil; unbound coordinates are bound to Constant(0) on first
// lookup.
type Resolver interface {
	Get(c coord.Coordinate) *Formula
}

// Expression is the variant part of a Formula. The set of implementations is
// closed: Constant, Reference, Operator and Conditional.
type Expression interface {
	evaluate(self *Formula, r Resolver) (int64, error)
	String() string
}

// Formula is a node of the dependency graph.
type Formula struct {
	expr Expression

	cache    int64
	cached   bool
	visiting bool

	listeners listener.Set[Formula, *Formula, Resolver]
}

// newFormula wraps expr into a node and subscribes the node to its static
// operands.
func newFormula(expr Expression, operands ...*Formula) *Formula {
	f := &Formula{expr: expr}
	for _, op := range operands {
		op.listeners.Add(f)
	}
	return f
}

// Expr returns the variant describing what f computes.
func (f *Formula) Expr() Expression {
	return f.expr
}

// Value returns the memoized value of f, computing it first if needed.
func (f *Formula) Value(r Resolver) (int64, error) {
	if f.visiting {
		return 0, ErrCycle
	}
	if f.cached {
		return f.cache, nil
	}

	f.visiting = true
	v, err := f.expr.evaluate(f, r)
	if err != nil {
		// The guard stays set: f is tripped for good.
		return 0, err
	}
	f.cache, f.cached = v, true
	f.visiting = false
	return v, nil
}

// Invalidate clears the cache of f and forwards the invalidation to every
// listener. It does nothing beyond the guard check when f is already dirty.
func (f *Formula) Invalidate(r Resolver) error {
	if f.visiting {
		return ErrCycle
	}

	f.visiting = true
	if f.cached {
		f.cached = false
		f.cache = 0
		if err := f.listeners.Notify(r); err != nil {
			return err
		}
	}
	f.visiting = false
	return nil
}

// OnEvent implements listener.Listener. An event from an upstream node means
// the value of f may have changed.
func (f *Formula) OnEvent(r Resolver) error {
	return f.Invalidate(r)
}

// Cached returns the memoized value and whether one is present.
func (f *Formula) Cached() (int64, bool) {
	return f.cache, f.cached
}

// Tripped reports whether f is stuck inside a failed traversal.
func (f *Formula) Tripped() bool {
	return f.visiting
}

// Listeners returns the number of live nodes subscribed to f.
func (f *Formula) Listeners() int {
	return f.listeners.Len()
}

func (f *Formula) String() string {
	return f.expr.String()
}
