// Package formula implements the evaluation engine of the grid: formula
// nodes with lazy evaluation, per-node memoization, invalidation
// propagation and cycle detection.
//
// # Nodes and Expressions
//
// Every node is a *Formula. What a node computes is described by its
// Expression, a closed set of variants:
//
//   - Constant:    a literal int64.
//   - Reference:   the value of whatever node is currently bound at a coordinate.
//   - Operator:    a pure n-ary function over an ordered operand list (Sum,
//     Product and the relational operators, which yield 0 or 1).
//   - Conditional: Then when the condition is nonzero, Else otherwise.
//
// A node may be shared freely. The same *Formula can be bound at several
// coordinates and embedded as an operand of several parents at once; all of
// them observe one cache.
//
// # Evaluation and Invalidation
//
//	Value(r)                          Invalidate(r)
//	  visiting?  -> ErrCycle            visiting?  -> ErrCycle
//	  cached?    -> cache               visiting = true
//	  visiting = true                   cached? clear, notify listeners
//	  compute, store cache              visiting = false
//	  visiting = false
//
// Invalidation never recomputes anything. It only clears caches and forwards
// the signal to listeners, and it stops at nodes that are already dirty. The
// order in which listeners are notified therefore has no observable effect.
//
// Operators and conditionals subscribe to their operands once, at
// construction. A Reference subscribes to the node bound at its target each
// time it is evaluated, so rebinding the target coordinate re-routes the
// dependency edge on the next evaluation. Subscriptions are weak (see package
// listener); only grid bindings and operand lists own nodes.
//
// # Sticky Cycles
//
// When a computation or an invalidation fan-out fails, the guard of every
// node on the failing path stays set. Such a node is tripped: each later
// Value or Invalidate call on it returns ErrCycle, even after the cycle has
// been removed from the grid. Use Tripped to detect this state.
//
// # Thread-Safety
//
// Nodes are not safe for concurrent use. Callers sharing a grid between
// goroutines must serialize every access themselves.
package formula
