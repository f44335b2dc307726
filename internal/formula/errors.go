package formula

import "errors"

var (
	// ErrCycle reports a node that depends on itself, directly or transitively,
	// or a node that was tripped by an earlier cycle.
	ErrCycle = errors.New("cycle")

	// ErrPrecondition reports an operand of the wrong shape: a nil formula or a
	// nil Operand.
	ErrPrecondition = errors.New("precondition violation")
)
