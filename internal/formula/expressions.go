package formula

import (
	"strconv"
	"strings"

	"github.com/vk/cellgrid/internal/coord"
)

// Constant evaluates to a fixed value.
type Constant struct {
	Value int64
}

func (e Constant) evaluate(_ *Formula, _ Resolver) (int64, error) {
	return e.Value, nil
}

func (e Constant) String() string {
	return strconv.FormatInt(e.Value, 10)
}

// Reference evaluates to the value of the node bound at Target.
type Reference struct {
	Target coord.Coordinate
}

// evaluate resolves Target afresh and subscribes self to whichever node is
// bound there right now.
func (e Reference) evaluate(self *Formula, r Resolver) (int64, error) {
	node := r.Get(e.Target)
	node.listeners.Add(self)
	return node.Value(r)
}

func (e Reference) String() string {
	return e.Target.String()
}

// Operator applies a pure function to the values of its operands.
type Operator struct {
	Symbol   string
	Func     func(args []int64) int64
	Operands []*Formula
}

// evaluate computes operands left to right; the first error wins.
func (e Operator) evaluate(_ *Formula, r Resolver) (int64, error) {
	args := make([]int64, len(e.Operands))
	for i, op := range e.Operands {
		v, err := op.Value(r)
		if err != nil {
			return 0, err
		}
		args[i] = v
	}
	return e.Func(args), nil
}

// String renders the operator infix. Nested operators are parenthesized
// unless both are the same associative symbol, so distinct groupings never
// render alike.
func (e Operator) String() string {
	parts := make([]string, len(e.Operands))
	for i, op := range e.Operands {
		if inner, ok := op.expr.(Operator); ok && !(inner.Symbol == e.Symbol && associative(e.Symbol)) {
			parts[i] = "(" + inner.String() + ")"
			continue
		}
		parts[i] = op.String()
	}
	if len(parts) == 1 {
		return e.Symbol + parts[0]
	}
	return strings.Join(parts, e.Symbol)
}

func associative(symbol string) bool {
	return symbol == "+" || symbol == "*"
}

// Conditional evaluates Then when Condition is nonzero and Else otherwise.
type Conditional struct {
	Condition *Formula
	Then      *Formula
	Else      *Formula
}

func (e Conditional) evaluate(_ *Formula, r Resolver) (int64, error) {
	c, err := e.Condition.Value(r)
	if err != nil {
		return 0, err
	}
	if c != 0 {
		return e.Then.Value(r)
	}
	return e.Else.Value(r)
}

func (e Conditional) String() string {
	return "cond(" + e.Condition.String() + ", " + e.Then.String() + ", " + e.Else.String() + ")"
}
