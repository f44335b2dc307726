package formula

import (
	"fmt"

	"github.com/vk/cellgrid/internal/coord"
)

// Operand is anything a builder accepts: a *Formula or an Int literal.
type Operand interface {
	operand()
}

// Int is an integer literal operand. Make turns it into a Constant node.
type Int int64

func (Int) operand()      {}
func (*Formula) operand() {}

// Make normalizes an Operand into a node. Formulas are used as-is and
// literals are wrapped into a new Constant. A nil Operand or a nil *Formula
// yields ErrPrecondition.
func Make(v Operand) (*Formula, error) {
	switch v := v.(type) {
	case *Formula:
		if v == nil {
			return nil, fmt.Errorf("%w: nil formula", ErrPrecondition)
		}
		return v, nil
	case Int:
		return NewConstant(int64(v)), nil
	default:
		return nil, fmt.Errorf("%w: nil operand", ErrPrecondition)
	}
}

// mustMake is Make for builders, where a bad operand is a programming error.
func mustMake(v Operand) *Formula {
	f, err := Make(v)
	if err != nil {
		panic(err)
	}
	return f
}

func mustMakeAll(vs []Operand) []*Formula {
	out := make([]*Formula, len(vs))
	for i, v := range vs {
		out[i] = mustMake(v)
	}
	return out
}

// NewConstant returns a node that always evaluates to v.
func NewConstant(v int64) *Formula {
	return newFormula(Constant{Value: v})
}

// Ref returns a node that evaluates to the value bound at c.
func Ref(c coord.Coordinate) *Formula {
	return newFormula(Reference{Target: c})
}

// NewOperator returns a node applying fn to the values of operands. It panics
// when operands is empty, fn is nil or an operand is malformed.
func NewOperator(symbol string, fn func(args []int64) int64, operands ...Operand) *Formula {
	if len(operands) == 0 {
		panic(fmt.Errorf("%w: operator %q needs at least one operand", ErrPrecondition, symbol))
	}
	if fn == nil {
		panic(fmt.Errorf("%w: operator %q has no function", ErrPrecondition, symbol))
	}
	ops := mustMakeAll(operands)
	return newFormula(Operator{Symbol: symbol, Func: fn, Operands: ops}, ops...)
}

// Sum returns a node adding all operands. Overflow wraps.
func Sum(a, b Operand, more ...Operand) *Formula {
	return NewOperator("+", sum, append([]Operand{a, b}, more...)...)
}

// Product returns a node multiplying all operands. Overflow wraps.
func Product(a, b Operand, more ...Operand) *Formula {
	return NewOperator("*", product, append([]Operand{a, b}, more...)...)
}

// Less returns a node evaluating to 1 when a < b and 0 otherwise.
func Less(a, b Operand) *Formula {
	return NewOperator("<", relation(func(x, y int64) bool { return x < y }), a, b)
}

// LessOrEqual returns a node evaluating to 1 when a <= b and 0 otherwise.
func LessOrEqual(a, b Operand) *Formula {
	return NewOperator("<=", relation(func(x, y int64) bool { return x <= y }), a, b)
}

// Greater returns a node evaluating to 1 when a > b and 0 otherwise.
func Greater(a, b Operand) *Formula {
	return NewOperator(">", relation(func(x, y int64) bool { return x > y }), a, b)
}

// GreaterOrEqual returns a node evaluating to 1 when a >= b and 0 otherwise.
func GreaterOrEqual(a, b Operand) *Formula {
	return NewOperator(">=", relation(func(x, y int64) bool { return x >= y }), a, b)
}

// Cond returns a node evaluating to then when cond is nonzero and to els
// otherwise. All three operands are subscribed, including the branch that is
// not taken.
func Cond(cond, then, els Operand) *Formula {
	c, t, e := mustMake(cond), mustMake(then), mustMake(els)
	return newFormula(Conditional{Condition: c, Then: t, Else: e}, c, t, e)
}

func sum(args []int64) int64 {
	var total int64
	for _, a := range args {
		total += a
	}
	return total
}

func product(args []int64) int64 {
	total := int64(1)
	for _, a := range args {
		total *= a
	}
	return total
}

func relation(pred func(x, y int64) bool) func(args []int64) int64 {
	return func(args []int64) int64 {
		if pred(args[0], args[1]) {
			return 1
		}
		return 0
	}
}
