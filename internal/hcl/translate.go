package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/cellgrid/internal/coord"
	"github.com/vk/cellgrid/internal/formula"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// formulaRoot is the traversal root that names a shared formula.
const formulaRoot = "formula"

// binaryOps maps the supported HCL operators onto formula builders.
var binaryOps = map[*hclsyntax.Operation]func(a, b formula.Operand) *formula.Formula{
	hclsyntax.OpAdd:                func(a, b formula.Operand) *formula.Formula { return formula.Sum(a, b) },
	hclsyntax.OpMultiply:           func(a, b formula.Operand) *formula.Formula { return formula.Product(a, b) },
	hclsyntax.OpLessThan:           formula.Less,
	hclsyntax.OpLessThanOrEqual:    formula.LessOrEqual,
	hclsyntax.OpGreaterThan:        formula.Greater,
	hclsyntax.OpGreaterThanOrEqual: formula.GreaterOrEqual,
}

// translator turns HCL syntax trees into formula nodes. Named formulas become
// visible to later expressions once they are declared.
type translator struct {
	formulas map[string]*formula.Formula
}

func newTranslator() *translator {
	return &translator{formulas: make(map[string]*formula.Formula)}
}

// translate converts any HCL expression. Only native syntax is supported.
func (t *translator) translate(expr hcl.Expression) (*formula.Formula, hcl.Diagnostics) {
	syntaxExpr, ok := expr.(hclsyntax.Expression)
	if !ok {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Unsupported syntax",
			Detail:   "Cell values must be written in native HCL syntax.",
			Subject:  expr.Range().Ptr(),
		}}
	}
	return t.node(syntaxExpr)
}

// node recursively walks the AST.
func (t *translator) node(expr hclsyntax.Expression) (*formula.Formula, hcl.Diagnostics) {
	switch e := expr.(type) {
	case *hclsyntax.LiteralValueExpr:
		v, err := literalInt(e.Val)
		if err != nil {
			return nil, diagnostic("Invalid number", err.Error(), e.Range())
		}
		return formula.NewConstant(v), nil

	case *hclsyntax.ScopeTraversalExpr:
		return t.traversal(e.Traversal, e.Range())

	case *hclsyntax.ParenthesesExpr:
		return t.node(e.Expression)

	case *hclsyntax.BinaryOpExpr:
		build, ok := binaryOps[e.Op]
		if !ok {
			return nil, diagnostic("Unsupported operator", "Only + * < <= > >= are supported between cells.", e.Range())
		}
		lhs, diags := t.node(e.LHS)
		if diags.HasErrors() {
			return nil, diags
		}
		rhs, diags := t.node(e.RHS)
		if diags.HasErrors() {
			return nil, diags
		}
		return build(lhs, rhs), nil

	case *hclsyntax.UnaryOpExpr:
		if e.Op != hclsyntax.OpNegate {
			return nil, diagnostic("Unsupported operator", "Only unary minus is supported.", e.Range())
		}
		val, diags := t.node(e.Val)
		if diags.HasErrors() {
			return nil, diags
		}
		if c, ok := val.Expr().(formula.Constant); ok {
			return formula.NewConstant(-c.Value), nil
		}
		return formula.Product(formula.Int(-1), val), nil

	case *hclsyntax.ConditionalExpr:
		return t.conditional(e.Condition, e.TrueResult, e.FalseResult)

	case *hclsyntax.FunctionCallExpr:
		return t.call(e)

	default:
		return nil, diagnostic("Unsupported expression", fmt.Sprintf("Expressions of type %T cannot be used in a cell.", expr), expr.Range())
	}
}

// traversal resolves `A1` into a reference and `formula.name` into a shared node.
func (t *translator) traversal(trav hcl.Traversal, rng hcl.Range) (*formula.Formula, hcl.Diagnostics) {
	root := trav.RootName()

	if root == formulaRoot {
		if len(trav) != 2 {
			return nil, diagnostic("Invalid formula reference", "Named formulas are referenced as formula.<name>.", rng)
		}
		attr, ok := trav[1].(hcl.TraverseAttr)
		if !ok {
			return nil, diagnostic("Invalid formula reference", "Named formulas are referenced as formula.<name>.", rng)
		}
		f, ok := t.formulas[attr.Name]
		if !ok {
			return nil, diagnostic("Unknown formula", fmt.Sprintf("No formula named %q has been declared before this point.", attr.Name), rng)
		}
		return f, nil
	}

	if len(trav) != 1 {
		return nil, diagnostic("Invalid reference", fmt.Sprintf("%q does not name a cell.", root), rng)
	}
	c, err := coord.Parse(root)
	if err != nil {
		return nil, diagnostic("Invalid reference", err.Error(), rng)
	}
	return formula.Ref(c), nil
}

func (t *translator) conditional(cond, then, els hclsyntax.Expression) (*formula.Formula, hcl.Diagnostics) {
	parts := make([]*formula.Formula, 0, 3)
	for _, part := range []hclsyntax.Expression{cond, then, els} {
		f, diags := t.node(part)
		if diags.HasErrors() {
			return nil, diags
		}
		parts = append(parts, f)
	}
	return formula.Cond(parts[0], parts[1], parts[2]), nil
}

// call handles the function-style forms: ref, cond, sum and product.
func (t *translator) call(e *hclsyntax.FunctionCallExpr) (*formula.Formula, hcl.Diagnostics) {
	if e.ExpandFinal {
		return nil, diagnostic("Unsupported expansion", "Argument expansion is not supported.", e.Range())
	}

	switch e.Name {
	case "ref":
		if len(e.Args) != 1 {
			return nil, diagnostic("Invalid ref call", "ref takes exactly one coordinate.", e.Range())
		}
		return t.refArg(e.Args[0])

	case "cond":
		if len(e.Args) != 3 {
			return nil, diagnostic("Invalid cond call", "cond takes a condition, a then value and an else value.", e.Range())
		}
		return t.conditional(e.Args[0], e.Args[1], e.Args[2])

	case "sum", "product":
		if len(e.Args) < 2 {
			return nil, diagnostic("Invalid "+e.Name+" call", e.Name+" takes at least two arguments.", e.Range())
		}
		ops := make([]formula.Operand, 0, len(e.Args))
		for _, arg := range e.Args {
			f, diags := t.node(arg)
			if diags.HasErrors() {
				return nil, diags
			}
			ops = append(ops, f)
		}
		if e.Name == "sum" {
			return formula.Sum(ops[0], ops[1], ops[2:]...), nil
		}
		return formula.Product(ops[0], ops[1], ops[2:]...), nil

	default:
		return nil, diagnostic("Unknown function", fmt.Sprintf("There is no function named %q.", e.Name), e.NameRange)
	}
}

// refArg accepts either a quoted coordinate, ref("A1"), or a bare one, ref(A1).
func (t *translator) refArg(arg hclsyntax.Expression) (*formula.Formula, hcl.Diagnostics) {
	raw := hcl.ExprAsKeyword(arg)
	if raw == "" {
		val, diags := arg.Value(nil)
		if diags.HasErrors() {
			return nil, diags
		}
		if !val.IsKnown() || val.IsNull() || val.Type() != cty.String {
			return nil, diagnostic("Invalid ref call", "ref expects a coordinate such as \"A1\".", arg.Range())
		}
		raw = val.AsString()
	}

	c, err := coord.Parse(raw)
	if err != nil {
		return nil, diagnostic("Invalid reference", err.Error(), arg.Range())
	}
	return formula.Ref(c), nil
}

// literalInt converts an HCL literal into an int64. Booleans map to 1 and 0.
func literalInt(val cty.Value) (int64, error) {
	if val.IsNull() {
		return 0, fmt.Errorf("null is not a number")
	}
	if val.Type() == cty.Bool {
		if val.True() {
			return 1, nil
		}
		return 0, nil
	}

	num, err := convert.Convert(val, cty.Number)
	if err != nil {
		return 0, err
	}
	var out int64
	if err := gocty.FromCtyValue(num, &out); err != nil {
		return 0, err
	}
	return out, nil
}

func diagnostic(summary, detail string, rng hcl.Range) hcl.Diagnostics {
	return hcl.Diagnostics{{
		Severity: hcl.DiagError,
		Summary:  summary,
		Detail:   detail,
		Subject:  rng.Ptr(),
	}}
}
