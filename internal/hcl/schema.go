package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot is a struct used to decode all top-level blocks of a sheet file.
type fileRoot struct {
	Formulas []*formulaBlock `hcl:"formula,block"`
	Cells    []*cellBlock    `hcl:"cell,block"`
}

// formulaBlock is a named, shareable formula.
type formulaBlock struct {
	Name  string         `hcl:"name,label"`
	Value hcl.Expression `hcl:"value,attr"`
}

// cellBlock binds an expression to a coordinate.
type cellBlock struct {
	Coordinate string         `hcl:"coordinate,label"`
	Value      hcl.Expression `hcl:"value,attr"`
}
