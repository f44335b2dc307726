// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It is responsible for sheet file discovery, block decoding and
// the translation of HCL expression syntax into formula nodes.
//
// A sheet is made of two block types:
//
//	formula "base" {
//	  value = A1 + 10
//	}
//
//	cell "A2" {
//	  value = formula.base * 2
//	}
//
// Expressions are never evaluated by HCL. Their syntax tree is walked and
// rebuilt as formula nodes: literals become constants, bare coordinates and
// ref("A1") become references, `formula.<name>` yields the shared node of a
// named formula, and `+ * < <= > >=`, unary minus, `c ? t : e`, cond(),
// sum() and product() become operators and conditionals.
package hcl
