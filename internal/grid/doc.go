// Package grid binds formula nodes to coordinates. Reads evaluate lazily
// through the bound node; writes invalidate the old binding before installing
// the new one. Reading an unbound coordinate binds it to Constant(0), so that
// references always have a concrete node to subscribe to.
//
// A Grid is not safe for concurrent use.
package grid
