// internal/coord/doc.go

/*
Package coord provides a structured, comparable representation for grid
cell addresses, based on the canonical chess-style format `COLUMNrow`.

The format is one or more uppercase ASCII letters followed by a positive
row number without leading zeros, e.g., `A1`, `CD31`, `ZZ1024`.

This package owns the address syntax. Every other package consumes a
Coordinate as an opaque, already-validated map key.
*/
package coord
