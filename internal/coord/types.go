// internal/coord/types.go
package coord

import (
	"cmp"
	"strconv"
)

// Coordinate is the structured representation of a grid cell address.
// It is a comparable value and is safe to use as a map key.
type Coordinate struct {
	Column string
	Row    int
}

// String serializes the Coordinate into its canonical form, e.g. `A1`.
func (c Coordinate) String() string {
	return c.Column + strconv.Itoa(c.Row)
}

// IsZero reports whether c is the zero Coordinate, which never comes out of Parse.
func (c Coordinate) IsZero() bool {
	return c.Column == "" && c.Row == 0
}

// Valid reports whether c is an address Parse could have produced: one or
// more uppercase column letters and a positive row.
func (c Coordinate) Valid() bool {
	if c.Column == "" || c.Row < 1 {
		return false
	}
	for i := 0; i < len(c.Column); i++ {
		if c.Column[i] < 'A' || c.Column[i] > 'Z' {
			return false
		}
	}
	return true
}

// Compare orders coordinates by column (shorter labels first, then
// lexically) and then by row, so that `B1 < Z9 < AA1`.
func Compare(a, b Coordinate) int {
	if c := cmp.Compare(len(a.Column), len(b.Column)); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Column, b.Column); c != 0 {
		return c
	}
	return cmp.Compare(a.Row, b.Row)
}
