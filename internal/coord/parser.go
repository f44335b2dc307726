// internal/coord/parser.go
package coord

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrInvalidCoordinate is returned for any string that is not a well-formed address.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// coordRegex splits an address into its column letters and its row number.
var coordRegex = regexp.MustCompile(`^([A-Z]+)([1-9][0-9]*)$`)

// Parse creates a new Coordinate by parsing its canonical string representation.
func Parse(raw string) (Coordinate, error) {
	matches := coordRegex.FindStringSubmatch(raw)
	if matches == nil {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, raw)
	}

	row, err := strconv.Atoi(matches[2])
	if err != nil {
		// The regex guarantees digits, so only overflow lands here.
		return Coordinate{}, fmt.Errorf("%w: %q: row out of range", ErrInvalidCoordinate, raw)
	}

	return Coordinate{Column: matches[1], Row: row}, nil
}

// MustParse is like Parse but panics on malformed input. Use it for
// literals and for input that was already validated.
func MustParse(raw string) Coordinate {
	c, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return c
}
