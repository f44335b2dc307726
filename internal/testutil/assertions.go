package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Cells parses the report lines of a run into a map from coordinate to the
// printed value or error text.
func Cells(t *testing.T, result *HarnessResult) map[string]string {
	t.Helper()

	cells := make(map[string]string)
	for _, line := range strings.Split(strings.TrimSpace(result.Output), "\n") {
		if line == "" {
			continue
		}
		coordinate, value, ok := strings.Cut(line, "\t")
		require.True(t, ok, "malformed report line %q", line)
		cells[coordinate] = value
	}
	return cells
}

// AssertCell checks that the run reported want for the coordinate.
func AssertCell(t *testing.T, result *HarnessResult, coordinate, want string) {
	t.Helper()

	got, ok := Cells(t, result)[coordinate]
	require.True(t, ok, "cell %s was not reported", coordinate)
	require.Equal(t, want, got, "unexpected value for cell %s", coordinate)
}

// AssertCellError checks that the run reported an error for the coordinate
// whose text contains substr.
func AssertCellError(t *testing.T, result *HarnessResult, coordinate, substr string) {
	t.Helper()

	got, ok := Cells(t, result)[coordinate]
	require.True(t, ok, "cell %s was not reported", coordinate)
	require.True(t, strings.HasPrefix(got, "error: "), "cell %s should have failed, got %q", coordinate, got)
	require.Contains(t, got, substr)
}
