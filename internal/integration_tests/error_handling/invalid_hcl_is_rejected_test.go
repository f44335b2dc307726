package integration_tests

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/cellgrid/internal/testutil"
)

// Test for: invalid hcl is rejected
func TestErrorHandling_InvalidHCL_IsRejected(t *testing.T) {
	t.Parallel()
	// --- Arrange ---
	// Define an HCL string with a clear syntax error (a missing closing brace).
	invalidHCL := `
		cell "A1" {
			value = 1
		// Missing closing brace here
	`

	// --- Act ---
	result := testutil.RunIntegrationTest(t, map[string]string{"main.hcl": invalidHCL})

	// --- Assert ---
	require.Error(t, result.Err)
	require.Empty(t, result.Output, "nothing may be reported for a sheet that failed to load")

	errMsg := result.Err.Error()
	if !strings.Contains(errMsg, "failed to parse") && !strings.Contains(errMsg, "failed to decode") {
		t.Errorf("expected error message to indicate an HCL parsing failure, but got: %s", errMsg)
	}
}

func TestErrorHandling_UnsupportedConstructs(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		sheet   string
		wantErr string
	}{
		{name: "string literal", sheet: `cell "A1" { value = "1" }`, wantErr: "Unsupported expression"},
		{name: "fraction", sheet: `cell "A1" { value = 1.5 }`, wantErr: "Invalid number"},
		{name: "division", sheet: `cell "A1" { value = 4 / 2 }`, wantErr: "Unsupported operator"},
		{name: "unknown function", sheet: `cell "A1" { value = max(1, 2) }`, wantErr: "Unknown function"},
		{name: "unknown formula", sheet: `cell "A1" { value = formula.missing }`, wantErr: "Unknown formula"},
		{name: "lowercase coordinate", sheet: `cell "a1" { value = 1 }`, wantErr: "invalid coordinate"},
		{name: "duplicate cell", sheet: "cell \"A1\" { value = 1 }\ncell \"A1\" { value = 2 }", wantErr: "Duplicate cell"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			result := testutil.RunIntegrationTest(t, map[string]string{"main.hcl": tc.sheet})

			require.Error(t, result.Err)
			require.Contains(t, result.Err.Error(), tc.wantErr)
		})
	}
}
