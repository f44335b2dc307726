package integration_tests

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/cellgrid/internal/testutil"
)

// TestCoreExecution_Reload_PropagatesToDependents rewrites one cell of a
// loaded sheet and checks that every dependent sees the new value.
func TestCoreExecution_Reload_PropagatesToDependents(t *testing.T) {
	t.Parallel()
	// --- Arrange ---
	files := map[string]string{
		"inputs.hcl": `cell "A1" { value = 1 }`,
		"derived.hcl": `
			cell "B1" { value = A1 * 10 }
			cell "C1" { value = B1 + A1 }
		`,
	}
	result := testutil.RunIntegrationTest(t, files)
	require.NoError(t, result.Err)
	testutil.AssertCell(t, result, "C1", "11")

	// --- Act ---
	inputs := filepath.Join(result.SheetDir, "inputs.hcl")
	require.NoError(t, os.WriteFile(inputs, []byte(`cell "A1" { value = 2 }`), 0644))
	require.NoError(t, result.App.Reload(context.Background()))

	// --- Assert ---
	got := map[string]int64{}
	for _, r := range result.App.Evaluate() {
		require.NoError(t, r.Err)
		got[r.Coordinate.String()] = r.Value
	}
	require.Equal(t, map[string]int64{"A1": 2, "B1": 20, "C1": 22}, got)
}
