package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/cellgrid/internal/testutil"
)

// TestErrorHandling_Cycle_IsReportedPerCell checks that a cycle fails only
// the cells on or behind it, and does not abort the run.
func TestErrorHandling_Cycle_IsReportedPerCell(t *testing.T) {
	t.Parallel()
	// --- Arrange ---
	files := map[string]string{
		"main.hcl": `
			cell "A1" { value = B1 + 1 }
			cell "B1" { value = A1 + 1 }
			cell "C1" { value = A1 }
			cell "D1" { value = 42 }
		`,
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files)

	// --- Assert ---
	require.NoError(t, result.Err)
	testutil.AssertCellError(t, result, "A1", "cycle")
	testutil.AssertCellError(t, result, "B1", "cycle")
	testutil.AssertCellError(t, result, "C1", "cycle")
	testutil.AssertCell(t, result, "D1", "42")
}
