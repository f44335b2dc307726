package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/cellgrid/internal/app"
	"github.com/vk/cellgrid/internal/testutil"
)

// TestCLIBehavior_SelectedCells_PrintsInRequestedOrder checks that an explicit
// cell list is honored, including cells the sheet never declares.
func TestCLIBehavior_SelectedCells_PrintsInRequestedOrder(t *testing.T) {
	t.Parallel()
	// --- Arrange ---
	files := map[string]string{
		"main.hcl": `
			cell "A1" { value = 3 }
			cell "A2" { value = A1 * 3 }
		`,
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, func(c *app.Config) {
		c.Cells = []string{"A2", "Z9", "A1"}
	})

	// --- Assert ---
	require.NoError(t, result.Err)
	require.Equal(t, "A2\t9\nZ9\t0\nA1\t3\n", result.Output)
}

// TestCLIBehavior_DefaultReport_IsSortedByCoordinate checks the default
// ordering: shorter columns first, then column, then row.
func TestCLIBehavior_DefaultReport_IsSortedByCoordinate(t *testing.T) {
	t.Parallel()
	// --- Arrange ---
	files := map[string]string{
		"main.hcl": `
			cell "AA1" { value = 4 }
			cell "B10" { value = 3 }
			cell "B2"  { value = 2 }
			cell "A1"  { value = 1 }
		`,
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files)

	// --- Assert ---
	require.NoError(t, result.Err)
	require.Equal(t, "A1\t1\nB2\t2\nB10\t3\nAA1\t4\n", result.Output)
}
