package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/cellgrid/internal/testutil"
)

func TestHclFeatures_Conditionals(t *testing.T) {
	t.Parallel()
	// --- Arrange ---
	files := map[string]string{
		"main.hcl": `
			cell "A1" { value = 10 }
			cell "B1" { value = A1 > 5 ? 1 : 0 }
			cell "B2" { value = cond(A1 <= 5, 1, 0) }
			cell "B3" { value = ref("A1") >= 10 ? -A1 : A1 }
			cell "B4" { value = true ? product(2, 3, 7) : 0 }
			cell "B5" { value = A1 < 0 ? B5 : 9 }
		`,
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files)

	// --- Assert ---
	require.NoError(t, result.Err)
	require.Equal(t, map[string]string{
		"A1": "10",
		"B1": "1",
		"B2": "0",
		"B3": "-10",
		"B4": "42",
		"B5": "9",
	}, testutil.Cells(t, result))
}
