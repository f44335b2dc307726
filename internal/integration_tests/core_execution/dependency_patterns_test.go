package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/cellgrid/internal/testutil"
)

func TestCoreExecution_DependencyPatterns(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		sheet string
		want  map[string]string
	}{
		{
			name: "chain",
			sheet: `
				cell "A1" { value = 2 }
				cell "A2" { value = A1 + 1 }
				cell "A3" { value = A2 + 1 }
			`,
			want: map[string]string{"A1": "2", "A2": "3", "A3": "4"},
		},
		{
			name: "diamond",
			sheet: `
				cell "A1" { value = 5 }
				cell "B1" { value = A1 * 2 }
				cell "C1" { value = A1 + 1 }
				cell "D1" { value = B1 + C1 }
			`,
			want: map[string]string{"A1": "5", "B1": "10", "C1": "6", "D1": "16"},
		},
		{
			name: "fan in over unbound cells",
			sheet: `
				cell "A1" { value = sum(B1, B2, B3, 7) }
			`,
			want: map[string]string{"A1": "7"},
		},
		{
			name: "declaration order is irrelevant",
			sheet: `
				cell "A3" { value = A2 * A2 }
				cell "A2" { value = A1 * A1 }
				cell "A1" { value = 8 }
			`,
			want: map[string]string{"A1": "8", "A2": "64", "A3": "4096"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Act ---
			result := testutil.RunIntegrationTest(t, map[string]string{"main.hcl": tc.sheet})

			// --- Assert ---
			require.NoError(t, result.Err)
			require.Equal(t, tc.want, testutil.Cells(t, result))
		})
	}
}
