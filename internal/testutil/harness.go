package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/cellgrid/internal/app"
	"github.com/vk/cellgrid/internal/hcl"
)

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
	App       *app.App
	SheetDir  string
}

// RunIntegrationTest provides a standardized harness for running integration tests
// using a default background context.
func RunIntegrationTest(t *testing.T, files map[string]string, mutate ...func(*app.Config)) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, mutate...)
}

// RunIntegrationTestWithContext writes files under a temporary sheet
// directory, runs the app over it once and collects its output. Relative
// names such as "nested/b.hcl" create subdirectories.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, mutate ...func(*app.Config)) *HarnessResult {
	t.Helper()

	sheetDir := filepath.Join(t.TempDir(), "sheet")
	require.NoError(t, os.Mkdir(sheetDir, 0755))
	for name, content := range files {
		filePath := filepath.Join(sheetDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	cfg := &app.Config{
		SheetPath: sheetDir,
		LogFormat: "text",
	}
	for _, m := range mutate {
		m(cfg)
	}

	testApp, out, logs := app.SetupAppTest(t, cfg, hcl.NewLoader())
	runErr := testApp.Run(ctx)

	return &HarnessResult{
		Output:    out.String(),
		LogOutput: logs.String(),
		Err:       runErr,
		App:       testApp,
		SheetDir:  sheetDir,
	}
}
