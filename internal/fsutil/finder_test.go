package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("# test\n"), 0o600))
}

func TestFindFilesByExtension(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.hcl"))
	writeFile(t, filepath.Join(dir, "nested", "a.hcl"))
	writeFile(t, filepath.Join(dir, "notes.txt"))
	writeFile(t, filepath.Join(dir, "x.hcl.bak"))

	// --- Act ---
	files, err := FindFilesByExtension(dir, ".hcl")

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "b.hcl"),
		filepath.Join(dir, "nested", "a.hcl"),
	}, files)
}

func TestFindFilesByExtension_PanicsOnEmptyExtension(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { _, _ = FindFilesByExtension(t.TempDir(), "") })
}

func TestCollectFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	one := filepath.Join(dir, "one.hcl")
	two := filepath.Join(dir, "sub", "two.hcl")
	writeFile(t, one)
	writeFile(t, two)

	t.Run("directory and duplicate file", func(t *testing.T) {
		files, err := CollectFiles([]string{dir, one}, ".hcl")
		require.NoError(t, err)
		assert.Equal(t, []string{one, two}, files)
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := CollectFiles([]string{filepath.Join(dir, "missing.hcl")}, ".hcl")
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("wrong extension", func(t *testing.T) {
		txt := filepath.Join(dir, "sheet.txt")
		writeFile(t, txt)
		_, err := CollectFiles([]string{txt}, ".hcl")
		assert.ErrorContains(t, err, "does not have the .hcl extension")
	})
}
