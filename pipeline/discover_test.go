package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte{}, 0644))
}

func TestResolveFolder(t *testing.T) {

	dir := t.TempDir()

	for _, name := range []string{"a.png", "b.png", "c.jpg", "d.PNG", "notes.txt"} {
		touch(t, filepath.Join(dir, name))
	}

	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0755))
	touch(t, filepath.Join(dir, "nested", "e.png"))

	files, folder, err := Resolve(dir, ".png")
	require.NoError(t, err)

	assert.True(t, folder)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "a.png"),
		filepath.Join(dir, "b.png"),
	}, files)

	files, _, err = Resolve(dir, ".jpg")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "c.jpg")}, files)
}

func TestResolveFile(t *testing.T) {

	path := filepath.Join(t.TempDir(), "img.jpg")
	touch(t, path)

	// the suffix only filters folders
	files, folder, err := Resolve(path, ".png")
	require.NoError(t, err)

	assert.False(t, folder)
	assert.Equal(t, []string{path}, files)
}

func TestResolveMissing(t *testing.T) {

	missing := filepath.Join(t.TempDir(), "missing.png")

	_, _, err := Resolve(missing, ".png")
	assert.ErrorIs(t, err, ErrInputNotFound)
	assert.Contains(t, err.Error(), missing)
}
