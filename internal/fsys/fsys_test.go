package fsys

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/d", 0o755))
	require.NoError(t, afero.WriteFile(fs, "/d/a.txt", []byte("x"), 0o644))

	assert.True(t, IsDir(fs, "/d"))
	assert.False(t, IsDir(fs, "/d/a.txt"))
	assert.False(t, IsDir(fs, "/missing"))
}

func TestIsDirFollowsSymlinks(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Mkdir(target, 0o755))
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	assert.True(t, IsDir(New(), link))
}

func TestNewIsReadOnly(t *testing.T) {
	dir := t.TempDir()

	err := afero.WriteFile(New(), filepath.Join(dir, "x.txt"), []byte("x"), 0o644)
	assert.Error(t, err)
}
