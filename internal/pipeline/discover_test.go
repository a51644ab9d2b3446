package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.jpg")
	writeFile(t, dir, "B.PNG")
	writeFile(t, dir, "d.JPEG")
	writeFile(t, dir, "notes.txt")
	writeFile(t, dir, "noext")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.jpg"), 0o755))
	require.NoError(t, os.Symlink(filepath.Join(dir, "a.jpg"), filepath.Join(dir, "link.jpg")))

	entries, err := Discover(dir)
	require.NoError(t, err)

	// Lexicographic byte order; directories, symlinks, and non-image
	// extensions excluded; extensions lowercased, stems exact.
	require.Equal(t, []Entry{
		{Name: "B.PNG", Stem: "B", Ext: ".png"},
		{Name: "a.jpg", Stem: "a", Ext: ".jpg"},
		{Name: "d.JPEG", Stem: "d", Ext: ".jpeg"},
	}, entries)
}

func TestDiscover_EmptyDirectory(t *testing.T) {
	entries, err := Discover(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDiscover_MissingDirectory(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestSupportedExtensions(t *testing.T) {
	exts := SupportedExtensions()
	assert.Len(t, exts, 9)
	assert.Contains(t, exts, ".jpg")
	assert.Contains(t, exts, ".heic")
	assert.IsIncreasing(t, exts)
}
