package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.yaml", "a.yaml", "c.yml", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.yaml"), 0755))

	files, err := ListFiles(dir, ExtensionFilter(".yaml"))
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.yaml"), filepath.Join(dir, "b.yaml")}, files)

	all, err := ListFiles(dir, nil)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestListFiles_MissingDirectory(t *testing.T) {
	files, err := ListFiles(filepath.Join(t.TempDir(), "missing"), ExtensionFilter(".go"))
	assert.NoError(t, err)
	assert.Empty(t, files)
}

func TestListFiles_NotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file.go")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	_, err := ListFiles(file, nil)
	assert.Error(t, err)
}

func TestBaseNameWithoutExt(t *testing.T) {
	assert.Equal(t, "Blog", BaseNameWithoutExt("/src/controller/Blog.go"))
	assert.Equal(t, "blog.admin", BaseNameWithoutExt("blog.admin.go"))
	assert.Equal(t, "Makefile", BaseNameWithoutExt("Makefile"))
}
