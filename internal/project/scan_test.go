package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureTree builds a small project layout and returns its root.
func fixtureTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	write := func(rel, content string) {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	write("go.mod", "module demo\n")
	write("main.go", "package main\n")
	write("internal/server/server.go", "package server\n")
	write("README.md", "# demo\n")
	write("notes.txt", "not a code file\n")
	write("node_modules/pkg/index.js", "ignored\n")
	write(".git/config", "ignored\n")
	write(".hidden/secret.go", "ignored\n")
	write(".github/workflows/ci.yml", "not code, not config name\n")
	return root
}

func relPaths(files []File) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Rel
	}
	return out
}

func TestScan(t *testing.T) {
	files, err := Scan(fixtureTree(t))
	require.NoError(t, err)

	rels := relPaths(files)
	assert.Contains(t, rels, "go.mod")
	assert.Contains(t, rels, "main.go")
	assert.Contains(t, rels, "internal/server/server.go")
	assert.Contains(t, rels, "README.md")

	assert.NotContains(t, rels, "notes.txt", "unknown extensions are skipped")
	for _, rel := range rels {
		assert.NotContains(t, rel, "node_modules/")
		assert.NotContains(t, rel, ".git/")
		assert.NotContains(t, rel, ".hidden/")
	}
}

func TestScan_NotFound(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestScan_NotADirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.go")
	require.NoError(t, os.WriteFile(path, []byte("package x\n"), 0644))

	_, err := Scan(path)
	assert.ErrorIs(t, err, ErrNotADirectory)
}

func TestSummarize(t *testing.T) {
	files, err := Scan(fixtureTree(t))
	require.NoError(t, err)

	stats := Summarize(files)
	assert.Equal(t, len(files), stats.Total)
	assert.GreaterOrEqual(t, stats.CodeFiles, 2)
	assert.GreaterOrEqual(t, stats.ConfigFiles, 2)
}
