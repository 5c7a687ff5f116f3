package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempFiles(t *testing.T, contents map[string]string) []File {
	t.Helper()
	root := t.TempDir()
	var files []File
	for name, content := range contents {
		path := filepath.Join(root, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		files = append(files, File{Path: path, Rel: name, Name: name, Ext: ext(name)})
	}
	return files
}

func TestCollectContent(t *testing.T) {
	files := tempFiles(t, map[string]string{
		"main.go": "package main\n",
		"util.go": "package main // util\n",
	})

	content := CollectContent(files, 0)
	assert.Contains(t, content, "### main.go")
	assert.Contains(t, content, "### util.go")
	assert.Contains(t, content, "package main")
}

func TestCollectContent_PriorityOrder(t *testing.T) {
	files := tempFiles(t, map[string]string{
		"zzz.go":    "package zzz\n",
		"README.md": "# readme\n",
	})

	content := CollectContent(files, 0)
	readmeAt := strings.Index(content, "### README.md")
	otherAt := strings.Index(content, "### zzz.go")
	require.GreaterOrEqual(t, readmeAt, 0)
	require.GreaterOrEqual(t, otherAt, 0)
	assert.Less(t, readmeAt, otherAt, "README should be collected first")
}

func TestCollectContent_RespectsBudget(t *testing.T) {
	files := tempFiles(t, map[string]string{
		"README.md": strings.Repeat("a", 500),
		"big.go":    strings.Repeat("b", 5000),
	})

	content := CollectContent(files, 1000)
	assert.Contains(t, content, "### README.md")
	assert.NotContains(t, content, "### big.go")
}

func TestCollectContent_TruncatesFirstFileRatherThanDropping(t *testing.T) {
	files := tempFiles(t, map[string]string{
		"README.md": strings.Repeat("x", 10_000),
	})

	content := CollectContent(files, 1000)
	assert.Contains(t, content, "### README.md")
	assert.Contains(t, content, "[TRUNCATED]")
	assert.Less(t, len(content), 1200)
}

func TestCollectContent_SkipsBinary(t *testing.T) {
	root := t.TempDir()
	bin := filepath.Join(root, "blob.go")
	require.NoError(t, os.WriteFile(bin, []byte{0xff, 0xfe, 0x00}, 0644))

	content := CollectContent([]File{{Path: bin, Rel: "blob.go", Name: "blob.go", Ext: ".go"}}, 0)
	assert.Empty(t, content)
}
