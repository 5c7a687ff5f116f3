// Package project scans a directory for the files that describe a codebase
// and generates a README from them.
package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotADirectory is returned when the scan root is a plain file.
var ErrNotADirectory = errors.New("not a directory")

// File is one scan hit, with the path relative to the scan root.
type File struct {
	Path string // absolute path
	Rel  string // path relative to the scan root, forward slashes
	Name string
	Ext  string // lower-cased extension, including the dot
}

// Directories that never contain anything informative.
var skipDirs = map[string]bool{
	"node_modules":  true,
	"vendor":        true,
	"venv":          true,
	"__pycache__":   true,
	"dist":          true,
	"build":         true,
	"target":        true,
	"htmlcov":       true,
	".tox":          true,
	".eggs":         true,
	".pytest_cache": true,
	".mypy_cache":   true,
}

// Hidden directories are blocked unless allowlisted.
var hiddenDirAllow = map[string]bool{
	".github": true,
	".vscode": true,
	".config": true,
}

// Extensions that count as code.
var codeExtensions = map[string]bool{
	".py": true, ".js": true, ".ts": true, ".jsx": true, ".tsx": true,
	".go": true, ".rs": true, ".java": true, ".rb": true, ".php": true,
	".c": true, ".cpp": true, ".h": true, ".hpp": true, ".cs": true,
	".swift": true, ".kt": true,
}

// Filenames that count as project configuration.
var configFiles = map[string]bool{
	"pyproject.toml": true, "setup.py": true, "setup.cfg": true, "requirements.txt": true,
	"package.json": true, "tsconfig.json": true,
	"go.mod": true, "go.sum": true, "Cargo.toml": true,
	"pom.xml": true, "build.gradle": true,
	"Makefile": true, "Dockerfile": true, "docker-compose.yml": true, "docker-compose.yaml": true,
	".env.example": true, "config.yaml": true, "config.yml": true,
	"README.md": true, "README.rst": true, "LICENSE": true, "CHANGELOG.md": true,
}

// Scan walks root and returns the code and config files worth reading.
func Scan(root string) ([]File, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan %s: %w", root, ErrNotADirectory)
	}

	var files []File
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()

		if d.IsDir() {
			if path == absRoot {
				return nil
			}
			if skipDirs[name] {
				return filepath.SkipDir
			}
			if strings.HasPrefix(name, ".") {
				if hiddenDirAllow[name] {
					return nil
				}
				return filepath.SkipDir
			}
			return nil
		}

		ext := strings.ToLower(filepath.Ext(name))
		if !configFiles[name] && !codeExtensions[ext] {
			return nil
		}

		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			rel = name
		}
		files = append(files, File{
			Path: path,
			Rel:  filepath.ToSlash(rel),
			Name: name,
			Ext:  ext,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// Stats summarizes a scan for display.
type Stats struct {
	CodeFiles   int
	ConfigFiles int
	Total       int
}

// Summarize counts a scan's findings.
func Summarize(files []File) Stats {
	s := Stats{Total: len(files)}
	for _, f := range files {
		if configFiles[f.Name] {
			s.ConfigFiles++
		}
		if codeExtensions[f.Ext] {
			s.CodeFiles++
		}
	}
	return s
}
