package analyzer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

var (
	// ErrNotAFile is returned when the path points at a directory or
	// other non-regular file.
	ErrNotAFile = errors.New("not a regular file")

	// ErrBinaryFile is returned when the file content is not valid UTF-8.
	ErrBinaryFile = errors.New("binary or non-UTF-8 file")

	// ErrEmptyFile is returned when the file contains no non-whitespace
	// content. Callers treat this as a notice, not a failure.
	ErrEmptyFile = errors.New("file is empty")
)

// Source is the validated content of one input file.
type Source struct {
	Path  string
	Name  string
	Text  string
	Lines int
}

// ReadSource loads and validates a source file. Missing paths surface the
// underlying fs.ErrNotExist so callers can classify them with errors.Is.
func ReadSource(path string) (*Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("read %s: %w", path, ErrNotAFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("read %s: %w", path, ErrBinaryFile)
	}

	text := string(data)
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("read %s: %w", path, ErrEmptyFile)
	}

	return &Source{
		Path:  path,
		Name:  filepath.Base(path),
		Text:  text,
		Lines: countLines(text),
	}, nil
}

// countLines counts newline-separated segments, ignoring a single trailing
// newline so "a\nb\n" counts as two lines.
func countLines(text string) int {
	if text == "" {
		return 0
	}
	text = strings.TrimSuffix(text, "\n")
	return strings.Count(text, "\n") + 1
}
