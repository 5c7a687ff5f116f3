// Package commitmsg generates commit messages from staged git changes.
package commitmsg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrNoStagedChanges is returned when the index has no staged diff.
var ErrNoStagedChanges = errors.New("no staged changes")

// ErrNotARepo is returned when the directory is not inside a git work tree.
var ErrNotARepo = errors.New("not a git repository")

// IsRepo reports whether dir is inside a git work tree.
func IsRepo(ctx context.Context, dir string) bool {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--is-inside-work-tree")
	cmd.Dir = dir
	out, err := cmd.Output()
	return err == nil && strings.TrimSpace(string(out)) == "true"
}

// StagedDiff returns the diff of staged changes in dir.
func StagedDiff(ctx context.Context, dir string) (string, error) {
	if !IsRepo(ctx, dir) {
		return "", fmt.Errorf("%s: %w", dir, ErrNotARepo)
	}

	cmd := exec.CommandContext(ctx, "git", "diff", "--cached")
	cmd.Dir = dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git diff --cached: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	diff := string(out)
	if strings.TrimSpace(diff) == "" {
		return "", ErrNoStagedChanges
	}
	return diff, nil
}

// Commit creates a commit in dir with the given message.
func Commit(ctx context.Context, dir, message string) error {
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("empty commit message")
	}

	cmd := exec.CommandContext(ctx, "git", "commit", "-m", message)
	cmd.Dir = dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git commit: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return nil
}
