package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"codelens/internal/commitmsg"
	"codelens/internal/config"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var commitYes bool

// commitCmd drafts a commit message from the staged diff
var commitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Generate a commit message for staged changes",
	Long: `Reads the staged diff, asks the model for a commit message, and shows
it for review. You can accept it, reject it, or edit it in $EDITOR
before committing.

Example:
  git add -p
  codelens commit`,
	Args: cobra.NoArgs,
	RunE: runCommit,
}

func init() {
	commitCmd.Flags().BoolVarP(&commitYes, "yes", "y", false, "Commit without confirmation")
}

// confirmAction is the parsed answer to the commit prompt.
type confirmAction int

const (
	confirmUnknown confirmAction = iota
	confirmYes
	confirmNo
	confirmEdit
)

func parseConfirm(s string) confirmAction {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return confirmYes
	case "n", "no", "q", "quit":
		return confirmNo
	case "e", "edit":
		return confirmEdit
	default:
		return confirmUnknown
	}
}

func runCommit(cmd *cobra.Command, args []string) error {
	ctx, stop := signalContext()
	defer stop()

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	if !commitmsg.IsRepo(ctx, cwd) {
		return commitmsg.ErrNotARepo
	}

	diff, err := commitmsg.StagedDiff(ctx, cwd)
	if err != nil {
		if errors.Is(err, commitmsg.ErrNoStagedChanges) {
			return fmt.Errorf("no staged changes: stage files with 'git add' first")
		}
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	client, err := buildClient(cfg)
	if err != nil {
		return err
	}

	gen := commitmsg.NewGenerator(client, logger)
	message, err := gen.Generate(ctx, diff)
	if err != nil {
		return err
	}

	fmt.Println(messageStyle.Render(message))
	fmt.Println()

	if commitYes {
		return doCommit(cmd, cwd, message)
	}

	reader := bufio.NewReader(cmd.InOrStdin())
	for {
		fmt.Print("Commit with this message? [y]es / [n]o / [e]dit: ")
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("aborted")
		}

		switch parseConfirm(line) {
		case confirmYes:
			return doCommit(cmd, cwd, message)
		case confirmNo:
			fmt.Println("Aborted; nothing committed.")
			return nil
		case confirmEdit:
			edited, err := editMessage(message)
			if err != nil {
				return err
			}
			if strings.TrimSpace(edited) == "" {
				fmt.Println("Empty message; nothing committed.")
				return nil
			}
			return doCommit(cmd, cwd, edited)
		}
	}
}

var messageStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#7D56F4")).
	Padding(0, 1)

func doCommit(cmd *cobra.Command, dir, message string) error {
	ctx, stop := signalContext()
	defer stop()
	if err := commitmsg.Commit(ctx, dir, message); err != nil {
		return err
	}
	fmt.Println("Committed.")
	return nil
}

// editMessage opens the message in $EDITOR and returns the edited text.
func editMessage(message string) (string, error) {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}

	tmp, err := os.CreateTemp("", "codelens-commit-*.txt")
	if err != nil {
		return "", err
	}
	path := tmp.Name()
	defer os.Remove(path)

	if _, err := tmp.WriteString(message + "\n"); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	ed := exec.Command(editor, path)
	ed.Stdin = os.Stdin
	ed.Stdout = os.Stdout
	ed.Stderr = os.Stderr
	if err := ed.Run(); err != nil {
		return "", fmt.Errorf("editor %s failed: %w", filepath.Base(editor), err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
