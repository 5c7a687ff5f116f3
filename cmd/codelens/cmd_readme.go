package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"codelens/internal/config"
	"codelens/internal/project"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var (
	readmeOut string
	readmeYes bool
)

// readmeCmd generates a README.md for a project directory
var readmeCmd = &cobra.Command{
	Use:   "readme [dir]",
	Short: "Generate a README.md for a project",
	Long: `Scans a project directory, collects its key files, and asks the model
to write a README.md. The result is previewed in the terminal before
anything is written to disk.

Example:
  codelens readme
  codelens readme ./myproject --out docs/README.md`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReadme,
}

func init() {
	readmeCmd.Flags().StringVarP(&readmeOut, "out", "o", "", "Output path (default <dir>/README.md)")
	readmeCmd.Flags().BoolVarP(&readmeYes, "yes", "y", false, "Overwrite an existing README without asking")
}

func runReadme(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return err
	}

	files, err := project.Scan(absRoot)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no recognizable source files under %s", absRoot)
	}

	projType := project.DetectType(files)
	stats := project.Summarize(files)
	fmt.Printf("Scanned %s: %d files (%d code, %d config), detected %s\n",
		absRoot, stats.Total, stats.CodeFiles, stats.ConfigFiles, projType)

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	client, err := buildClient(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	content := project.CollectContent(files, 0)
	gen := project.NewGenerator(client, logger)
	readme, err := gen.Generate(ctx, absRoot, projType, files, content)
	if err != nil {
		return err
	}

	printPreview(readme, cfg.Theme)

	out := readmeOut
	if out == "" {
		out = filepath.Join(absRoot, "README.md")
	}
	if !readmeYes {
		if _, err := os.Stat(out); err == nil {
			ok, err := confirmOverwrite(cmd, out)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Aborted; nothing written.")
				return nil
			}
		}
	}

	if err := os.WriteFile(out, []byte(readme+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write README: %w", err)
	}
	fmt.Printf("Wrote %s (%d bytes)\n", out, len(readme)+1)
	return nil
}

// printPreview renders the README as terminal markdown, falling back to
// raw text when rendering fails.
func printPreview(readme, theme string) {
	if theme != "light" {
		theme = "dark"
	}
	rendered, err := glamour.Render(readme, theme)
	if err != nil {
		fmt.Println(readme)
		return
	}
	fmt.Print(rendered)
}

func confirmOverwrite(cmd *cobra.Command, path string) (bool, error) {
	reader := bufio.NewReader(cmd.InOrStdin())
	fmt.Printf("%s exists. Overwrite? [y/N]: ", path)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false, nil
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
