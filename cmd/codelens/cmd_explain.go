package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"codelens/internal/analyzer"
	"codelens/internal/config"
	"codelens/internal/render"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	explainFormat string
	explainDepth  string
	explainWidth  int
)

// explainCmd analyzes source files and prints a structured explanation
var explainCmd = &cobra.Command{
	Use:   "explain [file...]",
	Short: "Explain source files in plain English",
	Long: `Reads each file, asks the model for a structured analysis, and renders
a report: summary, functions, classes, dependencies, and a complexity
rating. Files are processed sequentially.

Example:
  codelens explain main.go
  codelens explain --format json --depth shallow src/parser.py`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExplain,
}

func init() {
	explainCmd.Flags().StringVar(&explainFormat, "format", "text", "Output format: text or json")
	explainCmd.Flags().StringVar(&explainDepth, "depth", "deep", "Analysis depth: shallow or deep")
	explainCmd.Flags().IntVar(&explainWidth, "width", 0, "Box width for text output (default from config)")
}

func runExplain(cmd *cobra.Command, args []string) error {
	if explainFormat != "text" && explainFormat != "json" {
		return fmt.Errorf("invalid format %q: must be text or json", explainFormat)
	}
	depth, err := analyzer.ParseDepth(explainDepth)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	width := cfg.Width
	if explainWidth > 0 {
		width = explainWidth
	}

	// Validate every input before spending a model call. Empty files are
	// a notice, not a failure.
	var sources []*analyzer.Source
	for _, path := range args {
		src, err := analyzer.ReadSource(path)
		switch {
		case errors.Is(err, analyzer.ErrEmptyFile):
			fmt.Printf("%s is empty; nothing to explain.\n", path)
		case err != nil:
			return err
		default:
			sources = append(sources, src)
		}
	}
	if len(sources) == 0 {
		return nil
	}

	client, err := buildClient(cfg)
	if err != nil {
		return err
	}

	color := explainFormat == "text" && term.IsTerminal(int(os.Stdout.Fd()))
	r := render.New(width, color)
	an := analyzer.New(client, depth, logger)

	ctx, stop := signalContext()
	defer stop()

	for _, src := range sources {
		fileCtx, cancel := context.WithTimeout(ctx, timeout)
		analysis, err := an.AnalyzeSource(fileCtx, src)
		cancel()
		if err != nil {
			return fmt.Errorf("%s: %w", src.Path, err)
		}

		if explainFormat == "json" {
			out, err := render.JSON(analysis.Result)
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			continue
		}
		fmt.Println(r.Analysis(analysis))
	}
	return nil
}
