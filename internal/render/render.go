// Package render formats analysis results as fixed-width boxed text for
// the terminal. Pure formatting: no I/O, no failure modes.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"codelens/internal/analyzer"
	"codelens/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Renderer holds the output geometry and styling.
type Renderer struct {
	Width int
	Color bool

	headerStyle  lipgloss.Style
	sectionStyle lipgloss.Style
	titleStyle   lipgloss.Style
	depStyle     lipgloss.Style

	complexityStyles map[analyzer.Complexity]lipgloss.Style
}

// New creates a Renderer. Width values below 20 fall back to the default;
// color output is disabled for plain (piped) rendering.
func New(width int, color bool) *Renderer {
	if width < 20 {
		width = config.DefaultWidth
	}
	return &Renderer{
		Width: width,
		Color: color,

		headerStyle:  lipgloss.NewStyle().Bold(true),
		sectionStyle: lipgloss.NewStyle().Bold(true),
		titleStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#4db6ac")),
		depStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("#4db6ac")),

		complexityStyles: map[analyzer.Complexity]lipgloss.Style{
			analyzer.ComplexitySimple:  lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A")),
			analyzer.ComplexityMedium:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC107")),
			analyzer.ComplexityComplex: lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935")),
		},
	}
}

// paint applies a style only when color output is on.
func (r *Renderer) paint(style lipgloss.Style, s string) string {
	if !r.Color {
		return s
	}
	return style.Render(s)
}

// Analysis renders the full report for one analyzed file.
func (r *Renderer) Analysis(a *analyzer.Analysis) string {
	var b strings.Builder

	b.WriteString("\n" + r.paint(r.headerStyle, fmt.Sprintf("📄 %s", a.Source.Name)))
	fmt.Fprintf(&b, " (%d lines)\n\n", a.Source.Lines)

	summary := a.Result.Summary
	if summary == "" {
		summary = "No summary available."
	}
	b.WriteString(r.paint(r.sectionStyle, "## Summary") + "\n")
	for _, line := range wrap(summary, r.Width) {
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")

	if len(a.Result.Functions) > 0 {
		b.WriteString(r.paint(r.sectionStyle, "## Functions") + "\n\n")
		for _, fn := range a.Result.Functions {
			b.WriteString(r.Function(fn))
			b.WriteString("\n")
		}
	}

	if len(a.Result.Classes) > 0 {
		b.WriteString(r.paint(r.sectionStyle, "## Classes") + "\n\n")
		for _, cls := range a.Result.Classes {
			b.WriteString(r.Class(cls))
			b.WriteString("\n")
		}
	}

	if len(a.Result.Dependencies) > 0 {
		b.WriteString(r.paint(r.sectionStyle, "## Dependencies") + "\n")
		for _, dep := range a.Result.Dependencies {
			entry := fmt.Sprintf("• %s: %s", r.paint(r.depStyle, dep.Name), dep.Purpose)
			if !r.Color {
				entry = fmt.Sprintf("• %s: %s", dep.Name, dep.Purpose)
			}
			b.WriteString(entry + "\n")
		}
		b.WriteString("\n")
	}

	rating := a.Result.Complexity.Title()
	styled := rating
	if style, ok := r.complexityStyles[a.Result.Complexity]; ok {
		styled = r.paint(style, rating)
	}
	b.WriteString(r.paint(r.sectionStyle, "## Complexity:") + " " + styled + "\n")

	return b.String()
}

// Function renders one function record as a boxed block. The signature is
// the title; description and key points fill the body.
func (r *Renderer) Function(fn analyzer.Function) string {
	title := fn.Signature
	if title == "" {
		title = fn.Name
	}
	description := fn.Description
	if description == "" {
		description = "No description"
	}

	content := []string{description}
	for _, point := range fn.KeyPoints {
		content = append(content, "• "+point)
	}
	return r.box(title, content)
}

// Class renders one class record as a boxed block.
func (r *Renderer) Class(cls analyzer.Class) string {
	description := cls.Description
	if description == "" {
		description = "No description"
	}

	content := []string{description}
	if len(cls.Methods) > 0 {
		content = append(content, "", "Methods:")
		for _, method := range cls.Methods {
			content = append(content, "  • "+method)
		}
	}
	return r.box("class "+cls.Name, content)
}

// JSON emits the parsed result as indented JSON, for --format json.
func JSON(result *analyzer.AnalysisResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
