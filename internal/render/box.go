package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

// Box-drawing pieces for the fixed-width blocks.
const (
	boxTopLeft     = "┌"
	boxTopRight    = "┐"
	boxBottomLeft  = "└"
	boxBottomRight = "┘"
	boxHorizontal  = "─"
	boxVertical    = "│"
	boxTeeLeft     = "├"
	boxTeeRight    = "┤"

	truncTail = "…"
)

// wrap word-wraps s to width and hard-truncates any line that still
// overflows (long unbroken tokens). Never returns a line wider than width.
func wrap(s string, width int) []string {
	if width < 1 {
		width = 1
	}
	wrapped := wordwrap.String(s, width)
	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		if runewidth.StringWidth(line) > width {
			lines[i] = truncate.StringWithTail(line, uint(width), truncTail)
		}
	}
	return lines
}

// pad right-pads s with spaces to the given display width.
func pad(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// box renders a titled block. The total display width of every emitted line
// equals r.Width; content is wrapped to fit the interior.
func (r *Renderer) box(title string, content []string) string {
	interior := r.Width - 4 // borders plus one space padding per side
	if interior < 1 {
		interior = 1
	}

	var b strings.Builder
	rule := strings.Repeat(boxHorizontal, r.Width-2)
	b.WriteString(boxTopLeft + rule + boxTopRight + "\n")

	titleLine := truncate.StringWithTail(title, uint(interior), truncTail)
	b.WriteString(boxVertical + " " + r.paint(r.titleStyle, pad(titleLine, interior)) + " " + boxVertical + "\n")
	b.WriteString(boxTeeLeft + rule + boxTeeRight + "\n")

	for _, raw := range content {
		for _, line := range wrap(raw, interior) {
			b.WriteString(boxVertical + " " + pad(line, interior) + " " + boxVertical + "\n")
		}
	}

	b.WriteString(boxBottomLeft + rule + boxBottomRight + "\n")
	return b.String()
}
