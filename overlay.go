package main

import (
	"sort"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// ---------------------------------------------------------------------------
// Layer compositing
// ---------------------------------------------------------------------------

// layer is one pre-rendered block placed on the canvas at (x, y). Higher
// stacking values paint later and therefore cover lower ones.
type layer struct {
	content  string
	x, y     int
	stacking float64
}

// compositeLayers paints layers back-to-front onto a blank canvas of the
// given size. Ties keep insertion order.
func compositeLayers(width, height int, layers []layer) string {
	sorted := append([]layer(nil), layers...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].stacking < sorted[j].stacking
	})
	canvas := blankCanvas(width, height)
	for _, l := range sorted {
		canvas = overlayAt(canvas, l.content, l.x, l.y, width, height)
	}
	return canvas
}

func blankCanvas(width, height int) string {
	if width < 0 {
		width = 0
	}
	if height < 1 {
		height = 1
	}
	row := strings.Repeat(" ", width)
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

// overlayAt composites an overlay string on top of a base string at the given
// character position (x, y). Both are treated as line-based grids. Negative
// coordinates clip the overlay at the canvas edge instead of discarding it,
// so cards can slide off either side.
func overlayAt(base, overlay string, x, y, width, height int) string {
	baseLines := splitLines(base)
	overlayLines := splitLines(overlay)
	overlayWidth := maxLineWidth(overlayLines)
	for i, line := range overlayLines {
		row := y + i
		if row < 0 || row >= len(baseLines) || row >= height {
			continue
		}
		overlayLine := padRight(line, overlayWidth)
		col := x
		if col < 0 {
			overlayLine = ansi.TruncateLeft(overlayLine, -col, "")
			col = 0
		}
		lineWidth := ansi.StringWidth(overlayLine)
		if lineWidth == 0 || col >= width {
			continue
		}
		if col+lineWidth > width {
			overlayLine = ansi.Truncate(overlayLine, width-col, "")
			lineWidth = ansi.StringWidth(overlayLine)
		}

		target := padRight(baseLines[row], width)
		left := ansi.Truncate(target, col, "")
		leftWidth := ansi.StringWidth(left)
		if leftWidth < col {
			left += strings.Repeat(" ", col-leftWidth)
		}

		pos := col + lineWidth
		right := ""
		if width > 0 {
			right = ansi.TruncateLeft(target, pos, "")
			rightWidth := ansi.StringWidth(right)
			gap := width - pos - rightWidth
			if gap > 0 {
				right = strings.Repeat(" ", gap) + right
			}
		}

		baseLines[row] = left + overlayLine + right
	}
	return strings.Join(baseLines, "\n")
}

// ---------------------------------------------------------------------------
// String utilities
// ---------------------------------------------------------------------------

// splitLines splits a string on newlines, returning at least one element.
func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

// maxLineWidth returns the visual width of the widest line.
func maxLineWidth(lines []string) int {
	m := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > m {
			m = w
		}
	}
	return m
}

// padRight pads s with spaces so its visual width equals width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
