package main

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestOverlayAtBasic(t *testing.T) {
	base := blankCanvas(10, 3)
	out := overlayAt(base, "AB\nCD", 2, 1, 10, 3)
	lines := splitLines(out)
	if lines[1] != "  AB      " {
		t.Fatalf("row 1 = %q", lines[1])
	}
	if lines[2] != "  CD      " {
		t.Fatalf("row 2 = %q", lines[2])
	}
}

func TestOverlayAtClipsLeftEdge(t *testing.T) {
	base := blankCanvas(10, 1)
	out := overlayAt(base, "ABCD", -2, 0, 10, 1)
	if got := splitLines(out)[0]; got != "CD        " {
		t.Fatalf("negative x should clip the overlay, got %q", got)
	}
}

func TestOverlayAtClipsRightEdge(t *testing.T) {
	base := blankCanvas(6, 1)
	out := overlayAt(base, "ABCDEF", 4, 0, 6, 1)
	if got := splitLines(out)[0]; got != "    AB" {
		t.Fatalf("overflow should clip at the canvas edge, got %q", got)
	}
}

func TestOverlayAtSkipsOffCanvasRows(t *testing.T) {
	base := blankCanvas(4, 2)
	out := overlayAt(base, "XX\nYY\nZZ", 0, -1, 4, 2)
	lines := splitLines(out)
	if lines[0] != "YY  " || lines[1] != "ZZ  " {
		t.Fatalf("rows above the canvas should drop, got %q", lines)
	}
	if len(lines) != 2 {
		t.Fatalf("canvas height changed: %d rows", len(lines))
	}
}

func TestCompositeLayersOrdering(t *testing.T) {
	layers := []layer{
		{content: "TOP", x: 0, y: 0, stacking: 1.0},
		{content: "BOT", x: 0, y: 0, stacking: 0.0},
	}
	out := compositeLayers(3, 1, layers)
	if !strings.Contains(out, "TOP") || strings.Contains(out, "BOT") {
		t.Fatalf("higher stacking should paint last, got %q", out)
	}

	// Reversed input order, same stacking values: result unchanged.
	out = compositeLayers(3, 1, []layer{layers[1], layers[0]})
	if !strings.Contains(out, "TOP") {
		t.Fatalf("stacking, not input order, decides the winner: %q", out)
	}
}

func TestBlankCanvasDimensions(t *testing.T) {
	c := blankCanvas(5, 3)
	lines := splitLines(c)
	if len(lines) != 3 {
		t.Fatalf("height = %d, want 3", len(lines))
	}
	for i, line := range lines {
		if ansi.StringWidth(line) != 5 {
			t.Fatalf("row %d width = %d, want 5", i, ansi.StringWidth(line))
		}
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Fatalf("padRight = %q", got)
	}
	if got := padRight("abcdef", 3); got != "abcdef" {
		t.Fatalf("padRight must not truncate, got %q", got)
	}
	if got := padRight("ab", 0); got != "ab" {
		t.Fatalf("zero width is a no-op, got %q", got)
	}
}
