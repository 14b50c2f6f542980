package main

import "testing"

func draggedGesture(dx, dy float64) gesture {
	g := newGesture(80)
	gen := g.press(vec{})
	g.qualify(gen)
	g.move(vec{x: dx, y: dy})
	return g
}

func TestVisualForRestingCard(t *testing.T) {
	c := mintCard(colorRed)
	z := map[string]float64{c.id: zNext}

	v := visualFor(c, false, draggedGesture(100, 0), z)
	if v.offsetX != 0 || v.offsetY != 0 {
		t.Fatalf("non-top card must not move, got (%v, %v)", v.offsetX, v.offsetY)
	}
	if v.scale != 1.0 {
		t.Fatalf("non-top card scale = %v, want 1.0", v.scale)
	}
	if v.rotation != 0 {
		t.Fatalf("non-top card rotation = %v, want 0", v.rotation)
	}
	if v.acceptOpacity != 0 || v.rejectOpacity != 0 {
		t.Fatalf("non-top card must not show badges")
	}
	if v.stacking != zNext {
		t.Fatalf("stacking = %v, want %v", v.stacking, zNext)
	}
}

func TestVisualForTopCardNotDragging(t *testing.T) {
	c := mintCard(colorGreen)
	z := map[string]float64{c.id: zTop}

	g := newGesture(80)
	gen := g.press(vec{})
	g.qualify(gen)
	// Qualified press with no motion renders at rest.
	v := visualFor(c, true, g, z)
	if v != restVisual(zTop) {
		t.Fatalf("pressing without motion should render at rest, got %+v", v)
	}
}

func TestVisualForDraggingTopCard(t *testing.T) {
	c := mintCard(colorYellow)
	z := map[string]float64{c.id: zTop}

	v := visualFor(c, true, draggedGesture(100, 12), z)
	if v.offsetX != 100 || v.offsetY != 12 {
		t.Fatalf("offset = (%v, %v), want (100, 12)", v.offsetX, v.offsetY)
	}
	if v.scale != draggingScale {
		t.Fatalf("scale = %v, want %v", v.scale, draggingScale)
	}
	if v.rotation != 10 {
		t.Fatalf("rotation = %v, want dx/10 = 10", v.rotation)
	}

	v = visualFor(c, true, draggedGesture(-50, 0), z)
	if v.rotation != -5 {
		t.Fatalf("rotation = %v, want -5", v.rotation)
	}
}

func TestVisualForBadgeOpacities(t *testing.T) {
	c := mintCard(colorAccent)
	z := map[string]float64{c.id: zTop}

	cases := []struct {
		dx             float64
		accept, reject float64
	}{
		{100, 1, 0},
		{81, 1, 0},
		{80, 0, 0}, // exactly at threshold is not beyond it
		{50, 0, 0},
		{-80, 0, 0},
		{-81, 0, 1},
		{-90, 0, 1},
	}
	for _, tc := range cases {
		v := visualFor(c, true, draggedGesture(tc.dx, 0), z)
		if v.acceptOpacity != tc.accept || v.rejectOpacity != tc.reject {
			t.Fatalf("dx=%v: opacities = (%v, %v), want (%v, %v)",
				tc.dx, v.acceptOpacity, v.rejectOpacity, tc.accept, tc.reject)
		}
	}
}

func TestVisualForIsPure(t *testing.T) {
	c := mintCard(colorMaroon)
	z := map[string]float64{c.id: zTop}
	g := draggedGesture(100, 0)

	first := visualFor(c, true, g, z)
	second := visualFor(c, true, g, z)
	if first != second {
		t.Fatalf("same inputs must give the same visual: %+v vs %+v", first, second)
	}
}
