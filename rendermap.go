package main

// ---------------------------------------------------------------------------
// Declarative visual mapping
// ---------------------------------------------------------------------------
//
// visualFor is the single source of truth for what a card should look like
// given the current gesture and z-order. It is a pure function: View (and the
// spring animator, which chases its output) recompute it on every pass, and
// nothing here is cached or mutated.

type cardVisual struct {
	offsetX, offsetY float64
	scale            float64
	rotation         float64 // degrees, positive tilts toward the trailing edge
	stacking         float64
	acceptOpacity    float64
	rejectOpacity    float64
}

const (
	draggingScale   = 0.95
	rotationDivisor = 10.0
)

func restVisual(stacking float64) cardVisual {
	return cardVisual{scale: 1.0, stacking: stacking}
}

// visualFor maps a card to its draw parameters. Only the top card reacts to
// the gesture; everything below renders at rest.
func visualFor(c card, top bool, g gesture, zorder map[string]float64) cardVisual {
	v := restVisual(zorder[c.id])
	if !top || !g.dragging() {
		return v
	}
	v.offsetX = g.delta.x
	v.offsetY = g.delta.y
	v.scale = draggingScale
	v.rotation = g.delta.x / rotationDivisor
	if g.delta.x > g.threshold {
		v.acceptOpacity = 1
	}
	if g.delta.x < -g.threshold {
		v.rejectOpacity = 1
	}
	return v
}
