package main

import "math"

// ---------------------------------------------------------------------------
// Press/drag state machine
// ---------------------------------------------------------------------------
//
// The recognizer is sequenced: a contact arms the gesture, a hold timer
// qualifies it into a press, and only a qualified press can become a drag.
// Motion or release events that arrive outside that sequence are no-ops, as
// are hold timers from a contact that already ended (generation mismatch).

type gesturePhase int

const (
	gestureInactive gesturePhase = iota
	gestureArmed    // contact down, hold timer pending
	gesturePressing // hold qualified, no motion yet
	gestureDragging
)

type vec struct {
	x, y float64
}

func (v vec) sub(o vec) vec {
	return vec{v.x - o.x, v.y - o.y}
}

type gesture struct {
	phase     gesturePhase
	gen       int
	origin    vec
	delta     vec
	threshold float64
}

func newGesture(threshold float64) gesture {
	return gesture{threshold: threshold}
}

// press records a new contact and returns its generation. Any pending hold
// timer for an earlier contact becomes stale.
func (g *gesture) press(at vec) int {
	g.gen++
	g.phase = gestureArmed
	g.origin = at
	g.delta = vec{}
	return g.gen
}

// qualify promotes an armed contact into a press once the hold duration has
// elapsed. Returns false for stale generations and out-of-sequence calls.
func (g *gesture) qualify(gen int) bool {
	if g.phase != gestureArmed || gen != g.gen {
		return false
	}
	g.phase = gesturePressing
	return true
}

// move updates the cumulative translation from the contact origin. The first
// movement of a qualified press starts the drag; movement before
// qualification is ignored so accidental taps never drag the card.
func (g *gesture) move(at vec) bool {
	switch g.phase {
	case gesturePressing:
		g.phase = gestureDragging
	case gestureDragging:
	default:
		return false
	}
	g.delta = at.sub(g.origin)
	return true
}

// crossed reports whether the drag currently sits beyond the threshold, and
// on which side. It never commits anything itself.
func (g gesture) crossed() (swipeDirection, bool) {
	if g.phase != gestureDragging {
		return exitTrailing, false
	}
	switch {
	case g.delta.x > g.threshold:
		return exitTrailing, true
	case g.delta.x < -g.threshold:
		return exitLeading, true
	}
	return exitTrailing, false
}

// release ends the gesture. commit is true only when a drag ended beyond the
// threshold; everything else is a snap-back.
func (g *gesture) release() (delta vec, commit bool) {
	delta = g.delta
	commit = g.phase == gestureDragging && math.Abs(delta.x) > g.threshold
	g.phase = gestureInactive
	g.delta = vec{}
	return delta, commit
}

// cancel aborts the gesture with no commit, same outcome as a
// below-threshold release.
func (g *gesture) cancel() {
	g.phase = gestureInactive
	g.delta = vec{}
}

func (g gesture) active() bool {
	return g.phase != gestureInactive
}

func (g gesture) dragging() bool {
	return g.phase == gestureDragging
}
