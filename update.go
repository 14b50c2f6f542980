package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ---------------------------------------------------------------------------
// Update — the single mutation path
// ---------------------------------------------------------------------------

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case holdQualifiedMsg:
		// Stale generations (the contact already ended) are no-ops.
		m.gesture.qualify(msg.gen)
		return m, nil

	case frameMsg:
		return m.updateFrame()

	case tea.BlurMsg:
		// Losing terminal focus mid-gesture is a pointer cancel: snap back,
		// mutate nothing.
		return m.cancelGesture()

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

// ---------------------------------------------------------------------------
// Mouse handling
// ---------------------------------------------------------------------------

func (m model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	at := vec{x: float64(msg.X), y: float64(msg.Y)}

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if m.departing != nil || m.gesture.active() {
			return m, nil
		}
		if !m.topCardRect().contains(msg.X, msg.Y) {
			return m, nil
		}
		gen := m.gesture.press(at)
		hold := m.cfg.holdDuration()
		return m, tea.Tick(hold, func(time.Time) tea.Msg {
			return holdQualifiedMsg{gen: gen}
		})

	case msg.Action == tea.MouseActionMotion:
		if !m.gesture.move(at) {
			return m, nil
		}
		if dir, ok := m.gesture.crossed(); ok {
			m.exitDir = dir
		}
		return m.ensureFrames()

	case msg.Action == tea.MouseActionRelease:
		return m.finishGesture()
	}

	return m, nil
}

// finishGesture handles pointer-up: a drag that ended beyond the threshold
// commits, everything else snaps back with no mutation. Releases with no
// active gesture are ignored.
func (m model) finishGesture() (tea.Model, tea.Cmd) {
	wasActive := m.gesture.active()
	_, commit := m.gesture.release()
	if !wasActive {
		return m, nil
	}
	if !commit {
		return m.ensureFrames()
	}
	return m.commitSwipe()
}

func (m model) cancelGesture() (tea.Model, tea.Cmd) {
	if !m.gesture.active() {
		return m, nil
	}
	m.gesture.cancel()
	return m.ensureFrames()
}

// ---------------------------------------------------------------------------
// Commit
// ---------------------------------------------------------------------------

// commitSwipe evicts the top card, promotes the next one and appends a fresh
// card from the deck. The evicted card keeps animating as a corpse; the
// z-order map is rebuilt once its exit spring settles.
func (m model) commitSwipe() (tea.Model, tea.Cmd) {
	evicted := m.window[0]
	fresh := m.deck.draw()
	m.window = []card{m.window[1], fresh}
	m.zorder = map[string]float64{
		m.window[0].id: zNext,
		m.window[1].id: zFresh,
	}

	m.departing = &departingCard{
		card:   evicted,
		motion: m.topMotion,
		target: m.exitTarget(),
	}
	m.topMotion = newCardMotion()

	switch m.exitDir {
	case exitLeading:
		m.rejected++
		m.setStatus(fmt.Sprintf("Rejected. %d accepted / %d rejected this session.", m.accepted, m.rejected))
	default:
		m.accepted++
		m.setStatus(fmt.Sprintf("Accepted. %d accepted / %d rejected this session.", m.accepted, m.rejected))
	}
	return m.ensureFrames()
}

// exitTarget aims the corpse off the trailing or leading edge, drifting
// toward the bottom, per the sticky direction.
func (m model) exitTarget() cardVisual {
	aw, ah := m.deckAreaSize()
	cw, _ := m.cardSize()
	target := cardVisual{
		scale:    1.0,
		offsetY:  float64(ah),
		stacking: zDeparting,
	}
	if m.exitDir == exitLeading {
		target.offsetX = -float64(aw + cw)
		target.rotation = -exitRotationDeg
	} else {
		target.offsetX = float64(aw + cw)
		target.rotation = exitRotationDeg
	}
	return target
}

const exitRotationDeg = 20.0

// ---------------------------------------------------------------------------
// Frames
// ---------------------------------------------------------------------------

// ensureFrames starts the frame tick chain if one is not already in flight.
func (m model) ensureFrames() (tea.Model, tea.Cmd) {
	if m.animating {
		return m, nil
	}
	m.animating = true
	return m, frameCmd()
}

func (m model) updateFrame() (tea.Model, tea.Cmd) {
	if !m.animating {
		return m, nil
	}

	target := visualFor(m.topCard(), true, m.gesture, m.zorder)
	m.topMotion.stepToward(m.spring, target)
	settled := m.topMotion.settled(target)

	if m.departing != nil {
		m.departing.motion.stepToward(m.spring, m.departing.target)
		if m.departing.done() {
			m.departing = nil
			m.resetZOrder()
		} else {
			settled = false
		}
	}

	if m.gesture.active() || !settled {
		return m, frameCmd()
	}
	m.animating = false
	return m, nil
}

// ---------------------------------------------------------------------------
// Key handling
// ---------------------------------------------------------------------------

func (m model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.isAction(scopeDeck, actionQuit, msg):
		return m, tea.Quit
	case m.isAction(scopeDeck, actionSwipeTrailing, msg):
		return m.keyboardSwipe(exitTrailing)
	case m.isAction(scopeDeck, actionSwipeLeading, msg):
		return m.keyboardSwipe(exitLeading)
	case m.isAction(scopeDeck, actionResetStats, msg):
		m.accepted = 0
		m.rejected = 0
		m.setStatus("Session counters reset.")
		return m, nil
	}
	return m, nil
}

// keyboardSwipe commits through the same path as a full-distance drag, so it
// also updates the sticky direction. Ignored while a gesture or exit
// animation is in progress.
func (m model) keyboardSwipe(dir swipeDirection) (tea.Model, tea.Cmd) {
	if m.departing != nil || m.gesture.active() {
		return m, nil
	}
	m.exitDir = dir
	return m.commitSwipe()
}

func (m model) isAction(scope string, action Action, msg tea.KeyMsg) bool {
	reg := m.keys
	if reg == nil {
		reg = NewKeyRegistry()
	}
	b := reg.Lookup(msg.String(), scope)
	return b != nil && b.Action == action
}

func (m model) primaryActionKey(scope string, action Action, fallback string) string {
	reg := m.keys
	if reg == nil {
		reg = NewKeyRegistry()
	}
	for _, b := range reg.BindingsForScope(scope) {
		if b.Action == action && len(b.Keys) > 0 {
			return b.Keys[0]
		}
	}
	return fallback
}
