package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

const appName = "Swipedeck"

// ---------------------------------------------------------------------------
// Z-order
// ---------------------------------------------------------------------------
//
// Stacking values for the two live cards, a freshly appended card, and the
// corpse of a committed card during its exit spring. The corpse rides above
// everything so the promoted card is never seen popping through it.

const (
	zTop       = 1.0
	zNext      = 0.0
	zFresh     = -1.0
	zDeparting = 1.5
)

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

type model struct {
	cfg  configFile
	keys *KeyRegistry

	deck    deck
	window  []card // len 2: [0] top (interactive), [1] next
	zorder  map[string]float64
	gesture gesture
	exitDir swipeDirection // sticky

	spring    harmonica.Spring
	topMotion cardMotion
	departing *departingCard
	animating bool // a frame tick chain is in flight

	accepted int
	rejected int

	status    string
	statusErr bool
	width     int
	height    int
	ready     bool
}

// holdQualifiedMsg fires when a contact has been held long enough to count as
// a press. gen ties it to the contact that scheduled it.
type holdQualifiedMsg struct {
	gen int
}

func newModel(cfg configFile) model {
	d, err := newDeck(cfg.deckColors())
	if err != nil {
		// normalizeConfig guarantees a non-empty palette; this is a
		// programming error, not a user one.
		panic(err)
	}
	m := model{
		cfg:       cfg,
		keys:      NewKeyRegistry(),
		gesture:   newGesture(cfg.swipeThreshold()),
		spring:    harmonica.NewSpring(harmonica.FPS(animFPS), cfg.Spring.Frequency, cfg.Spring.Damping),
		topMotion: newCardMotion(),
		status:    "Drag the top card, or press l/h to swipe.",
	}
	m.window = []card{d.draw(), d.draw()}
	m.deck = d
	m.resetZOrder()
	if kbErr := m.keys.ApplyKeybindingConfig(cfg.Keybinding); kbErr != nil {
		m.setError(kbErr.Error())
	}
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) topCard() card {
	return m.window[0]
}

// resetZOrder rebuilds the stacking map for the two live cards. Called after
// every window change once no exit animation is in flight.
func (m *model) resetZOrder() {
	m.zorder = map[string]float64{
		m.window[0].id: zTop,
		m.window[1].id: zNext,
	}
}

func (m *model) setError(msg string) {
	m.status = msg
	m.statusErr = true
}

func (m *model) setStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

// ---------------------------------------------------------------------------
// Layout geometry
// ---------------------------------------------------------------------------

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// deckAreaSize is the canvas the cards composite onto: everything above the
// status and footer lines.
func (m model) deckAreaSize() (int, int) {
	h := m.height - 2
	if h < 1 {
		h = 1
	}
	w := m.width
	if w < 1 {
		w = 1
	}
	return w, h
}

func (m model) cardSize() (int, int) {
	w, h := 24, 11
	if m.width > 0 {
		w = min(28, max(16, m.width/3))
	}
	if m.height > 0 {
		h = min(13, max(7, m.height/2))
	}
	return w, h
}

// cardOrigin is the rest position of a card, centered in the deck area.
func (m model) cardOrigin() (int, int) {
	aw, ah := m.deckAreaSize()
	cw, ch := m.cardSize()
	return max(0, (aw-cw)/2), max(0, (ah-ch)/2)
}

// topCardRect is the hit-test region for starting a gesture. The rest
// position is used even mid-animation; only the top card is interactive.
func (m model) topCardRect() rect {
	x, y := m.cardOrigin()
	w, h := m.cardSize()
	return rect{x: x, y: y, w: w, h: h}
}
