package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// Cards & the cyclic deck
// ---------------------------------------------------------------------------

// card is one live deck entry. Immutable once minted; identity is the id,
// not the color (the cyclic deck repeats colors).
type card struct {
	id    string
	color lipgloss.Color
}

func mintCard(color lipgloss.Color) card {
	return card{id: uuid.NewString(), color: color}
}

// deck deals cards from a fixed color sequence forever, wrapping with modulo.
// lastIndex tracks the template most recently consumed.
type deck struct {
	templates []lipgloss.Color
	lastIndex int
}

func newDeck(colors []lipgloss.Color) (deck, error) {
	if len(colors) == 0 {
		return deck{}, fmt.Errorf("deck needs at least one color")
	}
	return deck{
		templates: append([]lipgloss.Color(nil), colors...),
		lastIndex: -1,
	}, nil
}

// draw mints a fresh card from the next template. Never exhausts.
func (d *deck) draw() card {
	d.lastIndex = (d.lastIndex + 1) % len(d.templates)
	return mintCard(d.templates[d.lastIndex])
}

func (d deck) size() int {
	return len(d.templates)
}

// ---------------------------------------------------------------------------
// Exit directions
// ---------------------------------------------------------------------------

// swipeDirection selects which edge a committed card leaves through. It is
// sticky: set whenever a drag crosses the threshold, kept until set again.
type swipeDirection int

const (
	exitTrailing swipeDirection = iota // rightward, accept
	exitLeading                        // leftward, reject
)

func (d swipeDirection) String() string {
	if d == exitLeading {
		return "leading"
	}
	return "trailing"
}
