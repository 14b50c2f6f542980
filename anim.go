package main

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

// ---------------------------------------------------------------------------
// Spring animation
// ---------------------------------------------------------------------------
//
// Every positional change on screen runs through a damped spring: the gesture
// and z-order produce target visuals, and the springs chase them frame by
// frame. Frames are driven by frameMsg ticks that run only while something is
// in motion; the program is quiescent otherwise.

const animFPS = 60

// settleEpsilon is in terminal cells; half a cell is invisible.
const settleEpsilon = 0.5

type frameMsg time.Time

func frameCmd() tea.Cmd {
	return tea.Tick(time.Second/animFPS, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// springChannel is one scalar value integrated by a spring.
type springChannel struct {
	pos, vel float64
}

func (c *springChannel) step(s harmonica.Spring, target float64) {
	c.pos, c.vel = s.Update(c.pos, c.vel, target)
}

func (c springChannel) settled(target float64) bool {
	return math.Abs(c.pos-target) < settleEpsilon && math.Abs(c.vel) < settleEpsilon
}

// cardMotion holds the animated channels for one card.
type cardMotion struct {
	x, y, scale, rot springChannel
}

func newCardMotion() cardMotion {
	return cardMotion{scale: springChannel{pos: 1}}
}

func (mo *cardMotion) stepToward(s harmonica.Spring, target cardVisual) {
	mo.x.step(s, target.offsetX)
	mo.y.step(s, target.offsetY)
	mo.scale.step(s, target.scale)
	mo.rot.step(s, target.rotation)
}

func (mo cardMotion) settled(target cardVisual) bool {
	return mo.x.settled(target.offsetX) &&
		mo.y.settled(target.offsetY) &&
		mo.scale.settled(target.scale) &&
		mo.rot.settled(target.rotation)
}

// current blends the spring positions with the non-animated parts of the
// target (stacking and badge opacities switch instantly).
func (mo cardMotion) current(target cardVisual) cardVisual {
	target.offsetX = mo.x.pos
	target.offsetY = mo.y.pos
	target.scale = mo.scale.pos
	target.rotation = mo.rot.pos
	return target
}

// departingCard is an evicted top card riding its exit spring. It is no
// longer part of the window; once the spring settles it is dropped and the
// z-order map is rebuilt for the two live cards.
type departingCard struct {
	card   card
	motion cardMotion
	target cardVisual
}

func (d departingCard) done() bool {
	return d.motion.settled(d.target)
}
