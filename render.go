package main

import (
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// ---------------------------------------------------------------------------
// Styles — Catppuccin Mocha themed
// ---------------------------------------------------------------------------

var (
	// Loading / status text
	statusStyle = lipgloss.NewStyle().Foreground(colorSubtext0)

	// Footer bar
	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle).
			Padding(0, 2)

	// Status bar (above footer)
	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext1).
			Background(colorSurface0).
			Padding(0, 2)

	// Help key styling
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0)

	cardBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface2)

	acceptBadgeStyle = lipgloss.NewStyle().
				Foreground(colorCrust).
				Background(colorSuccess).
				Bold(true).
				Padding(0, 1)

	rejectBadgeStyle = lipgloss.NewStyle().
				Foreground(colorCrust).
				Background(colorError).
				Bold(true).
				Padding(0, 1)
)

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m model) View() string {
	if !m.ready {
		return statusStyle.Render("Loading...")
	}
	body := m.renderDeck()
	statusLine := m.renderStatus(m.status)
	footer := m.renderFooter(m.keys.HelpBindings(scopeDeck))
	return m.placeWithFooter(body, statusLine, footer)
}

// renderDeck composites every live card, plus the departing corpse if one is
// mid-exit, back-to-front by stacking value.
func (m model) renderDeck() string {
	aw, ah := m.deckAreaSize()
	cw, ch := m.cardSize()
	ox, oy := m.cardOrigin()

	var layers []layer
	for i, c := range m.window {
		target := visualFor(c, i == 0, m.gesture, m.zorder)
		v := target
		if i == 0 {
			v = m.topMotion.current(target)
		}
		layers = append(layers, layer{
			content:  renderCard(c, v, cw, ch),
			x:        ox + int(math.Round(v.offsetX)),
			y:        oy + int(math.Round(v.offsetY)),
			stacking: v.stacking,
		})
	}
	if d := m.departing; d != nil {
		v := d.motion.current(d.target)
		layers = append(layers, layer{
			content:  renderCard(d.card, v, cw, ch),
			x:        ox + int(math.Round(v.offsetX)),
			y:        oy + int(math.Round(v.offsetY)),
			stacking: zDeparting,
		})
	}
	return compositeLayers(aw, ah, layers)
}

// ---------------------------------------------------------------------------
// Card rendering
// ---------------------------------------------------------------------------

// renderCard draws one card box. Scale shrinks the box, rotation is
// approximated with a per-row shear, and badges appear only at full opacity.
func renderCard(c card, v cardVisual, baseW, baseH int) string {
	sw := int(math.Round(float64(baseW) * v.scale))
	sh := int(math.Round(float64(baseH) * v.scale))
	if sw < 8 {
		sw = 8
	}
	if sh < 4 {
		sh = 4
	}

	face := cardBorderStyle.
		Width(sw - 2).
		Height(sh - 2).
		Background(c.color).
		Foreground(contrastColor(c.color)).
		Align(lipgloss.Center, lipgloss.Center)
	box := face.Render(string(c.color))

	if v.acceptOpacity >= 1 {
		box = overlayAt(box, acceptBadgeStyle.Render("ACCEPT"), 2, 1, sw, sh)
	}
	if v.rejectOpacity >= 1 {
		badge := rejectBadgeStyle.Render("REJECT")
		box = overlayAt(box, badge, max(2, sw-2-lipgloss.Width(badge)), 1, sw, sh)
	}
	return shearLines(box, v.rotation)
}

// shearLines fakes rotation: each row shifts horizontally in proportion to
// its distance from the vertical center. Offsets are normalized so no row
// needs a negative indent.
func shearLines(s string, deg float64) string {
	if math.Abs(deg) < 1 {
		return s
	}
	if deg > 45 {
		deg = 45
	}
	if deg < -45 {
		deg = -45
	}
	shear := math.Tan(deg * math.Pi / 180)
	lines := splitLines(s)
	mid := float64(len(lines)-1) / 2

	offsets := make([]int, len(lines))
	minOff := 0
	for i := range lines {
		off := int(math.Round(shear * (float64(i) - mid) * 0.5))
		offsets[i] = off
		if off < minOff {
			minOff = off
		}
	}
	for i := range lines {
		if pad := offsets[i] - minOff; pad > 0 {
			lines[i] = strings.Repeat(" ", pad) + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}

// ---------------------------------------------------------------------------
// Chrome
// ---------------------------------------------------------------------------

func (m model) renderFooter(bindings []key.Binding) string {
	// Build help text where every character carries the footer background.
	bg := colorMantle
	keyStyle := helpKeyStyle.Background(bg)
	descStyle := helpDescStyle.Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(help.Key)+space+descStyle.Render(help.Desc))
	}
	content := strings.Join(parts, sep)

	if m.width == 0 {
		return footerStyle.Render(content)
	}
	return footerStyle.Width(m.width).Render(content)
}

func (m model) renderStatus(text string) string {
	flat := strings.ReplaceAll(text, "\n", " ")
	style := statusBarStyle
	if m.statusErr {
		style = style.Foreground(colorError)
	}
	if m.width == 0 {
		return style.Render(flat)
	}
	return style.Width(m.width).Render(flat)
}

func (m model) placeWithFooter(body, statusLine, footer string) string {
	if m.height == 0 {
		return body + "\n\n" + statusLine + "\n" + footer
	}
	contentHeight := m.height - 2
	if contentHeight < 1 {
		contentHeight = 1
	}
	if lipgloss.Height(body) >= contentHeight {
		return body + "\n" + statusLine + "\n" + footer
	}
	main := lipgloss.Place(m.width, contentHeight, lipgloss.Left, lipgloss.Top, body)
	// Ensure every line is full-width to prevent ghosting from previous frames
	lines := splitLines(main)
	for i, line := range lines {
		lines[i] = padRight(line, m.width)
	}
	main = strings.Join(lines, "\n")
	return main + "\n" + statusLine + "\n" + footer
}
