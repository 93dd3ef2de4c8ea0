// Package anim provides the braille spinner shown while a page of rows loads.
package anim

import (
	"image/color"
	"math"
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/miosa/osa-vlist/style"
)

const frameDuration = time.Second / 20

var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// ids keeps TickMsg from crossing between spinners.
var ids atomic.Int64

// TickMsg advances the spinner with the matching ID.
type TickMsg struct {
	ID int64
}

// Model is a gradient braille spinner. It renders nothing while stopped.
type Model struct {
	id       int64
	spinning bool
	frame    int
	rendered []string
}

// New returns a stopped spinner colored with the current theme.
func New() Model {
	m := Model{id: ids.Add(1)}
	m.recolor()
	return m
}

// Start begins spinning and returns the first tick. Starting a running
// spinner returns nil so only one tick chain is alive.
func (m *Model) Start() tea.Cmd {
	if m.spinning {
		return nil
	}
	m.spinning = true
	m.frame = 0
	return m.tick()
}

// Stop halts the spinner; pending ticks are ignored.
func (m *Model) Stop() { m.spinning = false }

// Spinning reports whether the spinner is running.
func (m Model) Spinning() bool { return m.spinning }

// Update advances one frame on this spinner's TickMsg.
func (m Model) Update(message tea.Msg) (Model, tea.Cmd) {
	t, ok := message.(TickMsg)
	if !ok || t.ID != m.id || !m.spinning {
		return m, nil
	}
	m.frame = (m.frame + 1) % len(frames)
	return m, m.tick()
}

// View returns the current glyph, or "" when stopped.
func (m Model) View() string {
	if !m.spinning {
		return ""
	}
	return m.rendered[m.frame]
}

func (m Model) tick() tea.Cmd {
	id := m.id
	return tea.Tick(frameDuration, func(time.Time) tea.Msg { return TickMsg{ID: id} })
}

// recolor pre-renders every frame, bouncing between the theme colors.
func (m *Model) recolor() {
	var from, to color.Color = style.Primary, style.Secondary
	n := len(frames)
	m.rendered = make([]string, n)
	for i, glyph := range frames {
		t := (math.Sin(math.Pi*float64(i)/float64(n-1)) + 1) / 2
		c := style.LerpColor(from, to, t)
		m.rendered[i] = lipgloss.NewStyle().Foreground(c).Render(glyph)
	}
}
