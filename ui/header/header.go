// Package header renders the header and footer slots that scroll with the
// list content.
package header

import (
	"fmt"
	"strings"

	"github.com/miosa/osa-vlist/style"
	"github.com/miosa/osa-vlist/ui/common"
)

// Model holds what the slots describe.
type Model struct {
	version  string
	source   string
	total    int
	shown    int
	infinite bool
	width    int
}

// New returns a Model for the given program version.
func New(version string) Model {
	return Model{version: version}
}

// SetSource updates the displayed source name.
func (m *Model) SetSource(s string) { m.source = s }

// SetCounts updates the unfiltered and visible row counts.
func (m *Model) SetCounts(total, shown int) {
	m.total = total
	m.shown = shown
}

// SetInfinite marks that more rows load past the end.
func (m *Model) SetInfinite(on bool) { m.infinite = on }

// SetWidth updates the width the slots are rendered at.
func (m *Model) SetWidth(w int) { m.width = w }

// View returns the one-line summary, e.g. "osa-vlist v1 · notes.md · 120 rows".
func (m Model) View() string {
	title := style.Gradient("osa-vlist", true)
	parts := []string{}
	if m.version != "" {
		parts = append(parts, m.version)
	}
	if m.source != "" {
		parts = append(parts, common.TruncatePath(m.source, max(10, m.width/2)))
	}
	parts = append(parts, fmt.Sprintf("%d rows", m.total))
	return title + style.SlotMeta.Render(" · "+strings.Join(parts, " · "))
}

// HeaderView returns the header slot: the summary over a separator.
func (m Model) HeaderView() string {
	if m.width <= 0 {
		return ""
	}
	return style.SlotHeader.Width(m.width).Render(m.View())
}

// FooterView returns the footer slot shown after the last row.
func (m Model) FooterView() string {
	if m.width <= 0 {
		return ""
	}
	text := fmt.Sprintf("end · %d rows", m.shown)
	if m.shown != m.total {
		text = fmt.Sprintf("end · %d of %d rows", m.shown, m.total)
	}
	if m.infinite && m.shown == m.total {
		text += " · scroll for more"
	}
	return style.SlotFooter.Width(m.width).Render(style.SlotMeta.Render(text))
}
