// Package status provides the bottom status bar for the viewer.
// It renders the current render window, size statistics and edge state.
package status

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/miosa/osa-vlist/style"
	"github.com/miosa/osa-vlist/ui/common"
	"github.com/miosa/osa-vlist/virtual"
)

// sourceWidth caps the source name segment.
const sourceWidth = 32

// Edge is the last edge the viewport touched.
type Edge int

const (
	EdgeNone Edge = iota
	EdgeTop
	EdgeBottom
)

// Model is the status bar state. Drive it via setter methods; it has no Update loop.
type Model struct {
	width    int
	rng      virtual.Range
	total    int
	shown    int
	offset   int
	size     float64
	measured int
	average  float64
	edge     Edge
	filter   string
	loading  bool
	spinner  string
	source   string
}

// New returns a zero-value Model.
func New() Model {
	return Model{}
}

// SetWidth sets the bar width.
func (m *Model) SetWidth(w int) { m.width = w }

// SetSource names what is being viewed, a file name or "generated".
func (m *Model) SetSource(s string) { m.source = s }

// SetRange stores the latest render window.
func (m *Model) SetRange(r virtual.Range) { m.rng = r }

// SetCounts stores the unfiltered and visible item counts.
func (m *Model) SetCounts(total, shown int) {
	m.total = total
	m.shown = shown
}

// SetScroll stores the scroll offset and estimated content size in rows.
func (m *Model) SetScroll(offset int, size float64) {
	m.offset = offset
	m.size = size
}

// SetStats stores how many items are measured and their mean height.
func (m *Model) SetStats(measured int, average float64) {
	m.measured = measured
	m.average = average
}

// SetEdge records the last edge reached.
func (m *Model) SetEdge(e Edge) { m.edge = e }

// SetFilter stores the active filter string.
func (m *Model) SetFilter(f string) { m.filter = f }

// SetLoading marks a pending append.
func (m *Model) SetLoading(on bool) { m.loading = on }

// SetSpinner sets the glyph drawn before the loading marker.
func (m *Model) SetSpinner(glyph string) { m.spinner = glyph }

// View renders the status bar as one line.
func (m Model) View() string {
	if m.width <= 0 {
		return ""
	}
	left := []string{}
	if m.source != "" {
		left = append(left, style.StatusValue.Render(common.TruncatePath(m.source, sourceWidth)))
	}
	left = append(left, m.rangeSegment())
	left = append(left, pair("pad", fmt.Sprintf("%.0f/%.0f", m.rng.PadFront, m.rng.PadBehind)))
	left = append(left, pair("avg", fmt.Sprintf("%.1f", m.average)))
	left = append(left, pair("measured", fmt.Sprintf("%d", m.measured)))
	if m.filter != "" {
		left = append(left, pair("filter", m.filter))
	}

	var right []string
	if p := EdgePill(m.edge); p != "" {
		right = append(right, p)
	}
	if m.loading {
		marker := style.StatusEdge.Render("loading")
		if m.spinner != "" {
			marker = m.spinner + " " + marker
		}
		right = append(right, marker)
	}
	right = append(right, style.StatusKey.Render(percent(m.offset, m.size)))

	sep := style.StatusKey.Render(" · ")
	l := strings.Join(left, sep)
	r := strings.Join(right, sep)

	// Leave room for the bar's horizontal padding.
	inner := max(0, m.width-2)
	gap := inner - lipgloss.Width(l) - lipgloss.Width(r)
	line := l + style.StatusKey.Render(strings.Repeat(" ", max(1, gap))) + r
	if gap < 1 {
		line = ansi.Truncate(l, inner, "…")
	}
	return style.StatusBar.Width(m.width).Render(line)
}

// rangeSegment renders "12–27 of 100", with the unfiltered total when a
// filter hides items.
func (m Model) rangeSegment() string {
	var win string
	if m.rng.Empty() {
		win = "empty"
	} else {
		win = fmt.Sprintf("%d–%d", m.rng.Start, m.rng.End)
	}
	count := fmt.Sprintf("%d", m.shown)
	if m.total != m.shown {
		count = fmt.Sprintf("%d/%d", m.shown, m.total)
	}
	return pair("rows", win+" of "+count)
}

func pair(k, v string) string {
	return style.StatusKey.Render(k+" ") + style.StatusValue.Render(v)
}

// percent renders how far down the content the viewport is.
func percent(offset int, size float64) string {
	if size <= 0 {
		return "All"
	}
	p := int(float64(offset) / size * 100)
	return fmt.Sprintf("%d%%", max(0, min(100, p)))
}
