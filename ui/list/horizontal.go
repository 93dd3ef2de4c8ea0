package list

import (
	"math"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/miosa/osa-vlist/ui/common"
)

// column is the visible slice of one item, slot or spacer in horizontal
// mode. Every line is padded to width; index is -1 for slots and spacers.
type column struct {
	index int
	width int
	lines []string
}

// columns resolves the strips inside the viewport, left to right.
func (m Model) columns() []column {
	if m.height <= 0 || m.width <= 0 {
		return nil
	}
	left, right := m.offset, m.offset+m.width
	var out []column
	pos := 0

	place := func(index int, lines []string, w int) {
		from, to := max(pos, left), min(pos+w, right)
		if from < to {
			c := column{index: index, width: to - from, lines: make([]string, m.height)}
			for y := range c.lines {
				s := ""
				if y < len(lines) {
					s = ansi.Cut(lines[y], from-pos, to-pos)
				}
				c.lines[y] = common.PadRight(s, c.width)
			}
			out = append(out, c)
		}
		pos += w
	}

	place(-1, splitLines(m.header), blockWidth(m.header))
	r := m.engine.Range()
	if !r.Empty() {
		place(-1, nil, int(math.Round(r.PadFront)))
		for i := r.Start; i <= r.End && pos < right; i++ {
			if i >= len(m.items) {
				continue
			}
			lines := m.linesOf(m.items[i])
			place(i, lines, int(m.extent(lines)))
		}
		place(-1, nil, int(math.Round(r.PadBehind)))
	}
	place(-1, splitLines(m.footer), blockWidth(m.footer))
	return out
}

// viewColumns joins the visible strips side by side.
func (m Model) viewColumns() string {
	cols := m.columns()
	if len(cols) == 0 {
		return ""
	}
	blocks := make([]string, len(cols))
	for i, c := range cols {
		blocks[i] = strings.Join(c.lines, "\n")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

// columnIndexAt resolves a viewport column to an item index, or -1.
func (m Model) columnIndexAt(x int) int {
	if x < 0 {
		return -1
	}
	for _, c := range m.columns() {
		if x < c.width {
			return c.index
		}
		x -= c.width
	}
	return -1
}

// visibleColumns returns the indices of items with at least one visible
// column.
func (m Model) visibleColumns() []int {
	var result []int
	for _, c := range m.columns() {
		if c.index >= 0 {
			result = append(result, c.index)
		}
	}
	return result
}
