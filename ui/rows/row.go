// Package rows holds the content shown by the viewer: plain text, markdown
// and source code blocks, each rendered at whatever width the list asks for.
package rows

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/miosa/osa-vlist/style"
	"github.com/miosa/osa-vlist/ui/list"
)

// Kind selects how a row is rendered.
type Kind int

const (
	KindText Kind = iota
	KindMarkdown
	KindCode
)

func (k Kind) String() string {
	switch k {
	case KindMarkdown:
		return "markdown"
	case KindCode:
		return "code"
	default:
		return "text"
	}
}

// Row is one block of content. Rows are mutable through SetBody and
// SetMatches, both of which bump the content version so cached renders
// are refreshed.
type Row struct {
	id       string
	kind     Kind
	filename string
	body     string
	version  int
	matches  []int
	alt      bool
}

var (
	_ list.Item          = (*Row)(nil)
	_ list.Filterable    = (*Row)(nil)
	_ list.MatchSettable = (*Row)(nil)
)

// NewText returns a wrapped plain-text row.
func NewText(id, body string) *Row {
	return &Row{id: id, kind: KindText, body: body, version: 1}
}

// NewMarkdown returns a row rendered through glamour.
func NewMarkdown(id, body string) *Row {
	return &Row{id: id, kind: KindMarkdown, body: body, version: 1}
}

// NewCode returns a syntax-highlighted row; filename picks the lexer.
func NewCode(id, filename, body string) *Row {
	return &Row{id: id, kind: KindCode, filename: filename, body: body, version: 1}
}

func (r *Row) ID() string          { return r.id }
func (r *Row) ContentVersion() int { return r.version }
func (r *Row) FilterValue() string { return r.body }
func (r *Row) Kind() Kind          { return r.kind }
func (r *Row) Body() string        { return r.body }

// SetBody replaces the content.
func (r *Row) SetBody(body string) {
	if body == r.body {
		return
	}
	r.body = body
	r.version++
}

// SetAlt toggles the alternate background used to tell adjacent text rows
// apart.
func (r *Row) SetAlt(alt bool) {
	if alt != r.alt {
		r.alt = alt
		r.version++
	}
}

// SetMatches records the filter match positions within the body.
func (r *Row) SetMatches(indices []int) {
	if len(indices) == 0 && len(r.matches) == 0 {
		return
	}
	r.matches = indices
	r.version++
}

// Render draws the row at width cells.
func (r *Row) Render(width int) string {
	if width <= 0 {
		return ""
	}
	switch r.kind {
	case KindMarkdown:
		return renderMarkdown(r.body, width)
	case KindCode:
		return r.renderCode(width)
	default:
		return r.renderText(width)
	}
}

func (r *Row) renderText(width int) string {
	s := style.RowText
	if r.alt {
		s = style.RowAlt
	}
	return s.Width(width).Render(r.highlighted())
}

func (r *Row) renderCode(width int) string {
	// Border and padding take two cells.
	inner := max(1, width-2)
	header := style.CodeHeader.Render(r.filename)
	code := Highlight(r.filename, r.body, inner)
	return style.CodeBlock.Render(lipgloss.JoinVertical(lipgloss.Left, header, code))
}

// highlighted styles the matched span of the body.
func (r *Row) highlighted() string {
	if len(r.matches) == 0 {
		return r.body
	}
	from, to := r.matches[0], r.matches[len(r.matches)-1]+1
	if from < 0 || to > len(r.body) || from >= to {
		return r.body
	}
	var b strings.Builder
	b.WriteString(r.body[:from])
	b.WriteString(style.RowMatch.Render(r.body[from:to]))
	b.WriteString(r.body[to:])
	return b.String()
}

// Items converts rows to list items.
func Items(rs []*Row) []list.Item {
	out := make([]list.Item, len(rs))
	for i, r := range rs {
		out[i] = r
	}
	return out
}
