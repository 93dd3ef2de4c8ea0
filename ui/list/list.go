// Package list provides the windowed, variable-height scrollable list used by
// the viewer. It is the adapter between bubbletea and the windowing core in
// package virtual:
//
//   - Item identities (Item.ID) are the core's keys; the ordered id sequence
//     is pushed to the engine whenever the data set changes.
//   - Only the items inside the engine's Range are rendered. Every render is
//     measured with lipgloss and reported back through SaveSize, so sizes
//     start as estimates and converge as the user scrolls.
//   - Scroll offsets are in terminal rows and include the header slot, which
//     scrolls with the content; the footer slot follows the last item.
//   - Renders are cached per item and invalidated on width or
//     content-version changes.
//   - WithHorizontal lays items out left to right instead; sizes and offsets
//     are then columns (see horizontal.go).
package list

import (
	"math"
	"slices"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/miosa/osa-vlist/internal/logging"
	"github.com/miosa/osa-vlist/msg"
	"github.com/miosa/osa-vlist/ui/common"
	"github.com/miosa/osa-vlist/virtual"
)

// wheelStep is the number of rows scrolled per mouse wheel notch.
const wheelStep = 3

// ---------------------------------------------------------------------------
// Public interfaces
// ---------------------------------------------------------------------------

// Item is anything the list can render. Its height is not declared up
// front: the list measures whatever Render returns.
type Item interface {
	// ID returns a unique, stable identifier. It keys the size ledger and
	// the render cache, and must survive reordering of the data set.
	ID() string

	// ContentVersion changes whenever the item's content changes; the cached
	// render and measured size are refreshed when it does.
	ContentVersion() int

	// Render returns the rendered string for the given width.
	Render(width int) string
}

// MouseClickable items can handle click events.
type MouseClickable interface {
	HandleClick(x, y int) tea.Cmd
}

// ---------------------------------------------------------------------------
// Options
// ---------------------------------------------------------------------------

// Option is a functional option for New.
type Option func(*Model)

// WithWidth sets the initial viewport width.
func WithWidth(w int) Option {
	return func(m *Model) { m.width = w }
}

// WithHeight sets the initial viewport height in rows.
func WithHeight(h int) Option {
	return func(m *Model) { m.height = h }
}

// WithKeeps sets how many items stay rendered at once.
func WithKeeps(n int) Option {
	return func(m *Model) { m.keeps = n }
}

// WithBuffer sets the extra items rendered on each side of the viewport.
// Without it the buffer is a third of keeps.
func WithBuffer(n int) Option {
	return func(m *Model) { m.buffer = n }
}

// WithEstimatedSize sets the row height assumed for unmeasured items.
func WithEstimatedSize(rows float64) Option {
	return func(m *Model) { m.estimate = rows }
}

// WithDisabled renders every item and turns windowing off.
func WithDisabled(d bool) Option {
	return func(m *Model) { m.disabled = d }
}

// WithStart positions the list at item index once items are set.
func WithStart(index int) Option {
	return func(m *Model) { m.pendingStart = index }
}

// WithOffset positions the list at a raw row offset once items are set.
// WithStart wins when both are given.
func WithOffset(rows int) Option {
	return func(m *Model) { m.pendingOffset = rows }
}

// WithThresholds sets how close to either end a scroll must land, in rows,
// to count as reaching the top or bottom.
func WithThresholds(upper, lower int) Option {
	return func(m *Model) {
		m.upperThreshold = max(0, upper)
		m.lowerThreshold = max(0, lower)
	}
}

// WithScrollbar reserves the rightmost column for a scrollbar.
func WithScrollbar(on bool) Option {
	return func(m *Model) { m.scrollbar = on }
}

// WithHorizontal lays items out left to right. Items are measured by their
// rendered width, offsets count columns, and the viewport span is the width.
// Slots sit left and right of the items. There is no scrollbar column.
func WithHorizontal(on bool) Option {
	return func(m *Model) { m.horizontal = on }
}

// WithKeyMap replaces the scroll bindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) { m.keys = k }
}

// WithLogger sets the logger used by the list and its engine.
func WithLogger(l logging.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

// ---------------------------------------------------------------------------
// Cache
// ---------------------------------------------------------------------------

type cachedRender struct {
	lines   []string
	width   int
	version int
}

// window receives range notifications from the engine. It lives on the heap
// so the listener stays valid across copies of Model.
type window struct {
	rng   virtual.Range
	dirty bool
}

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

// Model is a windowed scrollable list.
// The zero value is not usable; construct with New.
type Model struct {
	items []Item
	ids   []string

	width  int
	height int

	// offset is the row at the top of the viewport, header included.
	offset int

	keeps      int
	buffer     int
	estimate   float64
	disabled   bool
	horizontal bool

	header string
	footer string

	upperThreshold int
	lowerThreshold int
	scrollbar      bool

	// Initial position, applied once the first items arrive; -1 when unset.
	pendingStart  int
	pendingOffset int

	engine *virtual.Engine[string]
	win    *window
	cache  map[string]cachedRender
	keys   KeyMap
	log    logging.Logger
}

// New constructs a Model with the supplied options.
func New(opts ...Option) Model {
	m := Model{
		keeps:         virtual.DefaultKeeps,
		buffer:        -1,
		estimate:      virtual.DefaultEstimatedSize,
		pendingStart:  -1,
		pendingOffset: -1,
		win:           &window{},
		cache:         make(map[string]cachedRender),
		keys:          DefaultKeyMap(),
		log:           logging.Discard,
	}
	for _, o := range opts {
		o(&m)
	}
	if m.buffer < 0 {
		m.buffer = virtual.RecommendedBuffer(m.keeps)
	}
	m.newEngine()
	return m
}

// newEngine replaces the engine, carrying over ids, slots and offset. Sizes
// measured so far are dropped with the old engine.
func (m *Model) newEngine() {
	if m.engine != nil {
		m.engine.Destroy()
	}
	win := m.win
	m.engine = virtual.New(m.ids, func(r virtual.Range) {
		win.rng = r
		win.dirty = true
	},
		virtual.WithKeeps(m.keeps),
		virtual.WithBuffer(m.buffer),
		virtual.WithEstimatedSize(m.estimate),
		virtual.WithSlotHeaderSize(float64(m.slotSize(m.header))),
		virtual.WithSlotFooterSize(float64(m.slotSize(m.footer))),
		virtual.WithDisabled(m.disabled),
		virtual.WithLogger(m.log),
	)
	m.win.rng = m.engine.Range()
	m.engine.HandleScroll(float64(m.offset))
}

// ---------------------------------------------------------------------------
// Mutations
// ---------------------------------------------------------------------------

// SetSize updates the viewport dimensions. A width change invalidates every
// render and every measured size, since wrapping depends on width.
func (m *Model) SetSize(w, h int) tea.Cmd {
	widthChanged := w != m.width
	m.width = w
	m.height = h
	if widthChanged {
		m.cache = make(map[string]cachedRender)
		m.newEngine()
	}
	m.reanchor()
	m.settle()
	return m.flush()
}

// SetItems replaces the item slice. When the id sequence changed the engine
// is told about the new data set and keeps the current scroll position.
func (m *Model) SetItems(items []Item) tea.Cmd {
	m.items = slices.Clone(items)
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID()
	}
	if !slices.Equal(ids, m.ids) {
		m.ids = ids
		m.engine.SetUniqueIDs(ids)
		m.engine.HandleDataSourcesChange()
	}
	m.applyPending()
	m.reanchor()
	m.settle()
	return m.flush()
}

// AppendItems adds items to the end of the list.
func (m *Model) AppendItems(items ...Item) tea.Cmd {
	if len(items) == 0 {
		return nil
	}
	return m.SetItems(append(slices.Clone(m.items), items...))
}

// PrependItems inserts items at the beginning of the list and shifts the
// offset by their estimated size so the visible content does not move.
func (m *Model) PrependItems(items ...Item) tea.Cmd {
	if len(items) == 0 {
		return nil
	}
	cmd := m.SetItems(append(slices.Clone(items), m.items...))
	shift := m.engine.Offset(len(items)) - m.engine.Offset(0)
	m.offset += int(math.Round(shift))
	m.reanchor()
	m.settle()
	return tea.Batch(cmd, m.flush())
}

// UpdateItem replaces the item with the given id in place and drops its
// cached render. If the id is not found, the call is a no-op.
func (m *Model) UpdateItem(id string, item Item) tea.Cmd {
	i := slices.Index(m.ids, id)
	if i < 0 {
		return nil
	}
	m.items[i] = item
	delete(m.cache, id)
	if item.ID() != id {
		return m.SetItems(m.items)
	}
	m.settle()
	return m.flush()
}

// SetScrollbar shows or hides the scrollbar column. Items then render at a
// different width, so every render and size is redone.
func (m *Model) SetScrollbar(on bool) tea.Cmd {
	if on == m.scrollbar {
		return nil
	}
	m.scrollbar = on
	if !m.horizontal {
		m.cache = make(map[string]cachedRender)
		m.newEngine()
	}
	m.reanchor()
	m.settle()
	return m.flush()
}

// Scrollbar reports whether the scrollbar column is shown.
func (m Model) Scrollbar() bool { return m.scrollbar }

// SetHeader replaces the header slot.
func (m *Model) SetHeader(s string) tea.Cmd { return m.SetSlots(s, m.footer) }

// SetFooter replaces the footer slot.
func (m *Model) SetFooter(s string) tea.Cmd { return m.SetSlots(m.header, s) }

// SetSlots replaces both slots and recomputes the window once.
func (m *Model) SetSlots(header, footer string) tea.Cmd {
	oldH, oldF := m.slotSize(m.header), m.slotSize(m.footer)
	m.header, m.footer = header, footer
	newH, newF := m.slotSize(header), m.slotSize(footer)
	if oldH != newH || oldF != newF {
		m.engine.UpdateParam(
			virtual.WithSlotHeaderSize(float64(newH)),
			virtual.WithSlotFooterSize(float64(newF)),
		)
		m.engine.HandleSlotSizeChange()
		m.reanchor()
		m.settle()
	}
	return m.flush()
}

// ---------------------------------------------------------------------------
// Scroll
// ---------------------------------------------------------------------------

// ScrollTo moves the viewport top to row offset and reports the outcome:
// a range change (if any) and one of the edge messages.
func (m *Model) ScrollTo(offset int) tea.Cmd {
	m.offset = offset
	m.clampOffset()
	m.engine.HandleScroll(float64(m.offset))
	m.settle()
	return tea.Batch(m.flush(), m.edgeCmd())
}

// ScrollDown scrolls toward the end by n rows.
func (m *Model) ScrollDown(n int) tea.Cmd { return m.ScrollTo(m.offset + n) }

// ScrollUp scrolls toward the start by n rows.
func (m *Model) ScrollUp(n int) tea.Cmd { return m.ScrollTo(m.offset - n) }

// PageDown scrolls toward the end by one viewport.
func (m *Model) PageDown() tea.Cmd { return m.ScrollDown(m.span()) }

// PageUp scrolls toward the start by one viewport.
func (m *Model) PageUp() tea.Cmd { return m.ScrollUp(m.span()) }

// HalfPageDown scrolls toward the end by half a viewport.
func (m *Model) HalfPageDown() tea.Cmd { return m.ScrollDown(max(1, m.span()/2)) }

// HalfPageUp scrolls toward the start by half a viewport.
func (m *Model) HalfPageUp() tea.Cmd { return m.ScrollUp(max(1, m.span()/2)) }

// ScrollToTop moves to the very first row.
func (m *Model) ScrollToTop() tea.Cmd { return m.ScrollTo(0) }

// ScrollToBottom moves so the last row sits at the bottom of the viewport.
// Sizes below the window are estimates until measured, so the jump is
// repeated until the bottom stops moving.
func (m *Model) ScrollToBottom() tea.Cmd {
	var cmd tea.Cmd
	for range 4 {
		prev := m.maxOffset()
		cmd = m.ScrollTo(math.MaxInt32)
		if m.maxOffset() == prev {
			break
		}
	}
	return cmd
}

// ScrollToIndex moves the viewport so item index starts at the top.
func (m *Model) ScrollToIndex(index int) tea.Cmd {
	if len(m.items) == 0 {
		return nil
	}
	index = max(0, min(index, len(m.items)-1))
	m.ScrollTo(m.rowOf(index))
	// The first pass measured the neighbourhood; land on the refined offset.
	return m.ScrollTo(m.rowOf(index))
}

// AtTop reports whether the viewport shows the first row.
func (m Model) AtTop() bool { return m.offset == 0 }

// AtBottom reports whether the viewport shows the last row.
func (m Model) AtBottom() bool { return m.offset >= m.maxOffset() }

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

// Range returns the engine's current render window.
func (m Model) Range() virtual.Range { return m.engine.Range() }

// Offset returns the row at the top of the viewport.
func (m Model) Offset() int { return m.offset }

// Len returns the number of items.
func (m Model) Len() int { return len(m.items) }

// Items returns the current items.
func (m Model) Items() []Item { return m.items }

// TotalSize returns the estimated number of rows of the whole content.
func (m Model) TotalSize() float64 { return m.engine.TotalSize() }

// Measured returns how many items have a measured height.
func (m Model) Measured() int { return m.engine.Ledger().Measured() }

// AverageSize returns the mean measured item height.
func (m Model) AverageSize() float64 { return m.engine.Ledger().Average() }

// IsUpper reports whether the window starts at the first item.
func (m Model) IsUpper() bool { return m.engine.IsUpper() }

// IsLower reports whether the window ends at the last item.
func (m Model) IsLower() bool { return m.engine.IsLower() }

// Direction returns the direction of the last scroll.
func (m Model) Direction() virtual.Direction { return m.engine.Direction() }

// Keys returns the scroll bindings.
func (m Model) Keys() KeyMap { return m.keys }

// Destroy releases the engine listener. The model must not be used after.
func (m *Model) Destroy() { m.engine.Destroy() }

// ---------------------------------------------------------------------------
// Position helpers
// ---------------------------------------------------------------------------

// row is one line of the viewport: its text and the item it belongs to
// (-1 for header, footer and spacer rows).
type row struct {
	index int
	text  string
}

// layout resolves the rows currently inside the viewport.
func (m Model) layout() []row {
	if m.height <= 0 || m.width <= 0 {
		return nil
	}
	top, bottom := m.offset, m.offset+m.height
	out := make([]row, 0, m.height)
	pos := 0

	emit := func(index int, lines []string) {
		if pos+len(lines) <= top || pos >= bottom {
			pos += len(lines)
			return
		}
		for _, l := range lines {
			if pos >= top && pos < bottom {
				out = append(out, row{index: index, text: l})
			}
			pos++
		}
	}
	blank := func(n int) {
		from, to := max(pos, top), min(pos+n, bottom)
		for i := from; i < to; i++ {
			out = append(out, row{index: -1})
		}
		pos += n
	}

	emit(-1, splitLines(m.header))
	r := m.engine.Range()
	if !r.Empty() {
		blank(int(math.Round(r.PadFront)))
		for i := r.Start; i <= r.End && pos < bottom; i++ {
			if i >= len(m.items) {
				continue
			}
			emit(i, m.linesOf(m.items[i]))
		}
		blank(int(math.Round(r.PadBehind)))
	}
	emit(-1, splitLines(m.footer))
	return out
}

// ItemIndexAt resolves a viewport cell to the index of the item rendered
// there. Returns -1 for slots, spacers, and cells outside the viewport.
func (m Model) ItemIndexAt(x, y int) int {
	if m.horizontal {
		if y < 0 || y >= m.height {
			return -1
		}
		return m.columnIndexAt(x)
	}
	return m.ItemIndexAtPosition(y)
}

// ItemIndexAtPosition resolves a y coordinate (relative to the top of the
// viewport) to the index of the item rendered there. Returns -1 for header,
// footer, spacer rows, and coordinates outside the viewport. In horizontal
// mode the coordinate is a column.
func (m Model) ItemIndexAtPosition(y int) int {
	if m.horizontal {
		return m.columnIndexAt(y)
	}
	rows := m.layout()
	if y < 0 || y >= len(rows) {
		return -1
	}
	return rows[y].index
}

// VisibleItemIndices returns the indices of items currently in the viewport.
func (m Model) VisibleItemIndices() []int {
	if m.horizontal {
		return m.visibleColumns()
	}
	var result []int
	for _, r := range m.layout() {
		if r.index >= 0 && (len(result) == 0 || result[len(result)-1] != r.index) {
			result = append(result, r.index)
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Cache management
// ---------------------------------------------------------------------------

// InvalidateCache forces all cached renders to be discarded.
func (m *Model) InvalidateCache() {
	m.cache = make(map[string]cachedRender)
}

// InvalidateItem discards the cached render for the item with the given id.
func (m *Model) InvalidateItem(id string) {
	delete(m.cache, id)
}

// ---------------------------------------------------------------------------
// Update (bubbletea)
// ---------------------------------------------------------------------------

// Update handles mouse wheel, click, and scroll key events. Callers forward
// whichever tea.Msg events they want the list to respond to.
func (m Model) Update(message tea.Msg) (Model, tea.Cmd) {
	switch v := message.(type) {
	case tea.MouseWheelMsg:
		switch v.Button {
		case tea.MouseWheelUp:
			return m, m.ScrollUp(wheelStep)
		case tea.MouseWheelDown:
			return m, m.ScrollDown(wheelStep)
		}
	case tea.MouseClickMsg:
		idx := m.ItemIndexAt(v.X, v.Y)
		if idx >= 0 && idx < len(m.items) {
			if mc, ok := m.items[idx].(MouseClickable); ok {
				return m, mc.HandleClick(v.X, v.Y)
			}
		}
	case tea.KeyPressMsg:
		switch {
		case key.Matches[tea.KeyPressMsg](v, m.keys.LineUp):
			return m, m.ScrollUp(1)
		case key.Matches[tea.KeyPressMsg](v, m.keys.LineDown):
			return m, m.ScrollDown(1)
		case key.Matches[tea.KeyPressMsg](v, m.keys.PageUp):
			return m, m.PageUp()
		case key.Matches[tea.KeyPressMsg](v, m.keys.PageDown):
			return m, m.PageDown()
		case key.Matches[tea.KeyPressMsg](v, m.keys.HalfPageUp):
			return m, m.HalfPageUp()
		case key.Matches[tea.KeyPressMsg](v, m.keys.HalfPageDown):
			return m, m.HalfPageDown()
		case key.Matches[tea.KeyPressMsg](v, m.keys.Top):
			return m, m.ScrollToTop()
		case key.Matches[tea.KeyPressMsg](v, m.keys.Bottom):
			return m, m.ScrollToBottom()
		}
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

// View renders the rows inside the viewport. Items outside the engine's
// window are never rendered.
func (m Model) View() string {
	if m.horizontal {
		return m.viewColumns()
	}
	rows := m.layout()
	if len(rows) == 0 {
		return ""
	}
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = r.text
	}
	lines = common.FitLines(lines, m.height)

	if !m.scrollbar {
		return strings.Join(lines, "\n")
	}
	bar := common.Scrollbar(m.height, m.offset, m.engine.TotalSize())
	if bar == "" {
		return strings.Join(lines, "\n")
	}
	w := m.itemWidth()
	for i, l := range lines {
		lines[i] = common.PadRight(l, w)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(lines, "\n"), bar)
}

// ---------------------------------------------------------------------------
// Internal: measurement
// ---------------------------------------------------------------------------

// settle measures the items the engine put in range and re-anchors on the
// refined sizes. Two passes cover the common case where the first
// measurements pull new, unmeasured items into the window.
func (m *Model) settle() {
	for range 2 {
		if !m.measure() {
			return
		}
		m.reanchor()
	}
	m.measure()
}

// measure renders every item in range and reports sizes that are new or
// changed. It returns whether anything was reported.
func (m *Model) measure() bool {
	if m.width <= 0 {
		return false
	}
	r := m.engine.Range()
	ledger := m.engine.Ledger()
	changed := false
	for i := r.Start; i <= r.End; i++ {
		if i >= len(m.items) {
			m.log.Warn("missing record in range", "index", i, "len", len(m.items))
			continue
		}
		it := m.items[i]
		h := m.extent(m.render(it).lines)
		if old, ok := ledger.Lookup(it.ID()); !ok || old != h {
			m.engine.SaveSize(it.ID(), h)
			changed = true
		}
	}
	return changed
}

// render returns the cached or freshly rendered lines for an item.
func (m *Model) render(it Item) cachedRender {
	w := m.itemWidth()
	id, ver := it.ID(), it.ContentVersion()
	if cr, ok := m.cache[id]; ok && cr.width == w && cr.version == ver {
		return cr
	}
	cr := cachedRender{lines: splitLines(it.Render(w)), width: w, version: ver}
	if len(cr.lines) == 0 {
		cr.lines = []string{""}
	}
	m.cache[id] = cr
	return cr
}

// linesOf reads an item's rendered lines without touching the cache.
func (m Model) linesOf(it Item) []string {
	w := m.itemWidth()
	if cr, ok := m.cache[it.ID()]; ok && cr.width == w && cr.version == it.ContentVersion() {
		return cr.lines
	}
	lines := splitLines(it.Render(w))
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

// ---------------------------------------------------------------------------
// Internal: offsets
// ---------------------------------------------------------------------------

// applyPending consumes WithStart / WithOffset once there are items.
func (m *Model) applyPending() {
	if len(m.items) == 0 {
		return
	}
	switch {
	case m.pendingStart >= 0:
		idx := min(m.pendingStart, len(m.items)-1)
		m.pendingStart, m.pendingOffset = -1, -1
		// Measure around the target first, then land on the refined row.
		m.offset = m.rowOf(idx)
		m.reanchor()
		m.settle()
		m.offset = m.rowOf(idx)
	case m.pendingOffset >= 0:
		m.offset = m.pendingOffset
		m.pendingOffset = -1
	}
}

// reanchor clamps the offset and feeds it to the engine.
func (m *Model) reanchor() {
	m.clampOffset()
	m.engine.HandleScroll(float64(m.offset))
}

func (m *Model) clampOffset() {
	m.offset = max(0, min(m.offset, m.maxOffset()))
}

// maxOffset is the largest offset that still fills the viewport, based on
// the current size estimate.
func (m Model) maxOffset() int {
	return max(0, int(math.Ceil(m.engine.TotalSize()))-m.span())
}

// span is the viewport extent along the scroll axis.
func (m Model) span() int {
	if m.horizontal {
		return m.width
	}
	return m.height
}

// extent is the size of rendered lines along the scroll axis.
func (m Model) extent(lines []string) float64 {
	if m.horizontal {
		return float64(blockWidth(strings.Join(lines, "\n")))
	}
	return float64(len(lines))
}

// slotSize is the size of a slot along the scroll axis.
func (m Model) slotSize(s string) int {
	if m.horizontal {
		return blockWidth(s)
	}
	return blockHeight(s)
}

// rowOf converts an item index to a row offset.
func (m Model) rowOf(index int) int {
	return int(math.Round(m.engine.Offset(index)))
}

func (m Model) itemWidth() int {
	if m.scrollbar && !m.horizontal {
		return max(0, m.width-1)
	}
	return m.width
}

// ---------------------------------------------------------------------------
// Internal: notifications
// ---------------------------------------------------------------------------

// flush turns a pending range notification into a command.
func (m *Model) flush() tea.Cmd {
	if !m.win.dirty {
		return nil
	}
	m.win.dirty = false
	r := m.win.rng
	return func() tea.Msg { return msg.RangeChanged{Range: r} }
}

// Edge classifies the current position: ReachedTop, ReachedBottom, or
// Scrolled.
func (m Model) Edge() tea.Msg {
	r := m.engine.Range()
	switch {
	case m.engine.IsUpper() && len(m.items) > 0 && m.offset-m.upperThreshold <= 0:
		return msg.ReachedTop{Offset: m.offset, Range: r}
	case m.engine.IsLower() && m.offset+m.span()+m.lowerThreshold >= int(math.Ceil(m.engine.TotalSize())):
		return msg.ReachedBottom{Offset: m.offset, Range: r}
	default:
		return msg.Scrolled{Offset: m.offset, Range: r}
	}
}

func (m Model) edgeCmd() tea.Cmd {
	e := m.Edge()
	return func() tea.Msg { return e }
}

// ---------------------------------------------------------------------------
// String helpers
// ---------------------------------------------------------------------------

// blockHeight is the number of rows a rendered block occupies; empty is 0.
func blockHeight(s string) int {
	if s == "" {
		return 0
	}
	return lipgloss.Height(s)
}

// blockWidth is the number of columns a rendered block occupies.
func blockWidth(s string) int {
	if s == "" {
		return 0
	}
	return lipgloss.Width(s)
}

// splitLines splits a rendered block into rows; empty yields no rows.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
