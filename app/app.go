package app

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/miosa/osa-vlist/config"
	"github.com/miosa/osa-vlist/internal/logging"
	"github.com/miosa/osa-vlist/msg"
	"github.com/miosa/osa-vlist/style"
	"github.com/miosa/osa-vlist/ui/anim"
	"github.com/miosa/osa-vlist/ui/clipboard"
	"github.com/miosa/osa-vlist/ui/header"
	"github.com/miosa/osa-vlist/ui/list"
	"github.com/miosa/osa-vlist/ui/logo"
	"github.com/miosa/osa-vlist/ui/rows"
	"github.com/miosa/osa-vlist/ui/status"
	"github.com/miosa/osa-vlist/ui/toast"
)

const (
	// pageSize is how many rows an append (or a bottom-reached load) adds.
	pageSize = 100

	// shrinkTo is the row count the shrink key keeps.
	shrinkTo = 20
)

// RowsLoaded delivers a page of generated rows.
type RowsLoaded struct {
	Rows []*rows.Row
}

// settingsSaved reports the outcome of persisting a settings change.
type settingsSaved struct {
	what string
	err  error
}

// rowCopied reports the outcome of a clipboard copy.
type rowCopied struct {
	id  string
	err error
}

// Options configures the root model.
type Options struct {
	// Source names the content in the header and status bar.
	Source string

	// Version is shown in the header slot.
	Version string

	// Rows is the initial content.
	Rows []*rows.Row

	// Infinite appends a generated page whenever the bottom is reached.
	Infinite bool

	Config   config.Config
	Disabled bool

	// ProfileDir receives settings changed at runtime. Empty disables saving.
	ProfileDir string

	// Start is the initial item index; negative means the top.
	Start int

	Logger logging.Logger
}

// -- Model --------------------------------------------------------------------

// Model is the root Bubble Tea model. It owns the list, the filter bar, the
// status bar and the help view.
type Model struct {
	list   list.FilterableList
	header header.Model
	status status.Model
	toasts toast.Model
	spin   anim.Model
	help   help.Model
	filter textinput.Model

	state  State
	layout Layout
	keys   KeyMap

	width  int
	height int

	profileDir string
	infinite   bool
	loading    bool
	next       int // number of the next generated row
	showHeader bool

	log logging.Logger
}

// New constructs the root Model with its initial rows in place.
func New(opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = logging.Discard
	}
	keys := DefaultKeyMap()
	cfg := opts.Config

	listOpts := []list.Option{
		list.WithWidth(80),
		list.WithHeight(20),
		list.WithKeeps(cfg.Keeps),
		list.WithBuffer(cfg.Buffer),
		list.WithEstimatedSize(cfg.EstimatedSize),
		list.WithDisabled(opts.Disabled),
		list.WithThresholds(cfg.UpperThreshold, cfg.LowerThreshold),
		list.WithScrollbar(cfg.Scrollbar),
		list.WithKeyMap(keys.List),
		list.WithLogger(log.With("component", "list")),
	}
	if opts.Start >= 0 {
		listOpts = append(listOpts, list.WithStart(opts.Start))
	}

	fi := textinput.New()
	fi.Prompt = "/ "
	fi.Placeholder = "filter rows"

	h := help.New()
	h.Styles = help.DefaultStyles(style.IsDark())

	m := Model{
		list:       list.NewFilterableList(listOpts...),
		header:     header.New(opts.Version),
		status:     status.New(),
		toasts:     toast.New(),
		spin:       anim.New(),
		help:       h,
		filter:     fi,
		state:      StateBrowsing,
		keys:       keys,
		width:      80,
		height:     24,
		profileDir: opts.ProfileDir,
		infinite:   opts.Infinite,
		next:       len(opts.Rows),
		showHeader: true,
		log:        log,
	}
	m.header.SetSource(opts.Source)
	m.header.SetInfinite(opts.Infinite)
	m.header.SetWidth(m.width)
	m.status.SetSource(opts.Source)
	m.list.SetItems(rows.Items(opts.Rows))
	m.recomputeLayout()
	m.syncSlots()
	m.syncStatus()
	return m
}

// -- Init ---------------------------------------------------------------------

func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return tea.RequestWindowSize() }
}

// -- Update -------------------------------------------------------------------

func (m Model) Update(rawMsg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch v := rawMsg.(type) {

	case tea.WindowSizeMsg:
		m.width = v.Width
		m.height = v.Height
		m.header.SetWidth(v.Width)
		m.status.SetWidth(v.Width)
		m.help.SetWidth(v.Width)
		m.filter.SetWidth(max(1, v.Width-4))
		cmd = tea.Batch(m.recomputeLayout(), m.syncSlots())

	case tea.MouseWheelMsg, tea.MouseClickMsg:
		m.list, cmd = m.list.Update(v)

	case tea.KeyPressMsg:
		return m.handleKey(v)

	// -- List notifications --

	case msg.RangeChanged:
		m.log.Debug("range", "range", v.Range.String())

	case msg.ReachedTop:
		m.status.SetEdge(status.EdgeTop)

	case msg.ReachedBottom:
		m.status.SetEdge(status.EdgeBottom)
		cmd = m.loadMore()

	case msg.Scrolled:
		m.status.SetEdge(status.EdgeNone)

	case RowsLoaded:
		m.loading = false
		m.spin.Stop()
		m.status.SetLoading(false)
		m.next += len(v.Rows)
		m.log.Info("rows appended", "count", len(v.Rows), "total", m.list.Total()+len(v.Rows))
		cmd = tea.Batch(
			m.list.AppendItems(rows.Items(v.Rows)...),
			m.syncSlots(),
			m.notify(fmt.Sprintf("appended %d rows", len(v.Rows)), toast.Info),
		)

	case rowCopied:
		if v.err != nil {
			m.log.Warn("copy failed", "id", v.id, "err", v.err)
			cmd = m.notify("copy failed: "+v.err.Error(), toast.Error)
		} else {
			cmd = m.notify("copied "+v.id, toast.Info)
		}

	case anim.TickMsg:
		m.spin, cmd = m.spin.Update(v)

	case settingsSaved:
		if v.err != nil {
			m.log.Warn("save settings failed", "err", v.err)
			cmd = m.notify("settings not saved: "+v.err.Error(), toast.Error)
		} else {
			cmd = m.notify(v.what+" saved", toast.Info)
		}

	case toast.TickMsg:
		before := m.toasts.Len()
		m.toasts, cmd = m.toasts.Update(v)
		if m.toasts.Len() != before {
			cmd = tea.Batch(cmd, m.recomputeLayout())
		}
	}

	m.syncStatus()
	return m, cmd
}

// -- View ---------------------------------------------------------------------

// View returns the tea.View for the current frame.
func (m Model) View() tea.View {
	v := tea.NewView(m.renderView())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

// renderView composes the full terminal frame as a string.
func (m Model) renderView() string {
	body := m.list.View()
	if m.list.List().Len() == 0 {
		body = logo.Empty(m.width, m.layout.ListHeight, m.list.Filter())
	}
	sections := []string{body}
	if m.layout.ToastHeight > 0 {
		sections = append(sections, m.toasts.View(m.width))
	}
	if m.layout.FilterHeight > 0 {
		sections = append(sections, m.filterView())
	}
	sections = append(sections, m.status.View())
	if m.layout.HelpHeight > 0 {
		sections = append(sections, m.helpView())
	}
	return strings.Join(sections, "\n")
}

func (m Model) filterView() string {
	if m.state == StateFiltering {
		return style.FilterBar.Width(m.width).Render(m.filter.View())
	}
	return style.FilterBar.Width(m.width).Render(
		style.FilterPrompt.Render("/ ") + m.list.Filter())
}

func (m Model) helpView() string {
	return m.help.View(m.keys)
}

// -- Key handling -------------------------------------------------------------

func (m Model) handleKey(k tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state {
	case StateFiltering:
		cmd = m.handleFilterKey(k)
	default:
		var quit bool
		cmd, quit = m.handleBrowseKey(k)
		if quit {
			return m, tea.Quit
		}
	}
	m.syncStatus()
	return m, cmd
}

func (m *Model) handleBrowseKey(k tea.KeyPressMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches[tea.KeyPressMsg](k, m.keys.Quit):
		return nil, true

	case key.Matches[tea.KeyPressMsg](k, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m.recomputeLayout(), false

	case key.Matches[tea.KeyPressMsg](k, m.keys.Filter):
		m.state = StateFiltering
		m.filter.SetValue(m.list.Filter())
		m.filter.CursorEnd()
		cmd := m.recomputeLayout()
		return tea.Batch(cmd, m.filter.Focus()), false

	case key.Matches[tea.KeyPressMsg](k, m.keys.Escape):
		if m.list.Filter() == "" {
			return nil, false
		}
		return m.applyFilter(""), false

	case key.Matches[tea.KeyPressMsg](k, m.keys.Append):
		batch := rows.Generate(m.next, pageSize)
		return func() tea.Msg { return RowsLoaded{Rows: batch} }, false

	case key.Matches[tea.KeyPressMsg](k, m.keys.Shrink):
		all := m.list.All()
		if len(all) <= shrinkTo {
			return nil, false
		}
		m.log.Info("rows dropped", "from", len(all), "to", shrinkTo)
		return tea.Batch(
			m.list.SetItems(all[:shrinkTo]),
			m.syncSlots(),
			m.notify(fmt.Sprintf("kept %d of %d rows", shrinkTo, len(all)), toast.Warning),
		), false

	case key.Matches[tea.KeyPressMsg](k, m.keys.Scrollbar):
		on := !m.list.List().Scrollbar()
		return tea.Batch(m.list.List().SetScrollbar(on), m.saveSettings("scrollbar", func(c *config.Config) {
			c.Scrollbar = on
		})), false

	case key.Matches[tea.KeyPressMsg](k, m.keys.Copy):
		return m.copyTopRow(), false

	case key.Matches[tea.KeyPressMsg](k, m.keys.ToggleHeader):
		m.showHeader = !m.showHeader
		return m.syncSlots(), false
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(k)
	return cmd, false
}

func (m *Model) handleFilterKey(k tea.KeyPressMsg) tea.Cmd {
	switch {
	case k.String() == "ctrl+c":
		return tea.Quit

	case key.Matches[tea.KeyPressMsg](k, m.keys.Escape):
		m.filter.Blur()
		m.filter.Reset()
		m.state = StateBrowsing
		return tea.Batch(m.applyFilter(""), m.recomputeLayout())

	case key.Matches[tea.KeyPressMsg](k, m.keys.Accept):
		m.filter.Blur()
		m.state = StateBrowsing
		return m.recomputeLayout()
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(k)
	return tea.Batch(cmd, m.applyFilter(m.filter.Value()))
}

// -- Helpers ------------------------------------------------------------------

func (m *Model) applyFilter(f string) tea.Cmd {
	if f == m.list.Filter() {
		return nil
	}
	m.log.Debug("filter", "value", f)
	cmd := m.list.SetFilter(f)
	m.status.SetFilter(f)
	return tea.Batch(cmd, m.syncSlots(), m.recomputeLayout())
}

// notify shows a toast and makes room for it.
func (m *Model) notify(text string, level toast.Level) tea.Cmd {
	cmd := m.toasts.Add(text, level)
	return tea.Batch(cmd, m.recomputeLayout())
}

// saveSettings persists a patch to the profile's settings file.
func (m *Model) saveSettings(what string, patch func(*config.Config)) tea.Cmd {
	if m.profileDir == "" {
		return nil
	}
	dir := m.profileDir
	return func() tea.Msg {
		return settingsSaved{what: what, err: config.Update(dir, patch)}
	}
}

// copyTopRow copies the text of the first row in the viewport.
func (m *Model) copyTopRow() tea.Cmd {
	item := m.list.SelectedItem()
	if item == nil {
		return nil
	}
	id, text := item.ID(), item.ID()
	if r, ok := item.(*rows.Row); ok {
		text = r.Body()
	}
	return func() tea.Msg {
		return rowCopied{id: id, err: clipboard.Copy(text)}
	}
}

// loadMore appends a generated page when the bottom is reached with no
// filter active and no load already pending.
func (m *Model) loadMore() tea.Cmd {
	if !m.infinite || m.loading || m.list.Filter() != "" {
		return nil
	}
	m.loading = true
	m.status.SetLoading(true)
	start := m.next
	return tea.Batch(
		m.spin.Start(),
		func() tea.Msg { return RowsLoaded{Rows: rows.Generate(start, pageSize)} },
	)
}

// recomputeLayout recalculates the Layout from current dimensions and bar
// heights, then resizes the list.
func (m *Model) recomputeLayout() tea.Cmd {
	showFilter := m.state == StateFiltering || m.list.Filter() != ""
	toastLines := 0
	if m.toasts.Len() > 0 {
		toastLines = lipgloss.Height(m.toasts.View(m.width))
	}
	m.layout = ComputeLayout(m.width, m.height, showFilter, toastLines,
		lipgloss.Height(m.status.View()),
		lipgloss.Height(m.helpView()),
	)
	return m.list.SetSize(m.width, m.layout.ListHeight)
}

// syncSlots re-renders the header and footer slots. Both carry row counts,
// so this runs after every data change.
func (m *Model) syncSlots() tea.Cmd {
	m.header.SetCounts(m.list.Total(), len(m.list.FilteredItems()))
	h := ""
	if m.showHeader {
		h = m.header.HeaderView()
	}
	return m.list.List().SetSlots(h, m.header.FooterView())
}

// syncStatus copies the list state into the status bar.
func (m *Model) syncStatus() {
	l := m.list.List()
	m.status.SetRange(l.Range())
	m.status.SetCounts(m.list.Total(), l.Len())
	m.status.SetScroll(l.Offset(), l.TotalSize())
	m.status.SetStats(l.Measured(), l.AverageSize())
	m.status.SetFilter(m.list.Filter())
	m.status.SetSpinner(m.spin.View())
}
