package app

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/miosa/osa-vlist/config"
	"github.com/miosa/osa-vlist/msg"
	"github.com/miosa/osa-vlist/ui/rows"
	"github.com/miosa/osa-vlist/ui/toast"
)

func newTestModel(n int, infinite bool) Model {
	m := New(Options{
		Source:   "generated",
		Rows:     rows.Generate(0, n),
		Infinite: infinite,
		Config:   config.Defaults(),
		Start:    -1,
	})
	return update(m, tea.WindowSizeMsg{Width: 100, Height: 40})
}

func update(m Model, message tea.Msg) Model {
	next, _ := m.Update(message)
	return next.(Model)
}

func press(m Model, s string) (Model, tea.Cmd) {
	r := []rune(s)[0]
	next, cmd := m.Update(tea.KeyPressMsg{Code: r, Text: s})
	return next.(Model), cmd
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = press(m, string(r))
	}
	return m
}

// find runs cmd and the commands of any batch it yields until one produces
// a T.
func find[T tea.Msg](cmd tea.Cmd) (T, bool) {
	var zero T
	if cmd == nil {
		return zero, false
	}
	switch v := cmd().(type) {
	case T:
		return v, true
	case tea.BatchMsg:
		for _, c := range v {
			if r, ok := find[T](c); ok {
				return r, true
			}
		}
	}
	return zero, false
}

// loadedRows runs cmd, looking through batches for the RowsLoaded it yields.
func loadedRows(t *testing.T, cmd tea.Cmd) RowsLoaded {
	t.Helper()
	r, ok := find[RowsLoaded](cmd)
	if !ok {
		t.Fatal("command did not load rows")
	}
	return r
}

func TestNew_LoadsRows(t *testing.T) {
	m := newTestModel(50, false)
	if m.list.Total() != 50 {
		t.Fatalf("want 50 rows, got %d", m.list.Total())
	}
	if m.state != StateBrowsing {
		t.Errorf("want browsing, got %s", m.state)
	}
	if m.list.Range().Empty() {
		t.Error("want a non-empty range")
	}
}

func TestWindowSize_Layout(t *testing.T) {
	m := newTestModel(50, false)
	if m.layout.ListHeight != 38 {
		t.Errorf("want list height 38, got %d", m.layout.ListHeight)
	}
	if m.layout.FilterHeight != 0 {
		t.Errorf("want no filter bar, got %d", m.layout.FilterHeight)
	}
}

func TestAppendKey(t *testing.T) {
	m := newTestModel(50, false)
	m, cmd := press(m, "a")
	if cmd == nil {
		t.Fatal("want a load command")
	}
	loaded, ok := cmd().(RowsLoaded)
	if !ok || len(loaded.Rows) != pageSize {
		t.Fatalf("want %d rows loaded, got %#v", pageSize, cmd())
	}
	if loaded.Rows[0].ID() != "row-50" {
		t.Errorf("want continuation at row-50, got %s", loaded.Rows[0].ID())
	}
	m = update(m, loaded)
	if m.list.Total() != 150 {
		t.Errorf("want 150 rows, got %d", m.list.Total())
	}
}

func TestShrinkKey(t *testing.T) {
	m := newTestModel(50, false)
	m, _ = press(m, "x")
	if m.list.Total() != shrinkTo {
		t.Errorf("want %d rows, got %d", shrinkTo, m.list.Total())
	}
	r := m.list.Range()
	if r.End > shrinkTo-1 {
		t.Errorf("range past data: %s", r)
	}
}

func TestFilterFlow(t *testing.T) {
	m := newTestModel(50, false)
	m, _ = press(m, "/")
	if m.state != StateFiltering {
		t.Fatalf("want filtering, got %s", m.state)
	}
	if m.layout.FilterHeight != 1 {
		t.Errorf("want filter bar shown")
	}

	m = typeText(m, "clamp")
	if got := len(m.list.FilteredItems()); got != 4 {
		t.Errorf("want 4 code rows, got %d", got)
	}

	next, _ := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	m = next.(Model)
	if m.state != StateBrowsing || m.list.Filter() != "clamp" {
		t.Errorf("enter should keep the filter, state %s filter %q", m.state, m.list.Filter())
	}

	next, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	m = next.(Model)
	if m.list.Filter() != "" || len(m.list.FilteredItems()) != 50 {
		t.Errorf("esc should clear the filter, got %q", m.list.Filter())
	}
	if m.layout.FilterHeight != 0 {
		t.Errorf("filter bar should hide once cleared")
	}
}

func TestReachedBottom_LoadsOnce(t *testing.T) {
	m := newTestModel(50, true)
	next, cmd := m.Update(msg.ReachedBottom{})
	m = next.(Model)
	if cmd == nil || !m.loading {
		t.Fatal("want a pending load")
	}
	if !m.spin.Spinning() {
		t.Error("spinner should run while loading")
	}
	if m.status.View() == "" {
		t.Error("status should render")
	}
	_, again := m.Update(msg.ReachedBottom{})
	if again != nil {
		t.Error("no second load while one is pending")
	}

	m = update(m, loadedRows(t, cmd))
	if m.loading || m.list.Total() != 150 {
		t.Errorf("want loaded 150 rows, loading=%v total=%d", m.loading, m.list.Total())
	}
	if m.spin.Spinning() {
		t.Error("spinner should stop once rows arrive")
	}
}

func TestReachedBottom_NotInfinite(t *testing.T) {
	m := newTestModel(50, false)
	_, cmd := m.Update(msg.ReachedBottom{})
	if cmd != nil {
		t.Error("file-backed lists should not load more")
	}
}

func TestEdgeMessagesUpdateStatus(t *testing.T) {
	m := newTestModel(50, false)
	m = update(m, msg.ReachedTop{})
	if !strings.Contains(ansi.Strip(m.status.View()), "TOP") {
		t.Errorf("want TOP in status, got %q", ansi.Strip(m.status.View()))
	}
	m = update(m, msg.Scrolled{Offset: 5})
	if strings.Contains(ansi.Strip(m.status.View()), "TOP") {
		t.Error("scrolling away should clear the edge marker")
	}
}

func TestRowCopied_ShowsToast(t *testing.T) {
	m := newTestModel(50, false)
	h := m.layout.ListHeight
	m = update(m, rowCopied{id: "row-0"})
	if m.toasts.Len() != 1 || m.layout.ToastHeight != 1 {
		t.Fatalf("want one toast line, got %d toasts, height %d", m.toasts.Len(), m.layout.ToastHeight)
	}
	if m.layout.ListHeight != h-1 {
		t.Errorf("toast should take a row from the list: %d -> %d", h, m.layout.ListHeight)
	}
	if !strings.Contains(ansi.Strip(m.renderView()), "copied row-0") {
		t.Error("toast text missing from the frame")
	}

	m = update(m, rowCopied{id: "row-1", err: errors.New("no clipboard")})
	if !strings.Contains(ansi.Strip(m.toasts.View(m.width)), "copy failed: no clipboard") {
		t.Error("want a failure toast")
	}
}

func TestToastTick_KeepsLiveToasts(t *testing.T) {
	m := newTestModel(50, false)
	m = update(m, rowCopied{id: "row-0"})
	m = update(m, toast.TickMsg{})
	if m.toasts.Len() != 1 {
		t.Errorf("fresh toast should survive a tick, got %d", m.toasts.Len())
	}
}

func TestEmptyFilterShowsBanner(t *testing.T) {
	m := newTestModel(50, false)
	m, _ = press(m, "/")
	m = typeText(m, "zzz")
	if !strings.Contains(ansi.Strip(m.renderView()), "no rows match zzz") {
		t.Error("want the empty banner")
	}
}

func TestCopyKey_WithoutRows(t *testing.T) {
	m := newTestModel(0, false)
	if _, cmd := press(m, "y"); cmd != nil {
		t.Error("nothing to copy in an empty list")
	}
}

func TestHeaderSlotShowsSource(t *testing.T) {
	m := newTestModel(50, false)
	if !strings.Contains(ansi.Strip(m.list.View()), "generated") {
		t.Error("header slot should name the source")
	}
}

func TestScrollbarKey_TogglesAndSaves(t *testing.T) {
	t.Setenv(config.ThemeEnv, "")
	dir := t.TempDir()
	m := New(Options{
		Source:     "generated",
		Rows:       rows.Generate(0, 50),
		Config:     config.Defaults(),
		ProfileDir: dir,
		Start:      -1,
	})
	m = update(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if !m.list.List().Scrollbar() {
		t.Fatal("defaults show the scrollbar")
	}

	m, cmd := press(m, "b")
	if m.list.List().Scrollbar() {
		t.Error("scrollbar should be hidden")
	}
	saved, ok := find[settingsSaved](cmd)
	if !ok || saved.err != nil {
		t.Fatalf("want a successful save, got %+v", saved)
	}
	if config.Load(dir).Scrollbar {
		t.Error("hidden scrollbar should be persisted")
	}

	m = update(m, saved)
	if !strings.Contains(ansi.Strip(m.toasts.View(m.width)), "scrollbar saved") {
		t.Error("want a confirmation toast")
	}
}

func TestScrollbarKey_WithoutProfileDoesNotSave(t *testing.T) {
	m := newTestModel(50, false)
	_, cmd := press(m, "b")
	if _, ok := find[settingsSaved](cmd); ok {
		t.Error("no profile dir, nothing to save")
	}
}

func TestToggleHeader(t *testing.T) {
	m := newTestModel(50, false)
	before := m.list.List().TotalSize()
	m, _ = press(m, "h")
	if m.showHeader {
		t.Fatal("header should be hidden")
	}
	if after := m.list.List().TotalSize(); after >= before {
		t.Errorf("hiding the header should shrink content: %.1f -> %.1f", before, after)
	}
}

func TestHelpToggleResizesList(t *testing.T) {
	m := newTestModel(50, false)
	h := m.layout.ListHeight
	m, _ = press(m, "?")
	if !m.help.ShowAll {
		t.Fatal("want full help")
	}
	if m.layout.ListHeight >= h {
		t.Errorf("full help should take rows from the list: %d -> %d", h, m.layout.ListHeight)
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(10, false)
	_, cmd := press(m, "q")
	if cmd == nil {
		t.Fatal("want quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("want QuitMsg, got %T", cmd())
	}
}

func TestScrollKeyForwardsToList(t *testing.T) {
	m := newTestModel(200, false)
	m, _ = press(m, "j")
	if m.list.List().Offset() != 1 {
		t.Errorf("want offset 1, got %d", m.list.List().Offset())
	}
}

func TestView(t *testing.T) {
	m := newTestModel(50, false)
	v := m.View()
	if !v.AltScreen {
		t.Error("want alt screen")
	}
	if v.MouseMode != tea.MouseModeCellMotion {
		t.Error("want cell motion mouse mode")
	}
}

func TestComputeLayout(t *testing.T) {
	l := ComputeLayout(80, 24, true, 1, 1, 2)
	if l.ListHeight != 19 || l.FilterHeight != 1 || l.ToastHeight != 1 {
		t.Errorf("unexpected layout %+v", l)
	}
	l = ComputeLayout(80, 3, false, 0, 1, 1)
	if l.ListHeight != minListHeight {
		t.Errorf("want min list height, got %d", l.ListHeight)
	}
}

func TestStateString(t *testing.T) {
	if StateFiltering.String() != "filtering" || State(99).String() != "unknown" {
		t.Error("unexpected state names")
	}
}
