package status

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/miosa/osa-vlist/virtual"
)

func plain(s string) string { return ansi.Strip(s) }

func TestView_ZeroWidth(t *testing.T) {
	m := New()
	if m.View() != "" {
		t.Error("zero width should render nothing")
	}
}

func TestView_ShowsWindowAndStats(t *testing.T) {
	m := New()
	m.SetWidth(120)
	m.SetRange(virtual.Range{Start: 47, End: 62, PadFront: 2350, PadBehind: 1850})
	m.SetCounts(100, 100)
	m.SetStats(16, 50)
	m.SetScroll(2500, 5000)

	out := plain(m.View())
	for _, want := range []string{"rows 47–62 of 100", "pad 2350/1850", "avg 50.0", "measured 16", "50%"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}
	if w := lipgloss.Width(m.View()); w != 120 {
		t.Errorf("want width 120, got %d", w)
	}
}

func TestView_FilteredCounts(t *testing.T) {
	m := New()
	m.SetWidth(120)
	m.SetRange(virtual.Range{Start: 0, End: 10})
	m.SetCounts(100, 11)
	m.SetFilter("item-1")

	out := plain(m.View())
	if !strings.Contains(out, "of 11/100") || !strings.Contains(out, "filter item-1") {
		t.Errorf("unexpected status %q", out)
	}
}

func TestView_EmptyAndEdges(t *testing.T) {
	m := New()
	m.SetWidth(120)
	m.SetRange(virtual.Range{Start: 0, End: -1})
	m.SetEdge(EdgeBottom)
	m.SetLoading(true)

	out := plain(m.View())
	for _, want := range []string{"rows empty", "BOTTOM", "loading", "All"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}
}

func TestView_NarrowTruncates(t *testing.T) {
	m := New()
	m.SetWidth(20)
	m.SetSource("/var/log/some/really/long/file/name.log")
	m.SetRange(virtual.Range{Start: 0, End: 15})
	if w := lipgloss.Width(m.View()); w > 20 {
		t.Errorf("want at most 20 cells, got %d", w)
	}
}

func TestEdgePill(t *testing.T) {
	if EdgePill(EdgeNone) != "" {
		t.Error("EdgeNone should render nothing")
	}
	if !strings.Contains(plain(EdgePill(EdgeTop)), "TOP") {
		t.Error("want TOP")
	}
}

func TestPercent(t *testing.T) {
	cases := []struct {
		offset int
		size   float64
		want   string
	}{
		{0, 0, "All"},
		{0, 100, "0%"},
		{50, 100, "50%"},
		{500, 100, "100%"},
	}
	for _, c := range cases {
		if got := percent(c.offset, c.size); got != c.want {
			t.Errorf("percent(%d, %.0f) = %q, want %q", c.offset, c.size, got, c.want)
		}
	}
}
