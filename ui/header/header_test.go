package header

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

func TestView_Summary(t *testing.T) {
	m := New("v1.2.0")
	m.SetSource("notes.md")
	m.SetCounts(120, 120)
	m.SetWidth(80)

	out := ansi.Strip(m.View())
	for _, want := range []string{"osa-vlist", "v1.2.0", "notes.md", "120 rows"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}
}

func TestHeaderView_HasSeparator(t *testing.T) {
	m := New("dev")
	m.SetWidth(60)
	out := m.HeaderView()
	if lipgloss.Height(out) != 2 {
		t.Errorf("want summary plus separator, got %d lines", lipgloss.Height(out))
	}
	if w := lipgloss.Width(out); w != 60 {
		t.Errorf("want width 60, got %d", w)
	}
}

func TestSlots_ZeroWidth(t *testing.T) {
	m := New("dev")
	if m.HeaderView() != "" || m.FooterView() != "" {
		t.Error("zero width renders no slots")
	}
}

func TestFooterView(t *testing.T) {
	m := New("dev")
	m.SetWidth(60)
	m.SetCounts(100, 100)
	m.SetInfinite(true)
	if out := ansi.Strip(m.FooterView()); !strings.Contains(out, "end · 100 rows · scroll for more") {
		t.Errorf("unexpected footer %q", out)
	}

	m.SetCounts(100, 7)
	out := ansi.Strip(m.FooterView())
	if !strings.Contains(out, "7 of 100 rows") || strings.Contains(out, "scroll for more") {
		t.Errorf("unexpected filtered footer %q", out)
	}
}
