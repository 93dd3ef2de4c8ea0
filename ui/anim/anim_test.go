package anim

import "testing"

func TestStoppedRendersNothing(t *testing.T) {
	m := New()
	if m.View() != "" {
		t.Error("stopped spinner should render nothing")
	}
}

func TestStartTicks(t *testing.T) {
	m := New()
	cmd := m.Start()
	if cmd == nil || !m.Spinning() {
		t.Fatal("want a tick after Start")
	}
	if m.Start() != nil {
		t.Error("second Start should not start another tick chain")
	}
	if m.View() == "" {
		t.Error("want a glyph while spinning")
	}
}

func TestUpdateAdvancesOwnTicksOnly(t *testing.T) {
	m := New()
	m.Start()
	other := New()

	next, cmd := m.Update(TickMsg{ID: other.id})
	if cmd != nil || next.frame != 0 {
		t.Error("foreign tick should be ignored")
	}
	next, cmd = m.Update(TickMsg{ID: m.id})
	if cmd == nil || next.frame != 1 {
		t.Errorf("want frame 1, got %d", next.frame)
	}

	next.Stop()
	if _, cmd := next.Update(TickMsg{ID: m.id}); cmd != nil {
		t.Error("stopped spinner should not reschedule")
	}
}

func TestFramesWrap(t *testing.T) {
	m := New()
	m.Start()
	for range len(frames) {
		m, _ = m.Update(TickMsg{ID: m.id})
	}
	if m.frame != 0 {
		t.Errorf("want wrap to frame 0, got %d", m.frame)
	}
}
