package common

import (
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	if got := Truncate("hello", 10); got != "hello" {
		t.Errorf("short string changed: %q", got)
	}
	if got := Truncate("hello world", 6); got != "hello…" {
		t.Errorf("want %q, got %q", "hello…", got)
	}
	if got := Truncate("hello", 1); got != "…" {
		t.Errorf("want ellipsis, got %q", got)
	}
}

func TestTruncatePath_FallsBackToBase(t *testing.T) {
	got := TruncatePath("/very/long/directory/structure/file.go", 12)
	if !strings.HasSuffix(got, "file.go") {
		t.Errorf("want basename kept, got %q", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("ab", 4); got != "ab  " {
		t.Errorf("want %q, got %q", "ab  ", got)
	}
	if got := PadRight("abcdef", 4); got != "abcdef" {
		t.Errorf("long string changed: %q", got)
	}
}

func TestFitLines(t *testing.T) {
	if got := FitLines([]string{"a", "b", "c"}, 2); len(got) != 2 || got[1] != "b" {
		t.Errorf("truncate failed: %v", got)
	}
	got := FitLines([]string{"a"}, 3)
	if len(got) != 3 || got[0] != "a" || got[2] != "" {
		t.Errorf("pad failed: %v", got)
	}
	if FitLines([]string{"a"}, 0) != nil {
		t.Error("n=0 should yield nil")
	}
}

func TestThumbRows_NoScrollbarWhenContentFits(t *testing.T) {
	if thumbRows(10, 0, 10) != nil {
		t.Error("content equal to viewport needs no scrollbar")
	}
	if Scrollbar(0, 0, 100) != "" {
		t.Error("zero viewport needs no scrollbar")
	}
}

func TestThumbRows_Positions(t *testing.T) {
	top := thumbRows(10, 0, 100)
	if !top[0] || top[9] {
		t.Errorf("thumb should sit at the top: %v", top)
	}
	bottom := thumbRows(10, 90, 100)
	if bottom[0] || !bottom[9] {
		t.Errorf("thumb should sit at the bottom: %v", bottom)
	}
	count := 0
	for _, b := range bottom {
		if b {
			count++
		}
	}
	if count != 1 {
		t.Errorf("want 1-row thumb, got %d", count)
	}
}

func TestScrollbar_RowCount(t *testing.T) {
	out := Scrollbar(5, 3, 40.5)
	if n := strings.Count(out, "\n") + 1; n != 5 {
		t.Errorf("want 5 rows, got %d", n)
	}
}
