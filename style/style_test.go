package style

import (
	"image/color"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestSetTheme_Unknown(t *testing.T) {
	if SetTheme("does-not-exist") {
		t.Fatal("unknown theme should be rejected")
	}
}

func TestSetTheme_SwitchesDarkness(t *testing.T) {
	defer SetTheme("dark")
	if !SetTheme("light") {
		t.Fatal("light theme should exist")
	}
	if IsDark() {
		t.Error("light theme reported dark")
	}
	if CurrentThemeName != "light" {
		t.Errorf("want light, got %q", CurrentThemeName)
	}
	SetTheme("tokyo-night")
	if !IsDark() {
		t.Error("tokyo-night should be dark")
	}
}

func TestThemeNamesAreRegistered(t *testing.T) {
	for _, n := range ThemeNames {
		if _, ok := Themes[n]; !ok {
			t.Errorf("theme %q listed but not registered", n)
		}
	}
}

func TestLerpColor_Endpoints(t *testing.T) {
	a := color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	b := color.NRGBA{R: 200, G: 100, B: 50, A: 255}
	if LerpColor(a, b, -1) != color.Color(a) {
		t.Error("t<=0 should return a")
	}
	if LerpColor(a, b, 2) != color.Color(b) {
		t.Error("t>=1 should return b")
	}
	mid := LerpColor(a, b, 0.5).(color.NRGBA)
	if mid.R != 100 || mid.G != 50 || mid.B != 25 {
		t.Errorf("unexpected midpoint %+v", mid)
	}
}

func TestGradient_PreservesText(t *testing.T) {
	if Gradient("", true) != "" {
		t.Error("empty input should stay empty")
	}
	out := Gradient("vlist", false)
	if w := lipgloss.Width(out); w != 5 {
		t.Errorf("want width 5, got %d", w)
	}
}
