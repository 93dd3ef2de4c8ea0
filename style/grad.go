package style

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
)

// LerpColor blends a toward b; t is clamped to [0,1].
func LerpColor(a, b color.Color, t float64) color.Color {
	switch {
	case t <= 0:
		return a
	case t >= 1:
		return b
	}
	ca := color.NRGBAModel.Convert(a).(color.NRGBA)
	cb := color.NRGBAModel.Convert(b).(color.NRGBA)
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x)*(1-t) + float64(y)*t + 0.5)
	}
	return color.NRGBA{
		R: mix(ca.R, cb.R),
		G: mix(ca.G, cb.G),
		B: mix(ca.B, cb.B),
		A: 0xff,
	}
}

// Gradient renders text with a left-to-right gradient between GradColorA and
// GradColorB, one style per rune.
func Gradient(text string, bold bool) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	last := float64(max(1, len(runes)-1))
	var sb strings.Builder
	for i, r := range runes {
		s := lipgloss.NewStyle().
			Foreground(LerpColor(GradColorA, GradColorB, float64(i)/last)).
			Bold(bold)
		sb.WriteString(s.Render(string(r)))
	}
	return sb.String()
}
