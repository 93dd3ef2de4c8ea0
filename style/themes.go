package style

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Theme is a complete palette for the list viewer.
type Theme struct {
	Name                                        string
	Primary, Secondary, Success, Warning, Error color.Color
	Muted, Dim, Border                          color.Color

	RowAltBg  color.Color // zebra background for odd rows
	SlotBg    color.Color // header/footer slot background
	StatusBg  color.Color
	FilterBg  color.Color
	Highlight color.Color // matched filter text

	// Gradient endpoints (A=from, B=to)
	GradA color.Color
	GradB color.Color

	// Dark selects the dark variants of glamour and chroma styles.
	Dark bool
}

// Built-in themes.
var (
	darkTheme = Theme{
		Name:      "dark",
		Primary:   lipgloss.Color("#7C3AED"),
		Secondary: lipgloss.Color("#06B6D4"),
		Success:   lipgloss.Color("#22C55E"),
		Warning:   lipgloss.Color("#F59E0B"),
		Error:     lipgloss.Color("#EF4444"),
		Muted:     lipgloss.Color("#6B7280"),
		Dim:       lipgloss.Color("#374151"),
		Border:    lipgloss.Color("#4B5563"),
		RowAltBg:  lipgloss.Color("#111827"),
		SlotBg:    lipgloss.Color("#1F2937"),
		StatusBg:  lipgloss.Color("#1F2937"),
		FilterBg:  lipgloss.Color("#111827"),
		Highlight: lipgloss.Color("#F59E0B"),
		GradA:     lipgloss.Color("#7C3AED"),
		GradB:     lipgloss.Color("#06B6D4"),
		Dark:      true,
	}

	lightTheme = Theme{
		Name:      "light",
		Primary:   lipgloss.Color("#6D28D9"),
		Secondary: lipgloss.Color("#0891B2"),
		Success:   lipgloss.Color("#16A34A"),
		Warning:   lipgloss.Color("#D97706"),
		Error:     lipgloss.Color("#DC2626"),
		Muted:     lipgloss.Color("#9CA3AF"),
		Dim:       lipgloss.Color("#D1D5DB"),
		Border:    lipgloss.Color("#9CA3AF"),
		RowAltBg:  lipgloss.Color("#F9FAFB"),
		SlotBg:    lipgloss.Color("#F3F4F6"),
		StatusBg:  lipgloss.Color("#E5E7EB"),
		FilterBg:  lipgloss.Color("#FFFFFF"),
		Highlight: lipgloss.Color("#D97706"),
		GradA:     lipgloss.Color("#6D28D9"),
		GradB:     lipgloss.Color("#0891B2"),
	}

	catppuccinTheme = Theme{
		Name:      "catppuccin",
		Primary:   lipgloss.Color("#CBA6F7"),
		Secondary: lipgloss.Color("#89DCEB"),
		Success:   lipgloss.Color("#A6E3A1"),
		Warning:   lipgloss.Color("#F9E2AF"),
		Error:     lipgloss.Color("#F38BA8"),
		Muted:     lipgloss.Color("#6C7086"),
		Dim:       lipgloss.Color("#45475A"),
		Border:    lipgloss.Color("#585B70"),
		RowAltBg:  lipgloss.Color("#181825"),
		SlotBg:    lipgloss.Color("#1E1E2E"),
		StatusBg:  lipgloss.Color("#1E1E2E"),
		FilterBg:  lipgloss.Color("#181825"),
		Highlight: lipgloss.Color("#F9E2AF"),
		GradA:     lipgloss.Color("#CBA6F7"),
		GradB:     lipgloss.Color("#89DCEB"),
		Dark:      true,
	}

	tokyoNightTheme = Theme{
		Name:      "tokyo-night",
		Primary:   lipgloss.Color("#7AA2F7"),
		Secondary: lipgloss.Color("#7DCFFF"),
		Success:   lipgloss.Color("#9ECE6A"),
		Warning:   lipgloss.Color("#E0AF68"),
		Error:     lipgloss.Color("#F7768E"),
		Muted:     lipgloss.Color("#565F89"),
		Dim:       lipgloss.Color("#3B4261"),
		Border:    lipgloss.Color("#414868"),
		RowAltBg:  lipgloss.Color("#13141E"),
		SlotBg:    lipgloss.Color("#1A1B26"),
		StatusBg:  lipgloss.Color("#1A1B26"),
		FilterBg:  lipgloss.Color("#13141E"),
		Highlight: lipgloss.Color("#E0AF68"),
		GradA:     lipgloss.Color("#7AA2F7"),
		GradB:     lipgloss.Color("#7DCFFF"),
		Dark:      true,
	}
)

// Themes maps theme names to their definitions.
var Themes = map[string]Theme{
	"dark":        darkTheme,
	"light":       lightTheme,
	"catppuccin":  catppuccinTheme,
	"tokyo-night": tokyoNightTheme,
}

// ThemeNames lists available themes in display order.
var ThemeNames = []string{"dark", "light", "catppuccin", "tokyo-night"}

// CurrentThemeName tracks the active theme name.
var CurrentThemeName = "dark"
