package style

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Colors, initialized to dark theme defaults. Updated via SetTheme().
var (
	Primary   color.Color = darkTheme.Primary
	Secondary color.Color = darkTheme.Secondary
	Success   color.Color = darkTheme.Success
	Warning   color.Color = darkTheme.Warning
	Error     color.Color = darkTheme.Error
	Muted     color.Color = darkTheme.Muted
	Dim       color.Color = darkTheme.Dim
	Border    color.Color = darkTheme.Border

	RowAltBg  color.Color = darkTheme.RowAltBg
	SlotBg    color.Color = darkTheme.SlotBg
	StatusBg  color.Color = darkTheme.StatusBg
	FilterBg  color.Color = darkTheme.FilterBg
	Highlight color.Color = darkTheme.Highlight

	GradColorA color.Color = darkTheme.GradA
	GradColorB color.Color = darkTheme.GradB
)

// Styles, rebuilt when the theme changes via rebuildStyles().
var (
	Bold      lipgloss.Style
	Faint     lipgloss.Style
	ErrorText lipgloss.Style
	Hint      lipgloss.Style

	// Rows
	RowText    lipgloss.Style
	RowAlt     lipgloss.Style
	RowID      lipgloss.Style
	RowMatch   lipgloss.Style
	CodeBlock  lipgloss.Style
	CodeHeader lipgloss.Style

	// Header / footer slots
	SlotHeader lipgloss.Style
	SlotFooter lipgloss.Style
	SlotMeta   lipgloss.Style

	// Status bar
	StatusBar   lipgloss.Style
	StatusKey   lipgloss.Style
	StatusValue lipgloss.Style
	StatusEdge  lipgloss.Style

	// Filter prompt
	FilterBar    lipgloss.Style
	FilterPrompt lipgloss.Style

	// Scrollbar
	ScrollbarThumb lipgloss.Style
	ScrollbarTrack lipgloss.Style

	// Help
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
)

func init() {
	rebuildStyles()
}

// SetTheme applies a named theme, updating all color vars and rebuilding styles.
func SetTheme(name string) bool {
	t, ok := Themes[name]
	if !ok {
		return false
	}
	CurrentThemeName = name
	Primary = t.Primary
	Secondary = t.Secondary
	Success = t.Success
	Warning = t.Warning
	Error = t.Error
	Muted = t.Muted
	Dim = t.Dim
	Border = t.Border
	RowAltBg = t.RowAltBg
	SlotBg = t.SlotBg
	StatusBg = t.StatusBg
	FilterBg = t.FilterBg
	Highlight = t.Highlight
	GradColorA = t.GradA
	GradColorB = t.GradB
	rebuildStyles()
	return true
}

// IsDark reports whether the active theme is a dark one.
func IsDark() bool {
	return Themes[CurrentThemeName].Dark
}

func rebuildStyles() {
	Bold = lipgloss.NewStyle().Bold(true)
	Faint = lipgloss.NewStyle().Faint(true)
	ErrorText = lipgloss.NewStyle().Foreground(Error)
	Hint = lipgloss.NewStyle().Foreground(Muted).Italic(true)

	RowText = lipgloss.NewStyle().PaddingLeft(1)
	RowAlt = lipgloss.NewStyle().PaddingLeft(1).Background(RowAltBg)
	RowID = lipgloss.NewStyle().Foreground(Muted)
	RowMatch = lipgloss.NewStyle().Foreground(Highlight).Bold(true)
	CodeBlock = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(Border).
		PaddingLeft(1)
	CodeHeader = lipgloss.NewStyle().Foreground(Secondary)

	SlotHeader = lipgloss.NewStyle().
		Background(SlotBg).
		Padding(0, 1).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(Border)
	SlotFooter = lipgloss.NewStyle().
		Background(SlotBg).
		Padding(0, 1).
		Border(lipgloss.NormalBorder(), true, false, false, false).
		BorderForeground(Border)
	SlotMeta = lipgloss.NewStyle().Foreground(Muted)

	StatusBar = lipgloss.NewStyle().Background(StatusBg).Padding(0, 1)
	StatusKey = lipgloss.NewStyle().Foreground(Muted).Background(StatusBg)
	StatusValue = lipgloss.NewStyle().Foreground(Secondary).Background(StatusBg)
	StatusEdge = lipgloss.NewStyle().Foreground(Warning).Background(StatusBg).Bold(true)

	FilterBar = lipgloss.NewStyle().Background(FilterBg).Padding(0, 1)
	FilterPrompt = lipgloss.NewStyle().Foreground(Primary).Bold(true)

	ScrollbarThumb = lipgloss.NewStyle().Foreground(Primary)
	ScrollbarTrack = lipgloss.NewStyle().Foreground(Dim)

	HelpKey = lipgloss.NewStyle().Foreground(Secondary).Bold(true)
	HelpDesc = lipgloss.NewStyle().Foreground(Muted)
}
