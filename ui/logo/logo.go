// Package logo renders the banner shown in place of an empty list.
package logo

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/miosa/osa-vlist/style"
)

// FullLogo is the block-letter banner.
const FullLogo = `██╗   ██╗██╗     ██╗███████╗████████╗
██║   ██║██║     ██║██╔════╝╚══██╔══╝
██║   ██║██║     ██║███████╗   ██║
╚██╗ ██╔╝██║     ██║╚════██║   ██║
 ╚████╔╝ ███████╗██║███████║   ██║
  ╚═══╝  ╚══════╝╚═╝╚══════╝   ╚═╝`

// CompactLogo is used when the terminal is too narrow for FullLogo.
const CompactLogo = "◈ vlist"

const fullLogoMinWidth = 44

// Render returns the logo with the theme gradient, sized for width.
func Render(width int) string {
	if width < fullLogoMinWidth {
		return style.Gradient(CompactLogo, true)
	}
	lines := strings.Split(FullLogo, "\n")
	for i, line := range lines {
		lines[i] = style.Gradient(line, false)
	}
	return strings.Join(lines, "\n")
}

// Empty returns the centered placeholder for a list with nothing to show.
// A non-empty filter explains why.
func Empty(width, height int, filter string) string {
	hint := "no rows"
	if filter != "" {
		hint = "no rows match " + filter
	}
	body := lipgloss.JoinVertical(lipgloss.Center, Render(width), "", style.Hint.Render(hint))
	return lipgloss.Place(max(0, width), max(0, height), lipgloss.Center, lipgloss.Center, body)
}
