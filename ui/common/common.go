// Package common provides the small rendering helpers shared by the list
// viewer's UI packages.
package common

import (
	"os"
	"path/filepath"
	"strings"

	"charm.land/lipgloss/v2"
)

// Truncate shortens s to maxLen runes, appending "…" if truncated.
func Truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return "…"
	}
	return string(runes[:maxLen-1]) + "…"
}

// TruncatePath shortens a filesystem path to fit maxWidth columns.
// Strategy (first that fits): full path → ~/relative → …/last-two → …/basename.
func TruncatePath(path string, maxWidth int) string {
	if lipgloss.Width(path) <= maxWidth {
		return path
	}

	if home, err := os.UserHomeDir(); err == nil {
		if rel, err2 := filepath.Rel(home, path); err2 == nil && !strings.HasPrefix(rel, "..") {
			homePath := "~/" + rel
			if lipgloss.Width(homePath) <= maxWidth {
				return homePath
			}
		}
	}

	parts := strings.Split(filepath.Clean(path), string(filepath.Separator))
	if len(parts) >= 2 {
		lastTwo := "…/" + strings.Join(parts[len(parts)-2:], string(filepath.Separator))
		if lipgloss.Width(lastTwo) <= maxWidth {
			return lastTwo
		}
	}

	base := "…/" + filepath.Base(path)
	if lipgloss.Width(base) <= maxWidth {
		return base
	}
	return Truncate(base, maxWidth)
}

// PadRight pads s on the right with spaces until its display width equals
// width. Returns s unchanged if it already meets or exceeds width.
func PadRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// FitLines returns exactly n lines: lines beyond n are dropped, missing
// lines are filled with blanks.
func FitLines(lines []string, n int) []string {
	if n <= 0 {
		return nil
	}
	if len(lines) >= n {
		return lines[:n]
	}
	out := make([]string, n)
	copy(out, lines)
	return out
}
