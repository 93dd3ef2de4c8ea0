package rows

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/miosa/osa-vlist/style"
)

type rendererKey struct {
	width int
	dark  bool
}

// renderers caches one glamour renderer per wrap width and background.
var (
	renderersMu sync.Mutex
	renderers   = map[rendererKey]*glamour.TermRenderer{}
)

func markdownRenderer(width int) (*glamour.TermRenderer, error) {
	k := rendererKey{width: width, dark: style.IsDark()}

	renderersMu.Lock()
	defer renderersMu.Unlock()
	if r, ok := renderers[k]; ok {
		return r, nil
	}
	standard := "light"
	if k.dark {
		standard = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(standard),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	renderers[k] = r
	return r, nil
}

// renderMarkdown renders md with glamour, falling back to plain text on
// error. Leading and trailing blank lines glamour adds are trimmed.
func renderMarkdown(md string, width int) string {
	if strings.TrimSpace(md) == "" {
		return md
	}
	r, err := markdownRenderer(width)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}
