package rows

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads a file and splits it into rows.
func Load(path string) ([]*Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(filepath.Base(path), string(data)), nil
}

// Parse splits content into rows at blank lines. Markdown files yield
// markdown rows and keep fenced code blocks whole; files with a known
// language yield code rows; everything else is plain text. Row ids are
// "<name>:<n>".
func Parse(name, content string) []*Row {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	ext := strings.ToLower(filepath.Ext(name))
	markdown := ext == ".md" || ext == ".markdown"
	code := !markdown && IsCode(name)

	var out []*Row
	for i, block := range splitBlocks(content, markdown) {
		id := fmt.Sprintf("%s:%d", name, i)
		switch {
		case markdown:
			out = append(out, NewMarkdown(id, block))
		case code:
			out = append(out, NewCode(id, name, block))
		default:
			r := NewText(id, block)
			r.SetAlt(i%2 == 1)
			out = append(out, r)
		}
	}
	return out
}

// splitBlocks cuts content at runs of blank lines. With fences set, blank
// lines inside ``` fences do not split.
func splitBlocks(content string, fences bool) []string {
	var (
		blocks  []string
		cur     []string
		inFence bool
	)
	flush := func() {
		if len(cur) > 0 {
			blocks = append(blocks, strings.Join(cur, "\n"))
			cur = cur[:0]
		}
	}
	for _, line := range strings.Split(content, "\n") {
		if fences && strings.HasPrefix(strings.TrimSpace(line), "```") {
			inFence = !inFence
		}
		if strings.TrimSpace(line) == "" && !inFence {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()
	return blocks
}
