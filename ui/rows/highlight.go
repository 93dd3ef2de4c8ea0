package rows

import (
	"bytes"
	"path/filepath"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/x/ansi"

	"github.com/miosa/osa-vlist/style"
)

// cachedLexer is a coalesced lexer and whether it came from a real match.
type cachedLexer struct {
	lexer chroma.Lexer
	known bool
}

// lexerCache maps file extensions to a cachedLexer.
var lexerCache sync.Map // string -> cachedLexer

// getLexer returns a coalesced lexer for filename, cached by extension.
// known is false when only the fallback lexer applies.
func getLexer(filename string) (lexer chroma.Lexer, known bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = strings.ToLower(filepath.Base(filename))
	}
	if cached, ok := lexerCache.Load(ext); ok {
		c := cached.(cachedLexer)
		return c.lexer, c.known
	}

	lexer = lexers.Match(filename)
	known = lexer != nil
	if !known {
		lexer = lexers.Fallback
	}
	c := cachedLexer{lexer: chroma.Coalesce(lexer), known: known}
	lexerCache.Store(ext, c)
	return c.lexer, c.known
}

// IsCode reports whether filename maps to a known chroma lexer.
func IsCode(filename string) bool {
	if filename == "" {
		return false
	}
	return lexers.Match(filename) != nil
}

// chromaStyle picks the chroma style for the active theme.
func chromaStyle() *chroma.Style {
	name := "github"
	if style.IsDark() {
		name = "monokai"
	}
	if s := styles.Get(name); s != nil {
		return s
	}
	return styles.Fallback
}

// ttyFormatter prefers 24-bit colour and falls back to 256 colours.
func ttyFormatter() chroma.Formatter {
	if f := formatters.Get("terminal16m"); f != nil {
		return f
	}
	if f := formatters.Get("terminal256"); f != nil {
		return f
	}
	return formatters.Fallback
}

// Highlight syntax-highlights code for the language implied by filename and
// truncates every line to width cells (0 means no truncation). Unknown
// languages and tokenizer errors return the code unhighlighted.
func Highlight(filename, code string, width int) string {
	out := code
	if lexer, known := getLexer(filename); filename != "" && code != "" && known {
		if it, err := lexer.Tokenise(nil, code); err == nil {
			var buf bytes.Buffer
			if err := ttyFormatter().Format(&buf, chromaStyle(), it); err == nil {
				out = buf.String()
			}
		}
	}
	out = strings.TrimRight(out, "\n")

	if width > 0 {
		lines := strings.Split(out, "\n")
		for i, l := range lines {
			lines[i] = ansi.Truncate(l, width, "…")
		}
		out = strings.Join(lines, "\n")
	}
	return out
}
