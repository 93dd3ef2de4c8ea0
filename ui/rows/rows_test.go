package rows

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

func TestParse_TextSplitsOnBlankLines(t *testing.T) {
	rs := Parse("notes.txt", "one\ntwo\n\n\nthree\n\nfour\n")
	if len(rs) != 3 {
		t.Fatalf("want 3 rows, got %d", len(rs))
	}
	if rs[0].Body() != "one\ntwo" || rs[2].Body() != "four" {
		t.Errorf("unexpected bodies %q %q", rs[0].Body(), rs[2].Body())
	}
	if rs[1].ID() != "notes.txt:1" {
		t.Errorf("want id notes.txt:1, got %s", rs[1].ID())
	}
	for _, r := range rs {
		if r.Kind() != KindText {
			t.Errorf("%s: want text, got %s", r.ID(), r.Kind())
		}
	}
}

func TestParse_MarkdownKeepsFences(t *testing.T) {
	src := "# Title\n\n```go\nfunc a() {}\n\nfunc b() {}\n```\n\ntail"
	rs := Parse("README.md", src)
	if len(rs) != 3 {
		t.Fatalf("want 3 rows, got %d", len(rs))
	}
	if !strings.Contains(rs[1].Body(), "func b()") {
		t.Errorf("fence split apart: %q", rs[1].Body())
	}
	if rs[0].Kind() != KindMarkdown {
		t.Errorf("want markdown, got %s", rs[0].Kind())
	}
}

func TestParse_CodeByExtension(t *testing.T) {
	rs := Parse("main.go", "package main\n\nfunc main() {}\n")
	if len(rs) != 2 || rs[1].Kind() != KindCode {
		t.Fatalf("want 2 code rows, got %d", len(rs))
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	if err := os.WriteFile(path, []byte("a\n\nb\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	rs, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(rs) != 2 || rs[0].ID() != "log.txt:0" {
		t.Errorf("unexpected rows %d", len(rs))
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("want wrapped ErrNotExist, got %v", err)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(100, 30)
	b := Generate(100, 30)
	if len(a) != 30 {
		t.Fatalf("want 30 rows, got %d", len(a))
	}
	for i := range a {
		if a[i].ID() != b[i].ID() || a[i].Body() != b[i].Body() {
			t.Fatalf("row %d differs between runs", i)
		}
	}
	if a[0].ID() != "row-100" {
		t.Errorf("want first id row-100, got %s", a[0].ID())
	}
}

func TestGenerate_MixesKinds(t *testing.T) {
	kinds := map[Kind]int{}
	for _, r := range Generate(0, 77) {
		kinds[r.Kind()]++
	}
	if kinds[KindCode] != 7 || kinds[KindMarkdown] == 0 || kinds[KindText] == 0 {
		t.Errorf("unexpected kind mix %v", kinds)
	}
}

func TestRender_TextWrapsToWidth(t *testing.T) {
	r := NewText("t", strings.Repeat("word ", 40))
	out := r.Render(30)
	if lipgloss.Height(out) < 2 {
		t.Errorf("want wrapped output, got %d lines", lipgloss.Height(out))
	}
	for _, l := range strings.Split(out, "\n") {
		if w := lipgloss.Width(l); w > 30 {
			t.Errorf("line wider than 30: %d", w)
		}
	}
	if r.Render(0) != "" {
		t.Error("zero width should render nothing")
	}
}

func TestRender_CodeFitsWidth(t *testing.T) {
	r := NewCode("c", "x.go", "func veryLongFunctionName(argumentOne, argumentTwo, argumentThree int) {}")
	out := r.Render(40)
	for _, l := range strings.Split(out, "\n") {
		if w := lipgloss.Width(l); w > 40 {
			t.Errorf("code line wider than 40: %d", w)
		}
	}
	if !strings.Contains(out, "x.go") {
		t.Error("code row should show its file name")
	}
}

func TestRender_Markdown(t *testing.T) {
	out := NewMarkdown("m", "# Heading\n\nsome *text*").Render(60)
	if !strings.Contains(out, "Heading") || !strings.Contains(out, "text") {
		t.Errorf("markdown lost content: %q", out)
	}
	if strings.HasPrefix(out, "\n") || strings.HasSuffix(out, "\n") {
		t.Error("markdown output should be trimmed")
	}
}

func TestSetMatches_BumpsVersion(t *testing.T) {
	r := NewText("t", "hello world")
	v := r.ContentVersion()
	r.SetMatches([]int{6, 7})
	if r.ContentVersion() == v {
		t.Error("want version bump on new matches")
	}
	if !strings.Contains(r.Render(40), "wo") {
		t.Error("highlighted render lost text")
	}
	v = r.ContentVersion()
	r.SetMatches(nil)
	r.SetMatches(nil)
	if r.ContentVersion() != v+1 {
		t.Errorf("clearing twice should bump once, got %d -> %d", v, r.ContentVersion())
	}
}

func TestSetBody(t *testing.T) {
	r := NewText("t", "a")
	v := r.ContentVersion()
	r.SetBody("a")
	if r.ContentVersion() != v {
		t.Error("same body should not bump version")
	}
	r.SetBody("b")
	if r.ContentVersion() != v+1 || r.Body() != "b" {
		t.Error("new body should bump version")
	}
}

func TestHighlight_UnknownLanguagePassesThrough(t *testing.T) {
	code := "plain words\nmore"
	if got := Highlight("notes.unknownext", code, 0); got != code {
		t.Errorf("want passthrough, got %q", got)
	}
	if got := Highlight("notes.unknownext", "abcdefghij", 5); lipgloss.Width(got) != 5 {
		t.Errorf("want truncated to 5 cells, got %q", got)
	}
}

func TestGetLexer_ReportsFallback(t *testing.T) {
	for range 2 { // second round reads the cache
		if _, known := getLexer("notes.unknownext"); known {
			t.Error("unknown extension should report the fallback lexer")
		}
		if l, known := getLexer("main.go"); !known || l == nil {
			t.Error("main.go should have a real lexer")
		}
	}
}

func TestHighlight_KnownLanguageIsStyled(t *testing.T) {
	code := "package main\n\nfunc main() {}"
	got := Highlight("main.go", code, 0)
	if got == code {
		t.Error("want ANSI styling for Go source")
	}
	if ansi.Strip(got) != code {
		t.Errorf("styling should not change the text, got %q", ansi.Strip(got))
	}
}

func TestIsCode(t *testing.T) {
	if !IsCode("main.go") {
		t.Error("main.go should be code")
	}
	if IsCode("") || IsCode("notes.unknownext") {
		t.Error("unknown names should not be code")
	}
}

func TestItems(t *testing.T) {
	rs := Generate(0, 3)
	items := Items(rs)
	if len(items) != 3 || items[2].ID() != "row-2" {
		t.Errorf("unexpected items %v", items)
	}
}
