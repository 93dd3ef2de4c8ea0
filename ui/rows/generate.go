package rows

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

var words = strings.Fields(`lorem ipsum dolor sit amet consectetur adipiscing
elit sed do eiusmod tempor incididunt ut labore et dolore magna aliqua enim ad
minim veniam quis nostrud exercitation ullamco laboris nisi aliquip ex ea
commodo consequat duis aute irure in reprehenderit voluptate velit esse cillum
fugiat nulla pariatur excepteur sint occaecat cupidatat non proident sunt culpa
qui officia deserunt mollit anim id est laborum`)

const sampleCode = `func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	return min(v, hi)
}`

// Generate returns count synthetic rows with ids "row-<start>" onward. The
// same start always yields the same content. Most rows are text of varying
// length; every 7th is markdown and every 11th is code.
func Generate(start, count int) []*Row {
	out := make([]*Row, 0, max(0, count))
	for i := start; i < start+count; i++ {
		rng := rand.New(rand.NewPCG(uint64(i), 0x5eed))
		id := fmt.Sprintf("row-%d", i)
		switch {
		case i%11 == 10:
			out = append(out, NewCode(id, "clamp.go", fmt.Sprintf("// row %d\n%s", i, sampleCode)))
		case i%7 == 6:
			out = append(out, NewMarkdown(id, fmt.Sprintf("### Row %d\n\n%s\n\n- %s\n- %s",
				i, sentence(rng, 8+rng.IntN(16)), sentence(rng, 4), sentence(rng, 4))))
		default:
			r := NewText(id, fmt.Sprintf("%d  %s", i, sentence(rng, 3+rng.IntN(60))))
			r.SetAlt(i%2 == 1)
			out = append(out, r)
		}
	}
	return out
}

func sentence(rng *rand.Rand, n int) string {
	ws := make([]string, n)
	for i := range ws {
		ws[i] = words[rng.IntN(len(words))]
	}
	if n > 0 {
		ws[0] = strings.ToUpper(ws[0][:1]) + ws[0][1:]
	}
	return strings.Join(ws, " ") + "."
}
