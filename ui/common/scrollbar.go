package common

import (
	"math"
	"strings"

	"github.com/miosa/osa-vlist/style"
)

const (
	scrollTrackChar = "│"
	scrollThumbChar = "█"
)

// Scrollbar renders a one-column vertical scrollbar of viewport rows.
//
// total is the estimated size of the whole scrolled content, which moves as
// rows get measured; offset is the current top row. The thumb is sized and
// placed proportionally. When the content fits, the result is empty.
func Scrollbar(viewport, offset int, total float64) string {
	rows := thumbRows(viewport, offset, total)
	if rows == nil {
		return ""
	}
	out := make([]string, len(rows))
	for i, thumb := range rows {
		if thumb {
			out[i] = style.ScrollbarThumb.Render(scrollThumbChar)
		} else {
			out[i] = style.ScrollbarTrack.Render(scrollTrackChar)
		}
	}
	return strings.Join(out, "\n")
}

// thumbRows marks which track rows belong to the thumb. nil means no
// scrollbar is needed.
func thumbRows(viewport, offset int, total float64) []bool {
	vh := viewport
	ch := int(math.Ceil(total))
	if vh <= 0 || ch <= vh {
		return nil
	}

	thumbH := max(1, min(vh, vh*vh/ch))

	scrollable := ch - vh
	thumbTop := 0
	if scrollable > 0 {
		thumbTop = offset * (vh - thumbH) / scrollable
	}
	thumbTop = max(0, min(thumbTop, vh-thumbH))

	rows := make([]bool, vh)
	for i := thumbTop; i < thumbTop+thumbH; i++ {
		rows[i] = true
	}
	return rows
}
