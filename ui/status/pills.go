package status

import "github.com/miosa/osa-vlist/style"

// EdgePill renders a marker for the edge the viewport last touched, e.g.
// "TOP". Returns an empty string for EdgeNone.
func EdgePill(e Edge) string {
	switch e {
	case EdgeTop:
		return style.StatusEdge.Render("TOP")
	case EdgeBottom:
		return style.StatusEdge.Render("BOTTOM")
	default:
		return ""
	}
}
