package virtual

import "fmt"

// Range is the render window: the inclusive index span [Start, End] plus the
// spacer sizes standing in for everything before and after it.
//
// An empty data set yields Start=0, End=-1.
type Range struct {
	Start     int
	End       int
	PadFront  float64
	PadBehind float64
}

// Empty reports whether the window holds no items.
func (r Range) Empty() bool { return r.End < r.Start }

// Len returns the number of items in the window.
func (r Range) Len() int {
	if r.Empty() {
		return 0
	}
	return r.End - r.Start + 1
}

// Contains reports whether index i lies inside the window.
func (r Range) Contains(i int) bool {
	return !r.Empty() && i >= r.Start && i <= r.End
}

func (r Range) String() string {
	if r.Empty() {
		return "[empty]"
	}
	return fmt.Sprintf("[%d..%d front=%.1f behind=%.1f]", r.Start, r.End, r.PadFront, r.PadBehind)
}

func emptyRange() Range { return Range{Start: 0, End: -1} }
