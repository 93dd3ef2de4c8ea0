// Package msg defines the tea.Msg types emitted by the list viewer.
// It imports only the windowing core so every UI package can depend on it.
package msg

import "github.com/miosa/osa-vlist/virtual"

// -- List window --

// RangeChanged is emitted once per update in which the render window moved
// or its spacers changed.
type RangeChanged struct {
	Range virtual.Range
}

// -- Scroll edges --

// Scrolled is emitted after a scroll that reached neither edge.
type Scrolled struct {
	Offset int
	Range  virtual.Range
}

// ReachedTop is emitted when a scroll lands within the upper threshold of a
// non-empty list whose window starts at the first item.
type ReachedTop struct {
	Offset int
	Range  virtual.Range
}

// ReachedBottom is emitted when a scroll lands within the lower threshold of
// the end of the content and the window ends at the last item.
type ReachedBottom struct {
	Offset int
	Range  virtual.Range
}
