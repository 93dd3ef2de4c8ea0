package app

// State represents the current application state.
type State int

const (
	StateBrowsing  State = iota // Scrolling the list
	StateFiltering              // Typing into the filter bar
)

func (s State) String() string {
	switch s {
	case StateBrowsing:
		return "browsing"
	case StateFiltering:
		return "filtering"
	default:
		return "unknown"
	}
}
