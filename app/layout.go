package app

// minListHeight keeps the list usable on tiny terminals.
const minListHeight = 3

// Layout holds computed dimensions for the current frame.
type Layout struct {
	TermWidth    int
	TermHeight   int
	ListHeight   int
	FilterHeight int // 0 unless the filter bar is shown
	ToastHeight  int
	StatusHeight int
	HelpHeight   int
}

// ComputeLayout splits the terminal between the list and the bars below it.
// The list gets whatever the toasts, filter bar, status bar and help leave.
func ComputeLayout(termW, termH int, showFilter bool, toastLines, statusLines, helpLines int) Layout {
	l := Layout{
		TermWidth:    termW,
		TermHeight:   termH,
		ToastHeight:  max(0, toastLines),
		StatusHeight: max(1, statusLines),
		HelpHeight:   max(0, helpLines),
	}
	if showFilter {
		l.FilterHeight = 1
	}
	l.ListHeight = max(minListHeight, termH-l.ToastHeight-l.FilterHeight-l.StatusHeight-l.HelpHeight)
	return l
}
