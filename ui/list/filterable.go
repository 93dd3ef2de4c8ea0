package list

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/miosa/osa-vlist/virtual"
)

// ---------------------------------------------------------------------------
// FilterableList
// ---------------------------------------------------------------------------

// Filterable items expose the text matched against the filter. Items that
// do not implement it are matched on their ID.
type Filterable interface {
	FilterValue() string
}

// MatchSettable items can highlight the matched byte positions of their
// filter value.
type MatchSettable interface {
	SetMatches(indices []int)
}

// FilterableList wraps a Model with substring filtering. Matches keep source
// order; every filter change is a data set change for the windowing engine,
// so sizes measured while unfiltered are reused after the filter clears.
type FilterableList struct {
	list     Model
	allItems []Item
	filter   string
	visible  []Item
}

// NewFilterableList constructs a FilterableList; opts are passed to New.
func NewFilterableList(opts ...Option) FilterableList {
	return FilterableList{list: New(opts...)}
}

// SetItems replaces the full item set and re-applies the current filter.
func (fl *FilterableList) SetItems(items []Item) tea.Cmd {
	fl.allItems = append([]Item(nil), items...)
	return fl.applyFilter()
}

// AppendItems adds items to the end of the full set.
func (fl *FilterableList) AppendItems(items ...Item) tea.Cmd {
	if len(items) == 0 {
		return nil
	}
	fl.allItems = append(fl.allItems, items...)
	return fl.applyFilter()
}

// SetFilter updates the filter string and re-computes visible items. The
// view returns to the top whenever the filter actually changed.
func (fl *FilterableList) SetFilter(filter string) tea.Cmd {
	if filter == fl.filter {
		return nil
	}
	fl.filter = filter
	return tea.Batch(fl.applyFilter(), fl.list.ScrollToTop())
}

// Filter returns the current filter string.
func (fl FilterableList) Filter() string { return fl.filter }

// FilteredItems returns the items currently passing the filter (in order).
func (fl FilterableList) FilteredItems() []Item {
	return append([]Item(nil), fl.visible...)
}

// All returns the unfiltered item set.
func (fl FilterableList) All() []Item {
	return append([]Item(nil), fl.allItems...)
}

// Total returns the size of the unfiltered set.
func (fl FilterableList) Total() int { return len(fl.allItems) }

// SelectedItem returns the first item in the viewport, or nil.
func (fl FilterableList) SelectedItem() Item {
	if len(fl.visible) == 0 {
		return nil
	}
	idx := fl.list.VisibleItemIndices()
	if len(idx) > 0 && idx[0] < len(fl.visible) {
		return fl.visible[idx[0]]
	}
	return fl.visible[0]
}

// List exposes the underlying list for scroll and slot operations.
func (fl *FilterableList) List() *Model { return &fl.list }

// Range returns the current render window of the filtered list.
func (fl FilterableList) Range() virtual.Range { return fl.list.Range() }

// SetSize updates the viewport dimensions of the underlying list.
func (fl *FilterableList) SetSize(w, h int) tea.Cmd {
	return fl.list.SetSize(w, h)
}

// Update forwards tea.Msg to the underlying list model.
func (fl FilterableList) Update(message tea.Msg) (FilterableList, tea.Cmd) {
	var cmd tea.Cmd
	fl.list, cmd = fl.list.Update(message)
	return fl, cmd
}

// View renders the filtered list.
func (fl FilterableList) View() string {
	return fl.list.View()
}

// ---------------------------------------------------------------------------
// Internal: filter application
// ---------------------------------------------------------------------------

// applyFilter rebuilds the visible slice and pushes it into the list. Match
// positions are forwarded to MatchSettable items.
func (fl *FilterableList) applyFilter() tea.Cmd {
	needle := strings.ToLower(fl.filter)
	fl.visible = fl.visible[:0]
	for _, item := range fl.allItems {
		indices := substringIndices(strings.ToLower(filterValue(item)), needle)
		if ms, ok := item.(MatchSettable); ok {
			if needle == "" {
				ms.SetMatches(nil)
			} else {
				ms.SetMatches(indices)
			}
		}
		if indices == nil {
			continue
		}
		fl.visible = append(fl.visible, item)
	}
	return fl.list.SetItems(fl.visible)
}

func filterValue(it Item) string {
	if f, ok := it.(Filterable); ok {
		return f.FilterValue()
	}
	return it.ID()
}

// substringIndices returns the byte positions of the first occurrence of p
// in s, or nil when p does not occur. An empty p matches with no positions.
// Callers lower-case both inputs.
func substringIndices(s, p string) []int {
	if p == "" {
		return []int{}
	}
	idx := strings.Index(s, p)
	if idx < 0 {
		return nil
	}
	positions := make([]int, len(p))
	for i := range p {
		positions[i] = idx + i
	}
	return positions
}
