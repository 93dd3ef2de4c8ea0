package app

import (
	"charm.land/bubbles/v2/key"

	"github.com/miosa/osa-vlist/ui/list"
)

// KeyMap defines all global keybindings. Scroll bindings live in the list's
// own key map and are shown alongside these in the help view.
type KeyMap struct {
	Quit         key.Binding
	Help         key.Binding
	Filter       key.Binding
	Accept       key.Binding
	Escape       key.Binding
	Append       key.Binding
	Shrink       key.Binding
	ToggleHeader key.Binding
	Scrollbar    key.Binding
	Copy         key.Binding

	List list.KeyMap
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply filter"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear filter"),
		),
		Append: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "append 100"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "keep 20"),
		),
		ToggleHeader: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "toggle header"),
		),
		Scrollbar: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "toggle scrollbar"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy top row"),
		),
		List: list.DefaultKeyMap(),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.List.LineDown, k.List.PageDown, k.Filter, k.Append, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return append(k.List.FullHelp(), []key.Binding{
		k.Filter, k.Accept, k.Escape,
	}, []key.Binding{
		k.Append, k.Shrink, k.ToggleHeader, k.Scrollbar, k.Copy, k.Help, k.Quit,
	})
}
