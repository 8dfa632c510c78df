package event

import "github.com/charmbracelet/bubbles/key"

// ScrollKeyMap holds the bindings used by scrollable views.
type ScrollKeyMap struct {
	Top      key.Binding
	Bottom   key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
}

// ScrollKeys are the default scrolling bindings.
var ScrollKeys = ScrollKeyMap{
	Top: key.NewBinding(
		key.WithKeys("home"),
		key.WithHelp("home", "top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("end"),
		key.WithHelp("end", "bottom"),
	),
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "scroll up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "scroll down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdown", "page down"),
	),
}

// FocusKeyMap holds the bindings that move focus inside a container.
type FocusKeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
}

// FocusKeys are the default focus bindings.
var FocusKeys = FocusKeyMap{
	Next: key.NewBinding(
		key.WithKeys("tab", "right", "down"),
		key.WithHelp("tab", "next"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab", "left", "up"),
		key.WithHelp("shift+tab", "previous"),
	),
	Activate: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
}

// Matches reports whether ev triggers any of the bindings.
func Matches(ev Event, bindings ...key.Binding) bool {
	if ev.Type == ResizeEvent {
		return false
	}
	return key.Matches(ev, bindings...)
}
