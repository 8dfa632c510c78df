package lua

import (
	"github.com/drake/runeview/event"
	"github.com/drake/runeview/view"
)

// Host provides the bridge between Engine and the view tree.
// This abstraction decouples Engine from app.Root,
// making it testable without a terminal.
type Host interface {
	// Layers
	AddLayer(v view.View)
	PopLayer()

	// Lookup of tagged views
	Find(sel view.Selector) view.View

	// Lifecycle
	Quit()

	// Global key bindings, checked before the focused view
	AddGlobalCallback(ev event.Event, cb view.Callback)
}
