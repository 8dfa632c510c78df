// Package view defines the widget contract and the core widgets.
//
// A view tree is driven in two phases. Containers first query children with
// MinSize (pure, may be called many times), then assign each child its final
// size with Layout. Draw is only valid after Layout. Input reaches the
// focused leaf through OnEvent.
package view

import (
	"github.com/drake/runeview/event"
	"github.com/drake/runeview/printer"
	"github.com/drake/runeview/vec"
)

// View is the interface every widget implements.
type View interface {
	// Draw renders the view. It must not change view state.
	Draw(p printer.Printer)

	// OnEvent handles input and reports whether it was consumed.
	OnEvent(ev event.Event) EventResult

	// Layout assigns the final size. The view must accept it.
	Layout(size vec.Vec2)

	// MinSize returns the size the view would like under req.
	// It must be free of side effects.
	MinSize(req SizeRequest) vec.Vec2

	// TakeFocus asks the view to become focused and reports whether it did.
	TakeFocus() bool

	// Find returns the descendant matching sel, or nil.
	Find(sel Selector) View
}

// Root is the application-level controller handed to deferred callbacks.
type Root interface {
	AddLayer(v View)
	PopLayer()
	Find(sel Selector) View
	Quit()
}

// Callback is work a view asks the driver to run after event dispatch,
// with access to the whole tree.
type Callback func(r Root)

// EventResult is the outcome of OnEvent.
type EventResult struct {
	consumed bool
	callback Callback
}

// Ignored means the view did not handle the event.
var Ignored = EventResult{}

// Consumed means the view handled the event. cb may be nil.
func Consumed(cb Callback) EventResult {
	return EventResult{consumed: true, callback: cb}
}

// IsConsumed reports whether the event was handled.
func (r EventResult) IsConsumed() bool {
	return r.consumed
}

// Callback returns the deferred callback, if any.
func (r EventResult) Callback() Callback {
	return r.callback
}

// Selector identifies a tagged view.
type Selector struct {
	ID string
}

// ID returns a selector for the given tag.
func ID(id string) Selector {
	return Selector{ID: id}
}

// Finder is anything that can look up tagged views.
type Finder interface {
	Find(sel Selector) View
}

// FindAs looks up the view tagged id and returns it as T.
// It returns false if no view has the tag or it is not a T.
func FindAs[T View](f Finder, id string) (T, bool) {
	var zero T
	v := f.Find(ID(id))
	if v == nil {
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}
