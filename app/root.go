// Package app owns the top-level view stack and drives the draw/input loop.
package app

import (
	"fmt"

	"github.com/drake/runeview/debug"
	"github.com/drake/runeview/event"
	"github.com/drake/runeview/printer"
	"github.com/drake/runeview/theme"
	"github.com/drake/runeview/vec"
	"github.com/drake/runeview/view"
)

// Ensure Root can be handed to view callbacks at compile time
var _ view.Root = (*Root)(nil)

// Driver is a terminal the Root can run on.
type Driver interface {
	printer.Backend

	// PollEvent blocks until the next input event.
	PollEvent() (event.Event, error)

	// Clear blanks the back buffer; Refresh shows it.
	Clear()
	Refresh()

	Close() error
}

// Root is the application controller: a stack of layers, global key
// callbacks and the active theme. It is not safe for concurrent use; all
// calls happen on the loop that drives it.
type Root struct {
	theme   *theme.Theme
	stack   *view.StackView
	globals map[event.Event]view.Callback
	running bool
}

// New creates a Root with an empty stack. A nil theme uses the default.
func New(th *theme.Theme) *Root {
	if th == nil {
		th = theme.Default()
	}
	return &Root{
		theme:   th,
		stack:   view.NewStackView(),
		globals: make(map[event.Event]view.Callback),
		running: true,
	}
}

// Theme returns the active theme.
func (r *Root) Theme() *theme.Theme { return r.theme }

// SetTheme replaces the active theme.
func (r *Root) SetTheme(th *theme.Theme) {
	if th != nil {
		r.theme = th
	}
}

// Screen returns the layer stack.
func (r *Root) Screen() *view.StackView { return r.stack }

// AddLayer pushes v on top of the stack.
func (r *Root) AddLayer(v view.View) { r.stack.AddLayer(v) }

// PopLayer removes the top layer, if any.
func (r *Root) PopLayer() { r.stack.PopLayer() }

// Find looks up a tagged view anywhere in the stack.
func (r *Root) Find(sel view.Selector) view.View { return r.stack.Find(sel) }

// FindID is Find by tag.
func (r *Root) FindID(id string) view.View { return r.stack.Find(view.ID(id)) }

// AddGlobalCallback runs cb whenever ev is received, before any view sees it.
func (r *Root) AddGlobalCallback(ev event.Event, cb view.Callback) {
	r.globals[ev] = cb
}

// Quit stops Run after the current event.
func (r *Root) Quit() { r.running = false }

// Running reports whether Quit has not been called.
func (r *Root) Running() bool { return r.running }

// Layout assigns the whole screen to the stack.
func (r *Root) Layout(size vec.Vec2) {
	r.stack.Layout(size)
}

// Draw paints the background and every layer onto b.
// Layout must have been called for b's current size.
func (r *Root) Draw(b printer.Backend) {
	p := printer.New(b, r.theme)
	p.WithColor(theme.Background, func(p printer.Printer) {
		for y := 0; y < p.Size.Y; y++ {
			p.PrintHLine(vec.New(0, y), p.Size.X, ' ')
		}
	})
	r.stack.Draw(p)
}

// HandleEvent dispatches one event. Global callbacks take precedence over
// the stack. A callback returned by the stack runs after dispatch.
func (r *Root) HandleEvent(ev event.Event) {
	if ev.Type == event.ResizeEvent {
		return
	}
	if cb, ok := r.globals[ev]; ok {
		cb(r)
		return
	}

	res := r.stack.OnEvent(ev)
	if cb := res.Callback(); cb != nil {
		cb(r)
		return
	}
	if !res.IsConsumed() {
		debug.Logf("unhandled event %q", ev.String())
	}
}

// Run drives d until Quit is called or polling fails.
// Every frame is laid out at the driver's current size before it is drawn.
func (r *Root) Run(d Driver) error {
	r.running = true
	for r.running {
		r.Layout(d.Size())
		d.Clear()
		r.Draw(d)
		d.Refresh()

		ev, err := d.PollEvent()
		if err != nil {
			return fmt.Errorf("poll event: %w", err)
		}
		r.HandleEvent(ev)
	}
	return nil
}
