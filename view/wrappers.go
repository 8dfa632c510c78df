package view

import (
	"github.com/drake/runeview/event"
	"github.com/drake/runeview/printer"
	"github.com/drake/runeview/theme"
	"github.com/drake/runeview/vec"
)

var one = vec.New(1, 1)

// ShadowView gives its child a filled background and a one-cell drop
// shadow to the right and below.
type ShadowView struct {
	View
}

// NewShadowView wraps v.
func NewShadowView(v View) *ShadowView {
	return &ShadowView{View: v}
}

func (s *ShadowView) MinSize(req SizeRequest) vec.Vec2 {
	return s.View.MinSize(req.Reduced(one)).Add(one)
}

func (s *ShadowView) Layout(size vec.Vec2) {
	s.View.Layout(size.Sub(one).FloorAt(vec.Zero()))
}

func (s *ShadowView) Draw(p printer.Printer) {
	inner := p.Size.Sub(one).FloorAt(vec.Zero())

	p.WithColor(theme.Primary, func(p printer.Printer) {
		for y := 0; y < inner.Y; y++ {
			p.PrintHLine(vec.New(0, y), inner.X, ' ')
		}
	})

	s.View.Draw(p.SubPrinter(vec.Zero(), inner, true))

	if !p.Theme.Shadow || inner.X < 1 || inner.Y < 1 {
		return
	}
	p.WithColor(theme.Shadow, func(p printer.Printer) {
		p.PrintHLine(vec.New(1, inner.Y), inner.X, ' ')
		p.PrintVLine(vec.New(inner.X, 1), inner.Y, ' ')
	})
}

// IdView tags a view so it can be found with a Selector.
type IdView struct {
	View
	id string
}

// NewIdView tags v with id.
func NewIdView(id string, v View) *IdView {
	return &IdView{View: v, id: id}
}

// Find returns the wrapped view when sel names this tag.
func (v *IdView) Find(sel Selector) View {
	if sel.ID == v.id {
		return v.View
	}
	return v.View.Find(sel)
}

// KeyEventView adds key callbacks around a view. The child sees every
// event first; a registered callback only fires for events it ignores.
type KeyEventView struct {
	View
	callbacks map[event.Event]Callback
}

// NewKeyEventView wraps v.
func NewKeyEventView(v View) *KeyEventView {
	return &KeyEventView{View: v, callbacks: make(map[event.Event]Callback)}
}

// Register binds cb to ev, replacing any earlier binding.
func (k *KeyEventView) Register(ev event.Event, cb Callback) *KeyEventView {
	k.callbacks[ev] = cb
	return k
}

func (k *KeyEventView) OnEvent(ev event.Event) EventResult {
	res := k.View.OnEvent(ev)
	if res.IsConsumed() {
		return res
	}
	if cb, ok := k.callbacks[ev]; ok {
		return Consumed(cb)
	}
	return Ignored
}
