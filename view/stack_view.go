package view

import (
	"github.com/drake/runeview/event"
	"github.com/drake/runeview/printer"
	"github.com/drake/runeview/vec"
)

// StackView is a stack of layers. Every layer is drawn, centered, but
// only the top one is focused and receives input.
type StackView struct {
	layers []*layer
}

type layer struct {
	view View
	size vec.Vec2
	// virgin is cleared on the first layout, when the layer is given focus.
	virgin bool
}

// NewStackView creates an empty stack.
func NewStackView() *StackView {
	return &StackView{}
}

// AddLayer pushes v on top of the stack, wrapped in a ShadowView.
func (s *StackView) AddLayer(v View) {
	s.layers = append(s.layers, &layer{
		view:   NewShadowView(v),
		virgin: true,
	})
}

// PopLayer removes the top layer. It does nothing on an empty stack.
func (s *StackView) PopLayer() {
	if len(s.layers) == 0 {
		return
	}
	s.layers[len(s.layers)-1] = nil
	s.layers = s.layers[:len(s.layers)-1]
}

// Len returns the number of layers.
func (s *StackView) Len() int {
	return len(s.layers)
}

func (s *StackView) top() *layer {
	if len(s.layers) == 0 {
		return nil
	}
	return s.layers[len(s.layers)-1]
}

func (s *StackView) Draw(p printer.Printer) {
	last := len(s.layers) - 1
	for i, l := range s.layers {
		offset := p.Size.Sub(l.size).Div(2)
		l.view.Draw(p.SubPrinter(offset, l.size, i == last))
	}
}

func (s *StackView) OnEvent(ev event.Event) EventResult {
	l := s.top()
	if l == nil {
		return Ignored
	}
	return l.view.OnEvent(ev)
}

func (s *StackView) Layout(size vec.Vec2) {
	req := AtMostSize(size)
	for _, l := range s.layers {
		l.size = size.Min(l.view.MinSize(req))
		l.view.Layout(l.size)
		if l.virgin {
			l.view.TakeFocus()
			l.virgin = false
		}
	}
}

// MinSize is the largest layer size, and never smaller than (1,1).
func (s *StackView) MinSize(req SizeRequest) vec.Vec2 {
	size := vec.New(1, 1)
	for _, l := range s.layers {
		size = size.Max(l.view.MinSize(req))
	}
	return size
}

func (s *StackView) TakeFocus() bool {
	l := s.top()
	if l == nil {
		return false
	}
	return l.view.TakeFocus()
}

// Find searches from the bottom layer up; the first match wins.
func (s *StackView) Find(sel Selector) View {
	for _, l := range s.layers {
		if v := l.view.Find(sel); v != nil {
			return v
		}
	}
	return nil
}
