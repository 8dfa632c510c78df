package view

import (
	"testing"

	"github.com/drake/runeview/event"
	"github.com/drake/runeview/printer"
	"github.com/drake/runeview/vec"
)

func TestStackRoutesToTopLayer(t *testing.T) {
	a := &probe{name: "a", min: vec.New(2, 2), consume: true}
	b := &probe{name: "b", min: vec.New(2, 2), consume: true}
	c := &probe{name: "c", min: vec.New(2, 2), consume: true}

	s := NewStackView()
	s.AddLayer(a)
	s.AddLayer(b)
	s.AddLayer(c)

	if res := s.OnEvent(event.Char('x')); !res.IsConsumed() {
		t.Fatal("top layer should consume")
	}
	if len(c.events) != 1 || len(a.events) != 0 || len(b.events) != 0 {
		t.Fatalf("event reached a=%d b=%d c=%d, want only c", len(a.events), len(b.events), len(c.events))
	}

	s.PopLayer()
	s.OnEvent(event.Char('y'))
	if len(b.events) != 1 || len(a.events) != 0 || len(c.events) != 1 {
		t.Fatalf("after pop, event reached a=%d b=%d c=%d, want only b", len(a.events), len(b.events), len(c.events))
	}
}

func TestStackEmptyIsNeutral(t *testing.T) {
	s := NewStackView()
	s.AddLayer(&probe{min: vec.New(1, 1)})
	s.PopLayer()
	s.PopLayer() // extra pop must not panic

	if s.Len() != 0 {
		t.Fatalf("Len = %d, want 0", s.Len())
	}
	if res := s.OnEvent(event.KeyPress(event.Enter)); res.IsConsumed() {
		t.Error("empty stack should ignore events")
	}
	if s.TakeFocus() {
		t.Error("empty stack should refuse focus")
	}
	if got := s.MinSize(SizeRequest{}); got != vec.New(1, 1) {
		t.Errorf("empty MinSize = %v, want (1,1)", got)
	}
	if s.Find(ID("x")) != nil {
		t.Error("empty stack should find nothing")
	}

	s.Layout(vec.New(10, 10))
	s.Draw(printer.New(printer.NewCanvas(10, 10), nil))
}

func TestStackCentersFreshLayer(t *testing.T) {
	p := &probe{min: vec.New(3, 1), focus: true}
	s := NewStackView()
	s.AddLayer(p)

	if !s.layers[0].virgin {
		t.Fatal("new layer should be virgin")
	}

	s.Layout(vec.New(10, 10))

	l := s.layers[0]
	if l.size != vec.New(4, 2) {
		t.Fatalf("layer size = %v, want (4,2) with shadow", l.size)
	}
	if l.virgin {
		t.Error("virgin flag should clear after first layout")
	}
	if p.focusCalls != 1 {
		t.Errorf("focus requested %d times, want 1", p.focusCalls)
	}

	s.Draw(printer.New(printer.NewCanvas(10, 10), nil))
	if len(p.drawn) != 1 {
		t.Fatalf("child drawn %d times, want 1", len(p.drawn))
	}
	if got := p.drawn[0].Offset; got != vec.New(3, 4) {
		t.Errorf("layer drawn at %v, want (3,4)", got)
	}

	// Resizing must not steal focus again.
	s.Layout(vec.New(20, 20))
	if p.focusCalls != 1 {
		t.Errorf("focus requested %d times after relayout, want 1", p.focusCalls)
	}
}

func TestStackLayerClampedToScreen(t *testing.T) {
	p := &probe{min: vec.New(30, 3)}
	s := NewStackView()
	s.AddLayer(p)
	s.Layout(vec.New(10, 10))

	if got := s.layers[0].size; got != vec.New(10, 4) {
		t.Errorf("layer size = %v, want (10,4)", got)
	}
	if got := p.layouts[0]; got != vec.New(9, 3) {
		t.Errorf("child laid out at %v, want (9,3)", got)
	}
}

func TestStackOnlyTopDrawnFocused(t *testing.T) {
	bottom := &probe{min: vec.New(2, 2)}
	top := &probe{min: vec.New(2, 2)}
	s := NewStackView()
	s.AddLayer(bottom)
	s.AddLayer(top)
	s.Layout(vec.New(10, 10))
	s.Draw(printer.New(printer.NewCanvas(10, 10), nil))

	if bottom.drawn[0].Focused {
		t.Error("bottom layer should be drawn unfocused")
	}
	if !top.drawn[0].Focused {
		t.Error("top layer should be drawn focused")
	}
}

func TestStackFindSearchesBottomFirst(t *testing.T) {
	first := NewTextView("first")
	second := NewTextView("second")
	s := NewStackView()
	s.AddLayer(NewIdView("dup", first))
	s.AddLayer(NewIdView("dup", second))
	s.AddLayer(NewIdView("only", NewTextView("top")))

	got, ok := FindAs[*TextView](s, "dup")
	if !ok || got != first {
		t.Errorf("Find(dup) = %v, want bottom layer's view", got)
	}
	if _, ok := FindAs[*TextView](s, "only"); !ok {
		t.Error("Find(only) failed")
	}
}

func TestStackMinSizeIsMax(t *testing.T) {
	s := NewStackView()
	s.AddLayer(&probe{min: vec.New(5, 1)})
	s.AddLayer(&probe{min: vec.New(2, 7)})

	// Each layer adds one cell of shadow on both axes.
	if got := s.MinSize(SizeRequest{}); got != vec.New(6, 8) {
		t.Errorf("MinSize = %v, want (6,8)", got)
	}
}
