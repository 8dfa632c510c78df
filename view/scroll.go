package view

import (
	"github.com/drake/runeview/printer"
	"github.com/drake/runeview/theme"
	"github.com/drake/runeview/vec"
)

// ScrollBase is the scroll state of a view taller than its viewport.
type ScrollBase struct {
	// StartLine is the first visible content row.
	StartLine int
	// ContentHeight is the total number of rows.
	ContentHeight int
	// ViewHeight is the number of rows shown at once.
	ViewHeight int
}

// SetHeights records new viewport and content heights, keeping the
// start line within range.
func (s *ScrollBase) SetHeights(viewHeight, contentHeight int) {
	s.ViewHeight = viewHeight
	s.ContentHeight = contentHeight
	s.StartLine = min(s.StartLine, s.maxStart())
}

func (s *ScrollBase) maxStart() int {
	return max(0, s.ContentHeight-s.ViewHeight)
}

// Scrollable reports whether the content is taller than the viewport.
func (s *ScrollBase) Scrollable() bool {
	return s.ContentHeight > s.ViewHeight
}

func (s *ScrollBase) CanScrollUp() bool {
	return s.StartLine > 0
}

func (s *ScrollBase) CanScrollDown() bool {
	return s.StartLine < s.maxStart()
}

func (s *ScrollBase) ScrollTop() {
	s.StartLine = 0
}

func (s *ScrollBase) ScrollBottom() {
	s.StartLine = s.maxStart()
}

// ScrollUp moves the viewport up by n rows, stopping at the top.
func (s *ScrollBase) ScrollUp(n int) {
	s.StartLine = max(0, s.StartLine-n)
}

// ScrollDown moves the viewport down by n rows, stopping at the bottom.
func (s *ScrollBase) ScrollDown(n int) {
	s.StartLine = min(s.maxStart(), s.StartLine+n)
}

// Draw calls line once per visible row with a one-row printer and the
// content row index. When scrollable, the last column holds a scrollbar
// and rows leave a two-column gutter.
func (s *ScrollBase) Draw(p printer.Printer, line func(p printer.Printer, i int)) {
	visible := min(s.ViewHeight, s.ContentHeight-s.StartLine)

	width := p.Size.X
	if s.Scrollable() {
		width -= 2
	}
	for y := 0; y < visible; y++ {
		line(p.SubPrinter(vec.New(0, y), vec.New(width, 1), true), s.StartLine+y)
	}

	if !s.Scrollable() {
		return
	}

	height := max(1, s.ViewHeight*s.ViewHeight/s.ContentHeight)
	steps := s.ViewHeight - height + 1
	start := steps * s.StartLine / (1 + s.ContentHeight - s.ViewHeight)

	pair := theme.HighlightInactive
	if p.Focused {
		pair = theme.Highlight
	}

	x := p.Size.X - 1
	p.PrintVLine(vec.New(x, 0), p.Size.Y, '|')
	p.WithColor(pair, func(p printer.Printer) {
		p.PrintVLine(vec.New(x, start), height, ' ')
	})
}
