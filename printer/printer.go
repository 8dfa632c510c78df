// Package printer provides the clipped, offset drawing surface handed to views.
package printer

import (
	"strings"
	"unicode/utf8"

	"github.com/drake/runeview/theme"
	"github.com/drake/runeview/vec"
)

// Backend is the terminal primitive surface a Printer draws through.
// Coordinates are absolute.
type Backend interface {
	// Size returns the drawable area.
	Size() vec.Vec2

	// Printw emits text at pos. The text is a format string: "%%" is a
	// literal percent sign.
	Printw(pos vec.Vec2, format string)

	// HLine and VLine repeat r n times from pos.
	HLine(pos vec.Vec2, r rune, n int)
	VLine(pos vec.Vec2, r rune, n int)

	// AttrOn activates a style for subsequent output; AttrOff deactivates it.
	AttrOn(s theme.Style)
	AttrOff(s theme.Style)
}

// Printer is a view onto a sub-rectangle of the backend.
// It is a value: sub-printers are new values and printing never mutates it.
type Printer struct {
	// Offset is the absolute position of the printer origin.
	Offset vec.Vec2
	// Size is the clipping bound.
	Size vec.Vec2
	// Focused is true when the view being drawn has focus.
	Focused bool
	Theme   *theme.Theme

	backend Backend
}

// New creates a focused printer covering the whole backend.
func New(b Backend, th *theme.Theme) Printer {
	if th == nil {
		th = theme.Default()
	}
	return Printer{
		Size:    b.Size(),
		Focused: true,
		Theme:   th,
		backend: b,
	}
}

func (p Printer) outside(pos vec.Vec2) bool {
	return pos.X < 0 || pos.Y < 0 || pos.X >= p.Size.X || pos.Y >= p.Size.Y
}

// Print writes text at pos, truncated to the room left on the line.
// Out-of-bounds positions are ignored.
func (p Printer) Print(pos vec.Vec2, text string) {
	if p.outside(pos) {
		return
	}
	text = truncate(text, p.Size.X-pos.X)
	if strings.Contains(text, "%") {
		text = strings.ReplaceAll(text, "%", "%%")
	}
	p.backend.Printw(pos.Add(p.Offset), text)
}

// truncate cuts s to at most n characters.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for idx := range s {
		if i == n {
			return s[:idx]
		}
		i++
	}
	return s
}

// startOutside reports whether a line start lies strictly outside the printer.
// A start exactly on the far edge is allowed and produces an empty line.
func (p Printer) startOutside(pos vec.Vec2) bool {
	return pos.X < 0 || pos.Y < 0 || pos.X > p.Size.X || pos.Y > p.Size.Y
}

// PrintHLine draws a horizontal line of r, clamped to the printer width.
func (p Printer) PrintHLine(start vec.Vec2, n int, r rune) {
	if p.startOutside(start) {
		return
	}
	n = min(n, p.Size.X-start.X)
	if n <= 0 || start.Y >= p.Size.Y {
		return
	}
	p.backend.HLine(start.Add(p.Offset), r, n)
}

// PrintVLine draws a vertical line of r, clamped to the printer height.
func (p Printer) PrintVLine(start vec.Vec2, n int, r rune) {
	if p.startOutside(start) {
		return
	}
	n = min(n, p.Size.Y-start.Y)
	if n <= 0 || start.X >= p.Size.X {
		return
	}
	p.backend.VLine(start.Add(p.Offset), r, n)
}

// PrintBox draws a rectangle outline with box-drawing characters.
func (p Printer) PrintBox(start, size vec.Vec2) {
	if size.X < 1 || size.Y < 1 {
		return
	}
	last := size.Sub(vec.New(1, 1))

	p.Print(start, "┌")
	p.Print(start.Add(last.KeepX()), "┐")
	p.Print(start.Add(last.KeepY()), "└")
	p.Print(start.Add(last), "┘")

	p.PrintHLine(start.Add(vec.New(1, 0)), last.X-1, '─')
	p.PrintVLine(start.Add(vec.New(0, 1)), last.Y-1, '│')
	p.PrintHLine(start.Add(vec.New(1, 0)).Add(last.KeepY()), last.X-1, '─')
	p.PrintVLine(start.Add(vec.New(0, 1)).Add(last.KeepX()), last.Y-1, '│')
}

// WithStyle activates s for the duration of fn.
// Styles do not nest: the style is switched off when fn returns.
func (p Printer) WithStyle(s theme.Style, fn func(Printer)) {
	p.backend.AttrOn(s)
	fn(p)
	p.backend.AttrOff(s)
}

// WithColor runs fn with a theme color pair active, then restores the
// primary style.
func (p Printer) WithColor(pair theme.ColorPair, fn func(Printer)) {
	p.WithStyle(p.Theme.Style(pair), fn)
	p.backend.AttrOn(p.Theme.Style(theme.Primary))
}

// SubPrinter returns a printer restricted to a region of this one.
// The size is clamped to what remains after offset, and focus is only
// kept if both this printer and focused are true.
func (p Printer) SubPrinter(offset, size vec.Vec2, focused bool) Printer {
	return Printer{
		Offset:  p.Offset.Add(offset),
		Size:    size.Min(p.Size.Sub(offset)).FloorAt(vec.Zero()),
		Focused: p.Focused && focused,
		Theme:   p.Theme,
		backend: p.backend,
	}
}
