package printer

import (
	"strings"

	"github.com/drake/runeview/theme"
	"github.com/drake/runeview/vec"
)

// Compile-time check that Canvas implements Backend
var _ Backend = (*Canvas)(nil)

// Cell is one character position on a Canvas.
type Cell struct {
	Rune  rune
	Style theme.Style
}

// Canvas is an in-memory Backend. Each character occupies one cell.
type Canvas struct {
	size  vec.Vec2
	cells []Cell
	style theme.Style
}

// NewCanvas creates a blank canvas.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

// Resize changes the canvas size and clears it.
func (c *Canvas) Resize(width, height int) {
	c.size = vec.New(max(0, width), max(0, height))
	c.cells = make([]Cell, c.size.X*c.size.Y)
	c.Clear()
}

// Clear blanks every cell and resets the active style.
func (c *Canvas) Clear() {
	c.style = theme.Style{}
	for i := range c.cells {
		c.cells[i] = Cell{Rune: ' '}
	}
}

// Size implements Backend.
func (c *Canvas) Size() vec.Vec2 {
	return c.size
}

func (c *Canvas) set(x, y int, r rune) {
	if x < 0 || y < 0 || x >= c.size.X || y >= c.size.Y {
		return
	}
	c.cells[y*c.size.X+x] = Cell{Rune: r, Style: c.style}
}

// Printw implements Backend.
func (c *Canvas) Printw(pos vec.Vec2, format string) {
	text := strings.ReplaceAll(format, "%%", "%")
	x := pos.X
	for _, r := range text {
		c.set(x, pos.Y, r)
		x++
	}
}

// HLine implements Backend.
func (c *Canvas) HLine(pos vec.Vec2, r rune, n int) {
	for i := 0; i < n; i++ {
		c.set(pos.X+i, pos.Y, r)
	}
}

// VLine implements Backend.
func (c *Canvas) VLine(pos vec.Vec2, r rune, n int) {
	for i := 0; i < n; i++ {
		c.set(pos.X, pos.Y+i, r)
	}
}

// AttrOn implements Backend.
func (c *Canvas) AttrOn(s theme.Style) {
	c.style = s
}

// AttrOff implements Backend.
func (c *Canvas) AttrOff(theme.Style) {
	c.style = theme.Style{}
}

// Cell returns the cell at (x, y), or a blank cell when out of range.
func (c *Canvas) Cell(x, y int) Cell {
	if x < 0 || y < 0 || x >= c.size.X || y >= c.size.Y {
		return Cell{Rune: ' '}
	}
	return c.cells[y*c.size.X+x]
}

// Row returns line y as plain text.
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.size.Y {
		return ""
	}
	var b strings.Builder
	b.Grow(c.size.X)
	for _, cell := range c.cells[y*c.size.X : (y+1)*c.size.X] {
		b.WriteRune(cell.Rune)
	}
	return b.String()
}

// String returns the canvas as plain text, one line per row.
func (c *Canvas) String() string {
	rows := make([]string, c.size.Y)
	for y := range rows {
		rows[y] = c.Row(y)
	}
	return strings.Join(rows, "\n")
}

// Render returns the canvas with styles applied, one line per row.
// Consecutive cells sharing a style are rendered as one run.
func (c *Canvas) Render() string {
	var b strings.Builder
	for y := 0; y < c.size.Y; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		row := c.cells[y*c.size.X : (y+1)*c.size.X]
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].Style == row[start].Style {
				continue
			}
			var run strings.Builder
			for _, cell := range row[start:x] {
				run.WriteRune(cell.Rune)
			}
			b.WriteString(row[start].Style.Lipgloss().Render(run.String()))
			start = x
		}
	}
	return b.String()
}
