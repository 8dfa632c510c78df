// Package text wraps content into display rows.
//
// Rows are measured in characters (runes), not bytes: a multi-byte
// character occupies one column.
package text

import (
	"strings"
	"unicode/utf8"

	"github.com/drake/runeview/vec"
)

// Row is one wrapped display line: the half-open byte span
// [Start, End) of the content it was computed from.
type Row struct {
	Start int
	End   int
}

// Text returns the slice of content covered by the row.
func (r Row) Text(content string) string {
	return content[r.Start:r.End]
}

// Width returns the number of characters in s.
func Width(s string) int {
	return utf8.RuneCountInString(s)
}

// StripLastNewline removes a single trailing newline.
func StripLastNewline(s string) string {
	return strings.TrimSuffix(s, "\n")
}

// byteOffset returns the byte index of the n-th character of s,
// or len(s) if s has n characters or fewer.
func byteOffset(s string, n int) int {
	i := 0
	for idx := range s {
		if i == n {
			return idx
		}
		i++
	}
	return len(s)
}

// LinesIterator wraps content greedily at word boundaries.
type LinesIterator struct {
	content string
	start   int
	width   int
}

// NewLinesIterator starts wrapping content at the given width.
// Widths below 1 are treated as 1.
func NewLinesIterator(content string, width int) *LinesIterator {
	return &LinesIterator{
		content: content,
		width:   max(1, width),
	}
}

// Next returns the next row, or false once the content is exhausted.
func (it *LinesIterator) Next() (Row, bool) {
	if it.start >= len(it.content) {
		return Row{}, false
	}

	start := it.start
	rest := it.content[start:]

	// A newline within the width ends the row early.
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 && Width(rest[:nl]) <= it.width {
		it.start += nl + 1
		return Row{Start: start, End: start + nl}, true
	}

	if Width(rest) <= it.width {
		it.start = len(it.content)
		return Row{Start: start, End: len(it.content)}, true
	}

	// Break on the last space within width+1 characters, dropping the space.
	window := rest[:byteOffset(rest, it.width+1)]
	if sp := strings.LastIndexByte(window, ' '); sp >= 0 {
		it.start += sp + 1
		return Row{Start: start, End: start + sp}, true
	}

	// No space: cut the token at exactly width characters.
	cut := byteOffset(rest, it.width)
	it.start += cut
	return Row{Start: start, End: start + cut}, true
}

// Rows wraps all of content at width.
func Rows(content string, width int) []Row {
	var rows []Row
	it := NewLinesIterator(content, width)
	for {
		row, ok := it.Next()
		if !ok {
			return rows
		}
		rows = append(rows, row)
	}
}

// LineCount returns the number of rows content needs at width.
// Empty content still occupies one line.
func LineCount(content string, width int) int {
	n := 0
	it := NewLinesIterator(content, width)
	for {
		if _, ok := it.Next(); !ok {
			return max(1, n)
		}
		n++
	}
}

// IdealSize is the unwrapped size of content: the longest line by the
// number of lines.
func IdealSize(content string) vec.Vec2 {
	var size vec.Vec2
	for _, line := range strings.Split(content, "\n") {
		size.Y++
		size.X = max(size.X, Width(line))
	}
	return size
}

// ColumnsFor returns the smallest width at which content fits in height
// lines, searching [ceil(len/height), len]. If no width fits, the ideal
// width is returned.
//
// Each candidate re-wraps the content, so this is quadratic in the content
// length for long unbroken text.
func ColumnsFor(content string, height int, lineCount func(width int) int) int {
	ideal := IdealSize(content).X
	length := Width(content)
	if height <= 0 || length == 0 {
		return ideal
	}
	if lineCount == nil {
		lineCount = func(w int) int { return LineCount(content, w) }
	}
	for w := max(1, (length+height-1)/height); w <= length; w++ {
		if lineCount(w) <= height {
			return w
		}
	}
	return ideal
}
