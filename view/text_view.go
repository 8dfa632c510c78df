package view

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/drake/runeview/align"
	"github.com/drake/runeview/event"
	"github.com/drake/runeview/printer"
	"github.com/drake/runeview/text"
	"github.com/drake/runeview/vec"
)

// pageRows is how far PageUp and PageDown scroll.
const pageRows = 10

// TextView shows wrapped, optionally scrollable text.
type TextView struct {
	content string
	rows    []text.Row
	align   align.Align
	scroll  ScrollBase

	// size is the last layout size; zero until the first layout.
	size    vec.Vec2
	laidOut bool

	// lineCounts memoises wrapped line counts per width. MinSize is
	// queried repeatedly during negotiation, often with the same widths.
	lineCounts *lru.Cache[int, int]
}

// NewTextView creates a view showing content. A single trailing newline
// is dropped.
func NewTextView(content string) *TextView {
	cache, _ := lru.New[int, int](64)
	return &TextView{
		content:    text.StripLastNewline(content),
		align:      align.TopLeft(),
		lineCounts: cache,
	}
}

// HAlign sets the horizontal alignment.
func (v *TextView) HAlign(h align.HAlign) *TextView {
	v.align.H = h
	return v
}

// VAlign sets the vertical alignment.
func (v *TextView) VAlign(va align.VAlign) *TextView {
	v.align.V = va
	return v
}

// Align sets both alignments.
func (v *TextView) Align(a align.Align) *TextView {
	v.align = a
	return v
}

// SetContent replaces the text. If the view was already laid out, rows are
// recomputed for the last layout size so the next draw is consistent.
func (v *TextView) SetContent(content string) {
	v.content = text.StripLastNewline(content)
	v.lineCounts.Purge()
	if v.laidOut {
		v.Layout(v.size)
	}
}

// Content returns the current text.
func (v *TextView) Content() string {
	return v.content
}

// Rows returns the text of each wrapped row from the last layout.
func (v *TextView) Rows() []string {
	out := make([]string, len(v.rows))
	for i, r := range v.rows {
		out[i] = r.Text(v.content)
	}
	return out
}

// Scroll exposes the scroll state.
func (v *TextView) Scroll() *ScrollBase {
	return &v.scroll
}

func (v *TextView) lineCount(width int) int {
	if n, ok := v.lineCounts.Get(width); ok {
		return n
	}
	n := text.LineCount(v.content, width)
	v.lineCounts.Add(width, n)
	return n
}

func (v *TextView) Draw(p printer.Printer) {
	offset := v.align.V.Offset(len(v.rows), p.Size.Y)
	p = p.SubPrinter(vec.New(0, offset), p.Size, true)

	v.scroll.Draw(p, func(p printer.Printer, i int) {
		row := v.rows[i].Text(v.content)
		x := v.align.H.Offset(text.Width(row), p.Size.X)
		p.Print(vec.New(x, 0), row)
	})
}

func (v *TextView) OnEvent(ev event.Event) EventResult {
	if !v.scroll.Scrollable() {
		return Ignored
	}

	keys := event.ScrollKeys
	switch {
	case event.Matches(ev, keys.Top):
		v.scroll.ScrollTop()
	case event.Matches(ev, keys.Bottom):
		v.scroll.ScrollBottom()
	case event.Matches(ev, keys.Up) && v.scroll.CanScrollUp():
		v.scroll.ScrollUp(1)
	case event.Matches(ev, keys.Down) && v.scroll.CanScrollDown():
		v.scroll.ScrollDown(1)
	case event.Matches(ev, keys.PageUp):
		v.scroll.ScrollUp(pageRows)
	case event.Matches(ev, keys.PageDown):
		v.scroll.ScrollDown(pageRows)
	default:
		return Ignored
	}
	return Consumed(nil)
}

func (v *TextView) MinSize(req SizeRequest) vec.Vec2 {
	switch {
	case req.W.Kind == KindFixed && req.H.Kind == KindFixed:
		return vec.New(req.W.N, req.H.N)

	case req.W.Kind == KindFixed:
		return vec.New(req.W.N, v.lineCount(req.W.N))

	case req.H.Kind == KindFixed:
		w := text.ColumnsFor(v.content, req.H.N, v.lineCount)
		return vec.New(w, req.H.N)

	case req.W.Kind == KindAtMost:
		// Take the limit only if the text does not fit unwrapped.
		ideal := text.IdealSize(v.content)
		if req.W.N >= ideal.X {
			return ideal
		}
		return vec.New(req.W.N, v.lineCount(req.W.N))

	default:
		return text.IdealSize(v.content)
	}
}

// TakeFocus accepts focus only when there is something to scroll.
func (v *TextView) TakeFocus() bool {
	return v.scroll.Scrollable()
}

func (v *TextView) Layout(size vec.Vec2) {
	v.size = size
	v.laidOut = true

	v.rows = text.Rows(v.content, size.X)
	if len(v.rows) > size.Y {
		// Leave room for the scrollbar.
		v.rows = text.Rows(v.content, size.X-2)
	}
	v.scroll.SetHeights(size.Y, len(v.rows))
}

func (v *TextView) Find(Selector) View {
	return nil
}
