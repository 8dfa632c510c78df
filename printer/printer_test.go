package printer

import (
	"fmt"
	"testing"

	"github.com/drake/runeview/theme"
	"github.com/drake/runeview/vec"
)

// recorder implements Backend and captures every primitive call.
type recorder struct {
	size  vec.Vec2
	calls []string
}

func (r *recorder) Size() vec.Vec2 { return r.size }

func (r *recorder) Printw(pos vec.Vec2, format string) {
	r.calls = append(r.calls, fmt.Sprintf("print %d,%d %s", pos.X, pos.Y, format))
}

func (r *recorder) HLine(pos vec.Vec2, c rune, n int) {
	r.calls = append(r.calls, fmt.Sprintf("hline %d,%d %c x%d", pos.X, pos.Y, c, n))
}

func (r *recorder) VLine(pos vec.Vec2, c rune, n int) {
	r.calls = append(r.calls, fmt.Sprintf("vline %d,%d %c x%d", pos.X, pos.Y, c, n))
}

func (r *recorder) AttrOn(s theme.Style) {
	r.calls = append(r.calls, fmt.Sprintf("on %s/%s", s.Fg, s.Bg))
}

func (r *recorder) AttrOff(s theme.Style) {
	r.calls = append(r.calls, fmt.Sprintf("off %s/%s", s.Fg, s.Bg))
}

func expectCalls(t *testing.T, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d calls %q, got %d %q", len(want), want, len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("call %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestPrintTruncatesByCharacters(t *testing.T) {
	rec := &recorder{size: vec.New(6, 2)}
	p := New(rec, nil)

	p.Print(vec.New(2, 0), "héllo wörld")

	expectCalls(t, rec.calls, "print 2,0 héll")
}

func TestPrintOutOfBoundsIsNoop(t *testing.T) {
	rec := &recorder{size: vec.New(4, 4)}
	p := New(rec, nil)

	p.Print(vec.New(4, 0), "x")
	p.Print(vec.New(0, 4), "x")
	p.Print(vec.New(-1, 0), "x")

	if len(rec.calls) != 0 {
		t.Fatalf("expected no calls, got %q", rec.calls)
	}
}

func TestPrintEscapesPercent(t *testing.T) {
	rec := &recorder{size: vec.New(20, 1)}
	p := New(rec, nil)

	p.Print(vec.Zero(), "100% done %d")

	expectCalls(t, rec.calls, "print 0,0 100%% done %%d")
}

func TestPrintTranslatesOffset(t *testing.T) {
	rec := &recorder{size: vec.New(20, 20)}
	p := New(rec, nil).SubPrinter(vec.New(5, 7), vec.New(4, 4), true)

	p.Print(vec.New(1, 1), "abcdef")

	expectCalls(t, rec.calls, "print 6,8 abc")
}

func TestLinesClampToRoom(t *testing.T) {
	rec := &recorder{size: vec.New(10, 5)}
	p := New(rec, nil)

	p.PrintHLine(vec.New(7, 1), 10, '-')
	p.PrintVLine(vec.New(2, 3), 10, '|')
	p.PrintHLine(vec.New(11, 0), 3, '-')
	p.PrintVLine(vec.New(0, 6), 3, '|')

	expectCalls(t, rec.calls, "hline 7,1 - x3", "vline 2,3 | x2")
}

func TestPrintBox(t *testing.T) {
	c := NewCanvas(6, 4)
	p := New(c, nil)

	p.PrintBox(vec.Zero(), vec.New(6, 4))

	want := []string{
		"┌────┐",
		"│    │",
		"│    │",
		"└────┘",
	}
	for y, line := range want {
		if got := c.Row(y); got != line {
			t.Errorf("row %d = %q, want %q", y, got, line)
		}
	}
}

func TestPrintBoxDegenerate(t *testing.T) {
	rec := &recorder{size: vec.New(6, 4)}
	p := New(rec, nil)

	p.PrintBox(vec.Zero(), vec.New(0, 4))
	p.PrintBox(vec.Zero(), vec.New(5, 0))

	if len(rec.calls) != 0 {
		t.Fatalf("expected no calls, got %q", rec.calls)
	}
}

func TestWithColorRestoresPrimary(t *testing.T) {
	rec := &recorder{size: vec.New(10, 1)}
	th := theme.Default()
	p := New(rec, th)

	p.WithColor(theme.Highlight, func(p Printer) {
		p.Print(vec.Zero(), "x")
	})

	hl := th.Style(theme.Highlight)
	primary := th.Style(theme.Primary)
	expectCalls(t, rec.calls,
		fmt.Sprintf("on %s/%s", hl.Fg, hl.Bg),
		"print 0,0 x",
		fmt.Sprintf("off %s/%s", hl.Fg, hl.Bg),
		fmt.Sprintf("on %s/%s", primary.Fg, primary.Bg),
	)
}

func TestSubPrinterClampsToParent(t *testing.T) {
	rec := &recorder{size: vec.New(10, 10)}
	p := New(rec, nil)

	sub := p.SubPrinter(vec.New(3, 3), vec.New(20, 20), true)
	if sub.Size != vec.New(7, 7) {
		t.Errorf("sub size = %v, want (7,7)", sub.Size)
	}
	if sub.Offset != vec.New(3, 3) {
		t.Errorf("sub offset = %v, want (3,3)", sub.Offset)
	}

	nested := sub.SubPrinter(vec.New(5, 1), vec.New(4, 2), true)
	if nested.Size != vec.New(2, 2) {
		t.Errorf("nested size = %v, want (2,2)", nested.Size)
	}
	if nested.Offset != vec.New(8, 4) {
		t.Errorf("nested offset = %v, want (8,4)", nested.Offset)
	}

	far := p.SubPrinter(vec.New(12, 0), vec.New(3, 3), true)
	if far.Size != vec.New(0, 3) {
		t.Errorf("far size = %v, want (0,3)", far.Size)
	}
}

func TestSubPrinterFocusIsConjunction(t *testing.T) {
	rec := &recorder{size: vec.New(10, 10)}
	p := New(rec, nil)

	if !p.SubPrinter(vec.Zero(), p.Size, true).Focused {
		t.Error("focused parent + focused child should be focused")
	}
	unfocused := p.SubPrinter(vec.Zero(), p.Size, false)
	if unfocused.Focused {
		t.Error("focused=false should not be focused")
	}
	if unfocused.SubPrinter(vec.Zero(), p.Size, true).Focused {
		t.Error("unfocused parent should never yield a focused child")
	}
}

func TestCanvasRender(t *testing.T) {
	c := NewCanvas(5, 2)
	p := New(c, nil)
	p.Print(vec.New(1, 1), "50%")

	if got := c.Row(1); got != " 50% " {
		t.Errorf("row 1 = %q", got)
	}
	if got := c.String(); got != "     \n 50% " {
		t.Errorf("String = %q", got)
	}
	if c.Render() == "" {
		t.Error("Render should not be empty")
	}
	if cell := c.Cell(9, 9); cell.Rune != ' ' {
		t.Errorf("out of range cell = %q", cell.Rune)
	}
}
