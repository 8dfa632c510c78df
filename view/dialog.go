package view

import (
	"github.com/drake/runeview/align"
	"github.com/drake/runeview/event"
	"github.com/drake/runeview/printer"
	"github.com/drake/runeview/text"
	"github.com/drake/runeview/theme"
	"github.com/drake/runeview/vec"
)

// Button is a clickable label. Enter fires its callback.
type Button struct {
	label    string
	callback Callback
}

// NewButton creates a button running cb when activated.
func NewButton(label string, cb Callback) *Button {
	return &Button{label: label, callback: cb}
}

// Label returns the button text without decoration.
func (b *Button) Label() string {
	return b.label
}

func (b *Button) Draw(p printer.Printer) {
	pair := theme.HighlightInactive
	if p.Focused {
		pair = theme.Highlight
	}
	p.WithColor(pair, func(p printer.Printer) {
		p.Print(vec.Zero(), "<"+b.label+">")
	})
}

func (b *Button) OnEvent(ev event.Event) EventResult {
	if event.Matches(ev, event.FocusKeys.Activate) {
		return Consumed(b.callback)
	}
	return Ignored
}

func (b *Button) Layout(vec.Vec2) {}

func (b *Button) MinSize(SizeRequest) vec.Vec2 {
	return vec.New(text.Width(b.label)+2, 1)
}

func (b *Button) TakeFocus() bool { return true }

func (b *Button) Find(Selector) View { return nil }

// Space around the dialog content: a one-cell border on each side, plus
// one column of padding left and right.
var (
	dialogTopLeft  = vec.New(2, 1)
	dialogOverhead = vec.New(4, 2)
)

// focusContent is the Dialog.focus value when the content has focus;
// otherwise focus indexes the buttons.
const focusContent = -1

// Dialog frames a content view with a border, an optional title, and a
// row of buttons at the bottom.
type Dialog struct {
	content View
	title   string
	buttons []*Button
	hAlign  align.HAlign
	focus   int
}

// NewDialog frames content.
func NewDialog(content View) *Dialog {
	return &Dialog{
		content: content,
		hAlign:  align.Left,
		focus:   focusContent,
	}
}

// Title sets the text shown in the top border.
func (d *Dialog) Title(title string) *Dialog {
	d.title = title
	return d
}

// Button appends a button.
func (d *Dialog) Button(label string, cb Callback) *Dialog {
	d.buttons = append(d.buttons, NewButton(label, cb))
	return d
}

// DismissButton appends a button that closes the dialog's layer.
func (d *Dialog) DismissButton(label string) *Dialog {
	return d.Button(label, func(r Root) { r.PopLayer() })
}

// HAlign sets the alignment of the button row.
func (d *Dialog) HAlign(h align.HAlign) *Dialog {
	d.hAlign = h
	return d
}

// Content returns the framed view.
func (d *Dialog) Content() View {
	return d.content
}

// buttonRow returns the size of the button row, including the blank
// line above it. Buttons are separated by one column.
func (d *Dialog) buttonRow() vec.Vec2 {
	if len(d.buttons) == 0 {
		return vec.Zero()
	}
	size := vec.New(len(d.buttons)-1, 0)
	for _, b := range d.buttons {
		s := b.MinSize(SizeRequest{})
		size.X += s.X
		size.Y = max(size.Y, s.Y+1)
	}
	return size
}

func (d *Dialog) MinSize(req SizeRequest) vec.Vec2 {
	buttons := d.buttonRow()
	content := d.content.MinSize(req.Reduced(dialogOverhead.Add(buttons.KeepY())))

	size := vec.New(max(content.X, buttons.X), content.Y+buttons.Y).Add(dialogOverhead)
	if d.title != "" {
		size.X = max(size.X, text.Width(d.title)+6)
	}
	return size
}

func (d *Dialog) Layout(size vec.Vec2) {
	for _, b := range d.buttons {
		b.Layout(b.MinSize(SizeRequest{}))
	}
	inner := size.Sub(dialogOverhead).Sub(d.buttonRow().KeepY())
	d.content.Layout(inner.FloorAt(vec.Zero()))
}

func (d *Dialog) Draw(p printer.Printer) {
	row := d.buttonRow()

	x := dialogTopLeft.X + d.hAlign.Offset(row.X, p.Size.X-dialogOverhead.X)
	y := p.Size.Y - 2
	for i, b := range d.buttons {
		size := b.MinSize(SizeRequest{})
		b.Draw(p.SubPrinter(vec.New(x, y), size, d.focus == i))
		x += size.X + 1
	}

	inner := p.Size.Sub(dialogOverhead).Sub(row.KeepY()).FloorAt(vec.Zero())
	d.content.Draw(p.SubPrinter(dialogTopLeft, inner, d.focus == focusContent))

	p.PrintBox(vec.Zero(), p.Size)

	if d.title == "" {
		return
	}
	n := text.Width(d.title)
	tx := (p.Size.X - n) / 2
	if tx < 2 {
		return
	}
	p.Print(vec.New(tx-2, 0), "┤ ")
	p.Print(vec.New(tx+n, 0), " ├")
	p.WithColor(theme.TitlePrimary, func(p printer.Printer) {
		p.Print(vec.New(tx, 0), d.title)
	})
}

func (d *Dialog) OnEvent(ev event.Event) EventResult {
	keys := event.FocusKeys

	if d.focus == focusContent {
		res := d.content.OnEvent(ev)
		if res.IsConsumed() || len(d.buttons) == 0 {
			return res
		}
		if event.Matches(ev, keys.Next) {
			d.focus = 0
			return Consumed(nil)
		}
		return Ignored
	}

	res := d.buttons[d.focus].OnEvent(ev)
	if res.IsConsumed() {
		return res
	}
	switch {
	case event.Matches(ev, keys.Next) && d.focus+1 < len(d.buttons):
		d.focus++
	case event.Matches(ev, keys.Prev) && d.focus > 0:
		d.focus--
	case event.Matches(ev, keys.Prev) && d.content.TakeFocus():
		d.focus = focusContent
	default:
		return Ignored
	}
	return Consumed(nil)
}

// TakeFocus focuses the content if it accepts, else the first button.
func (d *Dialog) TakeFocus() bool {
	if d.content.TakeFocus() {
		d.focus = focusContent
		return true
	}
	if len(d.buttons) > 0 {
		d.focus = 0
		return true
	}
	return false
}

func (d *Dialog) Find(sel Selector) View {
	return d.content.Find(sel)
}
