package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/drake/runeview/event"
)

var keyMap = map[tcell.Key]event.Key{
	tcell.KeyEnter:      event.Enter,
	tcell.KeyTab:        event.Tab,
	tcell.KeyBacktab:    event.ShiftTab,
	tcell.KeyBackspace:  event.Backspace,
	tcell.KeyBackspace2: event.Backspace,
	tcell.KeyEscape:     event.Esc,
	tcell.KeyLeft:       event.Left,
	tcell.KeyRight:      event.Right,
	tcell.KeyUp:         event.Up,
	tcell.KeyDown:       event.Down,
	tcell.KeyInsert:     event.Ins,
	tcell.KeyDelete:     event.Del,
	tcell.KeyHome:       event.Home,
	tcell.KeyEnd:        event.End,
	tcell.KeyPgUp:       event.PageUp,
	tcell.KeyPgDn:       event.PageDown,
}

// FromEvent translates a tcell event. It returns false for events with no
// equivalent (mouse, paste, unknown keys).
func FromEvent(ev tcell.Event) (event.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return event.Resize(), true
	case *tcell.EventKey:
		return FromKey(ev)
	}
	return event.Event{}, false
}

// FromKey translates a tcell key event.
func FromKey(ev *tcell.EventKey) (event.Event, bool) {
	k := ev.Key()

	if k == tcell.KeyRune {
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModCtrl != 0 && r >= 'a' && r <= 'z' {
			return event.Ctrl(r), true
		}
		return event.Char(r), true
	}
	if key, ok := keyMap[k]; ok {
		return event.KeyPress(key), true
	}
	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return event.KeyPress(event.F1 + event.Key(k-tcell.KeyF1)), true
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return event.Ctrl('a' + rune(k-tcell.KeyCtrlA)), true
	}
	return event.Event{}, false
}
