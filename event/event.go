package event

import (
	"strconv"
	"strings"
)

// Type identifies the kind of input
type Type int

const (
	KeyEvent    Type = iota // A non-printable key (arrows, paging, function keys)
	CharEvent               // A printable character
	CtrlEvent               // A control chord such as ctrl+c
	ResizeEvent             // The terminal size changed; the next layout picks it up
)

// Key is a non-printable key
type Key int

const (
	KeyNone Key = iota
	Enter
	Tab
	ShiftTab
	Backspace
	Esc
	Left
	Right
	Up
	Down
	Ins
	Del
	Home
	End
	PageUp
	PageDown
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
)

var keyNames = map[Key]string{
	Enter:     "enter",
	Tab:       "tab",
	ShiftTab:  "shift+tab",
	Backspace: "backspace",
	Esc:       "esc",
	Left:      "left",
	Right:     "right",
	Up:        "up",
	Down:      "down",
	Ins:       "insert",
	Del:       "delete",
	Home:      "home",
	End:       "end",
	PageUp:    "pgup",
	PageDown:  "pgdown",
}

// String returns the key name.
func (k Key) String() string {
	if k >= F1 && k <= F12 {
		return "f" + strconv.Itoa(int(k-F1)+1)
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return ""
}

// Event is a single unit of input. Events are comparable and can be used
// as map keys for callback registries.
type Event struct {
	Type Type
	Key  Key  // For KeyEvent
	Rune rune // For CharEvent and CtrlEvent (lowercase letter)
}

// KeyPress creates a KeyEvent.
func KeyPress(k Key) Event {
	return Event{Type: KeyEvent, Key: k}
}

// Char creates a CharEvent.
func Char(r rune) Event {
	return Event{Type: CharEvent, Rune: r}
}

// Ctrl creates a CtrlEvent for ctrl+r.
func Ctrl(r rune) Event {
	return Event{Type: CtrlEvent, Rune: r}
}

// Resize is emitted by drivers when the terminal size changes.
func Resize() Event {
	return Event{Type: ResizeEvent}
}

// String returns the event name in the same vocabulary as bubbletea key
// messages ("pgdown", "ctrl+c", "q"), so it can be matched against key
// bindings.
func (e Event) String() string {
	switch e.Type {
	case KeyEvent:
		return e.Key.String()
	case CharEvent:
		return string(e.Rune)
	case CtrlEvent:
		return "ctrl+" + string(e.Rune)
	default:
		return ""
	}
}

// Parse converts a key name as produced by String back to an Event.
func Parse(name string) (Event, bool) {
	if name == "" {
		return Event{}, false
	}
	if rest, ok := strings.CutPrefix(name, "ctrl+"); ok {
		if len(rest) == 1 && rest[0] >= 'a' && rest[0] <= 'z' {
			return Ctrl(rune(rest[0])), true
		}
		return Event{}, false
	}
	if r := []rune(name); len(r) == 1 {
		return Char(r[0]), true
	}
	for k := Enter; k <= F12; k++ {
		if k.String() == name {
			return KeyPress(k), true
		}
	}
	return Event{}, false
}
