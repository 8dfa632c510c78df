// Package term runs views on a real terminal through tcell.
package term

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/drake/runeview/app"
	"github.com/drake/runeview/event"
	"github.com/drake/runeview/theme"
	"github.com/drake/runeview/vec"
)

// Ensure Screen implements app.Driver at compile time
var _ app.Driver = (*Screen)(nil)

// ErrClosed is returned by PollEvent once the screen has been finalized.
var ErrClosed = errors.New("screen closed")

// Screen adapts a tcell.Screen to the app.Driver interface.
type Screen struct {
	screen tcell.Screen
	style  tcell.Style
}

// New opens and initializes the terminal.
func New() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewWithScreen(s), nil
}

// NewWithScreen wraps an already initialized tcell screen.
func NewWithScreen(s tcell.Screen) *Screen {
	s.HideCursor()
	return &Screen{screen: s, style: tcell.StyleDefault}
}

func (s *Screen) Size() vec.Vec2 {
	w, h := s.screen.Size()
	return vec.New(w, h)
}

// Printw writes text at pos. "%%" is a literal percent sign.
// Wide characters advance by their display width.
func (s *Screen) Printw(pos vec.Vec2, format string) {
	text := strings.ReplaceAll(format, "%%", "%")
	w, h := s.screen.Size()
	if pos.Y < 0 || pos.Y >= h {
		return
	}
	x := pos.X
	for _, r := range text {
		if x >= w {
			return
		}
		if x >= 0 {
			s.screen.SetContent(x, pos.Y, r, nil, s.style)
		}
		x += max(1, runewidth.RuneWidth(r))
	}
}

func (s *Screen) HLine(pos vec.Vec2, r rune, n int) {
	for i := 0; i < n; i++ {
		s.screen.SetContent(pos.X+i, pos.Y, r, nil, s.style)
	}
}

func (s *Screen) VLine(pos vec.Vec2, r rune, n int) {
	for i := 0; i < n; i++ {
		s.screen.SetContent(pos.X, pos.Y+i, r, nil, s.style)
	}
}

func (s *Screen) AttrOn(st theme.Style) {
	s.style = Style(st)
}

func (s *Screen) AttrOff(theme.Style) {
	s.style = tcell.StyleDefault
}

// PollEvent blocks for the next key or resize event. Other tcell events
// are skipped.
func (s *Screen) PollEvent() (event.Event, error) {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return event.Event{}, ErrClosed
		}
		if e, ok := FromEvent(ev); ok {
			return e, nil
		}
	}
}

func (s *Screen) Clear() {
	s.style = tcell.StyleDefault
	s.screen.Clear()
}

func (s *Screen) Refresh() {
	s.screen.Show()
}

// Close restores the terminal.
func (s *Screen) Close() error {
	s.screen.Fini()
	return nil
}

// Style converts a theme style to a tcell style.
func Style(st theme.Style) tcell.Style {
	return tcell.StyleDefault.
		Foreground(Color(st.Fg)).
		Background(Color(st.Bg)).
		Bold(st.Bold).
		Reverse(st.Reverse)
}

// Color converts a lipgloss color: an ANSI index, a #rrggbb value or a
// color name. Empty means the terminal default.
func Color(c lipgloss.Color) tcell.Color {
	s := string(c)
	if s == "" {
		return tcell.ColorDefault
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n <= 255 {
		return tcell.PaletteColor(n)
	}
	return tcell.GetColor(s)
}
