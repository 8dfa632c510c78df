// Package bubble runs a Root inside a Bubble Tea program.
//
// The view tree draws onto an in-memory canvas which is rendered to a
// styled string for Bubble Tea's View.
package bubble

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/drake/runeview/app"
	"github.com/drake/runeview/event"
	"github.com/drake/runeview/printer"
)

// Model implements tea.Model around an app.Root.
type Model struct {
	root   *app.Root
	canvas *printer.Canvas
	ready  bool
}

// New creates a model for root. Nothing is drawn until the first
// WindowSizeMsg.
func New(root *app.Root) *Model {
	return &Model{
		root:   root,
		canvas: printer.NewCanvas(0, 0),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.canvas.Resize(msg.Width, msg.Height)
		m.root.Layout(m.canvas.Size())
		m.ready = true

	case tea.KeyMsg:
		if ev, ok := FromKeyMsg(msg); ok {
			m.root.HandleEvent(ev)
		}
		if !m.root.Running() {
			return m, tea.Quit
		}
		// Callbacks may have added or removed layers.
		m.root.Layout(m.canvas.Size())
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return ""
	}
	m.canvas.Clear()
	m.root.Draw(m.canvas)
	return m.canvas.Render()
}

// FromKeyMsg translates a Bubble Tea key message. Key names are shared, so
// this is a lookup by name; chords with no equivalent (alt+x, pastes) are
// rejected.
func FromKeyMsg(msg tea.KeyMsg) (event.Event, bool) {
	if msg.Paste {
		return event.Event{}, false
	}
	return event.Parse(msg.String())
}

// Run starts a full-screen program for root and blocks until it quits.
func Run(root *app.Root) error {
	p := tea.NewProgram(New(root), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("bubbletea: %w", err)
	}
	return nil
}
