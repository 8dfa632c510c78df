package lua

import (
	"github.com/drake/runeview/event"
	"github.com/drake/runeview/view"
)

// MockHost implements Host for testing. Layers are kept on a real
// StackView so lookups behave as in an application.
type MockHost struct {
	stack *view.StackView

	// Captured calls
	AddLayerCalls []view.View
	PopLayerCalls int
	QuitCalled    bool
	Globals       map[event.Event]view.Callback
}

func NewMockHost() *MockHost {
	return &MockHost{
		stack:   view.NewStackView(),
		Globals: make(map[event.Event]view.Callback),
	}
}

func (m *MockHost) AddLayer(v view.View) {
	m.AddLayerCalls = append(m.AddLayerCalls, v)
	m.stack.AddLayer(v)
}

func (m *MockHost) PopLayer() {
	m.PopLayerCalls++
	m.stack.PopLayer()
}

func (m *MockHost) Find(sel view.Selector) view.View {
	return m.stack.Find(sel)
}

func (m *MockHost) Quit() {
	m.QuitCalled = true
}

func (m *MockHost) AddGlobalCallback(ev event.Event, cb view.Callback) {
	m.Globals[ev] = cb
}

// Fire runs the global binding for key name, reporting whether one existed.
func (m *MockHost) Fire(name string) bool {
	ev, ok := event.Parse(name)
	if !ok {
		return false
	}
	cb, ok := m.Globals[ev]
	if !ok {
		return false
	}
	cb(nil)
	return true
}
