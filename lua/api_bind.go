package lua

import (
	glua "github.com/yuin/gopher-lua"

	"github.com/drake/runeview/event"
)

// registerBindFuncs registers the ui.bind API.
func (e *Engine) registerBindFuncs() {
	// ui.bind(key, callback) - Register a global key binding
	// key is a string like "q", "ctrl+r", "f1", "pgdown".
	// callback receives no arguments
	e.L.SetField(e.uiTable, "bind", e.L.NewFunction(func(L *glua.LState) int {
		key := L.CheckString(1)
		fn := L.CheckFunction(2)
		ev, ok := event.Parse(key)
		if !ok {
			L.ArgError(1, "unknown key "+key)
			return 0
		}
		e.host.AddGlobalCallback(ev, e.callback("bind "+key, fn))
		return 0
	}))
}
