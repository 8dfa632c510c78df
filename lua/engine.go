package lua

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	glua "github.com/yuin/gopher-lua"

	"github.com/drake/runeview/debug"
	"github.com/drake/runeview/view"
)

// Engine wraps gopher-lua and exposes the view toolkit as the global `ui`
// table. It is a pure mechanism: it knows how to run Lua code, not which
// scripts to load.
type Engine struct {
	L *glua.LState

	// Cached table reference
	uiTable *glua.LTable

	// Host interface for communication with the view tree
	host Host

	// onError receives errors raised inside Lua callbacks.
	onError func(error)
}

// NewEngine creates an Engine with the given Host.
func NewEngine(host Host) *Engine {
	return &Engine{host: host}
}

// SetErrorHandler installs fn to receive callback errors. Errors are always
// written to the debug log as well.
func (e *Engine) SetErrorHandler(fn func(error)) {
	e.onError = fn
}

// --- Lifecycle ---

// Init initializes (or re-initializes) the Lua VM with fresh state.
// It registers the API but does NOT load any scripts.
func (e *Engine) Init() error {
	if e.L != nil {
		e.L.Close()
	}

	e.L = glua.NewState()

	registerViewType(e.L)
	e.registerAPIs()

	return nil
}

// Close cleans up the Lua state.
func (e *Engine) Close() {
	if e.L != nil {
		e.L.Close()
		e.L = nil
	}
}

// --- Execution Primitives ---

// DoString executes a raw string of Lua code.
// The name parameter is used for stack traces.
func (e *Engine) DoString(name, code string) error {
	fn, err := e.L.Load(strings.NewReader(code), name)
	if err != nil {
		return err
	}
	e.L.Push(fn)
	return e.L.PCall(0, 0, nil)
}

// DoFile executes a Lua file from the filesystem.
// It temporarily adjusts package.path to allow local requires.
func (e *Engine) DoFile(path string) error {
	path = expandTilde(path)

	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(absPath)

	// Temporarily prepend script's directory to package.path
	pkg := e.L.GetGlobal("package").(*glua.LTable)
	oldPath := e.L.GetField(pkg, "path").String()
	newPath := dir + "/?.lua;" + oldPath
	e.L.SetField(pkg, "path", glua.LString(newPath))

	err = e.L.DoFile(absPath)

	// Restore original path
	e.L.SetField(pkg, "path", glua.LString(oldPath))

	return err
}

// SetConfigDir publishes the configuration directory as ui.config_dir.
func (e *Engine) SetConfigDir(dir string) {
	e.L.SetField(e.uiTable, "config_dir", glua.LString(dir))
}

// --- Callbacks ---

// callback turns a Lua function into a view callback. Errors are reported,
// never propagated: a broken script must not take down the event loop.
func (e *Engine) callback(what string, fn *glua.LFunction) view.Callback {
	return func(view.Root) {
		if e.L == nil {
			return
		}
		e.L.Push(fn)
		if err := e.L.PCall(0, 0, nil); err != nil {
			e.reportError(fmt.Errorf("%s: %w", what, err))
		}
	}
}

func (e *Engine) reportError(err error) {
	debug.Logf("lua: %v", err)
	if e.onError != nil {
		e.onError(err)
	}
}

// --- API Registration ---

func (e *Engine) registerAPIs() {
	e.uiTable = e.L.NewTable()
	e.L.SetGlobal("ui", e.uiTable)

	e.registerViewFuncs()
	e.registerStackFuncs()
	e.registerBindFuncs()
}

// --- Private Helpers ---

// expandTilde expands ~ to home directory.
func expandTilde(path string) string {
	if len(path) > 0 && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
