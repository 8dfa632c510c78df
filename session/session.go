package session

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/drake/runeview/app"
	"github.com/drake/runeview/config"
	"github.com/drake/runeview/debug"
	"github.com/drake/runeview/lua"
	"github.com/drake/runeview/view"
)

//go:embed core/*.lua
var coreScripts embed.FS

// ErrorID tags the text view of dialogs raised by ShowError.
const ErrorID = "session.error"

// Config holds session configuration
type Config struct {
	ConfigDir   string   // Path to ~/.config/runeview
	UserScripts []string // CLI script arguments
}

// Session wires the scripting engine to an application root and owns the
// boot order of scripts. It is passive: nothing runs until Boot.
type Session struct {
	root   *app.Root
	engine *lua.Engine
	config Config
}

// New creates a Session hosting its engine on root.
func New(root *app.Root, cfg Config) *Session {
	s := &Session{
		root:   root,
		config: cfg,
	}
	s.engine = lua.NewEngine(root)
	s.engine.SetErrorHandler(s.ShowError)
	return s
}

// Engine returns the session's Lua engine.
func (s *Session) Engine() *lua.Engine { return s.engine }

// Boot loads the VM state: core scripts, then the user's init.lua if it
// exists, then the CLI scripts in order. The first failure stops the boot.
func (s *Session) Boot() error {
	if err := s.engine.Init(); err != nil {
		return err
	}
	s.engine.SetConfigDir(s.config.ConfigDir)

	// Load Core Scripts
	entries, err := fs.ReadDir(coreScripts, "core")
	if err != nil {
		return fmt.Errorf("reading core scripts: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		content, err := coreScripts.ReadFile("core/" + e.Name())
		if err != nil {
			return fmt.Errorf("core/%s: %w", e.Name(), err)
		}
		if err := s.engine.DoString(e.Name(), string(content)); err != nil {
			return fmt.Errorf("core/%s: %w", e.Name(), err)
		}
	}

	// Load user init.lua
	initPath := filepath.Join(s.config.ConfigDir, "init.lua")
	if config.Exists(initPath) {
		if err := s.engine.DoFile(initPath); err != nil {
			return fmt.Errorf("init.lua: %w", err)
		}
	}

	// Load CLI scripts
	for _, path := range s.config.UserScripts {
		if err := s.engine.DoFile(path); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	debug.Logf("session booted, %d layers", s.root.Screen().Len())
	return nil
}

// ShowError pushes a dismissable dialog describing err.
func (s *Session) ShowError(err error) {
	body := view.NewIdView(ErrorID, view.NewTextView(err.Error()))
	s.root.AddLayer(view.NewDialog(body).Title("Error").DismissButton("Ok"))
}

// Close releases the Lua state.
func (s *Session) Close() {
	s.engine.Close()
}
