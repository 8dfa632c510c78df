package lua

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/drake/runeview/view"
)

func newMockEngine(t *testing.T) (*Engine, *MockHost) {
	t.Helper()
	host := NewMockHost()
	engine := NewEngine(host)
	if err := engine.Init(); err != nil {
		t.Fatal("Failed to initialize engine:", err)
	}
	t.Cleanup(engine.Close)
	return engine, host
}

func TestArgumentErrors(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"bad bind key", "ui.bind('hyper', function() end)", "unknown key hyper"},
		{"bad keys key", "ui.keys(ui.text('x'), {['ctrl+1'] = function() end})", "unknown key ctrl+1"},
		{"keys value not function", "ui.keys(ui.text('x'), {p = 1})", "function expected"},
		{"bad h_align", "ui.text('x', {h_align = 'diagonal'})", "unknown h_align"},
		{"bad v_align", "ui.text('x', {v_align = 'middle'})", "unknown v_align"},
		{"not a view", "ui.add_layer('x')", "userdata expected"},
		{"button without function", "ui.dialog(ui.text('x'), {buttons = {{'Ok'}}})", "button needs"},
		{"content on dialog", "ui.dialog(ui.text('x')):content()", "text view expected"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			engine, host := newMockEngine(t)
			err := engine.DoString(tc.name, tc.code)
			if err == nil {
				t.Fatalf("expected error containing %q", tc.want)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error = %v, want it to contain %q", err, tc.want)
			}
			if len(host.AddLayerCalls) != 0 {
				t.Error("failed call should not add layers")
			}
		})
	}
}

func TestConstructorsBuildViews(t *testing.T) {
	engine, host := newMockEngine(t)

	code := `
		local body = ui.id("body", ui.text("hello\n", {h_align = "right", v_align = "bottom"}))
		ui.add_layer(ui.dialog(body, {title = "T", dismiss = "Ok"}))
	`
	if err := engine.DoString("build", code); err != nil {
		t.Fatalf("DoString: %v", err)
	}
	if len(host.AddLayerCalls) != 1 {
		t.Fatalf("AddLayer calls = %d, want 1", len(host.AddLayerCalls))
	}
	d, ok := host.AddLayerCalls[0].(*view.Dialog)
	if !ok {
		t.Fatalf("layer is %T, want *view.Dialog", host.AddLayerCalls[0])
	}
	tv, ok := view.FindAs[*view.TextView](d, "body")
	if !ok {
		t.Fatal("tagged text view not reachable through the dialog")
	}
	if tv.Content() != "hello" {
		t.Errorf("content = %q, want %q", tv.Content(), "hello")
	}
}

func TestViewMethods(t *testing.T) {
	engine, _ := newMockEngine(t)

	code := `
		local v = ui.text("abc")
		v:set_content("xyz")
		result = v:content()
		name = tostring(v)
	`
	if err := engine.DoString("methods", code); err != nil {
		t.Fatalf("DoString: %v", err)
	}
	if got := engine.L.GetGlobal("result").String(); got != "xyz" {
		t.Errorf("result = %q, want %q", got, "xyz")
	}
	if got := engine.L.GetGlobal("name").String(); got != "view(*view.TextView)" {
		t.Errorf("tostring = %q", got)
	}
}

func TestBindAndQuit(t *testing.T) {
	engine, host := newMockEngine(t)

	if err := engine.DoString("bind", "ui.bind('ctrl+q', function() ui.quit() end)"); err != nil {
		t.Fatalf("DoString: %v", err)
	}
	if !host.Fire("ctrl+q") {
		t.Fatal("binding not registered")
	}
	if !host.QuitCalled {
		t.Error("quit not called")
	}
}

func TestCallbackAfterCloseIsNoop(t *testing.T) {
	engine, host := newMockEngine(t)
	if err := engine.DoString("bind", "ui.bind('x', function() ui.quit() end)"); err != nil {
		t.Fatalf("DoString: %v", err)
	}
	engine.Close()
	host.Fire("x")
	if host.QuitCalled {
		t.Error("callback ran after Close")
	}
}

func TestDoFileLocalRequire(t *testing.T) {
	engine, host := newMockEngine(t)

	dir := t.TempDir()
	helper := `return { greeting = function() return "hi" end }`
	main := `
		local helper = require("helper")
		ui.add_layer(ui.text(helper.greeting()))
	`
	if err := os.WriteFile(filepath.Join(dir, "helper.lua"), []byte(helper), 0o644); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "main.lua")
	if err := os.WriteFile(path, []byte(main), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := engine.DoFile(path); err != nil {
		t.Fatalf("DoFile: %v", err)
	}
	if len(host.AddLayerCalls) != 1 {
		t.Fatalf("AddLayer calls = %d, want 1", len(host.AddLayerCalls))
	}
	if tv := host.AddLayerCalls[0].(*view.TextView); tv.Content() != "hi" {
		t.Errorf("content = %q, want hi", tv.Content())
	}
}

func TestSetConfigDir(t *testing.T) {
	engine, _ := newMockEngine(t)
	engine.SetConfigDir("/tmp/runeview")
	if err := engine.DoString("cfg", "dir = ui.config_dir"); err != nil {
		t.Fatal(err)
	}
	if got := engine.L.GetGlobal("dir").String(); got != "/tmp/runeview" {
		t.Errorf("config_dir = %q", got)
	}
}
