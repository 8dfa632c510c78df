package lua

import (
	glua "github.com/yuin/gopher-lua"

	"github.com/drake/runeview/align"
	"github.com/drake/runeview/debug"
	"github.com/drake/runeview/event"
	"github.com/drake/runeview/view"
)

// registerViewFuncs registers the ui.* view constructors
func (e *Engine) registerViewFuncs() {
	// ui.text(content, opts?): A text view. opts: h_align, v_align
	e.L.SetField(e.uiTable, "text", e.L.NewFunction(func(L *glua.LState) int {
		tv := view.NewTextView(L.CheckString(1))
		if opts := L.OptTable(2, nil); opts != nil {
			if h, ok := optHAlign(L, opts, 2); ok {
				tv.HAlign(h)
			}
			if s := optString(L, opts, "v_align"); s != "" {
				v, ok := align.ParseV(s)
				if !ok {
					L.ArgError(2, "unknown v_align "+s)
					return 0
				}
				tv.VAlign(v)
			}
		}
		L.Push(newView(L, tv))
		return 1
	}))

	// ui.dialog(content, opts?): A framed view.
	// opts: title, buttons = {{label, fn}, ...}, dismiss = label, h_align
	e.L.SetField(e.uiTable, "dialog", e.L.NewFunction(func(L *glua.LState) int {
		d := view.NewDialog(checkView(L, 1))
		if opts := L.OptTable(2, nil); opts != nil {
			if title := optString(L, opts, "title"); title != "" {
				d.Title(title)
			}
			if h, ok := optHAlign(L, opts, 2); ok {
				d.HAlign(h)
			}
			if buttons, ok := L.GetField(opts, "buttons").(*glua.LTable); ok {
				e.addButtons(L, d, buttons)
			}
			if dismiss := optString(L, opts, "dismiss"); dismiss != "" {
				d.DismissButton(dismiss)
			}
		}
		L.Push(newView(L, d))
		return 1
	}))

	// ui.id(name, view): Tag a view so it can be found by name
	e.L.SetField(e.uiTable, "id", e.L.NewFunction(func(L *glua.LState) int {
		name := L.CheckString(1)
		v := checkView(L, 2)
		L.Push(newView(L, view.NewIdView(name, v)))
		return 1
	}))

	// ui.keys(view, {key = fn, ...}): Callbacks for keys the view ignores
	e.L.SetField(e.uiTable, "keys", e.L.NewFunction(func(L *glua.LState) int {
		kv := view.NewKeyEventView(checkView(L, 1))
		L.CheckTable(2).ForEach(func(k, v glua.LValue) {
			name := k.String()
			ev, ok := event.Parse(name)
			if !ok {
				L.ArgError(2, "unknown key "+name)
				return
			}
			fn, ok := v.(*glua.LFunction)
			if !ok {
				L.ArgError(2, "function expected for key "+name)
				return
			}
			kv.Register(ev, e.callback("key "+name, fn))
		})
		L.Push(newView(L, kv))
		return 1
	}))
}

// addButtons reads {{label, fn}, ...} (or {label = ..., fn = ...} entries).
func (e *Engine) addButtons(L *glua.LState, d *view.Dialog, buttons *glua.LTable) {
	buttons.ForEach(func(_, entry glua.LValue) {
		tbl, ok := entry.(*glua.LTable)
		if !ok {
			L.ArgError(2, "button must be a table")
			return
		}
		label := tbl.RawGetInt(1)
		fn := tbl.RawGetInt(2)
		if label == glua.LNil {
			label = L.GetField(tbl, "label")
			fn = L.GetField(tbl, "fn")
		}
		lf, ok := fn.(*glua.LFunction)
		if label.Type() != glua.LTString || !ok {
			L.ArgError(2, "button needs a label and a function")
			return
		}
		d.Button(label.String(), e.callback("button "+label.String(), lf))
	})
}

// registerStackFuncs registers ui.* functions acting on the layer stack
func (e *Engine) registerStackFuncs() {
	// ui.add_layer(view): Push a view on top of the screen
	e.L.SetField(e.uiTable, "add_layer", e.L.NewFunction(func(L *glua.LState) int {
		e.host.AddLayer(checkView(L, 1))
		return 0
	}))

	// ui.pop_layer(): Remove the top layer
	e.L.SetField(e.uiTable, "pop_layer", e.L.NewFunction(func(L *glua.LState) int {
		e.host.PopLayer()
		return 0
	}))

	// ui.quit(): Stop the event loop
	e.L.SetField(e.uiTable, "quit", e.L.NewFunction(func(L *glua.LState) int {
		e.host.Quit()
		return 0
	}))

	// ui.find(name): The view tagged name, or nil
	e.L.SetField(e.uiTable, "find", e.L.NewFunction(func(L *glua.LState) int {
		v := e.host.Find(view.ID(L.CheckString(1)))
		if v == nil {
			L.Push(glua.LNil)
			return 1
		}
		L.Push(newView(L, v))
		return 1
	}))

	// ui.get_text(name): Content of the text view tagged name, or nil
	e.L.SetField(e.uiTable, "get_text", e.L.NewFunction(func(L *glua.LState) int {
		tv, ok := view.FindAs[*view.TextView](e.host, L.CheckString(1))
		if !ok {
			L.Push(glua.LNil)
			return 1
		}
		L.Push(glua.LString(tv.Content()))
		return 1
	}))

	// ui.set_text(name, text): Replace the text; returns false if not found
	e.L.SetField(e.uiTable, "set_text", e.L.NewFunction(func(L *glua.LState) int {
		name := L.CheckString(1)
		text := L.CheckString(2)
		tv, ok := view.FindAs[*view.TextView](e.host, name)
		if ok {
			tv.SetContent(text)
		}
		L.Push(glua.LBool(ok))
		return 1
	}))

	// ui.log(text): Write to the debug log
	e.L.SetField(e.uiTable, "log", e.L.NewFunction(func(L *glua.LState) int {
		debug.Logf("script: %s", L.CheckString(1))
		return 0
	}))
}

func optString(L *glua.LState, opts *glua.LTable, key string) string {
	if s, ok := L.GetField(opts, key).(glua.LString); ok {
		return string(s)
	}
	return ""
}

func optHAlign(L *glua.LState, opts *glua.LTable, arg int) (align.HAlign, bool) {
	s := optString(L, opts, "h_align")
	if s == "" {
		return align.Left, false
	}
	h, ok := align.ParseH(s)
	if !ok {
		L.ArgError(arg, "unknown h_align "+s)
	}
	return h, ok
}
