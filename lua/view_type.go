package lua

import (
	"fmt"

	glua "github.com/yuin/gopher-lua"

	"github.com/drake/runeview/view"
)

const luaViewTypeName = "view"

// registerViewType registers the View type with the Lua state.
// Call this once during engine initialization.
func registerViewType(L *glua.LState) {
	mt := L.NewTypeMetatable(luaViewTypeName)
	L.SetField(mt, "__index", L.SetFuncs(L.NewTable(), viewMethods))
	L.SetField(mt, "__tostring", L.NewFunction(viewToString))
}

// newView wraps a view.View in userdata.
func newView(L *glua.LState, v view.View) *glua.LUserData {
	ud := L.NewUserData()
	ud.Value = v
	L.SetMetatable(ud, L.GetTypeMetatable(luaViewTypeName))
	return ud
}

// checkView retrieves a view.View from Lua userdata at the given stack position.
func checkView(L *glua.LState, n int) view.View {
	ud := L.CheckUserData(n)
	if v, ok := ud.Value.(view.View); ok {
		return v
	}
	L.ArgError(n, "view expected")
	return nil
}

// checkTextView retrieves a *view.TextView, raising an error for other views.
func checkTextView(L *glua.LState, n int) *view.TextView {
	if tv, ok := checkView(L, n).(*view.TextView); ok {
		return tv
	}
	L.ArgError(n, "text view expected")
	return nil
}

// viewMethods defines the methods available on View objects in Lua.
var viewMethods = map[string]glua.LGFunction{
	"content":     viewContent,
	"set_content": viewSetContent,
}

// viewContent returns the text of a text view.
// Usage: v:content()
func viewContent(L *glua.LState) int {
	tv := checkTextView(L, 1)
	L.Push(glua.LString(tv.Content()))
	return 1
}

// viewSetContent replaces the text of a text view.
// Usage: v:set_content(text)
func viewSetContent(L *glua.LState) int {
	tv := checkTextView(L, 1)
	tv.SetContent(L.CheckString(2))
	return 0
}

func viewToString(L *glua.LState) int {
	v := checkView(L, 1)
	L.Push(glua.LString(fmt.Sprintf("view(%T)", v)))
	return 1
}
