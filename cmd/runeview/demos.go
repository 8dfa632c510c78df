package main

import (
	_ "embed"
	"sort"

	"github.com/drake/runeview/align"
	"github.com/drake/runeview/app"
	"github.com/drake/runeview/event"
	"github.com/drake/runeview/view"
)

//go:embed assets/lorem.txt
var loremText string

// demos maps -demo names to functions populating a root.
var demos = map[string]func(*app.Root){
	"dialog":   dialogDemo,
	"lorem":    loremDemo,
	"mutation": mutationDemo,
}

func demoNames() []string {
	names := make([]string, 0, len(demos))
	for name := range demos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func quit(r view.Root) { r.Quit() }

func dialogDemo(root *app.Root) {
	root.AddLayer(view.NewDialog(view.NewTextView("Hello Dialog!")).
		Title("runeview").
		Button("Quit", quit))
}

func loremDemo(root *app.Root) {
	root.AddGlobalCallback(event.Char('q'), quit)

	// Too long for one line: the text wraps and follows the terminal size.
	root.AddLayer(view.NewDialog(view.NewTextView(loremText)).
		HAlign(align.HCenter).
		Button("Quit", quit))
	root.AddLayer(view.NewDialog(view.NewTextView("Try resizing the terminal!\n(Press 'q' to quit when you're done.)")).
		DismissButton("Ok"))
}

func mutationDemo(root *app.Root) {
	content := "Press Q to quit the application.\n\nPress P to open the popup."

	root.AddGlobalCallback(event.Char('q'), quit)

	// P is registered on the text view only, so it is unreachable while
	// the popup covers it.
	root.AddLayer(view.NewKeyEventView(view.NewIdView("text", view.NewTextView(content))).
		Register(event.Char('p'), showPopup))
}

func showPopup(r view.Root) {
	r.AddLayer(view.NewDialog(view.NewTextView("Tak!")).
		Button("Change", func(r view.Root) {
			if tv, ok := view.FindAs[*view.TextView](r, "text"); ok {
				tv.SetContent(reverse(tv.Content()))
			}
		}).
		DismissButton("Ok"))
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
