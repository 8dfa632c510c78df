// runeview shows built-in demos and runs Lua scripts that build view trees.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/drake/runeview/app"
	"github.com/drake/runeview/bubble"
	"github.com/drake/runeview/config"
	"github.com/drake/runeview/debug"
	"github.com/drake/runeview/session"
	"github.com/drake/runeview/term"
	"github.com/drake/runeview/theme"
)

func main() {
	// Parse flags
	useTea := flag.Bool("tea", false, "Drive the UI through bubbletea instead of tcell")
	demo := flag.String("demo", "", "Built-in demo: "+strings.Join(demoNames(), ", "))
	themePath := flag.String("theme", "", "Theme file (default: theme.toml in the config dir)")
	flag.Parse()

	if err := run(*useTea, *demo, *themePath, flag.Args()); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

func run(useTea bool, demo, themePath string, scripts []string) error {
	logs, err := debug.Setup(config.LogFile())
	if err != nil {
		fmt.Println("Warning:", err)
	} else {
		defer logs.Close()
	}

	th, err := loadTheme(themePath)
	if err != nil {
		return err
	}
	root := app.New(th)

	if demo != "" {
		build, ok := demos[demo]
		if !ok {
			return fmt.Errorf("unknown demo %q (want one of %s)", demo, strings.Join(demoNames(), ", "))
		}
		build(root)
	}

	sess := session.New(root, session.Config{
		ConfigDir:   config.Dir(),
		UserScripts: scripts,
	})
	defer sess.Close()

	// A broken script is reported on screen, not fatal.
	if err := sess.Boot(); err != nil {
		sess.ShowError(fmt.Errorf("boot: %w", err))
	}

	if useTea {
		return bubble.Run(root)
	}
	return runTerm(root)
}

// loadTheme reads path, or the config dir theme if it exists.
// A nil theme selects the default.
func loadTheme(path string) (*theme.Theme, error) {
	if path == "" {
		path = config.ThemeFile()
		if !config.Exists(path) {
			return nil, nil
		}
	}
	return theme.Load(path)
}

func runTerm(root *app.Root) error {
	screen, err := term.New()
	if err != nil {
		return err
	}
	defer screen.Close()
	return root.Run(screen)
}
