// Package debug provides opt-in diagnostics for runeview programs.
//
// A full-screen terminal owns stdout and stderr, so log output is sent to a
// file instead. Nothing is written unless RUNEVIEW_DEBUG=1.
package debug

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// Enabled returns true if debug mode is active (RUNEVIEW_DEBUG=1).
func Enabled() bool {
	return os.Getenv("RUNEVIEW_DEBUG") == "1"
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup redirects the standard logger to path when debug mode is enabled.
// The returned closer must be closed on exit.
func Setup(path string) (io.Closer, error) {
	if !Enabled() {
		return nopCloser{}, nil
	}
	f, err := tea.LogToFile(path, "runeview")
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.Println("[DEBUG] logging started")
	return f, nil
}

// Logf writes a debug line when debug mode is enabled.
func Logf(format string, args ...any) {
	if !Enabled() {
		return
	}
	log.Printf("[DEBUG] "+format, args...)
}
