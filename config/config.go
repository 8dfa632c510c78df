package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the runeview configuration directory.
// Respects XDG_CONFIG_HOME on Unix, APPDATA on Windows.
func Dir() string {
	var base string

	if runtime.GOOS == "windows" {
		base = os.Getenv("APPDATA")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	} else {
		base = os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			home, _ := os.UserHomeDir()
			base = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(base, "runeview")
}

// InitFile returns the path to init.lua, run before any script arguments.
func InitFile() string {
	return filepath.Join(Dir(), "init.lua")
}

// ThemeFile returns the path to the user theme.
func ThemeFile() string {
	return filepath.Join(Dir(), "theme.toml")
}

// LogFile returns the path of the debug log.
func LogFile() string {
	return filepath.Join(Dir(), "debug.log")
}

// Exists reports whether path names an existing file.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
