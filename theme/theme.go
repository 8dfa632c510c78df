// Package theme defines the color pairs views draw with and loads them from TOML.
package theme

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"

	"github.com/drake/runeview/debug"
)

// ColorPair identifies a semantic foreground/background combination.
type ColorPair int

const (
	Background ColorPair = iota
	Shadow
	Primary
	Secondary
	Tertiary
	TitlePrimary
	TitleSecondary
	Highlight
	HighlightInactive
)

// String returns the pair name as used in logs.
func (c ColorPair) String() string {
	switch c {
	case Background:
		return "background"
	case Shadow:
		return "shadow"
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	case Tertiary:
		return "tertiary"
	case TitlePrimary:
		return "title_primary"
	case TitleSecondary:
		return "title_secondary"
	case Highlight:
		return "highlight"
	case HighlightInactive:
		return "highlight_inactive"
	default:
		return "unknown"
	}
}

// Style is the opaque handle a backend activates before drawing.
// An empty color means the terminal default.
type Style struct {
	Fg      lipgloss.Color
	Bg      lipgloss.Color
	Bold    bool
	Reverse bool
}

// Lipgloss converts the style for string rendering.
func (s Style) Lipgloss() lipgloss.Style {
	st := lipgloss.NewStyle().Bold(s.Bold).Reverse(s.Reverse)
	if s.Fg != "" {
		st = st.Foreground(s.Fg)
	}
	if s.Bg != "" {
		st = st.Background(s.Bg)
	}
	return st
}

// Palette holds the base colors a theme derives its pairs from.
type Palette struct {
	Background        lipgloss.Color
	Shadow            lipgloss.Color
	View              lipgloss.Color
	Primary           lipgloss.Color
	Secondary         lipgloss.Color
	Tertiary          lipgloss.Color
	TitlePrimary      lipgloss.Color
	TitleSecondary    lipgloss.Color
	Highlight         lipgloss.Color
	HighlightInactive lipgloss.Color
}

// Theme is the set of styles handed to every printer.
type Theme struct {
	// Shadow enables drop shadows behind layers.
	Shadow  bool
	Palette Palette
}

// Default returns the built-in blue/white theme.
func Default() *Theme {
	return &Theme{
		Shadow: true,
		Palette: Palette{
			Background:        "4",
			Shadow:            "0",
			View:              "7",
			Primary:           "0",
			Secondary:         "4",
			Tertiary:          "7",
			TitlePrimary:      "1",
			TitleSecondary:    "3",
			Highlight:         "1",
			HighlightInactive: "4",
		},
	}
}

// Style returns the style for a color pair.
func (t *Theme) Style(pair ColorPair) Style {
	p := t.Palette
	switch pair {
	case Background:
		return Style{Fg: p.Background, Bg: p.Background}
	case Shadow:
		return Style{Fg: p.Shadow, Bg: p.Shadow}
	case Secondary:
		return Style{Fg: p.Secondary, Bg: p.View}
	case Tertiary:
		return Style{Fg: p.Tertiary, Bg: p.View}
	case TitlePrimary:
		return Style{Fg: p.TitlePrimary, Bg: p.View}
	case TitleSecondary:
		return Style{Fg: p.TitleSecondary, Bg: p.View}
	case Highlight:
		return Style{Fg: p.View, Bg: p.Highlight}
	case HighlightInactive:
		return Style{Fg: p.View, Bg: p.HighlightInactive}
	default:
		return Style{Fg: p.Primary, Bg: p.View}
	}
}

// themeFile mirrors the on-disk layout.
type themeFile struct {
	Shadow *bool             `toml:"shadow"`
	Colors map[string]string `toml:"colors"`
}

// Load reads a TOML theme file on top of the default theme.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme %s: %w", path, err)
	}
	t, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("load theme %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes TOML theme data on top of the default theme.
// Missing keys keep their defaults; unknown keys are logged and skipped.
func Parse(data string) (*Theme, error) {
	var f themeFile
	md, err := toml.Decode(data, &f)
	if err != nil {
		return nil, fmt.Errorf("decode theme: %w", err)
	}
	for _, key := range md.Undecoded() {
		debug.Logf("theme: ignoring unknown key %s", key)
	}

	t := Default()
	if f.Shadow != nil {
		t.Shadow = *f.Shadow
	}

	slots := map[string]*lipgloss.Color{
		"background":         &t.Palette.Background,
		"shadow":             &t.Palette.Shadow,
		"view":               &t.Palette.View,
		"primary":            &t.Palette.Primary,
		"secondary":          &t.Palette.Secondary,
		"tertiary":           &t.Palette.Tertiary,
		"title_primary":      &t.Palette.TitlePrimary,
		"title_secondary":    &t.Palette.TitleSecondary,
		"highlight":          &t.Palette.Highlight,
		"highlight_inactive": &t.Palette.HighlightInactive,
	}
	for name, value := range f.Colors {
		slot, ok := slots[name]
		if !ok {
			debug.Logf("theme: ignoring unknown color %q", name)
			continue
		}
		c, err := ParseColor(value)
		if err != nil {
			return nil, fmt.Errorf("color %s: %w", name, err)
		}
		*slot = c
	}
	return t, nil
}

var ansiNames = map[string]int{
	"black":   0,
	"red":     1,
	"green":   2,
	"yellow":  3,
	"blue":    4,
	"magenta": 5,
	"cyan":    6,
	"white":   7,
}

// ParseColor accepts an ANSI color name ("red", "light blue"), an ANSI-256
// index ("62"), "#rrggbb", or "default".
func ParseColor(s string) (lipgloss.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "default" {
		return "", nil
	}
	if strings.HasPrefix(s, "#") {
		if len(s) != 7 {
			return "", fmt.Errorf("invalid hex color %q", s)
		}
		if _, err := strconv.ParseUint(s[1:], 16, 32); err != nil {
			return "", fmt.Errorf("invalid hex color %q", s)
		}
		return lipgloss.Color(s), nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 255 {
			return "", fmt.Errorf("color index %d out of range", n)
		}
		return lipgloss.Color(s), nil
	}
	name, light := strings.CutPrefix(s, "light ")
	n, ok := ansiNames[name]
	if !ok {
		return "", fmt.Errorf("unknown color %q", s)
	}
	if light {
		n += 8
	}
	return lipgloss.Color(strconv.Itoa(n)), nil
}
