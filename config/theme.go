// Package config loads the palette Framebuffer.SetIndexedColors expects
// from a TOML theme file, falling back to vtfb.DefaultTheme when no file
// is present or it fails to parse.
package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/arcterm/vtfb"
)

// Theme holds the 18-slot color palette in TOML-friendly hex-string form.
type Theme struct {
	Colors ThemeColors `toml:"colors"`
}

// ThemeColors is the standard 16 ANSI colors plus default foreground and
// background colors, each as a "#rrggbb" hex string.
type ThemeColors struct {
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`

	Black         string `toml:"black"`
	Red           string `toml:"red"`
	Green         string `toml:"green"`
	Yellow        string `toml:"yellow"`
	Blue          string `toml:"blue"`
	Magenta       string `toml:"magenta"`
	Cyan          string `toml:"cyan"`
	White         string `toml:"white"`
	BrightBlack   string `toml:"bright_black"`
	BrightRed     string `toml:"bright_red"`
	BrightGreen   string `toml:"bright_green"`
	BrightYellow  string `toml:"bright_yellow"`
	BrightBlue    string `toml:"bright_blue"`
	BrightMagenta string `toml:"bright_magenta"`
	BrightCyan    string `toml:"bright_cyan"`
	BrightWhite   string `toml:"bright_white"`
}

// DefaultTheme returns the hex-string form of vtfb.DefaultTheme.
func DefaultTheme() Theme {
	return Theme{
		Colors: ThemeColors{
			Foreground:    "#bebebe",
			Background:    "#000000",
			Black:         "#000000",
			Red:           "#be2c21",
			Green:         "#3fae3a",
			Yellow:        "#be9a4a",
			Blue:          "#204dbe",
			Magenta:       "#bb54be",
			Cyan:          "#00a7b2",
			White:         "#bebebe",
			BrightBlack:   "#808080",
			BrightRed:     "#ff3e30",
			BrightGreen:   "#58ea51",
			BrightYellow:  "#ffc944",
			BrightBlue:    "#2f6aff",
			BrightMagenta: "#fc74ff",
			BrightCyan:    "#00e1f0",
			BrightWhite:   "#ffffff",
		},
	}
}

// LoadTheme attempts to load a theme from ~/.config/vtfb/theme.toml and
// falls back to vtfb.DefaultTheme (by way of DefaultTheme's hex strings)
// if the file is absent, unreadable, or fails to decode. This is the one
// fallible ambient operation in the module: it degrades gracefully and
// never panics or exits.
func LoadTheme() [vtfb.IndexedColorsCount]vtfb.StraightRgba {
	theme := DefaultTheme()

	home, err := os.UserHomeDir()
	if err != nil {
		log.Printf("warning: could not get user home directory: %v; using default theme", err)
		return theme.Palette()
	}

	configPath := filepath.Join(home, ".config", "vtfb", "theme.toml")

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return theme.Palette()
	}

	if _, err := toml.DecodeFile(configPath, &theme); err != nil {
		log.Printf("warning: failed to decode theme file %s: %v; using default theme", configPath, err)
		return DefaultTheme().Palette()
	}

	log.Printf("loaded theme from %s", configPath)
	return theme.Palette()
}

// Palette parses every hex color in t and arranges it into the
// [18]StraightRgba layout Framebuffer.SetIndexedColors expects. A color
// string that fails to parse falls back to opaque black, logged as a
// warning, so a single typo doesn't take down the whole theme.
func (t Theme) Palette() [vtfb.IndexedColorsCount]vtfb.StraightRgba {
	hex := [vtfb.IndexedColorsCount]string{
		t.Colors.Black, t.Colors.Red, t.Colors.Green, t.Colors.Yellow,
		t.Colors.Blue, t.Colors.Magenta, t.Colors.Cyan, t.Colors.White,
		t.Colors.BrightBlack, t.Colors.BrightRed, t.Colors.BrightGreen, t.Colors.BrightYellow,
		t.Colors.BrightBlue, t.Colors.BrightMagenta, t.Colors.BrightCyan, t.Colors.BrightWhite,
		t.Colors.Background, t.Colors.Foreground,
	}

	var palette [vtfb.IndexedColorsCount]vtfb.StraightRgba
	for i, h := range hex {
		palette[i] = parseHex(h)
	}
	return palette
}

func parseHex(s string) vtfb.StraightRgba {
	c, err := colorful.Hex(s)
	if err != nil {
		log.Printf("warning: invalid theme color %q: %v; using black", s, err)
		return vtfb.RgbaFromBE(0x000000ff)
	}
	r, g, b := c.RGB255()
	return vtfb.RgbaFromBE(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | 0xff)
}
