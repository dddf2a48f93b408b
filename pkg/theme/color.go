package theme

import (
	"fmt"
	"image/color"

	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/linechart/pkg/paint"
)

// ParseColor parses a CSS color string. The empty string and "none" are
// transparent and report false.
func ParseColor(s string) (color.RGBA, bool) {
	return paint.Parse(s)
}

// Hex returns s normalized to "#rrggbb", or "" if it does not parse.
func Hex(s string) string {
	c, ok := ParseColor(s)
	if !ok {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Colorize wraps text in the foreground escape for colorName, degraded to
// what profile supports. Text is returned unchanged for unknown colors.
func Colorize(text, colorName string, profile termenv.Profile) string {
	hex := Hex(colorName)
	if hex == "" || profile == termenv.Ascii {
		return text
	}
	return profile.String(text).Foreground(profile.Color(hex)).String()
}
