// Package paint parses the CSS color strings chart definitions and themes
// carry. Every output surface resolves colors here so a stroke that draws
// in SVG also draws in PNG and terminal output.
package paint

import (
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Parse parses "#rgb", "#rrggbb", "rgb(r, g, b)", "rgba(r, g, b, a)" or an
// SVG 1.1 color keyword. The empty string and "none" are transparent and
// report false.
func Parse(s string) (color.RGBA, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return c, true
	}
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:])
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		return parseFunc(s[len("rgba("):len(s)-1], 4)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseFunc(s[len("rgb("):len(s)-1], 3)
	}
	return color.RGBA{}, false
}

// Valid reports whether s is empty or a color Parse accepts.
func Valid(s string) bool {
	if strings.TrimSpace(s) == "" {
		return true
	}
	_, ok := Parse(s)
	return ok
}

func parseHex(hex string) (color.RGBA, bool) {
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, true
}

func parseFunc(args string, n int) (color.RGBA, bool) {
	parts := strings.Split(args, ",")
	if len(parts) != n {
		return color.RGBA{}, false
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || v < 0 || v > 255 {
			return color.RGBA{}, false
		}
		ch[i] = uint8(v)
	}
	alpha := uint8(0xff)
	if n == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return color.RGBA{}, false
		}
		alpha = uint8(a*255 + 0.5)
	}
	nc := color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: alpha}
	return color.RGBAModel.Convert(nc).(color.RGBA), true
}
