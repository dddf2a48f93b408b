package config

import (
	"strings"

	"gitlab.com/tinyland/lab/linechart/pkg/render"
)

// MarginPreset returns the margins for a named preset.
//
//	standard  top 20, right 20, bottom 30, left 40
//	compact   top 10, right 10, bottom 24, left 32
//	roomy     top 30, right 30, bottom 40, left 60
//
// The empty name selects standard.
func MarginPreset(name string) (render.Margin, bool) {
	switch strings.ToLower(name) {
	case "", "standard":
		return render.DefaultMargin, true
	case "compact":
		return render.Margin{Top: 10, Right: 10, Bottom: 24, Left: 32}, true
	case "roomy":
		return render.Margin{Top: 30, Right: 30, Bottom: 40, Left: 60}, true
	}
	return render.Margin{}, false
}
