// Package render draws chart series onto a scene canvas.
//
// Every draw clears the canvas and rebuilds the full element tree from the
// series and the target dimensions; nothing is carried over between draws.
package render

import (
	"gitlab.com/tinyland/lab/linechart/pkg/scale"
	"gitlab.com/tinyland/lab/linechart/pkg/shape"
)

// DefaultSingleColor strokes a single-series line when no color is given.
const DefaultSingleColor = "steelblue"

// FallbackColor strokes multi-series lines beyond the palette.
const FallbackColor = "gray"

// DefaultPalette strokes the three lines of a multi-series chart.
var DefaultPalette = []string{"blue", "green", "red"}

// Margin is the space between the canvas edge and the plot area.
type Margin struct {
	Top, Right, Bottom, Left float64
}

// DefaultMargin leaves room for the bottom and left axes.
var DefaultMargin = Margin{Top: 20, Right: 20, Bottom: 30, Left: 40}

// Options control how a chart is drawn. The zero value is not usable;
// start from DefaultOptions.
type Options struct {
	Margin      Margin
	StrokeWidth float64
	AxisColor   string
	Background  string
	TickCount   int
	Curve       shape.CurveFactory
	// SingleColor strokes a single-series chart.
	SingleColor string
	// Palette strokes the lines of a multi-series chart by index.
	Palette []string
}

// DefaultOptions returns the standard chart styling.
func DefaultOptions() Options {
	return Options{
		Margin:      DefaultMargin,
		StrokeWidth: 2,
		AxisColor:   "#777",
		TickCount:   scale.DefaultTickCount,
		Curve:       shape.MonotoneX,
		SingleColor: DefaultSingleColor,
		Palette:     append([]string(nil), DefaultPalette...),
	}
}

// WithColor returns a copy of o stroking single-series charts with color.
func (o Options) WithColor(color string) Options {
	if color != "" {
		o.SingleColor = color
	}
	return o
}

// lineColor returns the stroke for line i of a multi-series chart.
func (o Options) lineColor(i int) string {
	if i < len(o.Palette) && o.Palette[i] != "" {
		return o.Palette[i]
	}
	return FallbackColor
}
