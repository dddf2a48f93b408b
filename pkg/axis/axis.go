// Package axis draws the tick marks, labels and domain line for a linear
// scale. Output follows the d3-axis layout: ticks are offset by half a
// pixel for crisp strokes, inner ticks are 6px long, labels sit 3px past
// the tick and the domain line carries outer ticks at both ends.
package axis

import (
	"gitlab.com/tinyland/lab/linechart/pkg/scale"
	"gitlab.com/tinyland/lab/linechart/pkg/scene"
	"gitlab.com/tinyland/lab/linechart/pkg/shape"
)

// Orientation is the side of the plot the axis is drawn on.
type Orientation int

const (
	Bottom Orientation = iota
	Left
)

// String returns "bottom" or "left".
func (o Orientation) String() string {
	if o == Left {
		return "left"
	}
	return "bottom"
}

const (
	defaultTickSize    = 6
	defaultTickPadding = 3
	defaultFontSize    = 10
	defaultColor       = "#000"

	// crispOffset aligns 1px strokes to the pixel grid.
	crispOffset = 0.5
)

// Axis describes one axis. Use New, Bottom or Left for defaults.
type Axis struct {
	Orient        Orientation
	Scale         scale.Linear
	TickCount     int
	TickSizeInner float64
	TickSizeOuter float64
	TickPadding   float64
	FontSize      float64
	Color         string
	// Format labels tick values. Nil uses the scale's tick format.
	Format func(float64) string
}

// New returns an axis with d3's default tick sizes.
func New(orient Orientation, s scale.Linear) Axis {
	return Axis{
		Orient:        orient,
		Scale:         s,
		TickCount:     scale.DefaultTickCount,
		TickSizeInner: defaultTickSize,
		TickSizeOuter: defaultTickSize,
		TickPadding:   defaultTickPadding,
		FontSize:      defaultFontSize,
		Color:         defaultColor,
	}
}

// NewBottom returns a horizontal axis with labels below the line.
func NewBottom(s scale.Linear) Axis { return New(Bottom, s) }

// NewLeft returns a vertical axis with labels left of the line.
func NewLeft(s scale.Linear) Axis { return New(Left, s) }

// Tick is one computed tick mark.
type Tick struct {
	Value    float64
	Position float64
	Label    string
}

// Ticks returns the tick marks in scale order.
func (a Axis) Ticks() []Tick {
	format := a.Format
	if format == nil {
		format = a.Scale.TickFormat(a.TickCount)
	}
	values := a.Scale.Ticks(a.TickCount)
	ticks := make([]Tick, len(values))
	for i, v := range values {
		ticks[i] = Tick{Value: v, Position: a.Scale.Map(v), Label: format(v)}
	}
	return ticks
}

// Render builds the axis group. The caller positions it with the group's
// Translate field.
func (a Axis) Render() *scene.Group {
	g := &scene.Group{Class: "axis axis-" + a.Orient.String()}
	g.Append(a.domain())

	spacing := max(a.TickSizeInner, 0) + a.TickPadding
	for _, t := range a.Ticks() {
		tick := &scene.Group{Class: "tick"}
		label := &scene.Text{
			Class:    "tick-label",
			Fill:     a.Color,
			FontSize: a.FontSize,
			Content:  t.Label,
		}
		line := &scene.Line{Class: "tick-line", Stroke: a.Color}

		switch a.Orient {
		case Left:
			tick.Translate = scene.Offset{Y: t.Position + crispOffset}
			line.X2 = -a.TickSizeInner
			label.X = -spacing
			label.Anchor = scene.AnchorEnd
			label.Baseline = scene.BaselineMiddle
		default:
			tick.Translate = scene.Offset{X: t.Position + crispOffset}
			line.Y2 = a.TickSizeInner
			label.Y = spacing
			label.Anchor = scene.AnchorMiddle
			label.Baseline = scene.BaselineHanging
		}
		tick.Append(line, label)
		g.Append(tick)
	}
	return g
}

// domain draws the axis line with its outer ticks.
func (a Axis) domain() *scene.Path {
	r0, r1 := a.Scale.Range()
	r0 += crispOffset
	r1 += crispOffset

	var d shape.Path
	switch a.Orient {
	case Left:
		outer := -a.TickSizeOuter
		d.MoveTo(outer, r0)
		d.LineTo(crispOffset, r0)
		d.LineTo(crispOffset, r1)
		d.LineTo(outer, r1)
	default:
		outer := a.TickSizeOuter
		d.MoveTo(r0, outer)
		d.LineTo(r0, crispOffset)
		d.LineTo(r1, crispOffset)
		d.LineTo(r1, outer)
	}
	return &scene.Path{Class: "domain", Data: d, Stroke: a.Color, StrokeWidth: 1, Fill: "none"}
}
