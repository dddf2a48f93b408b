package render

import (
	"fmt"
	"log/slog"

	"gitlab.com/tinyland/lab/linechart/pkg/axis"
	"gitlab.com/tinyland/lab/linechart/pkg/chartdata"
	"gitlab.com/tinyland/lab/linechart/pkg/scale"
	"gitlab.com/tinyland/lab/linechart/pkg/scene"
	"gitlab.com/tinyland/lab/linechart/pkg/shape"
	"gitlab.com/tinyland/lab/linechart/pkg/viewport"
)

// Scales is the domain-to-pixel mapping of one chart. X maps onto
// [0, innerWidth]; Y maps onto [innerHeight, 0] and is niced.
type Scales struct {
	X, Y scale.Linear
}

// Inner returns the plot area size inside the margins, never negative.
func (m Margin) Inner(dims viewport.Dimensions) (width, height float64) {
	width = max(float64(dims.Width)-m.Left-m.Right, 0)
	height = max(float64(dims.Height)-m.Top-m.Bottom, 0)
	return width, height
}

// ComputeScales derives the shared scales for lines drawn together. The
// horizontal domain spans every x, including points without a value; the
// vertical domain spans present values only and falls back to [0, 1].
func ComputeScales(lines []chartdata.Single, dims viewport.Dimensions, opts Options) Scales {
	innerW, innerH := opts.Margin.Inner(dims)

	var xs, ys []float64
	for _, l := range lines {
		xs = append(xs, l.Xs()...)
		ys = append(ys, l.Values()...)
	}
	x0, x1 := scale.ExtentOr(xs, 0, 1)
	y0, y1 := scale.ExtentOr(ys, 0, 1)

	return Scales{
		X: scale.NewLinear(x0, x1, 0, innerW),
		Y: scale.NewLinear(y0, y1, innerH, 0).Nice(opts.TickCount),
	}
}

// LinePath generates the gap-aware path of one line through s.
func LinePath(line chartdata.Single, s Scales, curve shape.CurveFactory) shape.Path {
	gen := shape.Line[chartdata.SinglePoint]{
		X:       func(p chartdata.SinglePoint) float64 { return s.X.Map(p.X) },
		Y:       func(p chartdata.SinglePoint) float64 { return s.Y.Map(p.Y.Y) },
		Defined: func(p chartdata.SinglePoint) bool { return p.Y.Valid },
		Curve:   curve,
	}
	return gen.Path(line.Points)
}

// DrawSingle clears c and draws one line plus its axes.
func DrawSingle(c *scene.Canvas, s chartdata.Single, dims viewport.Dimensions, opts Options) {
	draw(c, []chartdata.Single{s}, []string{opts.SingleColor}, dims, opts)
}

// DrawMulti clears c and draws the three lines of m over shared scales.
func DrawMulti(c *scene.Canvas, m chartdata.Multi, dims viewport.Dimensions, opts Options) {
	lines := m.Lines()
	colors := make([]string, len(lines))
	for i := range lines {
		colors[i] = opts.lineColor(i)
	}
	draw(c, lines, colors, dims, opts)
}

// Draw clears c and draws series with the renderer matching its variant.
func Draw(c *scene.Canvas, series chartdata.Series, dims viewport.Dimensions, opts Options) error {
	switch s := series.(type) {
	case chartdata.Single:
		DrawSingle(c, s, dims, opts)
	case chartdata.Multi:
		DrawMulti(c, s, dims, opts)
	case nil:
		c.Reset(dims.Width, dims.Height)
	default:
		return fmt.Errorf("render: unsupported series %T", series)
	}
	return nil
}

// Render draws series onto a fresh canvas.
func Render(series chartdata.Series, dims viewport.Dimensions, opts Options) (*scene.Canvas, error) {
	c := scene.NewCanvas(dims.Width, dims.Height)
	if err := Draw(c, series, dims, opts); err != nil {
		return nil, err
	}
	return c, nil
}

func draw(c *scene.Canvas, lines []chartdata.Single, colors []string, dims viewport.Dimensions, opts Options) {
	c.Reset(dims.Width, dims.Height)
	c.Background = opts.Background
	if len(lines) == 0 || lines[0].Len() == 0 {
		return
	}

	s := ComputeScales(lines, dims, opts)
	_, innerH := opts.Margin.Inner(dims)

	plot := &scene.Group{
		Class:     "plot",
		Translate: scene.Offset{X: opts.Margin.Left, Y: opts.Margin.Top},
	}
	for i, line := range lines {
		plot.Append(&scene.Path{
			Class:       fmt.Sprintf("line series-%d", i),
			Data:        LinePath(line, s, opts.Curve),
			Stroke:      colors[i],
			StrokeWidth: opts.StrokeWidth,
			Fill:        "none",
		})
	}

	bottom := axis.NewBottom(s.X)
	bottom.TickSizeOuter = 0
	bottom.Color = opts.AxisColor
	bottom.TickCount = opts.TickCount
	xAxis := bottom.Render()
	xAxis.Translate = scene.Offset{Y: innerH}

	left := axis.NewLeft(s.Y)
	left.TickSizeOuter = 0
	left.Color = opts.AxisColor
	left.TickCount = opts.TickCount

	plot.Append(xAxis, left.Render())
	c.Root.Append(plot)
}

// Renderer owns a canvas and redraws it completely on every Draw.
type Renderer struct {
	canvas *scene.Canvas
	opts   Options
	logger *slog.Logger
	draws  int
}

// NewRenderer returns a renderer with an empty canvas.
func NewRenderer(opts Options, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{canvas: scene.NewCanvas(0, 0), opts: opts, logger: logger}
}

// Draw replaces the canvas contents with series at dims.
func (r *Renderer) Draw(series chartdata.Series, dims viewport.Dimensions) *scene.Canvas {
	r.draws++
	if err := Draw(r.canvas, series, dims, r.opts); err != nil {
		r.logger.Warn("chart draw failed", "error", err)
		r.canvas.Reset(dims.Width, dims.Height)
	}
	r.logger.Debug("chart drawn",
		"width", dims.Width,
		"height", dims.Height,
		"paths", r.canvas.Count(scene.KindPath),
		"draws", r.draws,
	)
	return r.canvas
}

// Canvas returns the canvas written by Draw.
func (r *Renderer) Canvas() *scene.Canvas { return r.canvas }

// Draws returns how many times Draw ran.
func (r *Renderer) Draws() int { return r.draws }

// Options returns the renderer's styling.
func (r *Renderer) Options() Options { return r.opts }

// SetOptions replaces the styling used by later draws.
func (r *Renderer) SetOptions(opts Options) { r.opts = opts }
