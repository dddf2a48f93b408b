package braille

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/linechart/pkg/scene"
	"gitlab.com/tinyland/lab/linechart/pkg/shape"
	"gitlab.com/tinyland/lab/linechart/pkg/theme"
	"gitlab.com/tinyland/lab/linechart/pkg/view"
)

// cubicSteps is the number of segments a cubic Bézier is flattened into.
const cubicSteps = 12

// Options control text rendering.
type Options struct {
	Cols, Rows int
	Profile    termenv.Profile
	// Labels prints axis tick labels over the dots.
	Labels bool
	// TitleColor and PlaceholderColor style RenderView's text lines.
	TitleColor       string
	PlaceholderColor string
}

// Render draws c into a cols x rows grid. Canvas pixels are scaled
// independently on each axis so the whole canvas fits.
func Render(c *scene.Canvas, opts Options) string {
	return draw(c, opts).String(opts.Profile)
}

// RenderView draws a chart heading followed by either the chart or its
// placeholder. Rows counts the chart area only.
func RenderView(v view.View, opts Options) string {
	var lines []string
	if v.Title != "" {
		lines = append(lines, theme.Colorize(v.Title, opts.TitleColor, opts.Profile))
	}
	if v.HasDrawing() {
		lines = append(lines, draw(v.Canvas, opts).Lines(opts.Profile)...)
	} else {
		lines = append(lines, theme.Colorize(v.Placeholder, opts.PlaceholderColor, opts.Profile))
	}
	return strings.Join(Fit(lines, max(opts.Cols, 1)), "\n")
}

func draw(c *scene.Canvas, opts Options) *Grid {
	g := NewGrid(opts.Cols, opts.Rows)
	if c == nil || c.Width <= 0 || c.Height <= 0 {
		return g
	}
	dotsW, dotsH := g.DotSize()
	p := projection{
		sx: float64(dotsW-1) / float64(c.Width),
		sy: float64(dotsH-1) / float64(c.Height),
	}

	var labels []labelAt
	c.Walk(func(n scene.Node, off scene.Offset) {
		switch n := n.(type) {
		case *scene.Path:
			p.path(g, n.Data, off, n.Stroke)
		case *scene.Line:
			x0, y0 := p.dot(n.X1+off.X, n.Y1+off.Y)
			x1, y1 := p.dot(n.X2+off.X, n.Y2+off.Y)
			g.Line(x0, y0, x1, y1, n.Stroke)
		case *scene.Text:
			if opts.Labels {
				labels = append(labels, labelAt{text: n, off: off})
			}
		}
	})
	// Labels go last so dots never overwrite them.
	for _, l := range labels {
		p.label(g, l)
	}
	return g
}

type labelAt struct {
	text *scene.Text
	off  scene.Offset
}

// projection maps canvas pixels to grid dots.
type projection struct {
	sx, sy float64
}

func (p projection) dot(x, y float64) (int, int) {
	return int(math.Round(x * p.sx)), int(math.Round(y * p.sy))
}

func (p projection) path(g *Grid, path shape.Path, off scene.Offset, color string) {
	var (
		cur, start shape.Point
		have       bool
	)
	segment := func(a, b shape.Point) {
		x0, y0 := p.dot(a.X+off.X, a.Y+off.Y)
		x1, y1 := p.dot(b.X+off.X, b.Y+off.Y)
		g.Line(x0, y0, x1, y1, color)
	}
	for _, cmd := range path.Commands {
		a := cmd.Args
		switch cmd.Op {
		case shape.OpMove:
			cur = shape.Point{X: a[0], Y: a[1]}
			start, have = cur, true
			// A lone point still shows as one dot.
			segment(cur, cur)
		case shape.OpLine:
			next := shape.Point{X: a[0], Y: a[1]}
			if have {
				segment(cur, next)
			}
			cur = next
		case shape.OpCubic:
			c1 := shape.Point{X: a[0], Y: a[1]}
			c2 := shape.Point{X: a[2], Y: a[3]}
			end := shape.Point{X: a[4], Y: a[5]}
			prev := cur
			for i := 1; i <= cubicSteps; i++ {
				q := bezier(cur, c1, c2, end, float64(i)/cubicSteps)
				segment(prev, q)
				prev = q
			}
			cur = end
		case shape.OpClose:
			if have {
				segment(cur, start)
				cur = start
			}
		}
	}
}

func (p projection) label(g *Grid, l labelAt) {
	t := l.text
	x, y := p.dot(t.X+l.off.X, t.Y+l.off.Y)
	col, row := x/2, y/4
	w := ansi.StringWidth(t.Content)
	switch t.Anchor {
	case scene.AnchorMiddle:
		col -= w / 2
	case scene.AnchorEnd:
		col -= w
	}
	g.Print(col, row, t.Content, t.Fill)
}

// bezier evaluates a cubic Bézier curve at t.
func bezier(p0, p1, p2, p3 shape.Point, t float64) shape.Point {
	u := 1 - t
	a, b, c, d := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
	return shape.Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}
