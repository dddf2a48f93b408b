package render

import (
	"math"
	"testing"

	"gitlab.com/tinyland/lab/linechart/pkg/chartdata"
	"gitlab.com/tinyland/lab/linechart/pkg/scene"
	"gitlab.com/tinyland/lab/linechart/pkg/viewport"
)

var dims = viewport.Dimensions{Width: 800, Height: 400}

func single(vals ...float64) chartdata.Single {
	var s chartdata.Single
	for i, v := range vals {
		y := chartdata.None()
		if !math.IsNaN(v) {
			y = chartdata.Some(v)
		}
		s.Points = append(s.Points, chartdata.SinglePoint{X: float64(i), Y: y})
	}
	return s
}

func TestSingleDrawsOnePathAndTwoAxes(t *testing.T) {
	c := scene.NewCanvas(0, 0)
	DrawSingle(c, single(1, 4, 2), dims, DefaultOptions())

	if got := len(c.Paths("line")); got != 1 {
		t.Errorf("line paths = %d, want 1", got)
	}
	if got := len(c.Groups("axis")); got != 2 {
		t.Errorf("axes = %d, want 2", got)
	}
	line := c.Paths("line")[0]
	if line.Stroke != DefaultSingleColor || line.Fill != "none" || line.StrokeWidth != 2 {
		t.Errorf("line style = %+v", line)
	}
	if c.Width != 800 || c.Height != 400 {
		t.Errorf("canvas = %dx%d, want 800x400", c.Width, c.Height)
	}
}

func TestSingleCustomColor(t *testing.T) {
	c := scene.NewCanvas(0, 0)
	DrawSingle(c, single(1, 2), dims, DefaultOptions().WithColor("green"))
	if got := c.Paths("line")[0].Stroke; got != "green" {
		t.Errorf("stroke = %q, want green", got)
	}
}

func TestHigherValueHasSmallerPixelY(t *testing.T) {
	s := single(3, 9, math.NaN(), 1, 7)
	sc := ComputeScales([]chartdata.Single{s}, dims, DefaultOptions())
	p := LinePath(s, sc, nil)

	for _, run := range p.Runs() {
		for i := 1; i < len(run); i++ {
			a, b := run[i-1], run[i]
			va, vb := sc.Y.Invert(a.Y), sc.Y.Invert(b.Y)
			if (va > vb) != (a.Y < b.Y) {
				t.Errorf("pixel order inconsistent: value %v at y=%v, value %v at y=%v", va, a.Y, vb, b.Y)
			}
		}
	}
}

func TestGapBetweenNullPoint(t *testing.T) {
	// [[0,1],[1,null],[2,3]]
	s := single(1, math.NaN(), 3)
	sc := ComputeScales([]chartdata.Single{s}, dims, DefaultOptions())
	p := LinePath(s, sc, nil)

	runs := p.Runs()
	if len(runs) != 2 {
		t.Fatalf("runs = %d, want 2", len(runs))
	}
	if runs[0][len(runs[0])-1].X != sc.X.Map(0) || runs[1][0].X != sc.X.Map(2) {
		t.Errorf("runs = %v, want a break between x=0 and x=2", runs)
	}
	if p.Subpaths() != 2 {
		t.Errorf("subpaths = %d, want 2", p.Subpaths())
	}
}

func TestNullPointsKeepXDomain(t *testing.T) {
	s := single(math.NaN(), 2, 3, math.NaN())
	sc := ComputeScales([]chartdata.Single{s}, dims, DefaultOptions())
	d0, d1 := sc.X.Domain()
	if d0 != 0 || d1 != 3 {
		t.Errorf("x domain = [%v,%v], want [0,3]", d0, d1)
	}
	r0, r1 := sc.X.Range()
	if r0 != 0 || r1 != 740 {
		t.Errorf("x range = [%v,%v], want [0,740]", r0, r1)
	}
}

func TestYDomainNicedAndInverted(t *testing.T) {
	sc := ComputeScales([]chartdata.Single{single(1, 5, 3)}, dims, DefaultOptions())
	d0, d1 := sc.Y.Domain()
	if d0 > 1 || d1 < 5 {
		t.Errorf("y domain = [%v,%v], want to cover [1,5]", d0, d1)
	}
	r0, r1 := sc.Y.Range()
	if r0 != 350 || r1 != 0 {
		t.Errorf("y range = [%v,%v], want [350,0]", r0, r1)
	}
}

func TestAllAbsentFallsBackToUnitDomain(t *testing.T) {
	s := single(math.NaN(), math.NaN())
	sc := ComputeScales([]chartdata.Single{s}, dims, DefaultOptions())
	d0, d1 := sc.Y.Domain()
	if d0 != 0 || d1 != 1 {
		t.Errorf("y domain = [%v,%v], want [0,1]", d0, d1)
	}
	c := scene.NewCanvas(0, 0)
	DrawSingle(c, s, dims, DefaultOptions())
	if !c.Paths("line")[0].Data.Empty() {
		t.Error("all-absent series should draw an empty path")
	}
	for _, p := range c.Paths("") {
		for _, cmd := range p.Data.Commands {
			for _, v := range cmd.Args {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("non-finite coordinate in %q", p.Data.String())
				}
			}
		}
	}
}

func TestMultiDrawsThreePaths(t *testing.T) {
	// [[0,[1,2,null]],[1,[2,3,4]]]
	m := chartdata.Multi{Points: []chartdata.MultiPoint{
		{X: 0, Y: [3]chartdata.Value{chartdata.Some(1), chartdata.Some(2), chartdata.None()}},
		{X: 1, Y: [3]chartdata.Value{chartdata.Some(2), chartdata.Some(3), chartdata.Some(4)}},
	}}
	c := scene.NewCanvas(0, 0)
	DrawMulti(c, m, dims, DefaultOptions())

	lines := c.Paths("line")
	if len(lines) != 3 {
		t.Fatalf("line paths = %d, want 3", len(lines))
	}
	for i, want := range DefaultPalette {
		if lines[i].Stroke != want {
			t.Errorf("series %d stroke = %q, want %q", i, lines[i].Stroke, want)
		}
	}

	third := lines[2].Data
	runs := third.Runs()
	if len(runs) != 1 || len(runs[0]) != 1 {
		t.Fatalf("third series runs = %v, want one run starting at x=1", runs)
	}
	sc := ComputeScales(m.Lines(), dims, DefaultOptions())
	if runs[0][0].X != sc.X.Map(1) {
		t.Errorf("third series starts at %v, want %v", runs[0][0].X, sc.X.Map(1))
	}
	// The first two series are continuous.
	for i := 0; i < 2; i++ {
		if got := lines[i].Data.Subpaths(); got != 1 {
			t.Errorf("series %d subpaths = %d, want 1", i, got)
		}
	}
	if got := len(c.Groups("axis")); got != 2 {
		t.Errorf("axes = %d, want 2", got)
	}
}

func TestMultiSharedYDomain(t *testing.T) {
	m := chartdata.Multi{Points: []chartdata.MultiPoint{
		{X: 0, Y: [3]chartdata.Value{chartdata.Some(-5), chartdata.None(), chartdata.Some(2)}},
		{X: 1, Y: [3]chartdata.Value{chartdata.Some(0), chartdata.Some(42), chartdata.None()}},
	}}
	sc := ComputeScales(m.Lines(), dims, DefaultOptions())
	d0, d1 := sc.Y.Domain()
	if d0 > -5 || d1 < 42 {
		t.Errorf("shared y domain = [%v,%v], want to cover [-5,42]", d0, d1)
	}
}

func TestPaletteFallback(t *testing.T) {
	opts := DefaultOptions()
	opts.Palette = []string{"black"}
	if opts.lineColor(0) != "black" || opts.lineColor(2) != FallbackColor {
		t.Errorf("palette fallback broken: %q %q", opts.lineColor(0), opts.lineColor(2))
	}
}

func TestRendererClearsOnEveryDraw(t *testing.T) {
	r := NewRenderer(DefaultOptions(), nil)
	r.Draw(single(1, 2, 3), dims)
	first := r.Canvas().Count(scene.KindPath)

	r.Draw(single(1, 2, 3), dims)
	if got := r.Canvas().Count(scene.KindPath); got != first {
		t.Errorf("paths after second draw = %d, want %d (no accumulation)", got, first)
	}

	r.Draw(chartdata.Single{}, viewport.Dimensions{Width: 400, Height: 400})
	if !r.Canvas().Empty() {
		t.Error("empty series should leave the canvas empty")
	}
	if r.Canvas().Width != 400 {
		t.Errorf("canvas width = %d, want 400", r.Canvas().Width)
	}
	if r.Draws() != 3 {
		t.Errorf("Draws() = %d, want 3", r.Draws())
	}
}

func TestMarginInnerNeverNegative(t *testing.T) {
	w, h := DefaultMargin.Inner(viewport.Dimensions{Width: 10, Height: 10})
	if w != 0 || h != 0 {
		t.Errorf("Inner = (%v,%v), want (0,0)", w, h)
	}
}

func TestRenderPure(t *testing.T) {
	c, err := Render(single(1, 2, 3), dims, DefaultOptions())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := len(c.Paths("line")); got != 1 {
		t.Errorf("line paths = %d, want 1", got)
	}

	c, err = Render(nil, dims, DefaultOptions())
	if err != nil {
		t.Fatalf("Render(nil): %v", err)
	}
	if !c.Empty() {
		t.Error("nil series left drawing on canvas")
	}
}
