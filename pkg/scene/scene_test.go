package scene

import (
	"strings"
	"testing"

	"gitlab.com/tinyland/lab/linechart/pkg/shape"
)

func sampleCanvas() *Canvas {
	c := NewCanvas(200, 100)
	var d shape.Path
	d.MoveTo(0, 0)
	d.LineTo(10, 20)

	plot := &Group{Class: "plot", Translate: Offset{X: 40, Y: 20}}
	axis := &Group{Class: "axis", Translate: Offset{X: 0, Y: 50}}
	axis.Append(
		&Line{Class: "tick", X2: 0, Y2: 6, Stroke: "#777"},
		&Text{Class: "tick", Y: 9, Anchor: AnchorMiddle, Baseline: BaselineHanging, Content: "1 < 2"},
	)
	plot.Append(&Path{Class: "line series-0", Data: d, Stroke: "steelblue", StrokeWidth: 2}, axis)
	c.Root.Append(plot)
	return c
}

func TestCount(t *testing.T) {
	c := sampleCanvas()
	tests := map[Kind]int{KindGroup: 2, KindPath: 1, KindLine: 1, KindText: 1}
	for k, want := range tests {
		if got := c.Count(k); got != want {
			t.Errorf("Count(%s) = %d, want %d", k, got, want)
		}
	}
}

func TestWalkAccumulatesOffsets(t *testing.T) {
	c := sampleCanvas()
	var textOff Offset
	c.Walk(func(n Node, off Offset) {
		if n.Kind() == KindText {
			textOff = off
		}
	})
	if textOff != (Offset{X: 40, Y: 70}) {
		t.Errorf("text offset = %+v, want {40 70}", textOff)
	}
}

func TestResetClearsTree(t *testing.T) {
	c := sampleCanvas()
	c.Reset(300, 150)
	if !c.Empty() {
		t.Error("canvas not empty after Reset")
	}
	if c.Width != 300 || c.Height != 150 {
		t.Errorf("size = %dx%d, want 300x150", c.Width, c.Height)
	}
	if c.Count(KindPath) != 0 {
		t.Error("paths survived Reset")
	}
}

func TestPathsByClass(t *testing.T) {
	c := sampleCanvas()
	if got := len(c.Paths("line")); got != 1 {
		t.Errorf("Paths(line) = %d, want 1", got)
	}
	if got := len(c.Paths("series-0")); got != 1 {
		t.Errorf("Paths(series-0) = %d, want 1", got)
	}
	if got := len(c.Paths("series")); got != 0 {
		t.Errorf("Paths(series) = %d, want 0 (classes match whole words)", got)
	}
	if got := len(c.Groups("axis")); got != 1 {
		t.Errorf("Groups(axis) = %d, want 1", got)
	}
}

func TestEncodeSVG(t *testing.T) {
	out := SVG(sampleCanvas())
	wants := []string{
		`<svg xmlns="http://www.w3.org/2000/svg" width="200" height="100" viewBox="0 0 200 100">`,
		`<g class="plot" transform="translate(40,20)">`,
		`<path class="line series-0" fill="none" stroke="steelblue" stroke-width="2" d="M0,0L10,20"/>`,
		`<line class="tick" stroke="#777" x1="0" y1="0" x2="0" y2="6"/>`,
		`text-anchor="middle" dy="0.71em">1 &lt; 2</text>`,
		`</svg>`,
	}
	for _, w := range wants {
		if !strings.Contains(out, w) {
			t.Errorf("SVG missing %q\n%s", w, out)
		}
	}
}

func TestKindString(t *testing.T) {
	if KindPath.String() != "path" || Kind(99).String() != "unknown" {
		t.Error("unexpected Kind names")
	}
}
