package axis

import (
	"testing"

	"gitlab.com/tinyland/lab/linechart/pkg/scale"
	"gitlab.com/tinyland/lab/linechart/pkg/scene"
)

func TestBottomTicks(t *testing.T) {
	a := NewBottom(scale.NewLinear(0, 100, 0, 500))
	ticks := a.Ticks()
	if len(ticks) != 11 {
		t.Fatalf("got %d ticks, want 11", len(ticks))
	}
	if ticks[5].Value != 50 || ticks[5].Position != 250 || ticks[5].Label != "50" {
		t.Errorf("tick 5 = %+v, want {50 250 \"50\"}", ticks[5])
	}
}

func TestCustomFormat(t *testing.T) {
	a := NewLeft(scale.NewLinear(0, 1, 100, 0))
	a.TickCount = 2
	a.Format = func(v float64) string { return "x" }
	for _, tk := range a.Ticks() {
		if tk.Label != "x" {
			t.Errorf("label = %q, want x", tk.Label)
		}
	}
}

func TestRenderBottomLayout(t *testing.T) {
	a := NewBottom(scale.NewLinear(0, 10, 0, 100))
	a.TickSizeOuter = 0
	a.Color = "#777"
	g := a.Render()

	if g.Class != "axis axis-bottom" {
		t.Errorf("class = %q", g.Class)
	}
	domain, ok := g.Children[0].(*scene.Path)
	if !ok {
		t.Fatalf("first child is %T, want domain path", g.Children[0])
	}
	if got, want := domain.Data.String(), "M0.5,0L0.5,0.5L100.5,0.5L100.5,0"; got != want {
		t.Errorf("domain = %q, want %q", got, want)
	}

	tick, ok := g.Children[1].(*scene.Group)
	if !ok || tick.Class != "tick" {
		t.Fatalf("second child = %#v, want tick group", g.Children[1])
	}
	if tick.Translate.X != 0.5 {
		t.Errorf("first tick x = %v, want 0.5", tick.Translate.X)
	}
	line := tick.Children[0].(*scene.Line)
	if line.Y2 != 6 || line.Stroke != "#777" {
		t.Errorf("tick line = %+v", line)
	}
	label := tick.Children[1].(*scene.Text)
	if label.Y != 9 || label.Anchor != scene.AnchorMiddle || label.Content != "0" {
		t.Errorf("tick label = %+v", label)
	}
}

func TestRenderLeftLayout(t *testing.T) {
	a := NewLeft(scale.NewLinear(0, 1, 350, 0))
	a.TickSizeOuter = 0
	g := a.Render()

	domain := g.Children[0].(*scene.Path)
	if got, want := domain.Data.String(), "M0,350.5L0.5,350.5L0.5,0.5L0,0.5"; got != want {
		t.Errorf("domain = %q, want %q", got, want)
	}
	last := g.Children[len(g.Children)-1].(*scene.Group)
	if last.Translate.Y != 0.5 {
		t.Errorf("top tick y = %v, want 0.5", last.Translate.Y)
	}
	label := last.Children[1].(*scene.Text)
	if label.X != -9 || label.Anchor != scene.AnchorEnd || label.Content != "1.0" {
		t.Errorf("top label = %+v", label)
	}
}

func TestOuterTicksDrawnByDefault(t *testing.T) {
	g := NewBottom(scale.NewLinear(0, 1, 0, 10)).Render()
	domain := g.Children[0].(*scene.Path)
	if got, want := domain.Data.String(), "M0.5,6L0.5,0.5L10.5,0.5L10.5,6"; got != want {
		t.Errorf("domain = %q, want %q", got, want)
	}
}
