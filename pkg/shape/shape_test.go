package shape

import (
	"math"
	"testing"
)

type datum struct {
	x, y float64
	ok   bool
}

func pts(vals ...float64) []datum {
	out := make([]datum, len(vals))
	for i, v := range vals {
		out[i] = datum{x: float64(i), y: v, ok: !math.IsNaN(v)}
	}
	return out
}

func identityLine(curve CurveFactory) Line[datum] {
	return Line[datum]{
		X:       func(d datum) float64 { return d.x },
		Y:       func(d datum) float64 { return d.y },
		Defined: func(d datum) bool { return d.ok },
		Curve:   curve,
	}
}

func TestLinearCurve(t *testing.T) {
	p := identityLine(Linear).Path(pts(0, 1, 4))
	if got, want := p.String(), "M0,0L1,1L2,4"; got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}

func TestMonotoneXStraightLine(t *testing.T) {
	p := identityLine(MonotoneX).Path(pts(0, 1, 2))
	want := "M0,0C0.333,0.333,0.667,0.667,1,1C1.333,1.333,1.667,1.667,2,2"
	if got := p.String(); got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}

func TestMonotoneXTwoPointsIsStraight(t *testing.T) {
	p := identityLine(MonotoneX).Path(pts(3, 5))
	if got, want := p.String(), "M0,3L1,5"; got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}

func TestSinglePointRunIsClosed(t *testing.T) {
	for name, curve := range map[string]CurveFactory{"linear": Linear, "monotone": MonotoneX} {
		p := identityLine(curve).Path([]datum{{x: 5, y: 5, ok: true}})
		if got, want := p.String(), "M5,5Z"; got != want {
			t.Errorf("%s: path = %q, want %q", name, got, want)
		}
	}
}

func TestGapBreaksPath(t *testing.T) {
	// [[0,1],[1,null],[2,3]]
	p := identityLine(MonotoneX).Path(pts(1, math.NaN(), 3))
	if p.Subpaths() != 2 {
		t.Fatalf("Subpaths() = %d, want 2", p.Subpaths())
	}
	if got, want := p.String(), "M0,1ZM2,3Z"; got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
	for _, c := range p.Commands {
		if c.Op == OpLine || c.Op == OpCubic {
			t.Errorf("segment %c%v drawn across the gap", c.Op, c.Args)
		}
	}
	runs := p.Runs()
	if len(runs) != 2 || runs[0][0].X != 0 || runs[1][0].X != 2 {
		t.Errorf("Runs() = %v", runs)
	}
}

func TestGapResumesWithSegments(t *testing.T) {
	p := identityLine(Linear).Path(pts(1, 2, math.NaN(), 4, 5))
	if got, want := p.String(), "M0,1L1,2M3,4L4,5"; got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}

func TestLeadingAndTrailingGaps(t *testing.T) {
	p := identityLine(Linear).Path(pts(math.NaN(), 2, 3, math.NaN()))
	if got, want := p.String(), "M1,2L2,3"; got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
	if len(p.Runs()) != 1 {
		t.Errorf("Runs() = %d, want 1", len(p.Runs()))
	}
}

func TestAllUndefinedIsEmpty(t *testing.T) {
	p := identityLine(MonotoneX).Path(pts(math.NaN(), math.NaN()))
	if !p.Empty() {
		t.Errorf("path = %q, want empty", p.String())
	}
}

func TestMonotoneXDoesNotOvershoot(t *testing.T) {
	// A plateau followed by a rise must not dip below the plateau.
	data := []datum{{0, 10, true}, {1, 10, true}, {2, 10, true}, {3, 50, true}}
	p := identityLine(MonotoneX).Path(data)
	for _, c := range p.Commands {
		if c.Op != OpCubic {
			continue
		}
		for i := 1; i < len(c.Args); i += 2 {
			if c.Args[i] < 10-1e-9 || c.Args[i] > 50+1e-9 {
				t.Errorf("control y %v outside [10,50]", c.Args[i])
			}
		}
	}
}

func TestCoincidentPointsIgnored(t *testing.T) {
	data := []datum{{0, 0, true}, {0, 0, true}, {1, 1, true}}
	p := identityLine(MonotoneX).Path(data)
	if got, want := p.String(), "M0,0L1,1"; got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}

func TestCurveByName(t *testing.T) {
	for _, name := range []string{"", "linear", "monotone-x", "MonotoneX"} {
		if _, err := CurveByName(name); err != nil {
			t.Errorf("CurveByName(%q): %v", name, err)
		}
	}
	if _, err := CurveByName("basis"); err == nil {
		t.Error("expected error for unknown curve")
	}
}

func TestFormatCoord(t *testing.T) {
	tests := map[float64]string{
		1.23456:              "1.235",
		-0.0001:              "0",
		100:                  "100",
		math.Copysign(0, -1): "0",
	}
	for in, want := range tests {
		if got := FormatCoord(in); got != want {
			t.Errorf("FormatCoord(%v) = %q, want %q", in, got, want)
		}
	}
}
