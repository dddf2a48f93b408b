package shape

import (
	"fmt"
	"math"
	"strings"
)

// Curve receives the points of one continuous run and writes path commands.
type Curve interface {
	LineStart()
	LineEnd()
	Point(x, y float64)
}

// CurveFactory binds a Curve to the path it writes to.
type CurveFactory func(p *Path) Curve

// CurveByName returns the factory for "linear" or "monotone-x".
func CurveByName(name string) (CurveFactory, error) {
	switch strings.ToLower(name) {
	case "", "monotone", "monotone-x", "monotonex":
		return MonotoneX, nil
	case "linear":
		return Linear, nil
	default:
		return nil, fmt.Errorf("shape: unknown curve %q", name)
	}
}

// Linear joins points with straight segments.
func Linear(p *Path) Curve {
	return &linearCurve{path: p}
}

type linearCurve struct {
	path  *Path
	point int
}

func (c *linearCurve) LineStart() { c.point = 0 }

func (c *linearCurve) LineEnd() {
	// A lone point becomes a zero-length closed subpath so it still shows
	// with round or square line caps.
	if c.point == 1 {
		c.path.ClosePath()
	}
}

func (c *linearCurve) Point(x, y float64) {
	if c.point == 0 {
		c.point = 1
		c.path.MoveTo(x, y)
		return
	}
	c.point = 2
	c.path.LineTo(x, y)
}

// MonotoneX interpolates with a cubic spline that preserves monotonicity
// in y, assuming x is monotonic (Steffen 1990).
func MonotoneX(p *Path) Curve {
	return &monotoneXCurve{path: p}
}

type monotoneXCurve struct {
	path           *Path
	x0, y0, x1, y1 float64
	t0             float64
	point          int
}

func (c *monotoneXCurve) LineStart() {
	c.x0, c.x1, c.y0, c.y1, c.t0 = math.NaN(), math.NaN(), math.NaN(), math.NaN(), math.NaN()
	c.point = 0
}

func (c *monotoneXCurve) LineEnd() {
	switch c.point {
	case 1:
		c.path.ClosePath()
	case 2:
		c.path.LineTo(c.x1, c.y1)
	case 3:
		c.bezier(c.t0, c.slope2(c.t0))
	}
}

func (c *monotoneXCurve) Point(x, y float64) {
	// Coincident points carry no direction.
	if x == c.x1 && y == c.y1 {
		return
	}
	t1 := math.NaN()
	switch c.point {
	case 0:
		c.point = 1
		c.path.MoveTo(x, y)
	case 1:
		c.point = 2
	case 2:
		c.point = 3
		t1 = c.slope3(x, y)
		c.bezier(c.slope2(t1), t1)
	default:
		t1 = c.slope3(x, y)
		c.bezier(c.t0, t1)
	}
	c.x0, c.x1 = c.x1, x
	c.y0, c.y1 = c.y1, y
	c.t0 = t1
}

// slope3 is the tangent at (x1, y1) given the neighbours on both sides.
func (c *monotoneXCurve) slope3(x2, y2 float64) float64 {
	h0 := c.x1 - c.x0
	h1 := x2 - c.x1
	s0 := (c.y1 - c.y0) / signedDenominator(h0, h1)
	s1 := (y2 - c.y1) / signedDenominator(h1, h0)
	p := (s0*h1 + s1*h0) / (h0 + h1)
	t := (sign(s0) + sign(s1)) * math.Min(math.Min(math.Abs(s0), math.Abs(s1)), 0.5*math.Abs(p))
	if math.IsNaN(t) {
		return 0
	}
	return t
}

// slope2 is the one-sided tangent at an end point.
func (c *monotoneXCurve) slope2(t float64) float64 {
	h := c.x1 - c.x0
	if h == 0 {
		return t
	}
	return (3*(c.y1-c.y0)/h - t) / 2
}

func (c *monotoneXCurve) bezier(t0, t1 float64) {
	dx := (c.x1 - c.x0) / 3
	c.path.CubicTo(c.x0+dx, c.y0+dx*t0, c.x1-dx, c.y1-dx*t1, c.x1, c.y1)
}

// signedDenominator returns h, or a zero signed like other when h is zero,
// so duplicate x values produce an infinite slope of the right sign.
func signedDenominator(h, other float64) float64 {
	if h != 0 {
		return h
	}
	if other < 0 {
		return math.Copysign(0, -1)
	}
	return 0
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}
