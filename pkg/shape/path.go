// Package shape turns ordered data into drawable line paths.
//
// A Line walks its data, hands every defined point to a Curve and starts a
// new subpath whenever an undefined point interrupts the sequence, so gaps
// in the data are never bridged.
package shape

import (
	"math"
	"strconv"
	"strings"
)

// Op is a path command.
type Op byte

const (
	OpMove  Op = 'M'
	OpLine  Op = 'L'
	OpCubic Op = 'C'
	OpClose Op = 'Z'
)

// Point is a position in pixel space.
type Point struct {
	X, Y float64
}

// Command is one path instruction. Args holds 2 coordinates for Move and
// Line, 6 for Cubic (two control points then the end point) and none for
// Close.
type Command struct {
	Op   Op
	Args []float64
}

// End returns the point the command finishes on. Close has no end point.
func (c Command) End() (Point, bool) {
	n := len(c.Args)
	if n < 2 {
		return Point{}, false
	}
	return Point{X: c.Args[n-2], Y: c.Args[n-1]}, true
}

// Path is an immutable sequence of commands plus the defined runs that
// produced it.
type Path struct {
	Commands []Command
	runs     [][]Point
}

// MoveTo starts a new subpath.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, Command{Op: OpMove, Args: []float64{x, y}})
}

// LineTo draws a straight segment.
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, Command{Op: OpLine, Args: []float64{x, y}})
}

// CubicTo draws a cubic Bézier segment.
func (p *Path) CubicTo(x1, y1, x2, y2, x, y float64) {
	p.Commands = append(p.Commands, Command{Op: OpCubic, Args: []float64{x1, y1, x2, y2, x, y}})
}

// ClosePath closes the current subpath.
func (p *Path) ClosePath() {
	p.Commands = append(p.Commands, Command{Op: OpClose})
}

// Empty reports whether the path draws nothing.
func (p Path) Empty() bool {
	return len(p.Commands) == 0
}

// Subpaths returns the number of MoveTo commands, which equals the number
// of continuous runs drawn.
func (p Path) Subpaths() int {
	n := 0
	for _, c := range p.Commands {
		if c.Op == OpMove {
			n++
		}
	}
	return n
}

// Runs returns the defined points of each continuous run, in order.
func (p Path) Runs() [][]Point {
	return p.runs
}

// String renders the path in SVG path data syntax with coordinates rounded
// to three decimals.
func (p Path) String() string {
	var b strings.Builder
	for _, c := range p.Commands {
		b.WriteByte(byte(c.Op))
		for i, v := range c.Args {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(FormatCoord(v))
		}
	}
	return b.String()
}

// FormatCoord formats a coordinate the way path strings and SVG attributes
// expect it: rounded to three decimals, shortest form, no negative zero.
func FormatCoord(v float64) string {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		r = 0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
