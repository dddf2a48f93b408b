package shape

// Line generates a path from data of any type through accessor functions.
type Line[T any] struct {
	// X and Y return the pixel position of a datum.
	X func(T) float64
	Y func(T) float64
	// Defined reports whether a datum should be drawn. Nil means every
	// datum is defined.
	Defined func(T) bool
	// Curve interpolates between defined points. Nil means MonotoneX.
	Curve CurveFactory
}

// Path generates the path for data. Undefined data end the current run;
// the next defined datum starts a new subpath.
func (l Line[T]) Path(data []T) Path {
	factory := l.Curve
	if factory == nil {
		factory = MonotoneX
	}

	var p Path
	curve := factory(&p)
	var run []Point
	inRun := false

	for _, d := range data {
		defined := l.Defined == nil || l.Defined(d)
		if defined != inRun {
			inRun = defined
			if defined {
				curve.LineStart()
			} else {
				curve.LineEnd()
				p.runs = append(p.runs, run)
				run = nil
			}
		}
		if defined {
			x, y := l.X(d), l.Y(d)
			curve.Point(x, y)
			run = append(run, Point{X: x, Y: y})
		}
	}
	if inRun {
		curve.LineEnd()
		p.runs = append(p.runs, run)
	}
	return p
}
