// Package chartdata defines the chart definition model and its loaders.
//
// A Definition carries a title and a Series. The series shape (single or
// multi-valued) is decided once while decoding, from the first data point,
// and is carried as a sealed variant so that nothing downstream has to
// inspect raw values to find out what it is drawing.
package chartdata

import "math"

// SeriesWidth is the number of values carried by every multi-series point.
const SeriesWidth = 3

// Value is an optional y value. The zero Value is absent.
type Value struct {
	Y     float64
	Valid bool
}

// Some returns a present Value.
func Some(y float64) Value {
	return Value{Y: y, Valid: true}
}

// None returns an absent Value.
func None() Value {
	return Value{}
}

// Float returns the value, or NaN when absent.
func (v Value) Float() float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.Y
}

// SinglePoint is one observation of a single-valued series.
type SinglePoint struct {
	X float64
	Y Value
}

// MultiPoint is one observation carrying exactly SeriesWidth values.
type MultiPoint struct {
	X float64
	Y [SeriesWidth]Value
}

// Series is the sealed sum type over Single and Multi.
type Series interface {
	// Len returns the number of points.
	Len() int
	// Xs returns every x value in order, including those of points whose
	// values are all absent.
	Xs() []float64
	// Lines returns the series as independent single-valued lines, in
	// drawing order.
	Lines() []Single

	series()
}

// Single is a series with one value per point.
type Single struct {
	Points []SinglePoint
}

func (Single) series() {}

// Len returns the number of points.
func (s Single) Len() int { return len(s.Points) }

// Xs returns the x values of every point.
func (s Single) Xs() []float64 {
	xs := make([]float64, len(s.Points))
	for i, p := range s.Points {
		xs[i] = p.X
	}
	return xs
}

// Lines returns the series itself.
func (s Single) Lines() []Single {
	return []Single{s}
}

// Values returns the present y values.
func (s Single) Values() []float64 {
	var ys []float64
	for _, p := range s.Points {
		if p.Y.Valid {
			ys = append(ys, p.Y.Y)
		}
	}
	return ys
}

// Multi is a series with SeriesWidth values per point.
type Multi struct {
	Points []MultiPoint
}

func (Multi) series() {}

// Len returns the number of points.
func (m Multi) Len() int { return len(m.Points) }

// Xs returns the x values of every point.
func (m Multi) Xs() []float64 {
	xs := make([]float64, len(m.Points))
	for i, p := range m.Points {
		xs[i] = p.X
	}
	return xs
}

// Lines splits the points into SeriesWidth independent single series.
// Each keeps every x so that its own gaps survive.
func (m Multi) Lines() []Single {
	lines := make([]Single, SeriesWidth)
	for i := range lines {
		lines[i].Points = make([]SinglePoint, len(m.Points))
	}
	for j, p := range m.Points {
		for i := range lines {
			lines[i].Points[j] = SinglePoint{X: p.X, Y: p.Y[i]}
		}
	}
	return lines
}

// Definition is one chart: a title and its series. Color optionally
// overrides the stroke of a single-series chart.
type Definition struct {
	Title  string
	Color  string
	Series Series
}

// Empty reports whether the definition has no data points.
func (d Definition) Empty() bool {
	return d.Series == nil || d.Series.Len() == 0
}

// Kind names the series variant: "single", "multi" or "empty".
func (d Definition) Kind() string {
	if d.Empty() {
		return "empty"
	}
	switch d.Series.(type) {
	case Multi:
		return "multi"
	default:
		return "single"
	}
}
