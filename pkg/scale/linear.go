// Package scale maps a continuous data domain onto a pixel range.
//
// Linear follows the conventions of the d3-scale linear scale: Nice snaps
// the domain outward to round tick boundaries, Ticks returns the round
// values inside the domain, and a degenerate domain maps to the middle of
// the range.
package scale

import (
	"math"
)

// DefaultTickCount is the tick count used by Nice and Ticks when the
// caller passes a non-positive count.
const DefaultTickCount = 10

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// Linear is an immutable linear domain-to-range mapping.
type Linear struct {
	d0, d1 float64
	r0, r1 float64
}

// NewLinear returns a scale mapping [d0, d1] onto [r0, r1].
func NewLinear(d0, d1, r0, r1 float64) Linear {
	return Linear{d0: d0, d1: d1, r0: r0, r1: r1}
}

// Domain returns the input bounds.
func (s Linear) Domain() (float64, float64) { return s.d0, s.d1 }

// Range returns the output bounds.
func (s Linear) Range() (float64, float64) { return s.r0, s.r1 }

// WithDomain returns a copy of s with a new domain.
func (s Linear) WithDomain(d0, d1 float64) Linear {
	s.d0, s.d1 = d0, d1
	return s
}

// WithRange returns a copy of s with a new range.
func (s Linear) WithRange(r0, r1 float64) Linear {
	s.r0, s.r1 = r0, r1
	return s
}

// Map converts a domain value to a range value. Values outside the domain
// extrapolate linearly.
func (s Linear) Map(v float64) float64 {
	span := s.d1 - s.d0
	if span == 0 {
		return (s.r0 + s.r1) / 2
	}
	t := (v - s.d0) / span
	return s.r0 + t*(s.r1-s.r0)
}

// Invert converts a range value back to the domain.
func (s Linear) Invert(r float64) float64 {
	span := s.r1 - s.r0
	if span == 0 {
		return (s.d0 + s.d1) / 2
	}
	t := (r - s.r0) / span
	return s.d0 + t*(s.d1-s.d0)
}

// Nice extends the domain to round values so that both ends land on a
// tick of the given count.
func (s Linear) Nice(count int) Linear {
	if count <= 0 {
		count = DefaultTickCount
	}
	start, stop := s.d0, s.d1
	reversed := stop < start
	if reversed {
		start, stop = stop, start
	}

	var prestep float64
	for iter := 0; iter < 10; iter++ {
		step := TickIncrement(start, stop, count)
		if step == 0 || step == prestep {
			break
		}
		if step > 0 {
			start = math.Floor(start/step) * step
			stop = math.Ceil(stop/step) * step
		} else {
			start = math.Ceil(start*step) / step
			stop = math.Floor(stop*step) / step
		}
		prestep = step
	}

	if reversed {
		start, stop = stop, start
	}
	s.d0, s.d1 = start, stop
	return s
}

// Ticks returns approximately count round values within the domain, in
// domain order.
func (s Linear) Ticks(count int) []float64 {
	if count <= 0 {
		count = DefaultTickCount
	}
	return Ticks(s.d0, s.d1, count)
}

// TickStep returns the distance between ticks for count ticks.
func (s Linear) TickStep(count int) float64 {
	if count <= 0 {
		count = DefaultTickCount
	}
	return TickStep(s.d0, s.d1, count)
}

// TickIncrement returns the tick spacing for [start, stop]. A negative
// result -k means a spacing of 1/k, which keeps sub-unit steps exact.
func TickIncrement(start, stop float64, count int) float64 {
	step := (stop - start) / math.Max(0, float64(count))
	if step == 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return 0
	}
	power := math.Floor(math.Log10(step))
	factor := stepFactor(step / math.Pow(10, power))
	if power >= 0 {
		return factor * math.Pow(10, power)
	}
	return -math.Pow(10, -power) / factor
}

// TickStep returns the signed tick spacing for [start, stop].
func TickStep(start, stop float64, count int) float64 {
	reverse := stop < start
	var inc float64
	if reverse {
		inc = TickIncrement(stop, start, count)
	} else {
		inc = TickIncrement(start, stop, count)
	}
	if inc < 0 {
		inc = 1 / -inc
	}
	if reverse {
		return -inc
	}
	return inc
}

// Ticks returns round values between start and stop inclusive.
func Ticks(start, stop float64, count int) []float64 {
	if count <= 0 || math.IsNaN(start) || math.IsNaN(stop) {
		return nil
	}
	if start == stop {
		return []float64{start}
	}
	reverse := stop < start
	lo, hi := start, stop
	if reverse {
		lo, hi = stop, start
	}
	i1, i2, inc := tickSpec(lo, hi, float64(count))
	if i2 < i1 {
		return nil
	}

	n := int(i2-i1) + 1
	ticks := make([]float64, n)
	for i := 0; i < n; i++ {
		k := i1 + float64(i)
		if reverse {
			k = i2 - float64(i)
		}
		if inc < 0 {
			ticks[i] = k / -inc
		} else {
			ticks[i] = k * inc
		}
	}
	return ticks
}

func tickSpec(start, stop, count float64) (i1, i2, inc float64) {
	step := (stop - start) / math.Max(0, count)
	power := math.Floor(math.Log10(step))
	factor := stepFactor(step / math.Pow(10, power))

	if power < 0 {
		inc = math.Pow(10, -power) / factor
		i1 = math.Round(start * inc)
		i2 = math.Round(stop * inc)
		if i1/inc < start {
			i1++
		}
		if i2/inc > stop {
			i2--
		}
		inc = -inc
	} else {
		inc = math.Pow(10, power) * factor
		i1 = math.Round(start / inc)
		i2 = math.Round(stop / inc)
		if i1*inc < start {
			i1++
		}
		if i2*inc > stop {
			i2--
		}
	}
	if i2 < i1 && count >= 0.5 && count < 2 {
		return tickSpec(start, stop, count*2)
	}
	return i1, i2, inc
}

func stepFactor(e float64) float64 {
	switch {
	case e >= e10:
		return 10
	case e >= e5:
		return 5
	case e >= e2:
		return 2
	default:
		return 1
	}
}
