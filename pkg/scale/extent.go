package scale

import "math"

// Extent returns the minimum and maximum of values, skipping NaN. ok is
// false when no value was present.
func Extent(values []float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
		ok = true
	}
	if !ok {
		return 0, 0, false
	}
	return lo, hi, true
}

// ExtentOr returns the extent of values, or [fallbackLo, fallbackHi] when
// no value is present.
func ExtentOr(values []float64, fallbackLo, fallbackHi float64) (float64, float64) {
	lo, hi, ok := Extent(values)
	if !ok {
		return fallbackLo, fallbackHi
	}
	return lo, hi
}
