package scale

import (
	"math"
	"strconv"
	"strings"
)

// TickFormat returns a formatter for the ticks of count, using just enough
// fixed decimals to tell neighbouring ticks apart and grouping thousands
// with commas.
func (s Linear) TickFormat(count int) func(float64) string {
	precision := PrecisionFixed(s.TickStep(count))
	return func(v float64) string {
		return FormatFixed(v, precision)
	}
}

// PrecisionFixed returns the number of decimals needed to display
// multiples of step.
func PrecisionFixed(step float64) int {
	step = math.Abs(step)
	if step == 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return 0
	}
	// The exponent of the shortest scientific form avoids log10 rounding
	// at exact powers of ten.
	e := strconv.FormatFloat(step, 'e', -1, 64)
	exp, err := strconv.Atoi(e[strings.IndexByte(e, 'e')+1:])
	if err != nil || exp >= 0 {
		return 0
	}
	return -exp
}

// FormatFixed formats v with precision decimals and comma-grouped thousands.
func FormatFixed(v float64, precision int) string {
	s := strconv.FormatFloat(v, 'f', precision, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}

	var b strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	b.WriteString(frac)

	out := b.String()
	if neg && strings.Trim(out, "0.,") != "" {
		out = "-" + out
	}
	return out
}
