// Package perf holds the rendering benchmarks and the budgets they are
// checked against.
package perf

import "testing"

// Threshold defines a performance budget for a named operation.
type Threshold struct {
	// Name identifies the operation (matches a Result name).
	Name string

	// MaxNs is the maximum allowed nanoseconds per operation. 0 disables.
	MaxNs int64

	// MaxAlloc is the maximum allowed bytes allocated per operation. 0 disables.
	MaxAlloc int64
}

// Result is a benchmark result tagged with the operation it measured.
type Result struct {
	Name string
	testing.BenchmarkResult
}

// Violation records a threshold breach for a specific benchmark.
type Violation struct {
	Threshold Threshold
	Actual    int64
	// Field is "ns" for time or "alloc" for memory.
	Field string
}

// DefaultThresholds returns the budgets for the chart rendering paths on a
// typical development machine.
//
//   - draw_single_1k: one 1000-point line with axes at 800x400
//   - draw_multi_1k: three 1000-point lines over shared scales
//   - encode_svg: serializing a drawn single-series canvas
//   - rasterize_png: gg rasterization of the same canvas at scale 1
//   - braille_render: the same canvas on an 80x24 Braille grid
//   - resize_redraw: one container resize redrawing three mounted charts
func DefaultThresholds() []Threshold {
	return []Threshold{
		{Name: "draw_single_1k", MaxNs: 5_000_000, MaxAlloc: 2_097_152},
		{Name: "draw_multi_1k", MaxNs: 15_000_000, MaxAlloc: 6_291_456},
		{Name: "encode_svg", MaxNs: 5_000_000, MaxAlloc: 1_048_576},
		{Name: "rasterize_png", MaxNs: 200_000_000, MaxAlloc: 16_777_216},
		{Name: "braille_render", MaxNs: 10_000_000, MaxAlloc: 1_048_576},
		{Name: "resize_redraw", MaxNs: 20_000_000, MaxAlloc: 8_388_608},
	}
}

// CheckRegression compares results against thresholds by name and returns
// every budget exceeded. Results without a threshold are ignored.
func CheckRegression(results []Result, thresholds []Threshold) []Violation {
	if len(results) == 0 || len(thresholds) == 0 {
		return nil
	}
	byName := make(map[string]Threshold, len(thresholds))
	for _, t := range thresholds {
		byName[t.Name] = t
	}

	var violations []Violation
	for _, r := range results {
		t, ok := byName[r.Name]
		if !ok {
			continue
		}
		if ns := r.NsPerOp(); t.MaxNs > 0 && ns > t.MaxNs {
			violations = append(violations, Violation{Threshold: t, Actual: ns, Field: "ns"})
		}
		if alloc := r.AllocedBytesPerOp(); t.MaxAlloc > 0 && alloc > t.MaxAlloc {
			violations = append(violations, Violation{Threshold: t, Actual: alloc, Field: "alloc"})
		}
	}
	return violations
}
