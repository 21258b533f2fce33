package indicator

import "math"

// Shift moves values by offset positions, keeping the original length.
// A positive offset delays the series, leaving offset leading gaps (NaN) and
// dropping the last offset values from alignment; a negative offset advances
// it, leaving trailing gaps. Zero returns a fresh copy.
func Shift(values []float64, offset int) []float64 {
	out := make([]float64, len(values))
	switch {
	case offset == 0:
		copy(out, values)
	case offset >= len(values) || -offset >= len(values):
		for i := range out {
			out[i] = math.NaN()
		}
	case offset > 0:
		for i := 0; i < offset; i++ {
			out[i] = math.NaN()
		}
		copy(out[offset:], values[:len(values)-offset])
	default:
		copy(out, values[-offset:])
		for i := len(values) + offset; i < len(values); i++ {
			out[i] = math.NaN()
		}
	}
	return out
}

// FillMethod enumerates gap-filling strategies.
type FillMethod int

const (
	// FillValue replaces gaps with a literal value.
	FillValue FillMethod = iota
	// FillForward propagates the last finite value into gaps.
	FillForward
	// FillBackward propagates the next finite value into gaps.
	FillBackward
)

// Fill describes how to patch NaN gaps after shifting. Value is only
// consulted when Method is FillValue.
type Fill struct {
	Method FillMethod
	Value  float64
}

// apply patches NaN entries in place. Only NaN counts as a gap; infinities
// produced by the recurrence are results, not gaps, and are left alone.
func (f *Fill) apply(values []float64) {
	switch f.Method {
	case FillForward:
		last := math.NaN()
		for i, v := range values {
			if math.IsNaN(v) {
				values[i] = last
			} else {
				last = v
			}
		}
	case FillBackward:
		next := math.NaN()
		for i := len(values) - 1; i >= 0; i-- {
			if math.IsNaN(values[i]) {
				values[i] = next
			} else {
				next = values[i]
			}
		}
	default:
		for i, v := range values {
			if math.IsNaN(v) {
				values[i] = f.Value
			}
		}
	}
}
