package indicator

import (
	"math"
	"testing"
)

func TestShiftZeroIsIdentity(t *testing.T) {
	values := []float64{1, 2, 3, 4}
	out := Shift(values, 0)
	for i := range values {
		if out[i] != values[i] {
			t.Errorf("index %d: got %v, want %v", i, out[i], values[i])
		}
	}
	out[0] = 99
	if values[0] != 1 {
		t.Error("Shift must return a copy, not alias the input")
	}
}

func TestShiftForward(t *testing.T) {
	out := Shift([]float64{1, 2, 3, 4, 5}, 2)
	if !math.IsNaN(out[0]) || !math.IsNaN(out[1]) {
		t.Errorf("expected 2 leading gaps, got %v", out[:2])
	}
	for i, want := range []float64{1, 2, 3} {
		if out[i+2] != want {
			t.Errorf("index %d: got %v, want %v", i+2, out[i+2], want)
		}
	}
}

func TestShiftBackward(t *testing.T) {
	out := Shift([]float64{1, 2, 3, 4, 5}, -2)
	for i, want := range []float64{3, 4, 5} {
		if out[i] != want {
			t.Errorf("index %d: got %v, want %v", i, out[i], want)
		}
	}
	if !math.IsNaN(out[3]) || !math.IsNaN(out[4]) {
		t.Errorf("expected 2 trailing gaps, got %v", out[3:])
	}
}

func TestShiftPastLength(t *testing.T) {
	for _, offset := range []int{5, 7, -5, -7} {
		out := Shift([]float64{1, 2, 3, 4, 5}, offset)
		for i, v := range out {
			if !math.IsNaN(v) {
				t.Errorf("offset %d index %d: got %v, want NaN", offset, i, v)
			}
		}
	}
}

func TestFillValue(t *testing.T) {
	values := []float64{math.NaN(), 2, math.NaN(), 4}
	f := &Fill{Method: FillValue, Value: 0}
	f.apply(values)
	for i, want := range []float64{0, 2, 0, 4} {
		if values[i] != want {
			t.Errorf("index %d: got %v, want %v", i, values[i], want)
		}
	}
}

func TestFillForward(t *testing.T) {
	values := []float64{math.NaN(), 2, math.NaN(), math.NaN(), 5}
	f := &Fill{Method: FillForward}
	f.apply(values)
	if !math.IsNaN(values[0]) {
		t.Errorf("leading gap has nothing to carry forward, got %v", values[0])
	}
	for i, want := range []float64{2, 2, 2, 5} {
		if values[i+1] != want {
			t.Errorf("index %d: got %v, want %v", i+1, values[i+1], want)
		}
	}
}

func TestFillBackward(t *testing.T) {
	values := []float64{math.NaN(), 2, math.NaN(), 5, math.NaN()}
	f := &Fill{Method: FillBackward}
	f.apply(values)
	for i, want := range []float64{2, 2, 5, 5} {
		if values[i] != want {
			t.Errorf("index %d: got %v, want %v", i, values[i], want)
		}
	}
	if !math.IsNaN(values[4]) {
		t.Errorf("trailing gap has nothing to carry backward, got %v", values[4])
	}
}

func TestFillLeavesInfinitiesAlone(t *testing.T) {
	values := []float64{math.Inf(1), math.NaN(), math.Inf(-1)}
	f := &Fill{Method: FillValue, Value: 0}
	f.apply(values)
	if !math.IsInf(values[0], 1) || !math.IsInf(values[2], -1) {
		t.Errorf("infinities are results, not gaps: %v", values)
	}
	if values[1] != 0 {
		t.Errorf("NaN gap should be filled, got %v", values[1])
	}
}
