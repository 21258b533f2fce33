// Package indicator implements the McGinley Dynamic, a price smoothing
// transform that hugs price more closely than a fixed-window moving average.
package indicator

import (
	"fmt"
	"math"
)

const (
	// DefaultLength is the nominal averaging period.
	DefaultLength = 10
	// DefaultC is the denominator multiplier, sometimes set to 0.6.
	DefaultC = 1.0
)

// Step computes one McGinley Dynamic value from an adjacent raw price pair.
// Each output depends only on (prev, cur) and the two parameters, never on a
// previously computed value, so steps can be evaluated in any order.
// Degenerate inputs (prev == 0, cur == 0, extreme ratios) surface as ±Inf or
// NaN per IEEE-754; they are never clamped here.
func Step(prev, cur float64, length int, c float64) float64 {
	ratio := cur / prev
	denom := c * float64(length) * math.Pow(ratio, 4)
	return prev + (cur-prev)/denom
}

// Dynamic computes the McGinley Dynamic over a close series. The output has
// the same length as the input and out[0] == closes[0] exactly. Callers are
// expected to have validated length, c and the series (see VerifySeries).
func Dynamic(closes []float64, length int, c float64) []float64 {
	out := make([]float64, len(closes))
	if len(closes) == 0 {
		return out
	}
	out[0] = closes[0]
	for i := 1; i < len(closes); i++ {
		out[i] = Step(closes[i-1], closes[i], length, c)
	}
	return out
}

// Params bundles the knobs accepted by McGinleyDynamic. Zero values select
// the defaults; Fill is optional.
type Params struct {
	Length int
	C      float64
	Offset int
	Fill   *Fill
}

// Series is a named, categorized result sequence.
type Series struct {
	Name     string
	Category string
	Values   []float64
}

// McGinleyDynamic runs the full pipeline: normalize parameters, verify the
// series, compute, shift, fill, tag. Returns nil when the series cannot
// satisfy the minimum length, mirroring the absent-result contract of the
// sanitizer rather than reporting an error.
func McGinleyDynamic(closes []float64, p Params) *Series {
	length, c := NormalizeParams(p.Length, p.C)

	closes = VerifySeries(closes, length)
	if closes == nil {
		return nil
	}

	values := Dynamic(closes, length, c)

	if p.Offset != 0 {
		values = Shift(values, p.Offset)
	}
	if p.Fill != nil {
		p.Fill.apply(values)
	}

	return &Series{
		Name:     fmt.Sprintf("MCGD_%d", length),
		Category: "overlap",
		Values:   values,
	}
}

// NormalizeParams clamps invalid parameters to the documented defaults:
// non-positive length becomes DefaultLength, c outside (0, 1] becomes
// DefaultC.
func NormalizeParams(length int, c float64) (int, float64) {
	if length <= 0 {
		length = DefaultLength
	}
	if c <= 0 || c > 1 {
		c = DefaultC
	}
	return length, c
}
