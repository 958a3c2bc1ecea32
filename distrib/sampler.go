// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distrib

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/statview/go-distmath/rng"
)

// A Point is one sampled (x, y) pair.
type Point struct {
	X, Y float64
}

// A SampleSeries is a density or cumulative curve sampled for
// plotting: strictly increasing in X, produced fresh per call, and
// never mutated after being returned. Regenerate it by resampling,
// not by resuming iteration.
type SampleSeries []Point

// A DF holds the sampled density and cumulative curves of one
// distribution.
type DF struct {
	PDF SampleSeries
	CDF SampleSeries
}

// SamplerOpts configures density sampling.
//
// The default (zero) value of SamplerOpts is a reasonable default
// configuration. The defaults are empirical plotting constants, not
// load-bearing mathematical ones; callers needing tighter latency or
// resolution bounds should set their own.
type SamplerOpts struct {
	// Epsilon is the density level treated as "decayed to
	// negligible": once a walk has seen density above Epsilon,
	// it stops at the first value at or below it. Points at or
	// below Epsilon are never included in the sample. If this is
	// zero, it defaults to 1e-5.
	Epsilon float64

	// MaxSteps is the hard ceiling on steps per walk direction,
	// which guarantees termination on pathological parameter
	// values regardless of the decay heuristics. If this is zero,
	// it defaults to 99999.
	MaxSteps int

	// StepDivisor sets the continuous-distribution step size,
	// sqrt(variance)/StepDivisor. If this is zero, it defaults
	// to 100.
	StepDivisor float64
}

func (o SamplerOpts) epsilon() float64 {
	if o.Epsilon == 0 {
		return 1e-5
	}
	return o.Epsilon
}

func (o SamplerOpts) maxSteps() int {
	if o.MaxSteps == 0 {
		return 99999
	}
	return o.MaxSteps
}

func (o SamplerOpts) stepDivisor() float64 {
	if o.StepDivisor == 0 {
		return 100
	}
	return o.StepDivisor
}

// BuildDF samples d's density into a bounded plottable series and
// derives the matching cumulative series, using SamplerOpts o.
//
// The sampler starts at the distribution's mean (at zero when the
// mean is undefined or unreasonably far out) and walks outward in
// both directions, stepping by the distribution's natural spacing
// for discrete families and by sqrt(variance)/StepDivisor for
// continuous ones, falling back to 0.01 when the variance gives no
// usable step. A walk stops at an undefined density, at the edge of
// the support, or once the density has decayed below Epsilon after
// having been visible, so no per-family plot range is hardcoded.
//
// The cumulative series is the running sum of density·step over the
// sorted density sample: a Riemann approximation at the sample's own
// resolution, not an analytic integral.
func (o SamplerOpts) BuildDF(d Dist) DF {
	m := d.Moments()
	bounds := d.Bounds()

	x0 := m.Mean
	if math.IsNaN(x0) || math.Abs(x0) > 1e6 {
		x0 = 0
	}

	inc := d.Step()
	if inc > 0 {
		x0 = math.Floor(x0)
	} else {
		inc = math.Sqrt(m.Variance) / o.stepDivisor()
		if math.IsNaN(inc) || inc <= 0 || inc > 1e6 {
			inc = 0.01
		}
	}

	// A missing mean can put the start outside a half-bounded
	// support (Zipf, say, starts its walk at zero). Pull it back
	// to the nearest representable point inside.
	if x0 < bounds.Lo.Value || (x0 == bounds.Lo.Value && !bounds.Lo.Inclusive) {
		x0 = bounds.Lo.Value
		if !bounds.Lo.Inclusive {
			x0 += inc
		}
	}
	if x0 > bounds.Hi.Value || (x0 == bounds.Hi.Value && !bounds.Hi.Inclusive) {
		x0 = bounds.Hi.Value
		if !bounds.Hi.Inclusive {
			x0 -= inc
		}
	}

	right := o.walk(d, bounds, x0, inc)
	left := o.walk(d, bounds, x0-inc, -inc)

	pdf := make(SampleSeries, 0, len(left)+len(right))
	pdf = append(pdf, left...)
	pdf = append(pdf, right...)
	sortByX(pdf)

	// Riemann-sum CDF at the sample's resolution.
	ys := make([]float64, len(pdf))
	for i, p := range pdf {
		ys[i] = p.Y
	}
	floats.Scale(inc, ys)
	cum := make([]float64, len(ys))
	floats.CumSum(cum, ys)

	cdf := make(SampleSeries, len(pdf))
	for i, p := range pdf {
		cdf[i] = Point{p.X, cum[i]}
	}
	return DF{PDF: pdf, CDF: cdf}
}

// BuildDF samples d with the default options.
func BuildDF(d Dist) DF {
	return SamplerOpts{}.BuildDF(d)
}

// walk samples d.PDF from x0 in increments of inc (negative inc
// walks left) until the density dies out, leaves the support, or
// the step ceiling trips.
func (o SamplerOpts) walk(d Dist, bounds Bounds, x0, inc float64) []Point {
	eps := o.epsilon()
	var pts []Point
	seen := false
	x := x0
	for n := 0; n < o.maxSteps(); n++ {
		if !bounds.Contains(x) {
			break
		}
		y := d.PDF(x)
		if math.IsNaN(y) {
			break
		}
		if y > eps {
			seen = true
			pts = append(pts, Point{x, y})
		} else if seen {
			break
		}
		x += inc
	}
	return pts
}

// sortByX sorts pts ascending by X. The two walk halves arrive in
// opposite orders, so this is a merge of two sorted runs as far as
// the sort is concerned.
func sortByX(pts SampleSeries) {
	xs := make([]float64, len(pts))
	for i, p := range pts {
		xs[i] = p.X
	}
	inds := make([]int, len(pts))
	floats.Argsort(xs, inds)

	sorted := make(SampleSeries, len(pts))
	for i, idx := range inds {
		sorted[i] = pts[idx]
	}
	copy(pts, sorted)
}

// Rand draws one value distributed according to df by inverting its
// sampled cumulative curve at a uniform draw from src. It serves the
// families without a closed-form inverse CDF; accuracy is limited to
// the sampling resolution.
func (df DF) Rand(src *rng.Source) float64 {
	n := len(df.CDF)
	if n == 0 {
		return math.NaN()
	}
	total := df.CDF[n-1].Y
	target := src.Float64() * total
	i := sort.Search(n, func(i int) bool { return df.CDF[i].Y >= target })
	if i == n {
		i = n - 1
	}
	return df.CDF[i].X
}
