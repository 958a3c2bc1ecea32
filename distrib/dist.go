// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distrib

import "github.com/statview/go-distmath/moments"

// A Dist is a probability distribution bound to its parameters.
type Dist interface {
	// PDF returns the probability density (or, for discrete
	// distributions, the probability mass) at x. Outside the
	// distribution's support it returns 0; where the density is
	// mathematically undefined it returns NaN.
	PDF(x float64) float64

	// CDF returns the cumulative probability at x.
	CDF(x float64) float64

	// Bounds returns the distribution's support.
	Bounds() Bounds

	// Step returns the natural spacing between adjacent points of
	// support: 1 for integer-valued distributions, 0 for
	// continuous ones.
	Step() float64

	// Moments returns the distribution's mean, variance, skewness
	// and excess kurtosis. Moments that do not exist are NaN.
	Moments() moments.Moments
}

// An MGFer is a distribution that exposes its moment-generating
// function. Families whose moments are extracted numerically
// implement this; heavy-tailed families without a real-valued MGF
// around zero do not.
type MGFer interface {
	// MGF returns E[e^(tX)] at t.
	MGF(t float64) float64
}

// A Bound is one edge of a support interval. Value may be ±Inf, in
// which case Inclusive is meaningless.
type Bound struct {
	Value     float64
	Inclusive bool
}

// Bounds is a support interval. Lo.Value ≤ Hi.Value always holds for
// bounds produced by this package.
type Bounds struct {
	Lo, Hi Bound
}

// Unbounded returns the support of a distribution over all reals.
func Unbounded() Bounds {
	return Bounds{Bound{-inf, false}, Bound{inf, false}}
}

// Contains reports whether x lies within b, honoring endpoint
// inclusivity.
func (b Bounds) Contains(x float64) bool {
	if x < b.Lo.Value || (x == b.Lo.Value && !b.Lo.Inclusive) {
		return false
	}
	if x > b.Hi.Value || (x == b.Hi.Value && !b.Hi.Inclusive) {
		return false
	}
	return true
}
