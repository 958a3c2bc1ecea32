// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// moments derives the first four standardized moments of a
// distribution from its moment-generating function by numerical
// differentiation.
package moments // import "github.com/statview/go-distmath/moments"

import (
	"math"

	"github.com/statview/go-distmath/calc"
)

// Moments holds a distribution's first four standardized moments.
//
// A moment that does not exist, or that could not be computed, is
// NaN. Skewness and Kurtosis are the standardized central moments
// (excess kurtosis, so the normal distribution has Kurtosis 0);
// Variance is never negative when defined.
type Moments struct {
	Mean     float64
	Variance float64
	Skewness float64
	Kurtosis float64
}

// Defined reports whether every moment in m exists.
func (m Moments) Defined() bool {
	return !(math.IsNaN(m.Mean) || math.IsNaN(m.Variance) ||
		math.IsNaN(m.Skewness) || math.IsNaN(m.Kurtosis))
}

// Rounded returns m with each defined moment rounded to three
// decimal places, the precision at which moments are displayed.
func (m Moments) Rounded() Moments {
	return Moments{round3(m.Mean), round3(m.Variance), round3(m.Skewness), round3(m.Kurtosis)}
}

func round3(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	return math.Round(x*1000) / 1000
}

// Undefined is the Moments value with no defined moment, for
// families like Cauchy whose moments do not exist.
func Undefined() Moments {
	nan := math.NaN()
	return Moments{nan, nan, nan, nan}
}

// FromMGF extracts Moments from a moment-generating function m by
// evaluating its first four derivatives at t = 0 and combining them
// through the central-moment identities.
//
// Degenerate results are absorbed here rather than propagated: if
// the variance estimate comes out negative it is reported as NaN
// (it can only be a numerical artifact), and if it is zero or
// undefined the skewness and kurtosis are reported as NaN instead
// of an accidental ±Inf from the 0/0.
func FromMGF(m func(float64) float64) Moments {
	return DerivOpts{}.FromMGF(m)
}

// DerivOpts configures moment extraction with explicit
// differentiation options.
type DerivOpts calc.DerivOpts

// FromMGF is like the package-level FromMGF using o's
// differentiation options.
func (o DerivOpts) FromMGF(m func(float64) float64) Moments {
	d := calc.DerivOpts(o)
	m1 := d.Derivative(m, 1, 0)
	m2 := d.Derivative(m, 2, 0)
	m3 := d.Derivative(m, 3, 0)
	m4 := d.Derivative(m, 4, 0)

	mean := m1
	variance := m2 - mean*mean
	if variance < 0 {
		variance = math.NaN()
	}

	skew, kurt := math.NaN(), math.NaN()
	if variance > 0 {
		mu3 := m3 - 3*mean*variance - mean*mean*mean
		mu4 := m4 - 4*mean*m3 + 6*mean*mean*m2 - 3*mean*mean*mean*mean
		skew = mu3 / math.Pow(variance, 1.5)
		kurt = mu4/(variance*variance) - 3
		if math.IsInf(skew, 0) {
			skew = math.NaN()
		}
		if math.IsInf(kurt, 0) {
			kurt = math.NaN()
		}
	}
	return Moments{mean, variance, skew, kurt}
}

// Mean is the first derivative of the moment-generating function m
// at t.
func Mean(m func(float64) float64, t float64) float64 {
	return calc.Derivative(m, 1, t)
}

// Variance is the centered second derivative of m at t.
func Variance(m func(float64) float64, t float64) float64 {
	mu := Mean(m, t)
	v := calc.Derivative(m, 2, t) - mu*mu
	if v < 0 {
		return math.NaN()
	}
	return v
}

// Skewness is the standardized third central moment of m at t. NaN
// when the variance is zero or undefined.
func Skewness(m func(float64) float64, t float64) float64 {
	mu := Mean(m, t)
	v := Variance(m, t)
	if !(v > 0) {
		return math.NaN()
	}
	mu3 := calc.Derivative(m, 3, t) - 3*mu*v - mu*mu*mu
	return mu3 / math.Pow(v, 1.5)
}

// Kurtosis is the excess standardized fourth central moment of m at
// t. NaN when the variance is zero or undefined.
func Kurtosis(m func(float64) float64, t float64) float64 {
	mu := Mean(m, t)
	v := Variance(m, t)
	if !(v > 0) {
		return math.NaN()
	}
	m2 := calc.Derivative(m, 2, t)
	m3 := calc.Derivative(m, 3, t)
	m4 := calc.Derivative(m, 4, t)
	mu4 := m4 - 4*mu*m3 + 6*mu*mu*m2 - 3*mu*mu*mu*mu
	return mu4/(v*v) - 3
}
