// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// SumOpts configures series summation and products.
//
// The default (zero) value of SumOpts is a reasonable default
// configuration.
type SumOpts struct {
	// Tol is the convergence tolerance for series with an
	// infinite upper bound: accumulation stops once the next term
	// would change the running total by less than Tol. If this is
	// zero, it defaults to 1e-12.
	Tol float64

	// MaxTerms bounds the number of accumulated terms for series
	// with an infinite upper bound. A series that has not
	// converged after MaxTerms terms is reported as NaN. If this
	// is zero, it defaults to 1e6.
	MaxTerms int
}

func (o SumOpts) tol() float64 {
	if o.Tol == 0 {
		return 1e-12
	}
	return o.Tol
}

func (o SumOpts) maxTerms() int {
	if o.MaxTerms == 0 {
		return 1e6
	}
	return o.MaxTerms
}

// Sum accumulates f(i) for integer-valued i from a through b using
// SumOpts o.
//
// If b is +Inf, terms are accumulated from a upward until the series
// converges per o.Tol, probing one term ahead after each
// accumulation; if the series has not converged after o.MaxTerms
// terms, the sum is reported as NaN. If both bounds are finite, the
// closed range is summed exactly with no early exit.
//
// Terms that evaluate to NaN are skipped rather than poisoning the
// running total; some distributions' series have isolated undefined
// terms. A lower bound of -Inf is not supported and yields NaN.
//
// f must be referentially transparent: convergence probing evaluates
// it twice per index.
func (o SumOpts) Sum(f func(float64) float64, a, b float64) float64 {
	return o.accum(f, a, b, 0, func(acc, t float64) float64 { return acc + t })
}

// Product is Sum's multiplicative mirror: it accumulates the product
// of f(i) over the same index ranges, starting from 1, with the same
// convergence, ceiling and NaN-skipping behavior.
func (o SumOpts) Product(f func(float64) float64, a, b float64) float64 {
	return o.accum(f, a, b, 1, func(acc, t float64) float64 { return acc * t })
}

// Sum accumulates f(i) for i from a through b with the default
// options.
func Sum(f func(float64) float64, a, b float64) float64 {
	return SumOpts{}.Sum(f, a, b)
}

// Product accumulates the product of f(i) for i from a through b
// with the default options.
func Product(f func(float64) float64, a, b float64) float64 {
	return SumOpts{}.Product(f, a, b)
}

func (o SumOpts) accum(f func(float64) float64, a, b, acc float64, op func(acc, t float64) float64) float64 {
	if math.IsInf(a, -1) || math.IsNaN(a) || math.IsNaN(b) {
		return nan
	}

	if !math.IsInf(b, 1) {
		// Finite range: exact closed sum, no early exit.
		for i := a; i <= b; i++ {
			if t := f(i); !math.IsNaN(t) {
				acc = op(acc, t)
			}
		}
		return acc
	}

	tol, max := o.tol(), o.maxTerms()
	for i, n := a, 0; ; i++ {
		if t := f(i); !math.IsNaN(t) {
			acc = op(acc, t)
		}
		if next := f(i + 1); !math.IsNaN(next) {
			if math.Abs(op(acc, next)-acc) < tol {
				return acc
			}
		}
		if n++; n >= max {
			return nan
		}
	}
}
