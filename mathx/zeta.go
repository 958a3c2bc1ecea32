// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// Polylog returns the polylogarithm Liₛ(z) = Σₖ zᵏ/kˢ for k ≥ 1.
//
// The series is undefined at s = 1 (it is the harmonic-weighted log
// series, divergent at z = 1), reported as NaN. Divergent parameter
// combinations (|z| > 1) fail the convergence ceiling and are also
// reported as NaN.
func Polylog(s, z float64) float64 {
	if s == 1 {
		return nan
	}
	return Sum(func(k float64) float64 {
		return math.Pow(z, k) / math.Pow(k, s)
	}, 1, inf)
}

// Zeta returns the Riemann zeta function ζ(s), the polylogarithm at
// z = 1. Undefined at s = 1.
func Zeta(s float64) float64 {
	return Polylog(s, 1)
}
