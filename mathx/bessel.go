// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// BesselI returns the modified Bessel function of the first kind
// Iₐ(x), via the series
//
//	Σₖ (x/2)^(2k+a) / (k! Γ(k+a+1))
//
// Negative integer orders reflect through the identity I₋ₙ = Iₙ
// before summing: taken directly, their series opens with a run of
// zero terms against the gamma poles, which the one-term-lookahead
// convergence probe mistakes for an already-converged series.
func BesselI(a, x float64) float64 {
	if a < 0 && a == math.Trunc(a) {
		a = -a
	}
	return Sum(func(k float64) float64 {
		return math.Pow(x/2, 2*k+a) / (Factorial(k) * Gamma(k+a+1))
	}, 0, inf)
}
