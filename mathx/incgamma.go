// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// LowerIncGamma returns the lower incomplete gamma function
// γ(a, x), the gamma integral truncated to [0, x], via the series
//
//	xᵃ Γ(a) e⁻ˣ Σₖ xᵏ/Γ(a+k+1)
//
// It requires a > 0 and x ≥ 0; anything else yields NaN.
// LowerIncGamma(a, x) + UpperIncGamma(a, x) = Γ(a).
func LowerIncGamma(a, x float64) float64 {
	if a <= 0 || x < 0 {
		return nan
	}
	s := Sum(func(k float64) float64 {
		return math.Pow(x, k) / Gamma(a+k+1)
	}, 0, inf)
	return math.Pow(x, a) * Gamma(a) * math.Exp(-x) * s
}

// UpperIncGamma returns the upper incomplete gamma function
// Γ(a, x), the gamma integral over [x, ∞), as the complement of
// LowerIncGamma.
func UpperIncGamma(a, x float64) float64 {
	return Gamma(a) - LowerIncGamma(a, x)
}
