// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// Abramowitz & Stegun 7.1.26 rational approximation constants.
const (
	erfA1 = 0.254829592
	erfA2 = -0.284496736
	erfA3 = 1.421413741
	erfA4 = -1.453152027
	erfA5 = 1.061405429
	erfP  = 0.3275911
)

// Erf returns the error function erf(x), accurate to about 1e-7.
// Erf is antisymmetric: Erf(−x) = −Erf(x).
func Erf(x float64) float64 {
	sign := 1.0
	if x < 0 {
		sign, x = -1, -x
	}
	t := 1 / (1 + erfP*x)
	y := 1 - ((((erfA5*t+erfA4)*t+erfA3)*t+erfA2)*t+erfA1)*t*math.Exp(-x*x)
	return sign * y
}

// Erfc returns the complementary error function 1 − erf(x).
func Erfc(x float64) float64 {
	return 1 - Erf(x)
}
