// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// Reciprocal trigonometric and hyperbolic functions. Density
// formulas (logistic, hyperbolic secant, and friends) use these
// directly.

// Csc returns the cosecant 1/sin(x).
func Csc(x float64) float64 { return 1 / math.Sin(x) }

// Sec returns the secant 1/cos(x).
func Sec(x float64) float64 { return 1 / math.Cos(x) }

// Cot returns the cotangent cos(x)/sin(x).
func Cot(x float64) float64 { return 1 / math.Tan(x) }

// Csch returns the hyperbolic cosecant 1/sinh(x).
func Csch(x float64) float64 { return 1 / math.Sinh(x) }

// Sech returns the hyperbolic secant 1/cosh(x).
func Sech(x float64) float64 { return 1 / math.Cosh(x) }

// Coth returns the hyperbolic cotangent cosh(x)/sinh(x).
func Coth(x float64) float64 { return 1 / math.Tanh(x) }
