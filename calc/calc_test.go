// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import (
	"math"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

func TestDerivative(t *testing.T) {
	check := func(name string, want, got, tol float64) {
		t.Helper()
		if math.Abs(want-got) > tol {
			t.Errorf("%s: want %v, got %v", name, want, got)
		}
	}

	check("d/dx sin(x) at 0", 1, Derivative(math.Sin, 1, 0), 1e-8)
	check("d/dx sin(x) at π/3", 0.5, Derivative(math.Sin, 1, math.Pi/3), 1e-8)

	cube := func(x float64) float64 { return x * x * x }
	check("d²/dx² x³ at 2", 12, Derivative(cube, 2, 2), 1e-6)
	check("d³/dx³ x³ at -1", 6, Derivative(cube, 3, -1), 1e-4)

	check("d⁴/dx⁴ eˣ at 0", 1, Derivative(math.Exp, 4, 0), 1e-3)

	check("order 0 is f(x)", math.E, Derivative(math.Exp, 0, 1), 0)
	if !math.IsNaN(Derivative(math.Exp, -1, 0)) {
		t.Errorf("negative order must be NaN")
	}
}

func TestDerivativeLastGood(t *testing.T) {
	// log is undefined left of 0, so narrow stencils around a
	// point near 0 eventually go NaN. Refinement must return the
	// last finite estimate rather than the poisoned one.
	got := Derivative(math.Log, 1, 0.004)
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Fatalf("refinement leaked a non-finite estimate: %v", got)
	}
	if math.Abs(got-250) > 1 {
		t.Errorf("d/dx log(x) at 0.004: want ≈250, got %v", got)
	}
}

func TestDerivativeTerminates(t *testing.T) {
	// A noisy function never converges; the iteration ceiling
	// must still terminate the loop.
	n := 0.0
	noise := func(x float64) float64 {
		n++
		return math.Sin(1e9 * x * n)
	}
	DerivOpts{MaxIter: 50}.Derivative(noise, 2, 1)
}

func TestIntegral(t *testing.T) {
	// Simpson's rule is exact for polynomials up to cubic.
	sq := func(x float64) float64 { return x * x }
	if got := Integral(sq, 0, 1); !aeq(1.0/3, got) {
		t.Errorf("∫x² over [0,1]: want 1/3, got %v", got)
	}
	cube := func(x float64) float64 { return x*x*x - x }
	if got := Integral(cube, -1, 2); !aeq(2.25, got) {
		t.Errorf("∫(x³−x) over [-1,2]: want 2.25, got %v", got)
	}
}

func TestIntegralN(t *testing.T) {
	if got := IntegralN(math.Sin, 0, math.Pi, 64); !aeq(2, got) {
		t.Errorf("∫sin over [0,π]: want 2, got %v", got)
	}
	if got := IntegralN(math.Exp, 0, 1, 0); !aeq(Integral(math.Exp, 0, 1), got) {
		t.Errorf("n<1 must behave like a single panel, got %v", got)
	}
}
