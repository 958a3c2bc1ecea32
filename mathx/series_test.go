// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"
	"testing"
)

func TestSumFinite(t *testing.T) {
	ident := func(k float64) float64 { return k }
	if got := Sum(ident, 1, 5); got != 15 {
		t.Errorf("Σ k over [1,5]: want 15, got %v", got)
	}
	// A single-point range is one term.
	if got := Sum(ident, 3, 3); got != 3 {
		t.Errorf("Σ k over [3,3]: want 3, got %v", got)
	}
	// An empty range is the empty sum.
	if got := Sum(ident, 4, 3); got != 0 {
		t.Errorf("Σ k over [4,3]: want 0, got %v", got)
	}
}

func TestSumSkipsNaN(t *testing.T) {
	f := func(k float64) float64 {
		if k == 3 {
			return math.NaN()
		}
		return k
	}
	// The undefined term must not poison the total.
	if got := Sum(f, 0, 5); got != 12 {
		t.Errorf("Σ with NaN at 3 over [0,5]: want 12, got %v", got)
	}
}

func TestSumInfinite(t *testing.T) {
	geo := func(k float64) float64 { return math.Pow(0.5, k) }
	if got := Sum(geo, 0, math.Inf(1)); !aeq(2, got) {
		t.Errorf("Σ 2⁻ᵏ: want 2, got %v", got)
	}

	// Constant terms never converge; the ceiling reports failure.
	ones := func(k float64) float64 { return 1 }
	if got := (SumOpts{MaxTerms: 1000}).Sum(ones, 0, math.Inf(1)); !math.IsNaN(got) {
		t.Errorf("non-convergent sum: want NaN, got %v", got)
	}

	// Summing from -Inf upward is not a thing.
	if got := Sum(geo, math.Inf(-1), math.Inf(1)); !math.IsNaN(got) {
		t.Errorf("sum from -Inf: want NaN, got %v", got)
	}
}

func TestProduct(t *testing.T) {
	ident := func(k float64) float64 { return k }
	if got := Product(ident, 1, 5); got != 120 {
		t.Errorf("Π k over [1,5]: want 120, got %v", got)
	}
	// Empty product.
	if got := Product(ident, 2, 1); got != 1 {
		t.Errorf("Π k over [2,1]: want 1, got %v", got)
	}

	// Convergent infinite product, checked against its own
	// partial product far past the convergence point.
	f := func(k float64) float64 { return 1 + math.Pow(0.5, k) }
	want := 1.0
	for k := 1.0; k <= 60; k++ {
		want *= f(k)
	}
	if got := Product(f, 1, math.Inf(1)); math.Abs(want-got) > 1e-9 {
		t.Errorf("Π (1+2⁻ᵏ): want %v, got %v", want, got)
	}
}

func TestSumOptsDefaults(t *testing.T) {
	var o SumOpts
	if o.tol() != 1e-12 || o.maxTerms() != 1e6 {
		t.Errorf("zero SumOpts: want tol 1e-12 and 1e6 terms, got %v, %v", o.tol(), o.maxTerms())
	}
	// A loose tolerance truncates earlier, so the geometric sum
	// comes up short of its limit.
	geo := func(k float64) float64 { return math.Pow(0.5, k) }
	loose := SumOpts{Tol: 0.1}.Sum(geo, 0, math.Inf(1))
	if !(loose < 2 && loose > 1.8) {
		t.Errorf("loose-tolerance sum: want just under 2, got %v", loose)
	}
}
