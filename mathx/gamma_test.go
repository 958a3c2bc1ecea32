// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"
	"testing"
)

func TestGamma(t *testing.T) {
	if got := Gamma(6); math.Abs(got-120) > 1e-9 {
		t.Errorf("Γ(6): want 120, got %v", got)
	}
	if got := Gamma(0.1); !aeq(9.513507698668732, got) {
		t.Errorf("Γ(0.1): want 9.5135076987, got %v", got)
	}
	if got := Gamma(0.5); math.Abs(got-math.Sqrt(math.Pi)) > 1e-10 {
		t.Errorf("Γ(1/2): want √π, got %v", got)
	}
	// Reflection below 0.5.
	if got := Gamma(-0.5); !aeq(-2*math.Sqrt(math.Pi), got) {
		t.Errorf("Γ(-1/2): want -2√π, got %v", got)
	}
	// Poles.
	for _, x := range []float64{0, -1, -2, -10} {
		if got := Gamma(x); !math.IsInf(got, 1) {
			t.Errorf("Γ(%v): want +Inf, got %v", x, got)
		}
	}
	// Large arguments go through log space: Γ(x+1) = xΓ(x)
	// across the switch at 100.
	g99, g101 := Gamma(99.5), Gamma(101.5)
	if got := 100.5 * 99.5 * g99; math.Abs(got-g101)/g101 > 1e-9 {
		t.Errorf("Γ recurrence across 100: want %v, got %v", g101, got)
	}
}

func TestLgamma(t *testing.T) {
	for _, x := range []float64{0.2, 1, 2.5, 10, 99, 200, 1000} {
		want, _ := math.Lgamma(x)
		if got := Lgamma(x); math.Abs(want-got)/math.Max(1, math.Abs(want)) > 1e-9 {
			t.Errorf("logΓ(%v): want %v, got %v", x, want, got)
		}
	}
	if got := Lgamma(-3); !math.IsInf(got, 1) {
		t.Errorf("logΓ(-3): want +Inf, got %v", got)
	}
}

func TestFactorial(t *testing.T) {
	if got := Factorial(5); got != 120 {
		t.Errorf("5!: want 120, got %v", got)
	}
	if got := Factorial(0); got != 1 {
		t.Errorf("0!: want 1, got %v", got)
	}
	if got := Factorial(1.5); math.Abs(got-1.3293403881791386) > 1e-9 {
		t.Errorf("1.5!: want 1.3293403881791386, got %v", got)
	}
	// Negative non-integers are gamma-defined.
	if got := Factorial(-0.5); !aeq(math.Sqrt(math.Pi), got) {
		t.Errorf("(-1/2)!: want √π, got %v", got)
	}
	// Negative integers are not.
	if got := Factorial(-1); !math.IsInf(got, 0) {
		t.Errorf("(-1)!: want Inf, got %v", got)
	}
}

func TestChoose(t *testing.T) {
	if c, ok := Choose(5, 2); !ok || c != 10 {
		t.Errorf("C(5,2): want 10, got %v (ok=%v)", c, ok)
	}
	// k > n is a well-defined zero, not a failure.
	if c, ok := Choose(5, 7); !ok || c != 0 {
		t.Errorf("C(5,7): want 0, got %v (ok=%v)", c, ok)
	}
	for _, nk := range [][2]int{{0, 1}, {-2, 1}, {5, -1}} {
		if _, ok := Choose(nk[0], nk[1]); ok {
			t.Errorf("C(%d,%d): want failure", nk[0], nk[1])
		}
	}
	if got := ChooseF(5, 2.5); !math.IsNaN(got) {
		t.Errorf("C(5,2.5): want NaN, got %v", got)
	}
	// 40! exceeds 2^53, so the factorial ratio is only correct to
	// float64 precision.
	if got := ChooseF(40, 20); math.Abs(got-137846528820)/137846528820 > 1e-12 {
		t.Errorf("C(40,20): want 137846528820, got %v", got)
	}
}

func TestBeta(t *testing.T) {
	if got := Beta(2, 3); !aeq(1.0/12, got) {
		t.Errorf("B(2,3): want 1/12, got %v", got)
	}
	if got := Beta(0.5, 0.5); !aeq(math.Pi, got) {
		t.Errorf("B(1/2,1/2): want π, got %v", got)
	}
}

func TestDigamma(t *testing.T) {
	if got := Digamma(1); !aeq(-0.5772156649015329, got) {
		t.Errorf("ψ(1): want -γ, got %v", got)
	}
	if got := Digamma(0.5); !aeq(-1.9635100260214235, got) {
		t.Errorf("ψ(1/2): want -1.9635100260, got %v", got)
	}
	for _, x := range []float64{0, -1, -2.5} {
		if got := Digamma(x); !math.IsInf(got, 1) {
			t.Errorf("ψ(%v): want +Inf, got %v", x, got)
		}
	}
}
