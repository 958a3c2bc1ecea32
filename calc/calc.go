// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// calc provides low-order numerical differentiation and integration
// for real functions of one variable.
package calc // import "github.com/statview/go-distmath/calc"

import "math"

// DerivOpts configures numerical differentiation.
//
// The default (zero) value of DerivOpts is a reasonable default
// configuration.
type DerivOpts struct {
	// InitialStep is the finite-difference step size the
	// refinement loop starts from. If this is zero, it defaults
	// to 0.01.
	InitialStep float64

	// MaxIter bounds the number of step halvings. Refinement
	// normally stops much earlier, when successive estimates stop
	// improving, but the ceiling guarantees termination for
	// pathological inputs. If this is zero, it defaults to 99999.
	MaxIter int
}

func (o DerivOpts) initialStep() float64 {
	if o.InitialStep == 0 {
		return 0.01
	}
	return o.InitialStep
}

func (o DerivOpts) maxIter() int {
	if o.MaxIter == 0 {
		return 99999
	}
	return o.MaxIter
}

// Derivative estimates the order'th derivative of f at x using
// DerivOpts o.
//
// The estimate is a symmetric finite difference with binomial
// weights,
//
//	Σᵢ (−1)ⁱ C(order,i) f(x + (order/2 − i)h) / hᵒʳᵈᵉʳ
//
// evaluated at successively halved step sizes h. The loop returns the
// previous estimate as soon as the difference between successive
// estimates stops shrinking, which is where floating-point
// cancellation starts to dominate the truncation error. A non-finite
// estimate aborts refinement and returns the last good value.
//
// order 0 returns f(x). A negative order returns NaN.
func (o DerivOpts) Derivative(f func(float64) float64, order int, x float64) float64 {
	switch {
	case order < 0:
		return math.NaN()
	case order == 0:
		return f(x)
	}

	half := float64(order) / 2
	stencil := func(h float64) float64 {
		var acc float64
		for i := 0; i <= order; i++ {
			w := binom(order, i)
			if i&1 == 1 {
				w = -w
			}
			acc += w * f(x+(half-float64(i))*h)
		}
		return acc / math.Pow(h, float64(order))
	}

	h := o.initialStep()
	cur := stencil(h)
	lastDiff := math.Inf(1)
	for n := 0; n < o.maxIter(); n++ {
		h /= 2
		next := stencil(h)
		if math.IsNaN(next) || math.IsInf(next, 0) {
			return cur
		}
		d := math.Abs(next - cur)
		switch {
		case math.IsNaN(d):
			// cur was bad but next is finite; restart the
			// improvement tracking from next.
			lastDiff, cur = math.Inf(1), next
			continue
		case d == 0:
			return next
		case d >= lastDiff:
			return cur
		}
		lastDiff, cur = d, next
	}
	return cur
}

// Derivative estimates the order'th derivative of f at x with the
// default options.
func Derivative(f func(float64) float64, order int, x float64) float64 {
	return DerivOpts{}.Derivative(f, order, x)
}

// Integral estimates the definite integral of f over [a, b] by a
// single application of Simpson's rule,
//
//	(b−a)/6 (f(a) + 4f((a+b)/2) + f(b))
//
// This is a deliberately cheap estimate, exact for cubics and
// adequate for plotting resolution. Callers needing more accuracy
// should subdivide [a, b] themselves or use IntegralN.
func Integral(f func(float64) float64, a, b float64) float64 {
	return (b - a) / 6 * (f(a) + 4*f((a+b)/2) + f(b))
}

// IntegralN estimates the definite integral of f over [a, b] by
// composite Simpson's rule over n equal panels. n < 1 is treated
// as 1.
func IntegralN(f func(float64) float64, a, b float64, n int) float64 {
	if n < 1 {
		n = 1
	}
	h := (b - a) / float64(n)
	var acc float64
	for i := 0; i < n; i++ {
		lo := a + float64(i)*h
		acc += Integral(f, lo, lo+h)
	}
	return acc
}

// binom is C(n, k) for the stencil weights. Orders are small, so the
// multiplicative form is exact.
func binom(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	c := 1.0
	for i := 0; i < k; i++ {
		c = c * float64(n-i) / float64(i+1)
	}
	return c
}
