// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distrib

import (
	"math"

	"github.com/statview/go-distmath/moments"
)

// ExponentialDist is an exponential distribution with rate
// Rate > 0.
type ExponentialDist struct {
	Rate float64
}

// PDF is the value of the probability density function at x.
func (d ExponentialDist) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return d.Rate * math.Exp(-d.Rate*x)
}

// CDF is the probability that a draw is ≤ x.
func (d ExponentialDist) CDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return 1 - math.Exp(-d.Rate*x)
}

// MGF is the moment-generating function λ/(λ−t), defined for t < λ.
// Moments uses the closed forms instead: for small rates the MGF's
// pole sits inside the differentiation stencil and ruins the
// numerical derivatives.
func (d ExponentialDist) MGF(t float64) float64 {
	if t >= d.Rate {
		return nan
	}
	return d.Rate / (d.Rate - t)
}

func (d ExponentialDist) Bounds() Bounds {
	return Bounds{Bound{0, true}, Bound{inf, false}}
}

func (d ExponentialDist) Step() float64 { return 0 }

func (d ExponentialDist) Moments() moments.Moments {
	return moments.Moments{
		Mean:     1 / d.Rate,
		Variance: 1 / (d.Rate * d.Rate),
		Skewness: 2,
		Kurtosis: 6,
	}
}
