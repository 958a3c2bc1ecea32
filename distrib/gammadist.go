// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distrib

import (
	"math"

	"github.com/statview/go-distmath/mathx"
	"github.com/statview/go-distmath/moments"
)

// GammaDist is a gamma distribution with shape K > 0 and scale
// Theta > 0.
type GammaDist struct {
	K, Theta float64
}

// PDF is the value of the probability density function at x. For
// K < 1 the density diverges toward x = 0; the support excludes the
// endpoint.
func (d GammaDist) PDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Exp((d.K-1)*math.Log(x) - x/d.Theta -
		mathx.Lgamma(d.K) - d.K*math.Log(d.Theta))
}

// CDF is the regularized lower incomplete gamma function
// γ(k, x/θ)/Γ(k).
func (d GammaDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return mathx.LowerIncGamma(d.K, x/d.Theta) / mathx.Gamma(d.K)
}

// MGF is the moment-generating function (1−θt)^(−k), defined for
// t < 1/θ.
func (d GammaDist) MGF(t float64) float64 {
	if t >= 1/d.Theta {
		return nan
	}
	return math.Pow(1-d.Theta*t, -d.K)
}

func (d GammaDist) Bounds() Bounds {
	return Bounds{Bound{0, false}, Bound{inf, false}}
}

func (d GammaDist) Step() float64 { return 0 }

func (d GammaDist) Moments() moments.Moments {
	return moments.FromMGF(d.MGF)
}
