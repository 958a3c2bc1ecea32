// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distrib

import (
	"math"

	"github.com/statview/go-distmath/mathx"
	"github.com/statview/go-distmath/moments"
)

// NormalDist is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
type NormalDist struct {
	Mu, Sigma float64
}

// StdNormal is the standard normal distribution.
var StdNormal = NormalDist{0, 1}

// PDF is the value of the probability density function at x.
func (d NormalDist) PDF(x float64) float64 {
	z := (x - d.Mu) / d.Sigma
	return math.Exp(-z*z/2) / (d.Sigma * math.Sqrt(2*math.Pi))
}

// CDF is the probability that a draw is ≤ x.
func (d NormalDist) CDF(x float64) float64 {
	return (1 + mathx.Erf((x-d.Mu)/(d.Sigma*math.Sqrt2))) / 2
}

// MGF is the moment-generating function exp(μt + σ²t²/2).
func (d NormalDist) MGF(t float64) float64 {
	return math.Exp(d.Mu*t + d.Sigma*d.Sigma*t*t/2)
}

func (d NormalDist) Bounds() Bounds { return Unbounded() }

func (d NormalDist) Step() float64 { return 0 }

func (d NormalDist) Moments() moments.Moments {
	return moments.FromMGF(d.MGF)
}
