// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distrib

import (
	"math"

	"github.com/statview/go-distmath/mathx"
	"github.com/statview/go-distmath/moments"
)

// GumbelDist is a Gumbel (type I extreme value) distribution with
// location Mu and scale Beta > 0.
type GumbelDist struct {
	Mu, Beta float64
}

func (d GumbelDist) PDF(x float64) float64 {
	z := (x - d.Mu) / d.Beta
	return math.Exp(-(z + math.Exp(-z))) / d.Beta
}

func (d GumbelDist) CDF(x float64) float64 {
	z := (x - d.Mu) / d.Beta
	return math.Exp(-math.Exp(-z))
}

func (d GumbelDist) Bounds() Bounds { return Unbounded() }

func (d GumbelDist) Step() float64 { return 0 }

func (d GumbelDist) Moments() moments.Moments {
	// The Euler–Mascheroni constant is −ψ(1).
	gamma := -mathx.Digamma(1)
	pi3 := math.Pi * math.Pi * math.Pi
	return moments.Moments{
		Mean:     d.Mu + gamma*d.Beta,
		Variance: math.Pi * math.Pi * d.Beta * d.Beta / 6,
		Skewness: 12 * math.Sqrt(6) * mathx.Zeta(3) / pi3,
		Kurtosis: 12.0 / 5,
	}
}
