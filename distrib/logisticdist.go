// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distrib

import (
	"math"

	"github.com/statview/go-distmath/mathx"
	"github.com/statview/go-distmath/moments"
)

// LogisticDist is a logistic distribution with location Mu and scale
// S > 0.
type LogisticDist struct {
	Mu, S float64
}

// PDF is the value of the probability density function at x, in its
// hyperbolic-secant form sech²(z/2)/(4s).
func (d LogisticDist) PDF(x float64) float64 {
	z := (x - d.Mu) / d.S
	sech := mathx.Sech(z / 2)
	return sech * sech / (4 * d.S)
}

func (d LogisticDist) CDF(x float64) float64 {
	z := (x - d.Mu) / d.S
	return 1 / (1 + math.Exp(-z))
}

func (d LogisticDist) Bounds() Bounds { return Unbounded() }

func (d LogisticDist) Step() float64 { return 0 }

func (d LogisticDist) Moments() moments.Moments {
	return moments.Moments{
		Mean:     d.Mu,
		Variance: d.S * d.S * math.Pi * math.Pi / 3,
		Skewness: 0,
		Kurtosis: 1.2,
	}
}
