// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distrib

import (
	"math"

	"github.com/statview/go-distmath/moments"
)

// CauchyDist is a Cauchy (Lorentz) distribution with location X0 and
// scale Gamma > 0. None of its moments exist; Moments reports every
// statistic as undefined, and the sampler falls back to walking out
// from zero.
type CauchyDist struct {
	X0, Gamma float64
}

func (d CauchyDist) PDF(x float64) float64 {
	z := (x - d.X0) / d.Gamma
	return 1 / (math.Pi * d.Gamma * (1 + z*z))
}

func (d CauchyDist) CDF(x float64) float64 {
	return math.Atan((x-d.X0)/d.Gamma)/math.Pi + 0.5
}

func (d CauchyDist) Bounds() Bounds { return Unbounded() }

func (d CauchyDist) Step() float64 { return 0 }

func (d CauchyDist) Moments() moments.Moments {
	return moments.Undefined()
}
