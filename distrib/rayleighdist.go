// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distrib

import (
	"math"

	"github.com/statview/go-distmath/moments"
)

// RayleighDist is a Rayleigh distribution with scale Sigma > 0.
type RayleighDist struct {
	Sigma float64
}

func (d RayleighDist) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	s2 := d.Sigma * d.Sigma
	return x / s2 * math.Exp(-x*x/(2*s2))
}

func (d RayleighDist) CDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return 1 - math.Exp(-x*x/(2*d.Sigma*d.Sigma))
}

func (d RayleighDist) Bounds() Bounds {
	return Bounds{Bound{0, true}, Bound{inf, false}}
}

func (d RayleighDist) Step() float64 { return 0 }

func (d RayleighDist) Moments() moments.Moments {
	s2 := d.Sigma * d.Sigma
	return moments.Moments{
		Mean:     d.Sigma * math.Sqrt(math.Pi/2),
		Variance: (2 - math.Pi/2) * s2,
		Skewness: 2 * math.SqrtPi * (math.Pi - 3) / math.Pow(4-math.Pi, 1.5),
		Kurtosis: -(6*math.Pi*math.Pi - 24*math.Pi + 16) / ((4 - math.Pi) * (4 - math.Pi)),
	}
}
