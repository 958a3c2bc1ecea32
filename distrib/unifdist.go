// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distrib

import (
	"math"

	"github.com/statview/go-distmath/moments"
)

// UniformDist is a continuous uniform distribution on [A, B], A < B.
type UniformDist struct {
	A, B float64
}

func (d UniformDist) PDF(x float64) float64 {
	if x < d.A || x > d.B {
		return 0
	}
	return 1 / (d.B - d.A)
}

func (d UniformDist) CDF(x float64) float64 {
	switch {
	case x < d.A:
		return 0
	case x > d.B:
		return 1
	}
	return (x - d.A) / (d.B - d.A)
}

// MGF is the moment-generating function (e^(tB)−e^(tA))/(t(B−A)).
// Moments uses the closed forms: the removable singularity at t = 0
// sits exactly where the derivatives are taken.
func (d UniformDist) MGF(t float64) float64 {
	if t == 0 {
		return 1
	}
	return (math.Exp(t*d.B) - math.Exp(t*d.A)) / (t * (d.B - d.A))
}

func (d UniformDist) Bounds() Bounds {
	return Bounds{Bound{d.A, true}, Bound{d.B, true}}
}

func (d UniformDist) Step() float64 { return 0 }

func (d UniformDist) Moments() moments.Moments {
	w := d.B - d.A
	return moments.Moments{
		Mean:     (d.A + d.B) / 2,
		Variance: w * w / 12,
		Skewness: 0,
		Kurtosis: -1.2,
	}
}
