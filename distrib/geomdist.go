// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distrib

import (
	"math"

	"github.com/statview/go-distmath/moments"
)

// GeometricDist is a geometric distribution counting failures before
// the first success, with success probability P in (0, 1].
type GeometricDist struct {
	P float64
}

// PMF is the probability of exactly int(k) failures before the first
// success.
func (d GeometricDist) PMF(k float64) float64 {
	k = math.Floor(k)
	if k < 0 {
		return 0
	}
	return d.P * math.Pow(1-d.P, k)
}

func (d GeometricDist) PDF(x float64) float64 { return d.PMF(x) }

// CDF is 1 − (1−p)^(k+1).
func (d GeometricDist) CDF(k float64) float64 {
	k = math.Floor(k)
	if k < 0 {
		return 0
	}
	return 1 - math.Pow(1-d.P, k+1)
}

// MGF is the moment-generating function p/(1−(1−p)e^t), defined for
// e^t < 1/(1−p).
func (d GeometricDist) MGF(t float64) float64 {
	q := (1 - d.P) * math.Exp(t)
	if q >= 1 {
		return nan
	}
	return d.P / (1 - q)
}

func (d GeometricDist) Bounds() Bounds {
	return Bounds{Bound{0, true}, Bound{inf, false}}
}

func (d GeometricDist) Step() float64 { return 1 }

func (d GeometricDist) Moments() moments.Moments {
	return moments.FromMGF(d.MGF)
}
