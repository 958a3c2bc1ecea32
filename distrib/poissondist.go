// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distrib

import (
	"math"

	"github.com/statview/go-distmath/mathx"
	"github.com/statview/go-distmath/moments"
)

// PoissonDist is a Poisson distribution with rate Lambda > 0.
type PoissonDist struct {
	Lambda float64
}

// PMF is the probability of exactly int(k) events. It is evaluated
// in log space so large k does not overflow the factorial.
func (d PoissonDist) PMF(k float64) float64 {
	k = math.Floor(k)
	if k < 0 {
		return 0
	}
	return math.Exp(k*math.Log(d.Lambda) - d.Lambda - mathx.Lgamma(k+1))
}

func (d PoissonDist) PDF(x float64) float64 { return d.PMF(x) }

// CDF is the probability of int(k) or fewer events.
func (d PoissonDist) CDF(k float64) float64 {
	k = math.Floor(k)
	if k < 0 {
		return 0
	}
	return mathx.Sum(d.PMF, 0, k)
}

// MGF is the moment-generating function exp(λ(e^t−1)).
func (d PoissonDist) MGF(t float64) float64 {
	return math.Exp(d.Lambda * (math.Exp(t) - 1))
}

func (d PoissonDist) Bounds() Bounds {
	return Bounds{Bound{0, true}, Bound{inf, false}}
}

func (d PoissonDist) Step() float64 { return 1 }

func (d PoissonDist) Moments() moments.Moments {
	return moments.FromMGF(d.MGF)
}
