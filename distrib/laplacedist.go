// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distrib

import (
	"math"

	"github.com/statview/go-distmath/moments"
)

// LaplaceDist is a Laplace (double exponential) distribution with
// location Mu and scale B > 0.
type LaplaceDist struct {
	Mu, B float64
}

func (d LaplaceDist) PDF(x float64) float64 {
	return math.Exp(-math.Abs(x-d.Mu)/d.B) / (2 * d.B)
}

func (d LaplaceDist) CDF(x float64) float64 {
	if x < d.Mu {
		return math.Exp((x-d.Mu)/d.B) / 2
	}
	return 1 - math.Exp(-(x-d.Mu)/d.B)/2
}

// MGF is the moment-generating function e^(μt)/(1−b²t²), defined for
// |t| < 1/b.
func (d LaplaceDist) MGF(t float64) float64 {
	if math.Abs(t) >= 1/d.B {
		return nan
	}
	return math.Exp(d.Mu*t) / (1 - d.B*d.B*t*t)
}

func (d LaplaceDist) Bounds() Bounds { return Unbounded() }

func (d LaplaceDist) Step() float64 { return 0 }

func (d LaplaceDist) Moments() moments.Moments {
	return moments.FromMGF(d.MGF)
}
