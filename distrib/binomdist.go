// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distrib

import (
	"math"

	"github.com/statview/go-distmath/mathx"
	"github.com/statview/go-distmath/moments"
)

// BinomialDist is a binomial distribution.
type BinomialDist struct {
	// N is the number of independent Bernoulli trials. N >= 0.
	//
	// If N=1, this is equivalent to the Bernoulli distribution.
	N int

	// P is the probability of success in each trial. 0 <= P <= 1.
	P float64
}

// PMF is the probability of getting exactly int(k) successes in d.N
// independent Bernoulli trials with probability d.P.
func (d BinomialDist) PMF(k float64) float64 {
	ki := int(math.Floor(k))
	if ki < 0 || ki > d.N {
		return 0
	}
	c, ok := mathx.Choose(d.N, ki)
	if !ok {
		return nan
	}
	return c * math.Pow(d.P, float64(ki)) * math.Pow(1-d.P, float64(d.N-ki))
}

// PDF is PMF; the discrete families expose their mass function under
// both names so that every Dist has the same surface.
func (d BinomialDist) PDF(x float64) float64 { return d.PMF(x) }

// CDF is the probability of getting k or fewer successes in d.N
// independent Bernoulli trials with probability d.P.
func (d BinomialDist) CDF(k float64) float64 {
	k = math.Floor(k)
	if k < 0 {
		return 0
	} else if int(k) >= d.N {
		return 1
	}
	return mathx.Sum(d.PMF, 0, k)
}

// MGF is the moment-generating function (1−p+pe^t)^n.
func (d BinomialDist) MGF(t float64) float64 {
	return math.Pow(1-d.P+d.P*math.Exp(t), float64(d.N))
}

func (d BinomialDist) Bounds() Bounds {
	return Bounds{Bound{0, true}, Bound{float64(d.N), true}}
}

func (d BinomialDist) Step() float64 { return 1 }

func (d BinomialDist) Moments() moments.Moments {
	return moments.FromMGF(d.MGF)
}
