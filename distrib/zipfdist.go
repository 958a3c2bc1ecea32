// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distrib

import (
	"math"

	"github.com/statview/go-distmath/mathx"
	"github.com/statview/go-distmath/moments"
)

// ZipfDist is a Zipf distribution over k ≥ 1 with exponent S > 1.
// Construct it with NewZipf, which precomputes the ζ(S)
// normalization; evaluating the zeta series on every density call
// would dominate sampling time.
type ZipfDist struct {
	S    float64
	norm float64 // ζ(S)
}

// NewZipf returns a Zipf distribution with exponent s.
func NewZipf(s float64) ZipfDist {
	return ZipfDist{S: s, norm: mathx.Zeta(s)}
}

// PMF is the probability of rank int(k), k^(−s)/ζ(s).
func (d ZipfDist) PMF(k float64) float64 {
	k = math.Floor(k)
	if k < 1 {
		return 0
	}
	return math.Pow(k, -d.S) / d.norm
}

func (d ZipfDist) PDF(x float64) float64 { return d.PMF(x) }

// CDF is the partial zeta sum up to int(k), normalized.
func (d ZipfDist) CDF(k float64) float64 {
	k = math.Floor(k)
	if k < 1 {
		return 0
	}
	return mathx.Sum(d.PMF, 1, k)
}

func (d ZipfDist) Bounds() Bounds {
	return Bounds{Bound{1, true}, Bound{inf, false}}
}

func (d ZipfDist) Step() float64 { return 1 }

// Moments returns the zeta-ratio moments. A Zipf moment of order r
// exists only when S > r+1; the rest are undefined, which the
// sampler and callers must tolerate.
func (d ZipfDist) Moments() moments.Moments {
	m := moments.Undefined()
	if d.S <= 2 {
		return m
	}
	m.Mean = mathx.Zeta(d.S-1) / d.norm
	if d.S <= 3 {
		return m
	}
	m2 := mathx.Zeta(d.S-2) / d.norm
	m.Variance = m2 - m.Mean*m.Mean
	if d.S > 4 {
		m3 := mathx.Zeta(d.S-3) / d.norm
		mu3 := m3 - 3*m.Mean*m.Variance - m.Mean*m.Mean*m.Mean
		m.Skewness = mu3 / math.Pow(m.Variance, 1.5)
		if d.S > 5 {
			m4 := mathx.Zeta(d.S-4) / d.norm
			mu4 := m4 - 4*m.Mean*m3 + 6*m.Mean*m.Mean*m2 - 3*math.Pow(m.Mean, 4)
			m.Kurtosis = mu4/(m.Variance*m.Variance) - 3
		}
	}
	return m
}
