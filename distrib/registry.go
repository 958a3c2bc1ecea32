// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distrib

import (
	"fmt"
	"math"
	"sort"
)

// A Factory builds a distribution from named parameters, validating
// them. Parameter misuse is an error here, at the boundary; inside
// the families, mathematical edge cases stay NaN/Inf sentinels.
type Factory func(params map[string]float64) (Dist, error)

// factories is the distribution catalog, keyed by family name. It is
// populated once at startup; the catalog itself is immutable after
// that.
var factories = map[string]Factory{
	"normal": func(p map[string]float64) (Dist, error) {
		mu, sigma, err := param2(p, "mu", "sigma")
		if err != nil {
			return nil, fmt.Errorf("normal: %w", err)
		}
		if sigma <= 0 {
			return nil, fmt.Errorf("normal: sigma must be positive, have %v", sigma)
		}
		return NormalDist{mu, sigma}, nil
	},
	"binomial": func(p map[string]float64) (Dist, error) {
		n, pr, err := param2(p, "n", "p")
		if err != nil {
			return nil, fmt.Errorf("binomial: %w", err)
		}
		if n < 1 || n != math.Trunc(n) {
			return nil, fmt.Errorf("binomial: n must be a positive integer, have %v", n)
		}
		if pr < 0 || pr > 1 {
			return nil, fmt.Errorf("binomial: p must be in [0,1], have %v", pr)
		}
		return BinomialDist{int(n), pr}, nil
	},
	"poisson": func(p map[string]float64) (Dist, error) {
		lambda, err := param(p, "lambda")
		if err != nil {
			return nil, fmt.Errorf("poisson: %w", err)
		}
		if lambda <= 0 {
			return nil, fmt.Errorf("poisson: lambda must be positive, have %v", lambda)
		}
		return PoissonDist{lambda}, nil
	},
	"geometric": func(p map[string]float64) (Dist, error) {
		pr, err := param(p, "p")
		if err != nil {
			return nil, fmt.Errorf("geometric: %w", err)
		}
		if pr <= 0 || pr > 1 {
			return nil, fmt.Errorf("geometric: p must be in (0,1], have %v", pr)
		}
		return GeometricDist{pr}, nil
	},
	"exponential": func(p map[string]float64) (Dist, error) {
		rate, err := param(p, "rate")
		if err != nil {
			return nil, fmt.Errorf("exponential: %w", err)
		}
		if rate <= 0 {
			return nil, fmt.Errorf("exponential: rate must be positive, have %v", rate)
		}
		return ExponentialDist{rate}, nil
	},
	"uniform": func(p map[string]float64) (Dist, error) {
		a, b, err := param2(p, "a", "b")
		if err != nil {
			return nil, fmt.Errorf("uniform: %w", err)
		}
		if a >= b {
			return nil, fmt.Errorf("uniform: need a < b, have a=%v b=%v", a, b)
		}
		return UniformDist{a, b}, nil
	},
	"cauchy": func(p map[string]float64) (Dist, error) {
		x0, gamma, err := param2(p, "x0", "gamma")
		if err != nil {
			return nil, fmt.Errorf("cauchy: %w", err)
		}
		if gamma <= 0 {
			return nil, fmt.Errorf("cauchy: gamma must be positive, have %v", gamma)
		}
		return CauchyDist{x0, gamma}, nil
	},
	"gamma": func(p map[string]float64) (Dist, error) {
		k, theta, err := param2(p, "shape", "scale")
		if err != nil {
			return nil, fmt.Errorf("gamma: %w", err)
		}
		if k <= 0 || theta <= 0 {
			return nil, fmt.Errorf("gamma: shape and scale must be positive, have %v, %v", k, theta)
		}
		return GammaDist{k, theta}, nil
	},
	"rayleigh": func(p map[string]float64) (Dist, error) {
		sigma, err := param(p, "sigma")
		if err != nil {
			return nil, fmt.Errorf("rayleigh: %w", err)
		}
		if sigma <= 0 {
			return nil, fmt.Errorf("rayleigh: sigma must be positive, have %v", sigma)
		}
		return RayleighDist{sigma}, nil
	},
	"gumbel": func(p map[string]float64) (Dist, error) {
		mu, beta, err := param2(p, "mu", "beta")
		if err != nil {
			return nil, fmt.Errorf("gumbel: %w", err)
		}
		if beta <= 0 {
			return nil, fmt.Errorf("gumbel: beta must be positive, have %v", beta)
		}
		return GumbelDist{mu, beta}, nil
	},
	"laplace": func(p map[string]float64) (Dist, error) {
		mu, b, err := param2(p, "mu", "b")
		if err != nil {
			return nil, fmt.Errorf("laplace: %w", err)
		}
		if b <= 0 {
			return nil, fmt.Errorf("laplace: b must be positive, have %v", b)
		}
		return LaplaceDist{mu, b}, nil
	},
	"logistic": func(p map[string]float64) (Dist, error) {
		mu, s, err := param2(p, "mu", "s")
		if err != nil {
			return nil, fmt.Errorf("logistic: %w", err)
		}
		if s <= 0 {
			return nil, fmt.Errorf("logistic: s must be positive, have %v", s)
		}
		return LogisticDist{mu, s}, nil
	},
	"skellam": func(p map[string]float64) (Dist, error) {
		mu1, mu2, err := param2(p, "mu1", "mu2")
		if err != nil {
			return nil, fmt.Errorf("skellam: %w", err)
		}
		if mu1 <= 0 || mu2 <= 0 {
			return nil, fmt.Errorf("skellam: rates must be positive, have %v, %v", mu1, mu2)
		}
		return SkellamDist{mu1, mu2}, nil
	},
	"zipf": func(p map[string]float64) (Dist, error) {
		s, err := param(p, "s")
		if err != nil {
			return nil, fmt.Errorf("zipf: %w", err)
		}
		if s <= 1 {
			return nil, fmt.Errorf("zipf: s must exceed 1, have %v", s)
		}
		return NewZipf(s), nil
	},
}

// New builds the named distribution from params.
func New(name string, params map[string]float64) (Dist, error) {
	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown distribution %q", name)
	}
	return f(params)
}

// Names returns the catalog's family names, sorted.
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func param(p map[string]float64, key string) (float64, error) {
	v, ok := p[key]
	if !ok {
		return 0, fmt.Errorf("missing parameter %q", key)
	}
	if math.IsNaN(v) {
		return 0, fmt.Errorf("parameter %q is NaN", key)
	}
	return v, nil
}

func param2(p map[string]float64, k1, k2 string) (float64, float64, error) {
	a, err := param(p, k1)
	if err != nil {
		return 0, 0, err
	}
	b, err := param(p, k2)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}
