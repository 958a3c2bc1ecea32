// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package moments

import (
	"math"
	"testing"
)

func gaussMGF(mu, sigma float64) func(float64) float64 {
	return func(t float64) float64 {
		return math.Exp(mu*t + 0.5*sigma*sigma*t*t)
	}
}

func TestGaussianMGF(t *testing.T) {
	const mu, sigma = 100, 50
	m := FromMGF(gaussMGF(mu, sigma))

	if math.Abs(m.Mean-mu) > 0.001 {
		t.Errorf("mean: want %v, got %v", mu, m.Mean)
	}
	if math.Abs(m.Variance-sigma*sigma)/(sigma*sigma) > 0.001 {
		t.Errorf("variance: want %v, got %v", sigma*sigma, m.Variance)
	}
	if math.Abs(m.Skewness) > 0.01 {
		t.Errorf("skewness: want 0, got %v", m.Skewness)
	}
	if math.Abs(m.Kurtosis) > 0.05 {
		t.Errorf("kurtosis: want 0, got %v", m.Kurtosis)
	}
}

func TestBinomialMGF(t *testing.T) {
	// X ~ B(40, 1/2): mean 20, variance 10.
	const n, p = 40, 0.5
	m := FromMGF(func(t float64) float64 {
		return math.Pow(1-p+p*math.Exp(t), n)
	})
	if math.Abs(m.Mean-20) > 0.01 {
		t.Errorf("mean: want 20, got %v", m.Mean)
	}
	if math.Abs(m.Variance-10) > 0.01 {
		t.Errorf("variance: want 10, got %v", m.Variance)
	}
	if math.Abs(m.Skewness) > 0.01 {
		t.Errorf("skewness: want 0, got %v", m.Skewness)
	}
	// Excess kurtosis (1-6pq)/(npq) = -0.05.
	if math.Abs(m.Kurtosis+0.05) > 0.05 {
		t.Errorf("kurtosis: want -0.05, got %v", m.Kurtosis)
	}
}

func TestDegenerateMGF(t *testing.T) {
	// A point mass at zero: m(t) = 1. Zero variance must surface
	// as undefined skewness/kurtosis, not ±Inf or NaN leakage.
	m := FromMGF(func(t float64) float64 { return 1 })
	if math.Abs(m.Mean) > 1e-9 || math.Abs(m.Variance) > 1e-9 {
		t.Errorf("point mass: want mean 0 variance 0, got %v, %v", m.Mean, m.Variance)
	}
	if !math.IsNaN(m.Skewness) || !math.IsNaN(m.Kurtosis) {
		t.Errorf("zero variance: want NaN skewness/kurtosis, got %v, %v", m.Skewness, m.Kurtosis)
	}
	if m.Defined() {
		t.Errorf("Defined() on a partially undefined set: want false")
	}
}

func TestFreeFunctions(t *testing.T) {
	mgf := gaussMGF(3, 2)
	if got := Mean(mgf, 0); math.Abs(got-3) > 0.001 {
		t.Errorf("Mean: want 3, got %v", got)
	}
	if got := Variance(mgf, 0); math.Abs(got-4) > 0.01 {
		t.Errorf("Variance: want 4, got %v", got)
	}
	if got := Skewness(mgf, 0); math.Abs(got) > 0.01 {
		t.Errorf("Skewness: want 0, got %v", got)
	}
	if got := Kurtosis(mgf, 0); math.Abs(got) > 0.05 {
		t.Errorf("Kurtosis: want 0, got %v", got)
	}
	flat := func(t float64) float64 { return 1 }
	if got := Skewness(flat, 0); !math.IsNaN(got) {
		t.Errorf("Skewness of point mass: want NaN, got %v", got)
	}
}

func TestUndefinedAndRounded(t *testing.T) {
	u := Undefined()
	if u.Defined() {
		t.Errorf("Undefined().Defined(): want false")
	}
	r := Moments{Mean: 1.23456, Variance: 2.71828, Skewness: math.NaN(), Kurtosis: -0.0004}.Rounded()
	if r.Mean != 1.235 || r.Variance != 2.718 {
		t.Errorf("Rounded: want 1.235, 2.718, got %v, %v", r.Mean, r.Variance)
	}
	if !math.IsNaN(r.Skewness) {
		t.Errorf("Rounded must preserve NaN, got %v", r.Skewness)
	}
	if r.Kurtosis != 0 {
		t.Errorf("Rounded: want -0.0004 -> 0, got %v", r.Kurtosis)
	}
}
