// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distrib

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// validParams maps every registered family to parameters that must
// construct.
var validParams = map[string]map[string]float64{
	"normal":      {"mu": 0, "sigma": 1},
	"binomial":    {"n": 40, "p": 0.5},
	"poisson":     {"lambda": 4},
	"geometric":   {"p": 0.25},
	"exponential": {"rate": 2},
	"uniform":     {"a": -1, "b": 1},
	"cauchy":      {"x0": 0, "gamma": 1},
	"gamma":       {"shape": 2.5, "scale": 2},
	"rayleigh":    {"sigma": 1},
	"gumbel":      {"mu": 0, "beta": 2},
	"laplace":     {"mu": 0, "b": 1},
	"logistic":    {"mu": 0, "s": 1},
	"skellam":     {"mu1": 3, "mu2": 2},
	"zipf":        {"s": 3},
}

func TestRegistryComplete(t *testing.T) {
	var covered []string
	for name := range validParams {
		covered = append(covered, name)
	}
	sort.Strings(covered)
	if diff := cmp.Diff(covered, Names()); diff != "" {
		t.Fatalf("catalog names (-test +registry):\n%s", diff)
	}

	for name, params := range validParams {
		d, err := New(name, params)
		if err != nil {
			t.Errorf("New(%q): %v", name, err)
			continue
		}
		b := d.Bounds()
		if b.Lo.Value > b.Hi.Value {
			t.Errorf("%s: inverted bounds %+v", name, b)
		}
		if s := d.Step(); s != 0 && s != 1 {
			t.Errorf("%s: step must be 0 or 1, got %v", name, s)
		}
	}
}

func TestRegistryErrors(t *testing.T) {
	if _, err := New("weibull", nil); err == nil {
		t.Errorf("unknown family: want error")
	}
	if _, err := New("normal", map[string]float64{"mu": 0}); err == nil {
		t.Errorf("missing parameter: want error")
	}
	bad := map[string]map[string]float64{
		"normal":    {"mu": 0, "sigma": -1},
		"binomial":  {"n": 4.5, "p": 0.5},
		"poisson":   {"lambda": 0},
		"geometric": {"p": 0},
		"uniform":   {"a": 2, "b": 2},
		"zipf":      {"s": 1},
	}
	for name, params := range bad {
		if _, err := New(name, params); err == nil {
			t.Errorf("New(%q, %v): want domain error", name, params)
		}
	}
}
