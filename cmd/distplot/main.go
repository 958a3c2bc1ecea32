// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// distplot prints the moments and sampled density of a distribution
// from the catalog.
//
// Usage:
//
//	distplot -dist normal -p mu=0 -p sigma=1 [-w 60] [-seed N]
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/statview/go-distmath/distrib"
	"github.com/statview/go-distmath/rng"
)

type params map[string]float64

func (p params) String() string {
	parts := make([]string, 0, len(p))
	for k, v := range p {
		parts = append(parts, fmt.Sprintf("%s=%v", k, v))
	}
	return strings.Join(parts, ",")
}

func (p params) Set(s string) error {
	k, v, ok := strings.Cut(s, "=")
	if !ok {
		return fmt.Errorf("expected key=value, have %q", s)
	}
	x, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return err
	}
	p[k] = x
	return nil
}

func main() {
	p := params{}
	name := flag.String("dist", "", "distribution `name` (see -list)")
	flag.Var(p, "p", "distribution parameter as `key=value` (repeatable)")
	width := flag.Int("w", 50, "bar width of the density plot in `columns`")
	list := flag.Bool("list", false, "list catalog names and exit")
	seed := flag.Uint("seed", 0, "if nonzero, also print 10 draws from this `seed`")
	flag.Parse()

	if *list {
		for _, n := range distrib.Names() {
			fmt.Println(n)
		}
		return
	}
	if *name == "" {
		flag.Usage()
		os.Exit(2)
	}

	d, err := distrib.New(*name, p)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("%s{%s}\n", *name, p)
	m := d.Moments().Rounded()
	fmt.Printf("mean %v  variance %v  skewness %v  kurtosis %v\n\n",
		stat(m.Mean), stat(m.Variance), stat(m.Skewness), stat(m.Kurtosis))

	df := distrib.BuildDF(d)
	printDF(df, *width)

	if *seed != 0 {
		src := rng.NewSource(uint32(*seed))
		fmt.Printf("\ndraws(seed=%d):", *seed)
		for i := 0; i < 10; i++ {
			fmt.Printf(" %.4g", df.Rand(src))
		}
		fmt.Println()
	}
}

// stat formats a possibly undefined statistic.
func stat(x float64) string {
	if math.IsNaN(x) {
		return "undefined"
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// printDF prints the sampled density as a table with a bar plot,
// thinned to at most 40 rows.
func printDF(df distrib.DF, width int) {
	if len(df.PDF) == 0 {
		fmt.Println("no visible density")
		return
	}
	ymax := 0.0
	for _, pt := range df.PDF {
		ymax = math.Max(ymax, pt.Y)
	}

	stride := (len(df.PDF) + 39) / 40
	fmt.Printf("%10s %10s %10s\n", "x", "pdf", "cdf")
	for i := 0; i < len(df.PDF); i += stride {
		pt := df.PDF[i]
		bar := strings.Repeat("*", int(pt.Y/ymax*float64(width)+0.5))
		fmt.Printf("%10.4g %10.4g %10.4g %s\n", pt.X, pt.Y, df.CDF[i].Y, bar)
	}
}
