// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// distrib is a catalog of probability distributions with a common
// density, cumulative, and moment surface, plus a sampler that turns
// any of them into plottable (x, density) series.
package distrib // import "github.com/statview/go-distmath/distrib"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
