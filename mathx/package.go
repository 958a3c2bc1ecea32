// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// mathx implements special functions used by probability
// distributions.
//
// Every function in this package is pure and total over the reals:
// arguments outside a function's mathematical domain yield NaN or
// ±Inf rather than a panic. Callers are expected to check for these
// sentinels where the distinction matters.
package mathx // import "github.com/statview/go-distmath/mathx"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
