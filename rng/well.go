// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// rng implements the WELL19937c pseudo-random number generator of
// Panneton, L'Ecuyer and Matsumoto.
//
// Unlike math/rand, a Source here is fully deterministic from its
// 32-bit seed: two instances seeded identically produce identical
// output sequences on every platform, which is what makes sampled
// plots and simulations reproducible.
package rng // import "github.com/statview/go-distmath/rng"

import (
	"fmt"
	"math"
)

// stateLen is the WELL19937 state size in 32-bit words.
const stateLen = 624

// WELL19937c recurrence offsets and tempering masks.
const (
	wellM1 = 70
	wellM2 = 179
	wellM3 = 449

	maskU uint32 = 0x7fffffff // lower 31 bits
	maskL uint32 = ^maskU

	temperB uint32 = 0xe46e1700
	temperC uint32 = 0x9b868000
)

// A Source is a WELL19937c generator.
//
// A Source owns its state exclusively and mutates it on every draw.
// It is not safe for concurrent use; callers that share one across
// goroutines must synchronize externally.
type Source struct {
	state [stateLen]uint32
	i     uint32
}

// NewSource returns a Source seeded with seed.
func NewSource(seed uint32) *Source {
	s := new(Source)
	s.Seed(seed)
	return s
}

// NewSourceFromState returns a Source initialized from a full
// 624-word state array.
func NewSourceFromState(state []uint32) (*Source, error) {
	if len(state) != stateLen {
		return nil, fmt.Errorf("rng: state must be %d words, have %d", stateLen, len(state))
	}
	s := new(Source)
	copy(s.state[:], state)
	return s, nil
}

// Seed resets the Source to the deterministic state derived from
// seed, expanding the single word by the usual linear-congruential
// recurrence.
func (s *Source) Seed(seed uint32) {
	s.state[0] = seed
	for j := 1; j < stateLen; j++ {
		p := s.state[j-1]
		s.state[j] = 1812433253*(p^(p>>30)) + uint32(j)
	}
	s.i = 0
}

// Uint32 advances the generator and returns the next 32-bit output,
// tempered with the Matsumoto-Kurita masks.
func (s *Source) Uint32() uint32 {
	i := s.i
	v0 := s.state[i]
	vm1 := s.state[(i+wellM1)%stateLen]
	vm2 := s.state[(i+wellM2)%stateLen]
	vm3 := s.state[(i+wellM3)%stateLen]
	vr1 := s.state[(i+stateLen-1)%stateLen]
	vr2 := s.state[(i+stateLen-2)%stateLen]

	z0 := (vr1 & maskL) | (vr2 & maskU)
	z1 := (v0 ^ (v0 << 25)) ^ (vm1 ^ (vm1 >> 27))
	z2 := (vm2 >> 9) ^ (vm3 ^ (vm3 >> 1))
	nv1 := z1 ^ z2

	s.state[i] = nv1
	s.i = (i + stateLen - 1) % stateLen
	s.state[s.i] = z0 ^ (z1 ^ (z1 << 9)) ^ (z2 ^ (z2 << 21)) ^ (nv1 ^ (nv1 >> 21))

	y := s.state[s.i]
	y ^= (y << 7) & temperB
	y ^= (y << 15) & temperC
	return y
}

// Float64 returns the next output as a float in [0, 1).
func (s *Source) Float64() float64 {
	return float64(s.Uint32()) / (1 << 32)
}

// Norm returns a draw from the standard normal distribution by the
// Box-Muller transform, consuming two uniform outputs.
func (s *Source) Norm() float64 {
	u := 1 - s.Float64() // (0, 1]: keeps the log finite
	v := s.Float64()
	return math.Sqrt(-2*math.Log(u)) * math.Cos(2*math.Pi*v)
}
