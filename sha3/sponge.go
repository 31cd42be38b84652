// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha3

import (
	"fmt"
	"hash"
	"io"
)

// Sponge defines the interface to cryptographic sponges.
//
// A sponge moves through two phases. While absorbing, input is xored
// into the state. Padding ends the absorbing phase; after that the
// sponge only produces output. The transition is one-way: absorbing
// into a padded sponge is a programming error and panics.
type Sponge interface {
	hash.Hash
	io.Reader

	// SpongeSize returns the size, in bytes, of the state of the sponge.
	SpongeSize() int
	// Rate returns the number of bytes that can be absorbed or squeezed
	// from the Sponge before the permutation is applied.
	Rate() int
	// SecurityStrength returns the generic security strength, in bits,
	// of this Sponge instance. It is equal to 4 * (SpongeSize() - Rate()).
	SecurityStrength() int
	// State returns whether the sponge is absorbing or squeezing.
	State() SpongeDirection

	// Absorb xors the input into the state at the block cursor, applying
	// the permutation each time a full rate of input has accumulated.
	// It returns the number of bytes absorbed.
	Absorb([]byte) int

	// Pad xors a domain separator byte into the state, appends
	// multi-bitrate padding, and moves the sponge to the squeezing phase.
	Pad(dsbyte byte)

	// Squeeze appends n bytes of sponge output to in, applying the
	// permutation each time a full rate of output has been emitted.
	Squeeze(in []byte, n int) ([]byte, error)
}

// NewSponge creates a Keccak-based sponge instance with the given rate
// and domain-separator byte. The rate must be a positive multiple of 8
// smaller than the sponge size; anything else is a programming error.
//
// Note that the resulting function is *not* a FIPS-202 function unless
// rate and dsbyte are chosen from the standard (for the SHA-3 hash
// functions, rate = 200 - 2*outputSize and dsbyte = 0x06).
func NewSponge(rate int, dsbyte byte) Sponge {
	if rate <= 0 || rate >= spongeSize || rate%8 != 0 {
		panic(fmt.Sprintf("sha3: invalid sponge rate %d", rate))
	}
	return &state{
		rate:       rate,
		outputSize: rate - 8,
		dsbyte:     dsbyte,
	}
}
