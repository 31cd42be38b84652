// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha3

// This file implements the KeccakF-1600 permutation: 24 rounds of the
// theta, rho, pi, chi, and iota step mappings over a 5x5 grid of 64-bit
// lanes. The lane at coordinate (x, y) lives at flat index x + 5*y.

const keccakRounds = 24

// rc is the table of round constants xored into lane (0, 0) by the
// iota step, one entry per round (FIPS 202, Table 2).
var rc = [keccakRounds]uint64{
	0x0000000000000001, 0x0000000000008082,
	0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001,
	0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088,
	0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b,
	0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080,
	0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080,
	0x0000000080000001, 0x8000000080008008,
}

// rhoOffsets is the table of per-lane rotation distances applied by the
// rho step, modulo the lane width, at flat index x + 5*y.
var rhoOffsets = [25]uint{
	0, 1, 62, 28, 27,
	36, 44, 6, 55, 20,
	3, 10, 43, 25, 39,
	41, 45, 15, 21, 8,
	18, 2, 61, 56, 14,
}

// rotl64 rotates x left by n bits. n must be in [0, 63].
func rotl64(x uint64, n uint) uint64 {
	return (x << n) | (x >> (64 - n))
}

// keccakF applies the KeccakF-1600 permutation to a in place.
func keccakF(a *[25]uint64) {
	var c [5]uint64
	for round := 0; round < keccakRounds; round++ {
		// theta: xor every lane with the parities of two nearby columns.
		for x := 0; x < 5; x++ {
			c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
		}
		for x := 0; x < 5; x++ {
			d := c[(x+4)%5] ^ rotl64(c[(x+1)%5], 1)
			for y := 0; y < 25; y += 5 {
				a[x+y] ^= d
			}
		}

		// rho: rotate each lane by its fixed offset.
		for i := range a {
			a[i] = rotl64(a[i], rhoOffsets[i])
		}

		// pi: rearrange lanes; (x, y) moves to (y, (2x + 3y) mod 5).
		prev := *a
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				a[y+5*((2*x+3*y)%5)] = prev[x+5*y]
			}
		}

		// chi: combine each lane with two others in its row. The row is
		// snapshotted first; chi must read the pre-update values.
		for y := 0; y < 25; y += 5 {
			for x := 0; x < 5; x++ {
				c[x] = a[y+x]
			}
			for x := 0; x < 5; x++ {
				a[y+x] = c[x] ^ (^c[(x+1)%5] & c[(x+2)%5])
			}
		}

		// iota: break the symmetry between rounds.
		a[0] ^= rc[round]
	}
}
