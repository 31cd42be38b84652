// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha3

// This file provides the four SHA-3 fixed-output-length hash functions.
// Each is a sponge with capacity equal to twice the output size, so
// rate = 200 - 2*outputSize, and the SHA-3 domain-separator byte.

// dsbyteSHA3 carries the two SHA-3 domain bits (01, read low bit
// first) together with the leading 1 of the 10..1 padding rule.
const dsbyteSHA3 = 0x06

func newFixed(outputSize int) *state {
	return &state{
		rate:        spongeSize - 2*outputSize,
		outputSize:  outputSize,
		fixedOutput: true,
		dsbyte:      dsbyteSHA3,
	}
}

// New224 creates a new SHA3-224 hash. Its rate is 144 bytes.
func New224() Sponge { return newFixed(224 / 8) }

// New256 creates a new SHA3-256 hash. Its rate is 136 bytes.
func New256() Sponge { return newFixed(256 / 8) }

// New384 creates a new SHA3-384 hash. Its rate is 104 bytes.
func New384() Sponge { return newFixed(384 / 8) }

// New512 creates a new SHA3-512 hash. Its rate is 72 bytes.
func New512() Sponge { return newFixed(512 / 8) }

// Sum224 returns the SHA3-224 digest of data.
func Sum224(data []byte) (digest [28]byte) {
	d := newFixed(len(digest))
	d.Absorb(data)
	d.Pad(d.dsbyte)
	d.squeezeInto(digest[:])
	return
}

// Sum256 returns the SHA3-256 digest of data.
func Sum256(data []byte) (digest [32]byte) {
	d := newFixed(len(digest))
	d.Absorb(data)
	d.Pad(d.dsbyte)
	d.squeezeInto(digest[:])
	return
}

// Sum384 returns the SHA3-384 digest of data.
func Sum384(data []byte) (digest [48]byte) {
	d := newFixed(len(digest))
	d.Absorb(data)
	d.Pad(d.dsbyte)
	d.squeezeInto(digest[:])
	return
}

// Sum512 returns the SHA3-512 digest of data.
func Sum512(data []byte) (digest [64]byte) {
	d := newFixed(len(digest))
	d.Absorb(data)
	d.Pad(d.dsbyte)
	d.squeezeInto(digest[:])
	return
}
