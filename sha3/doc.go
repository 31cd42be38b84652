// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sha3 implements the SHA-3 fixed-output-length hash functions
// defined by FIPS-202.
//
// The hash functions use the "sponge" construction and the Keccak
// permutation. For a detailed specification, see http://keccak.noekeon.org/
//
// # Security strengths
//
//	          output  collision-resistance  preimage-resistance
//	SHA3-224     28B              112 bits             224 bits
//	SHA3-256     32B              128 bits             256 bits
//	SHA3-384     48B              192 bits             384 bits
//	SHA3-512     64B              256 bits             512 bits
//
// The SHA-3 functions are "drop-in" replacements for the SHA-2 functions.
// They produce output of the same length, with the same security strengths
// against all attacks.
//
// # The sponge construction
//
// A sponge builds a pseudo-random function from a pseudo-random permutation,
// by applying the permutation to a state of "rate + capacity" bytes, but
// hiding "capacity" of the bytes.
//
// A sponge starts out with its state zero. To hash an input using a sponge,
// up to "rate" bytes of the input are xored into the sponge's state. The
// sponge is then "filled up", and the permutation is applied. This process
// is repeated until all the input has been "absorbed". The input is then
// padded. The digest is "squeezed" from the sponge by the same method,
// except that output is copied out.
//
//	up to "rate" bytes xored in
//	\/\/\/\/\/\/\/\/\/\/\/\/\/\/\/\/\/\/\/
//	======================================----------------
//	|  rate                              | capacity      |
//	======================================----------------
//	::::::::::::::::::::::::::::::::::::::::::::::::::::::
//	:::::::::::::::::Keccak-F1600 permutation:::::::::::::
//	::::::::::::::::::::::::::::::::::::::::::::::::::::::
//	======================================----------------
//	|  rate                              | capacity      |
//	======================================----------------
//	/\/\/\/\/\/\/\/\/\/\/\/\/\/\/\\/\/\/\/
//	up to "rate" bytes copied out
//
// A sponge is parameterized by its generic security strength, which is
// related to the underlying construction. In general:
//
//	security_strength == capacity / 2
//	capacity + rate == permutation_width
//
// Since the KeccakF-1600 permutation is 1600 bits (200 bytes) wide, this
// means that
//
//	security_strength == (1600 - rate) / 2
//
// The generic Sponge interface and NewSponge constructor keep the rate
// and domain-separator byte open, so other members of the Keccak family
// can be instantiated on the same core.
package sha3
