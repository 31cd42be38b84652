// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha3

import (
	"encoding/binary"
	"errors"
)

// SpongeDirection indicates the direction bytes are flowing through the sponge.
type SpongeDirection int

const (
	// SpongeAbsorbing indicates the sponge is absorbing input.
	SpongeAbsorbing SpongeDirection = iota
	// SpongeSqueezing indicates the sponge is being squeezed.
	SpongeSqueezing
)

// spongeSize is the width of the KeccakF-1600 state in bytes.
const spongeSize = 200

var errSha3DigestTooLong = errors.New(
	"sha3: more output requested from a fixed-output-length hash than it can provide")

// state is a Keccak sponge. It absorbs by xoring input into the first
// rate bytes of the state and squeezes by copying them out, applying
// the permutation every time a full block has been consumed.
//
// The state is kept as 25 little-endian lanes. Bytes enter and leave
// through shifts and encoding/binary little-endian codecs only, so the
// byte layout observed by callers is the same on every architecture.
type state struct {
	// Generic sponge components.
	a         [25]uint64      // main state of the hash
	rate      int             // the number of bytes of state to use
	position  int             // byte position in the current block
	direction SpongeDirection // whether the sponge is absorbing or squeezing

	// Specific to multi-bitrate padding.
	dsbyte byte // the domain separator byte

	// Specific to fixed-output-length instances (SHA-3).
	fixedOutput bool // whether this is a fixed-output-length instance
	outputSize  int  // the default output size in bytes
	squeezed    int  // bytes squeezed so far from a fixed-output-length instance
}

// minInt returns the lesser of two integer arguments.
func minInt(v1, v2 int) int {
	if v1 <= v2 {
		return v1
	}
	return v2
}

// SpongeSize returns the size, in bytes, of the sponge. (For KeccakF-1600,
// this is always 200 bytes.)
func (d *state) SpongeSize() int { return spongeSize }

// SecurityStrength returns the generic security strength (in bits) of
// this sponge instance: half the capacity.
func (d *state) SecurityStrength() int { return 4 * (spongeSize - d.rate) }

// State returns whether the sponge is absorbing or squeezing.
func (d *state) State() SpongeDirection { return d.direction }

// Rate returns the byterate of the sponge.
func (d *state) Rate() int { return d.rate }

// BlockSize returns the rate of the sponge underlying this hash function.
func (d *state) BlockSize() int { return d.rate }

// Size returns the output size of the hash function in bytes.
func (d *state) Size() int { return d.outputSize }

// Reset zeroizes the sponge state and returns it to the absorbing phase.
func (d *state) Reset() {
	for i := range d.a {
		d.a[i] = 0
	}
	d.position = 0
	d.squeezed = 0
	d.direction = SpongeAbsorbing
}

// xorIn xors buf into the state bytes starting at byte offset off.
//
// The byte at offset p belongs to lane p/8 at bit position 8*(p%8);
// whole lanes are xored in via little-endian loads. Injecting bytes
// arithmetically keeps the two views of the state consistent without
// any byte-swapping on big-endian hosts.
func (d *state) xorIn(off int, buf []byte) {
	for len(buf) > 0 && off%8 != 0 {
		d.a[off/8] ^= uint64(buf[0]) << uint(8*(off%8))
		off++
		buf = buf[1:]
	}
	for len(buf) >= 8 {
		d.a[off/8] ^= binary.LittleEndian.Uint64(buf)
		off += 8
		buf = buf[8:]
	}
	for _, b := range buf {
		d.a[off/8] ^= uint64(b) << uint(8*(off%8))
		off++
	}
}

// copyOut fills buf from the state bytes starting at byte offset off.
func (d *state) copyOut(buf []byte, off int) {
	for len(buf) > 0 && off%8 != 0 {
		buf[0] = byte(d.a[off/8] >> uint(8*(off%8)))
		off++
		buf = buf[1:]
	}
	for len(buf) >= 8 {
		binary.LittleEndian.PutUint64(buf, d.a[off/8])
		off += 8
		buf = buf[8:]
	}
	for i := range buf {
		buf[i] = byte(d.a[off/8] >> uint(8*(off%8)))
		off++
	}
}

// xorByte xors b into the state byte at offset off.
func (d *state) xorByte(off int, b byte) {
	d.a[off/8] ^= uint64(b) << uint(8*(off%8))
}

// Absorb xors input bytes into the sponge state, applying the
// permutation whenever a full rate of input has accumulated. It
// returns the number of bytes absorbed, which is always len(p).
//
// Feeding the input in any number of chunks produces the same state as
// feeding the concatenation of the chunks; an empty input is a no-op.
// On return, position < rate.
func (d *state) Absorb(p []byte) int {
	if d.direction != SpongeAbsorbing {
		panic("sha3: absorb after the sponge has been padded")
	}
	written := len(p)

	// Fill out the current block.
	take := minInt(d.rate-d.position, len(p))
	d.xorIn(d.position, p[:take])
	if d.position+take < d.rate {
		d.position += take
		return written
	}
	keccakF(&d.a)
	d.position = 0
	p = p[take:]

	// Absorb the remaining full blocks.
	for len(p) >= d.rate {
		d.xorIn(0, p[:d.rate])
		keccakF(&d.a)
		p = p[d.rate:]
	}

	// Stash the tail at the start of the next block.
	d.xorIn(0, p)
	d.position = len(p)
	return written
}

// Pad xors the domain-separator bits in dsbyte into the state at the
// current position, completes the multi-bitrate 10..1 padding by xoring
// 0x80 into the last byte of the block, and moves the sponge to the
// squeezing phase.
//
// The leading 1 of the padding rides along in dsbyte. When position ==
// rate-1 both xors land in the same byte, which is exactly right.
//
// No permutation happens here: squeezing permutes first, so the output
// stream matches the permute-at-end-of-absorb formulation of FIPS 202.
func (d *state) Pad(dsbyte byte) {
	if d.direction != SpongeAbsorbing {
		panic("sha3: sponge has already been padded")
	}
	d.xorByte(d.position, dsbyte)
	d.xorByte(d.rate-1, 0x80)
	d.position = 0
	d.direction = SpongeSqueezing
}

// squeezeInto fills out from the sponge, permuting each time the block
// cursor wraps to zero. Requires the squeezing phase; on return,
// position < rate.
func (d *state) squeezeInto(out []byte) {
	if len(out) == 0 {
		return
	}
	if d.position == 0 {
		keccakF(&d.a)
	}

	// Drain what is left of the current block.
	take := minInt(d.rate-d.position, len(out))
	d.copyOut(out[:take], d.position)
	d.position = (d.position + take) % d.rate
	out = out[take:]

	// Emit full blocks.
	for len(out) >= d.rate {
		keccakF(&d.a)
		d.copyOut(out[:d.rate], 0)
		out = out[d.rate:]
	}

	// Emit the tail of the final block.
	if len(out) > 0 {
		keccakF(&d.a)
		d.copyOut(out, 0)
		d.position = len(out)
	}
}

// checkSqueeze pads the sponge if it is still absorbing and enforces
// the output limit of fixed-output-length instances.
func (d *state) checkSqueeze(toSqueeze int) error {
	if d.direction == SpongeAbsorbing {
		d.Pad(d.dsbyte)
	}
	if d.fixedOutput {
		if toSqueeze > d.outputSize-d.squeezed {
			return errSha3DigestTooLong
		}
		d.squeezed += toSqueeze
	}
	return nil
}

// Squeeze squeezes toSqueeze bytes from the sponge and appends them to
// in. Squeezing in several calls produces the same byte stream as one
// call for the total length. Fixed-output-length instances refuse to
// produce more than Size() bytes in total.
func (d *state) Squeeze(in []byte, toSqueeze int) ([]byte, error) {
	if err := d.checkSqueeze(toSqueeze); err != nil {
		return nil, err
	}
	out := make([]byte, toSqueeze)
	d.squeezeInto(out)
	return append(in, out...), nil
}

// Write absorbs bytes into the state of the hash, applying the
// permutation as needed when the sponge fills up with rate bytes.
func (d *state) Write(p []byte) (int, error) {
	return d.Absorb(p), nil
}

// Read squeezes output directly into p.
func (d *state) Read(p []byte) (int, error) {
	if err := d.checkSqueeze(len(p)); err != nil {
		return 0, err
	}
	d.squeezeInto(p)
	return len(p), nil
}

// Sum squeezes the default number of output bytes from a copy of the
// sponge and appends them to in, so the caller can keep writing and
// summing.
func (d *state) Sum(in []byte) []byte {
	dup := *d
	out, err := dup.Squeeze(in, dup.outputSize)
	if err != nil {
		panic(err)
	}
	return out
}
