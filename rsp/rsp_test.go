// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rsp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sample = `#  CAVS 19.0
#  "SHA3-256 ShortMsg" information
#  Length values represented in bits

[L = 256]

Len = 0
Msg = 00
MD = a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a

Len = 8
Msg = cc
MD = 677035391cd3701293d385f037ba32796252bb7ce180b00b582dd9b20aaad7f0

Len = 5
Msg = 13
MD = 0000000000000000000000000000000000000000000000000000000000000000
`

func TestParse(t *testing.T) {
	vectors, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)
	// The 5-bit vector is not byte-oriented and must be skipped.
	require.Len(t, vectors, 2)

	require.Equal(t, 0, vectors[0].BitLen)
	require.Empty(t, vectors[0].Msg)
	require.Len(t, vectors[0].MD, 32)

	require.Equal(t, 8, vectors[1].BitLen)
	require.Equal(t, []byte{0xcc}, vectors[1].Msg)
	require.Equal(t, byte(0x67), vectors[1].MD[0])
}

func TestParseErrors(t *testing.T) {
	for _, bad := range []string{
		"Len = ff\nMsg = 00\nMD = 00\n",
		"Msg = 00\nMD = 00\n",
		"Len = 16\nMsg = 00\nMD = 00\n",
	} {
		_, err := Parse(strings.NewReader(bad))
		require.Error(t, err, "input %q", bad)
	}
}

func TestParseEmpty(t *testing.T) {
	vectors, err := Parse(strings.NewReader("# nothing here\n"))
	require.NoError(t, err)
	require.Empty(t, vectors)
}
