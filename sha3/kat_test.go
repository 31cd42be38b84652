// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha3

// Known-answer tests over the byte-oriented CAVP response files in
// testdata/. Each vector is checked through both the incremental and
// the one-shot API.

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coruus/go-keccak/rsp"
)

var katFiles = map[string]struct {
	filename string
	oneShot  func([]byte) []byte
}{
	"SHA3-224": {"SHA3_224ShortMsg.rsp", sumBytes224},
	"SHA3-256": {"SHA3_256ShortMsg.rsp", sumBytes256},
	"SHA3-384": {"SHA3_384ShortMsg.rsp", sumBytes384},
	"SHA3-512": {"SHA3_512ShortMsg.rsp", sumBytes512},
}

func TestKats(t *testing.T) {
	for alg, kat := range katFiles {
		t.Run(alg, func(t *testing.T) {
			f, err := os.Open(filepath.Join("testdata", kat.filename))
			require.NoError(t, err)
			defer f.Close()

			vectors, err := rsp.Parse(f)
			require.NoError(t, err)
			require.NotEmpty(t, vectors)

			d := testDigests[alg]()
			for _, v := range vectors {
				d.Reset()
				d.Write(v.Msg)
				require.Equal(t, v.MD, d.Sum(nil), "%s, %d-bit message", alg, v.BitLen)
				require.Equal(t, v.MD, kat.oneShot(v.Msg), "%s one-shot, %d-bit message", alg, v.BitLen)
			}
		})
	}
}
