// sha3sum is a very basic checksum command.
package main

import (
	"flag"
	"fmt"
	"hash"
	"io"
	"os"

	"github.com/golang/glog"

	"github.com/coruus/go-keccak/sha3"
)

var size int

func init() {
	flag.IntVar(&size, "a", 256, "digest size in bits: 224, 256, 384 or 512")
}

func newHash() hash.Hash {
	switch size {
	case 224:
		return sha3.New224()
	case 256:
		return sha3.New256()
	case 384:
		return sha3.New384()
	case 512:
		return sha3.New512()
	}
	glog.Exitf("unsupported digest size %d", size)
	return nil
}

func sumReader(r io.Reader) (string, error) {
	h := newHash()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

func sumFile(filename string) (string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return sumReader(f)
}

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		// Read from stdin.
		checksum, err := sumReader(os.Stdin)
		if err != nil {
			glog.Exitf("reading stdin: %s", err)
		}
		fmt.Println(checksum)
		return
	}
	for _, filename := range flag.Args() {
		checksum, err := sumFile(filename)
		if err != nil {
			glog.Errorf("%s: %s", filename, err)
			continue
		}
		fmt.Printf("SHA3-%d(%s) = %s\n", size, filename, checksum)
	}
}
