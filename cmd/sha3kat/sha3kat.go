// sha3kat runs NIST CAVP response files against this module's SHA-3
// implementation and reports how many vectors passed. The digest size
// is inferred from the length of each expected digest.
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/urfave/cli/v2"

	"github.com/coruus/go-keccak/rsp"
	"github.com/coruus/go-keccak/sha3"
)

func main() {
	app := &cli.App{
		Name:      "sha3kat",
		Usage:     "check NIST SHA-3 known-answer vectors",
		ArgsUsage: "file.rsp [file.rsp ...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log every failing vector",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		glog.Exit(err)
	}
}

func digest(msg []byte, mdLen int) ([]byte, error) {
	switch mdLen {
	case 28:
		md := sha3.Sum224(msg)
		return md[:], nil
	case 32:
		md := sha3.Sum256(msg)
		return md[:], nil
	case 48:
		md := sha3.Sum384(msg)
		return md[:], nil
	case 64:
		md := sha3.Sum512(msg)
		return md[:], nil
	}
	return nil, fmt.Errorf("no SHA-3 function with a %d-byte digest", mdLen)
}

func checkFile(filename string, verbose bool) (passed, failed int, err error) {
	f, err := os.Open(filename)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	vectors, err := rsp.Parse(f)
	if err != nil {
		return 0, 0, err
	}
	for _, v := range vectors {
		md, err := digest(v.Msg, len(v.MD))
		if err != nil {
			return passed, failed, err
		}
		if bytes.Equal(md, v.MD) {
			passed++
			continue
		}
		failed++
		if verbose {
			glog.Errorf("%s: %d-bit message: got %x, want %x",
				filename, v.BitLen, md, v.MD)
		}
	}
	return passed, failed, nil
}

func run(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.ShowAppHelp(c)
	}
	var totalFailed int
	for _, filename := range c.Args().Slice() {
		passed, failed, err := checkFile(filename, c.Bool("verbose"))
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d passed, %d failed\n", filename, passed, failed)
		totalFailed += failed
	}
	if totalFailed > 0 {
		return fmt.Errorf("%d vectors failed", totalFailed)
	}
	return nil
}
