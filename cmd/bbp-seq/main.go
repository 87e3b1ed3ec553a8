// The MIT License (MIT)
//
// # Copyright (c) 2016 xtaci
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/urfave/cli"

	"github.com/flavio-munis/bbp-go/internal/bbp"
)

// VERSION is injected by build flags when packaging official binaries.
var VERSION = "SELFBUILD"

func main() {
	if VERSION == "SELFBUILD" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	myApp := cli.NewApp()
	myApp.Name = "bbp-seq"
	myApp.Usage = "extract hexadecimal digits of pi with the single-threaded BBP digit-extraction algorithm"
	myApp.Version = VERSION
	myApp.ArgsUsage = "<start>"
	myApp.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "debug-timing",
			Usage: "print the total series-evaluation time to stderr (a single figure, not broken down per series)",
		},
	}
	myApp.Action = run

	if err := myApp.Run(os.Args); err != nil {
		checkError(err)
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.NewExitError(fmt.Sprintf("usage: %s %s", c.App.Name, c.App.ArgsUsage), 1)
	}

	start, err := strconv.ParseUint(c.Args().Get(0), 10, 64)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("invalid start: %v", err), 1)
	}

	cfg := bbp.Config{Start: start, Threads: 1, Formula: bbp.FormulaOriginal}
	if _, err := cfg.Validate(); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	debugTiming := c.Bool("debug-timing")

	started := time.Now()
	result := bbp.RunSequential(start)
	elapsed := time.Since(started)

	if debugTiming {
		log.Printf("series evaluation took %.5fs\n", elapsed.Seconds())
	}

	fmt.Printf("%d digits @ %d = %s\n", bbp.Precision, start, result.Hex())
	fmt.Printf("Total Exec. Time: %.5fs\n", elapsed.Seconds())
	return nil
}

func checkError(err error) {
	log.Printf("%+v\n", err)
	os.Exit(1)
}
