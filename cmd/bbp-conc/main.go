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
	"context"
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
	myApp.Name = "bbp-conc"
	myApp.Usage = "extract hexadecimal digits of pi with the concurrent BBP digit-extraction algorithm"
	myApp.Version = VERSION
	myApp.ArgsUsage = "<start> <threads>"
	myApp.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "formula",
			Value: "original",
			Usage: "digit-extraction series to evaluate: original, bellard",
		},
		cli.IntFlag{
			Name:  "batch",
			Value: 0,
			Usage: "override the left-series batch size B (0 = default of min(100, max(1, start)))",
		},
		cli.IntFlag{
			Name:  "accumulators",
			Value: 0,
			Usage: "override the shard/accumulator count N_SHARDS (0 = default of 15)",
		},
		cli.BoolFlag{
			Name:  "quiet",
			Usage: "suppress the startup diagnostic line",
		},
	}
	myApp.Action = run

	if err := myApp.Run(os.Args); err != nil {
		checkError(err)
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.NewExitError(fmt.Sprintf("usage: %s %s", c.App.Name, c.App.ArgsUsage), 1)
	}

	start, err := strconv.ParseUint(c.Args().Get(0), 10, 64)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("invalid start: %v", err), 1)
	}

	threads, err := strconv.Atoi(c.Args().Get(1))
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("invalid threads: %v", err), 1)
	}
	if threads == 0 {
		threads = bbp.RecommendThreads()
	}

	formula, err := bbp.ParseFormula(c.String("formula"))
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	cfg := bbp.Config{
		Start:      start,
		Threads:    threads,
		Batch:      uint64(c.Int("batch")),
		ShardCount: c.Int("accumulators"),
		Formula:    formula,
	}

	warnings, err := cfg.Validate()
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	if !c.Bool("quiet") {
		for _, w := range warnings {
			log.Println("warning:", w)
		}
		log.Printf("formula=%s start=%d threads=%d batch=%d accumulators=%d\n",
			cfg.Normalized().Formula, cfg.Start, cfg.Threads, cfg.Normalized().Batch, cfg.Normalized().ShardCount)
	}

	started := time.Now()
	result, err := bbp.Run(context.Background(), cfg)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("%+v", err), 1)
	}
	elapsed := time.Since(started)

	fmt.Printf("%d digits @ %d = %s\n", bbp.Precision, start, result.Hex())
	fmt.Printf("Total Exec. Time: %.5fs\n", elapsed.Seconds())
	return nil
}

func checkError(err error) {
	log.Printf("%+v\n", err)
	os.Exit(1)
}
