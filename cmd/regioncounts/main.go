//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

// regioncounts accumulates the weight of scored hits into every genome
// region containing the hit's counted position and writes one name/count
// line per region.
//
// Usage: regioncounts [options] reference_lengths region_bed [count_bed [out_tsv]]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

var version = "DEV"

func main() {
	var position int
	var pathMapping, compress string
	var zeroes, quiet, printVersion bool
	flag.IntVar(&position, "position", 0, "Position offset of the counted base within a hit, in the hit orientation")
	flag.StringVar(&pathMapping, "path_mapping", "", "Path to region name(s) mapping (tabulated file)")
	flag.StringVar(&compress, "compress", "", "Output compression: 'lz4' or 'lz4hc' (default none)")
	flag.BoolVar(&zeroes, "zeroes", false, "Output regions with zero count")
	flag.BoolVar(&quiet, "quiet", false, "Don't show progress")
	flag.BoolVar(&printVersion, "version", false, "Print version and quit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] reference_lengths region_bed [count_bed [out_tsv]]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	// Version
	if printVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	// Check arguments
	args := flag.Args()
	if len(args) < 2 || len(args) > 4 {
		flag.Usage()
		os.Exit(2)
	}
	pathLengths := args[0]
	pathRegions := args[1]
	pathHits := "-"
	pathOut := "-"
	if len(args) > 2 {
		pathHits = args[2]
	}
	if len(args) > 3 {
		pathOut = args[3]
	}

	opts := runOptions{
		position:    position,
		pathLengths: pathLengths,
		pathRegions: pathRegions,
		pathHits:    pathHits,
		pathOut:     pathOut,
		pathMapping: pathMapping,
		compress:    compress,
		zeroes:      zeroes,
		quiet:       quiet,
	}
	if err := run(opts); err != nil {
		log.Fatal(err)
	}
}
