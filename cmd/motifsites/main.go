//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

// motifsites scans a reference FASTA for perfect matches of an IUPAC
// motif on either strand and writes one BED line per occurrence. The
// motif and the reference may both contain ambiguous bases; reference N
// never matches.
//
// Usage: motifsites [options] motif_seq [reference_fasta [out_bed]]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"git.sr.ht/~seqtools/CutAbacus/lib/motif"
)

var version = "DEV"

func main() {
	var nWorker int
	var verbose, printVersion bool
	flag.IntVar(&nWorker, "num_worker", 1, "Number of scan worker(s)")
	flag.BoolVar(&verbose, "verbose", false, "Verbose")
	flag.BoolVar(&printVersion, "version", false, "Print version and quit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] motif_seq [reference_fasta [out_bed]]\n", os.Args[0])
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
	if len(args) < 1 || len(args) > 3 {
		flag.Usage()
		os.Exit(2)
	}
	if nWorker < 1 {
		log.Fatal("num_worker must be >= 1")
	}
	pat, err := motif.Compile(args[0])
	if err != nil {
		log.Fatal(err)
	}
	pathFasta := "-"
	pathOut := "-"
	if len(args) > 1 {
		pathFasta = args[1]
	}
	if len(args) > 2 {
		pathOut = args[2]
	}

	if err := run(pat, pathFasta, pathOut, nWorker, verbose); err != nil {
		log.Fatal(err)
	}
}
