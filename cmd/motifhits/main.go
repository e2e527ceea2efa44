//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

// motifhits counts the alignments that start a fixed, strand-aware
// distance from restriction motif sites (correct enzymatic digestions)
// and writes one BED line per motif with its hit count.
//
// Usage: motifhits [options] motif_bed [alignment_bam [out_bed]]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"git.sr.ht/~seqtools/CutAbacus/lib/join"
)

var version = "DEV"

func main() {
	var sameStrandOffset, oppositeStrandOffset, wobble, nWorker int
	var pathFilter, pathReport, compress string
	var zeroes, quiet, samText, printVersion bool
	flag.IntVar(&sameStrandOffset, "same_strand_offset", join.DefaultSameStrandOffset, "How many bases in the 3' direction the first base of the read should be from the 5' end of the motif, if the read is on the same strand as the motif (use 14 for LpnPI/FspEI motifs)")
	flag.IntVar(&oppositeStrandOffset, "opposite_strand_offset", join.DefaultOppositeStrandOffset, "3'-oriented offset if read and motif are on opposite strands (use 17 for LpnPI/FspEI motifs)")
	flag.IntVar(&wobble, "wobble", join.DefaultWobble, "How far downstream from the expected position the cut site may wobble, opposite strand only")
	flag.IntVar(&nWorker, "num_worker", 1, "Number of BAM decompression worker(s)")
	flag.StringVar(&pathFilter, "path_filter", "", "Path to BED of intervals whose overlapping alignments are excluded")
	flag.StringVar(&pathReport, "path_report", "", "Write JSON report to path (stdout with -)")
	flag.StringVar(&compress, "compress", "", "Output compression: 'lz4' or 'lz4hc' (default none)")
	flag.BoolVar(&zeroes, "zeroes", false, "Output all motif counts including zeroes")
	flag.BoolVar(&quiet, "quiet", false, "Don't show progress")
	flag.BoolVar(&samText, "sam", false, "Alignment input is SAM text (default BAM)")
	flag.BoolVar(&printVersion, "version", false, "Print version and quit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] motif_bed [alignment_bam [out_bed]]\n", os.Args[0])
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
	pathMotifs := args[0]
	pathAlignments := "-"
	pathOut := "-"
	if len(args) > 1 {
		pathAlignments = args[1]
	}
	if len(args) > 2 {
		pathOut = args[2]
	}
	if nWorker < 1 {
		log.Fatal("num_worker must be >= 1")
	}
	pol := join.DigestPolicy{
		SameStrandOffset:     sameStrandOffset,
		OppositeStrandOffset: oppositeStrandOffset,
		Wobble:               wobble,
	}
	if err := pol.Validate(); err != nil {
		log.Fatal(err)
	}

	opts := runOptions{
		pol:            pol,
		pathMotifs:     pathMotifs,
		pathAlignments: pathAlignments,
		pathOut:        pathOut,
		pathFilter:     pathFilter,
		pathReport:     pathReport,
		compress:       compress,
		zeroes:         zeroes,
		quiet:          quiet,
		samText:        samText,
		nWorker:        nWorker,
	}
	if err := run(opts); err != nil {
		log.Fatal(err)
	}
}
