//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/fatih/set.v0"

	"git.sr.ht/~seqtools/CutAbacus/lib/esam"
	"git.sr.ht/~seqtools/CutAbacus/lib/feature"
	"git.sr.ht/~seqtools/CutAbacus/lib/join"
	"git.sr.ht/~seqtools/CutAbacus/lib/output"
	"git.sr.ht/~seqtools/CutAbacus/lib/progress"
	"git.sr.ht/~seqtools/CutAbacus/lib/stream"
)

type runOptions struct {
	pol            join.DigestPolicy
	pathMotifs     string
	pathAlignments string
	pathOut        string
	pathFilter     string
	pathReport     string
	compress       string
	zeroes         bool
	quiet          bool
	samText        bool
	nWorker        int
}

// nameCounter collects the distinct read names forwarded to the engine.
// Only active when a report is requested.
type nameCounter struct {
	src   stream.FeatureStream
	names set.Interface
}

func (s *nameCounter) Next() (*feature.Feature, error) {
	f, err := s.src.Next()
	if err != nil {
		return nil, err
	}
	s.names.Add(f.Name)
	return f, nil
}

func run(opts runOptions) error {
	// Open alignments
	binary := !opts.samText && (opts.pathAlignments == "-" || strings.HasSuffix(opts.pathAlignments, ".bam"))
	rr, closer, err := esam.Open(esam.PathSAM{Path: opts.pathAlignments, Binary: binary}, opts.nWorker)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	// Reference catalog from the alignment header
	cat, err := feature.FromSAMHeader(rr.Header())
	if err != nil {
		return err
	}

	// Motif stream
	motifIn, err := stream.OpenInput(opts.pathMotifs)
	if err != nil {
		return err
	}
	defer motifIn.Close()
	motifs := stream.NewSorted(stream.NewBEDStream(motifIn, cat, opts.pathMotifs, false), cat, opts.pathMotifs)

	// Alignment stream
	samStream := stream.NewSAMStream(rr, cat, opts.pathAlignments)
	var alns stream.FeatureStream = samStream
	var filtered *stream.Filtered
	if opts.pathFilter != "" {
		filterIn, err := stream.OpenInput(opts.pathFilter)
		if err != nil {
			return err
		}
		filterFeats, err := stream.ReadAll(stream.NewBEDStream(filterIn, cat, opts.pathFilter, false))
		filterIn.Close()
		if err != nil {
			return err
		}
		trees, err := feature.BuildFilterTrees(filterFeats)
		if err != nil {
			return err
		}
		filtered = stream.NewFiltered(alns, trees)
		alns = filtered
	}
	var names *nameCounter
	if opts.pathReport != "" {
		names = &nameCounter{src: alns, names: set.New(set.NonThreadSafe)}
		alns = names
	}
	alns = stream.NewSorted(alns, cat, opts.pathAlignments)

	// Output
	w, err := output.NewWriter(opts.pathOut, opts.compress)
	if err != nil {
		return err
	}

	// Count digestions
	eng := join.New(motifs, alns, opts.pol)
	bar := progress.NewReporter(progress.NewMapper(cat.Lengths()), os.Stderr, opts.quiet)
	for {
		f, err := eng.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			w.Close()
			return err
		}
		if opts.zeroes || f.Count > 0 {
			if err := output.WriteMotifBED(w, cat, f); err != nil {
				w.Close()
				return err
			}
		}
		bar.Update(f.RefID, f.Left)
	}
	bar.Finish()
	if err := w.Close(); err != nil {
		return err
	}

	// Summary counters on the diagnostic stream
	fmt.Fprintf(os.Stderr, "%d total reads\n", samStream.TotalReads)
	fmt.Fprintf(os.Stderr, "%d aligned to motifs\n", eng.BHits)
	if filtered != nil {
		fmt.Fprintf(os.Stderr, "%d excluded by filter\n", filtered.Excluded)
	}
	if opts.pathReport != "" {
		return WriteReport(opts.pathReport, samStream.TotalReads, eng.BHits, names.names)
	}
	return nil
}
