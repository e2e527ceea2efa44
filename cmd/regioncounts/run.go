//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package main

import (
	"io"
	"os"

	"git.sr.ht/~seqtools/CutAbacus/lib/feature"
	"git.sr.ht/~seqtools/CutAbacus/lib/join"
	"git.sr.ht/~seqtools/CutAbacus/lib/output"
	"git.sr.ht/~seqtools/CutAbacus/lib/progress"
	"git.sr.ht/~seqtools/CutAbacus/lib/stream"
)

type runOptions struct {
	position    int
	pathLengths string
	pathRegions string
	pathHits    string
	pathOut     string
	pathMapping string
	compress    string
	zeroes      bool
	quiet       bool
}

func run(opts runOptions) error {
	// Reference catalog
	lengthsIn, err := stream.OpenInput(opts.pathLengths)
	if err != nil {
		return err
	}
	cat, err := feature.ReadLengths(lengthsIn)
	lengthsIn.Close()
	if err != nil {
		return err
	}

	// Region name mapping
	var mapping map[string]string
	if opts.pathMapping != "" {
		mapping, err = feature.OpenMapping(opts.pathMapping)
		if err != nil {
			return err
		}
	}

	// Region and hit streams
	regionIn, err := stream.OpenInput(opts.pathRegions)
	if err != nil {
		return err
	}
	defer regionIn.Close()
	regions := stream.NewSorted(stream.NewBEDStream(regionIn, cat, opts.pathRegions, false), cat, opts.pathRegions)
	hitIn, err := stream.OpenInput(opts.pathHits)
	if err != nil {
		return err
	}
	defer hitIn.Close()
	hits := stream.NewSorted(stream.NewBEDStream(hitIn, cat, opts.pathHits, true), cat, opts.pathHits)

	// Output
	w, err := output.NewWriter(opts.pathOut, opts.compress)
	if err != nil {
		return err
	}

	// Count hits per region
	eng := join.New(regions, hits, join.RegionPolicy{Position: opts.position})
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
			name := f.Name
			if name == "" {
				name = f.Locus(cat)
			}
			name = feature.MapName(name, mapping)
			if err := output.WriteRegionCount(w, name, f.Count); err != nil {
				w.Close()
				return err
			}
		}
		bar.Update(f.RefID, f.Left)
	}
	bar.Finish()
	return w.Close()
}
