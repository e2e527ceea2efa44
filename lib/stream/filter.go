//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package stream

import (
	"io"

	"github.com/biogo/store/interval"

	"git.sr.ht/~seqtools/CutAbacus/lib/feature"
)

// Filtered drops features overlapping any interval of the filter trees,
// e.g. alignments over blacklisted regions. Dropped features are counted
// in Excluded.
type Filtered struct {
	src      FeatureStream
	trees    map[int]*interval.IntTree
	Excluded uint64
}

func NewFiltered(src FeatureStream, trees map[int]*interval.IntTree) *Filtered {
	return &Filtered{src: src, trees: trees}
}

func (s *Filtered) Next() (*feature.Feature, error) {
	for {
		f, err := s.src.Next()
		if err != nil {
			return nil, err
		}
		if feature.OverlapsFilter(s.trees, f) {
			s.Excluded++
			continue
		}
		return f, nil
	}
}

// ReadAll drains a stream into a slice. Used to materialize small inputs
// such as filter BEDs.
func ReadAll(src FeatureStream) ([]*feature.Feature, error) {
	var feats []*feature.Feature
	for {
		f, err := src.Next()
		if err == io.EOF {
			return feats, nil
		} else if err != nil {
			return nil, err
		}
		feats = append(feats, f)
	}
}
