//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package stream

import (
	"git.sr.ht/~seqtools/CutAbacus/lib/feature"
)

// Sorted wraps a stream and asserts each feature is non-decreasing by
// (reference ID, left). It keeps only the previous feature and never
// re-sorts.
type Sorted struct {
	src    FeatureStream
	cat    *feature.Catalog
	source string
	prev   *feature.Feature
	n      int
}

func NewSorted(src FeatureStream, cat *feature.Catalog, source string) *Sorted {
	return &Sorted{src: src, cat: cat, source: source}
}

func (s *Sorted) Next() (*feature.Feature, error) {
	f, err := s.src.Next()
	if err != nil {
		return nil, err
	}
	s.n++
	if s.prev != nil && feature.Compare(f, s.prev) < 0 {
		return nil, &OrderError{Source: s.source, Record: s.n, Chrom: s.cat.Name(f.RefID), Pos: f.Left}
	}
	s.prev = f
	return f, nil
}
