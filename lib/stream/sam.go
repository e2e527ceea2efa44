//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package stream

import (
	"io"

	"github.com/biogo/hts/sam"

	"git.sr.ht/~seqtools/CutAbacus/lib/esam"
	"git.sr.ht/~seqtools/CutAbacus/lib/feature"
)

// SAMStream adapts primary alignments into positioned features.
// Duplicate, secondary, supplementary and unmapped records are excluded
// before they reach the consumer. TotalReads counts the primary
// alignments forwarded.
type SAMStream struct {
	rr         sam.RecordReader
	cat        *feature.Catalog
	source     string
	n          int
	TotalReads uint64
}

func NewSAMStream(rr sam.RecordReader, cat *feature.Catalog, source string) *SAMStream {
	return &SAMStream{rr: rr, cat: cat, source: source}
}

func (s *SAMStream) Next() (*feature.Feature, error) {
	for {
		r, err := s.rr.Read()
		if err == io.EOF {
			return nil, io.EOF
		} else if err != nil {
			return nil, err
		}
		s.n++
		if !esam.IsPrimary(r) {
			continue
		}
		if r.Ref == nil {
			return nil, &UnknownRefError{Source: s.source, Record: s.n, Chrom: "*"}
		}
		refID, ok := s.cat.ID(r.Ref.Name())
		if !ok {
			return nil, &UnknownRefError{Source: s.source, Record: s.n, Chrom: r.Ref.Name()}
		}
		s.TotalReads++
		return &feature.Feature{
			RefID:  refID,
			Left:   r.Start(),
			Right:  r.End(),
			Strand: r.Strand(),
			Name:   r.Name,
			Score:  1,
		}, nil
	}
}
