//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package stream

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"git.sr.ht/~seqtools/CutAbacus/lib/feature"
)

// BEDStream adapts tab-separated interval records (chrom, 0-based start,
// exclusive end, optional name, score and strand) into positioned
// features. A missing or non-numeric score is treated as weight 1;
// malformed start or end aborts the stream. Blank lines and lines
// starting with '#' are skipped.
type BEDStream struct {
	scanner    *bufio.Scanner
	cat        *feature.Catalog
	source     string
	parseScore bool
	nLine      int
}

func NewBEDStream(r io.Reader, cat *feature.Catalog, source string, parseScore bool) *BEDStream {
	return &BEDStream{scanner: bufio.NewScanner(r), cat: cat, source: source, parseScore: parseScore}
}

func (s *BEDStream) Next() (*feature.Feature, error) {
	for s.scanner.Scan() {
		s.nLine++
		text := s.scanner.Text()
		if len(text) == 0 || text[0] == '#' {
			continue
		}
		fields := strings.Split(text, "\t")
		if len(fields) < 3 {
			return nil, &ParseError{Source: s.source, Record: s.nLine, Field: "record", Err: errFieldCount(len(fields))}
		}
		refID, ok := s.cat.ID(fields[0])
		if !ok {
			return nil, &UnknownRefError{Source: s.source, Record: s.nLine, Chrom: fields[0]}
		}
		left, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, &ParseError{Source: s.source, Record: s.nLine, Field: "start", Err: err}
		}
		right, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, &ParseError{Source: s.source, Record: s.nLine, Field: "end", Err: err}
		}
		f := &feature.Feature{RefID: refID, Left: left, Right: right, Strand: 1, Score: 1}
		if len(fields) > 3 {
			f.Name = fields[3]
		}
		if s.parseScore && len(fields) > 4 {
			if score, err := strconv.ParseFloat(fields[4], 64); err == nil {
				f.Score = score
			}
		}
		if len(fields) > 5 {
			f.Strand = feature.ParseStrand(fields[5])
		}
		return f, nil
	}
	if err := s.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

type errFieldCount int

func (e errFieldCount) Error() string {
	return "expected at least 3 tab-separated fields, got " + strconv.Itoa(int(e))
}
