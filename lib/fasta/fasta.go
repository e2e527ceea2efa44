//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// Record is one FASTA sequence. Name is the header up to the first
// whitespace.
type Record struct {
	Name string
	Seq  []byte
}

// Reader streams FASTA records one at a time. Sequence lines are
// concatenated; records are returned in file order.
type Reader struct {
	s       *bufio.Scanner
	pending string
	started bool
	done    bool
	nLine   int
}

func NewReader(r io.Reader) *Reader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 1024*1024), 64*1024*1024)
	return &Reader{s: s}
}

// Next returns the next record, or io.EOF after the last one.
func (r *Reader) Next() (*Record, error) {
	if r.done {
		return nil, io.EOF
	}
	var name string
	var seq bytes.Buffer
	if r.started {
		name = r.pending
	}
	for r.s.Scan() {
		r.nLine++
		line := bytes.TrimSpace(r.s.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			header := headerName(line)
			if !r.started {
				r.started = true
				name = header
				continue
			}
			rec := &Record{Name: name, Seq: seq.Bytes()}
			r.pending = header
			return rec, nil
		}
		if !r.started {
			return nil, fmt.Errorf("fasta: line %d: sequence before first header", r.nLine)
		}
		seq.Write(line)
	}
	if err := r.s.Err(); err != nil {
		return nil, err
	}
	r.done = true
	if !r.started {
		return nil, io.EOF
	}
	return &Record{Name: name, Seq: seq.Bytes()}, nil
}

func headerName(line []byte) string {
	header := line[1:]
	if i := bytes.IndexAny(header, " \t"); i >= 0 {
		header = header[:i]
	}
	return string(header)
}
