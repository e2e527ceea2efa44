//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package feature

import (
	"fmt"
)

// Feature is a positioned genomic feature. Coordinates are 0-based,
// half-open [Left,Right). Strand is 1 (forward) or -1 (reverse).
// Score carries the parsed weight of a hit (1 when absent), Count the
// aggregate accumulated by a counting policy. Matched reports whether
// the feature satisfied the join predicate at least once.
type Feature struct {
	RefID   int
	Left    int
	Right   int
	Strand  int8
	Name    string
	Score   float64
	Count   float64
	Matched bool
}

// Compare orders features by (RefID, Left), the key both input streams
// are sorted by.
func Compare(a, b *Feature) int {
	if a.RefID != b.RefID {
		return a.RefID - b.RefID
	}
	return a.Left - b.Left
}

// FirstBase returns the genomic position of the feature 5' base: Left on
// the forward strand, Right-1 on the reverse strand.
func (f *Feature) FirstBase() int {
	if f.Strand == -1 {
		return f.Right - 1
	}
	return f.Left
}

// StrandByte returns the BED strand character.
func (f *Feature) StrandByte() byte {
	if f.Strand == -1 {
		return '-'
	}
	return '+'
}

// Locus renders the feature position as chrom:left-right with the strand
// appended. Used as the name of nameless regions.
func (f *Feature) Locus(cat *Catalog) string {
	return fmt.Sprintf("%s:%d-%d%c", cat.Name(f.RefID), f.Left, f.Right, f.StrandByte())
}

// ParseStrand converts a strand field to its int8 form. Unknown values
// default to forward.
func ParseStrand(raw string) int8 {
	if raw == "-" || raw == "-1" {
		return -1
	}
	return 1
}
