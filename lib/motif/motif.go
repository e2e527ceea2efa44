//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package motif

import (
	"fmt"
)

// One 4-bit mask per IUPAC code: bit 0 = A, 1 = C, 2 = G, 3 = T.
var codeMasks = map[byte]uint8{
	'A': 1 << 0,
	'C': 1 << 1,
	'G': 1 << 2,
	'T': 1 << 3,
	'U': 1 << 3,
	'R': 1<<0 | 1<<2,
	'Y': 1<<1 | 1<<3,
	'S': 1<<1 | 1<<2,
	'W': 1<<0 | 1<<3,
	'K': 1<<2 | 1<<3,
	'M': 1<<0 | 1<<1,
	'B': 1<<1 | 1<<2 | 1<<3,
	'D': 1<<0 | 1<<2 | 1<<3,
	'H': 1<<0 | 1<<1 | 1<<3,
	'V': 1<<0 | 1<<1 | 1<<2,
	'N': 1<<0 | 1<<1 | 1<<2 | 1<<3,
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

// refMask maps a reference base to its mask. Reference N (and anything
// unknown) matches no motif position.
func refMask(b byte) uint8 {
	b = upper(b)
	if b == 'N' {
		return 0
	}
	return codeMasks[b]
}

// complement swaps the A/T and C/G bits of a mask.
func complement(m uint8) uint8 {
	return (m&1)<<3 | (m&8)>>3 | (m&2)<<1 | (m&4)>>1
}

// Pattern is a compiled motif: one mask per position for the forward
// orientation and its reverse complement. A reference window matches a
// position when the window code and the motif code share at least one
// base, so ambiguity codes on either side are honored.
type Pattern struct {
	fwd []uint8
	rev []uint8
}

// Compile builds a Pattern from an IUPAC sequence.
func Compile(seq string) (*Pattern, error) {
	if len(seq) == 0 {
		return nil, fmt.Errorf("empty motif")
	}
	p := &Pattern{fwd: make([]uint8, len(seq)), rev: make([]uint8, len(seq))}
	for i := 0; i < len(seq); i++ {
		m, ok := codeMasks[upper(seq[i])]
		if !ok {
			return nil, fmt.Errorf("invalid IUPAC base %q in motif %s", seq[i], seq)
		}
		p.fwd[i] = m
		p.rev[len(seq)-1-i] = complement(m)
	}
	return p, nil
}

func (p *Pattern) Len() int { return len(p.fwd) }

func match(masks []uint8, window []byte) bool {
	for i, m := range masks {
		if m&refMask(window[i]) == 0 {
			return false
		}
	}
	return true
}

// MatchFwd reports a forward-strand match of the window.
func (p *Pattern) MatchFwd(window []byte) bool { return match(p.fwd, window) }

// MatchRev reports a reverse-strand match of the window.
func (p *Pattern) MatchRev(window []byte) bool { return match(p.rev, window) }

// Scan slides the pattern over seq and calls emit for every matching
// window, forward strand first at equal positions. Partial windows at
// the sequence end are not tested.
func (p *Pattern) Scan(seq []byte, emit func(start int, strand int8)) {
	n := len(p.fwd)
	for i := 0; i+n <= len(seq); i++ {
		window := seq[i : i+n]
		if p.MatchFwd(window) {
			emit(i, 1)
		}
		if p.MatchRev(window) {
			emit(i, -1)
		}
	}
}
