//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package join

import (
	"fmt"

	"git.sr.ht/~seqtools/CutAbacus/lib/feature"
)

// Default digestion offsets for MspJI and generic CpG motifs. LpnPI and
// FspEI motifs use 14/17 instead.
const (
	DefaultSameStrandOffset     = 13
	DefaultOppositeStrandOffset = 16
	DefaultWobble               = 1
)

// DigestPolicy counts alignments starting a fixed, strand-aware distance
// from motif sites. Side A is the motif stream, side B the alignment
// stream. The offset is measured in the motif 3' direction, from the
// motif 5' end to the first sequenced base of the read: same-strand
// pairs must sit exactly SameStrandOffset away, opposite-strand pairs
// within [OppositeStrandOffset, OppositeStrandOffset+Wobble].
type DigestPolicy struct {
	SameStrandOffset     int
	OppositeStrandOffset int
	Wobble               int
}

func (p DigestPolicy) Validate() error {
	if p.SameStrandOffset < 0 || p.OppositeStrandOffset < 0 {
		return fmt.Errorf("strand offsets must be >= 0, got %d and %d", p.SameStrandOffset, p.OppositeStrandOffset)
	}
	if p.Wobble < 0 {
		return fmt.Errorf("wobble must be >= 0, got %d", p.Wobble)
	}
	return nil
}

// Offset returns the signed 3'-directed distance from the motif 5' end
// to the alignment first base, in the motif orientation.
func (p DigestPolicy) Offset(motif, aln *feature.Feature) int {
	if motif.Strand == -1 {
		return (motif.Right - 1) - aln.FirstBase()
	}
	return aln.FirstBase() - motif.Left
}

func (p DigestPolicy) Match(motif, aln *feature.Feature) bool {
	off := p.Offset(motif, aln)
	if motif.Strand == aln.Strand {
		return off == p.SameStrandOffset
	}
	return off >= p.OppositeStrandOffset && off <= p.OppositeStrandOffset+p.Wobble
}

func (p DigestPolicy) Aggregate(motif, aln *feature.Feature) {
	motif.Count++
}

func (p DigestPolicy) maxOffset() int {
	if p.SameStrandOffset > p.OppositeStrandOffset {
		return p.SameStrandOffset
	}
	return p.OppositeStrandOffset
}

func (p DigestPolicy) AIsPassed(motif, alnCursor *feature.Feature) bool {
	return alnCursor.Left > motif.Right+p.maxOffset()
}

func (p DigestPolicy) BIsPassed(aln, motifCursor *feature.Feature) bool {
	return motifCursor.Left > aln.Right+p.maxOffset()
}
