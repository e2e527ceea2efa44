//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package join

import (
	"git.sr.ht/~seqtools/CutAbacus/lib/feature"
)

// RegionPolicy accumulates hit weights per region. Side A is the region
// stream, side B the scored hit stream. Each hit is counted at a single
// position, Position bases forward of its start in the hit orientation;
// the hit weight (Score, 1 when unscored) is added to every region whose
// half-open interval contains that position.
type RegionPolicy struct {
	Position int
}

// CountedPos returns the genomic position the hit is counted at.
func (p RegionPolicy) CountedPos(hit *feature.Feature) int {
	if hit.Strand == -1 {
		return hit.Right - 1 - p.Position
	}
	return hit.Left + p.Position
}

func (p RegionPolicy) Match(region, hit *feature.Feature) bool {
	pos := p.CountedPos(hit)
	return pos >= region.Left && pos < region.Right
}

func (p RegionPolicy) Aggregate(region, hit *feature.Feature) {
	region.Count += hit.Score
}

func (p RegionPolicy) maxShift() int {
	if p.Position < 0 {
		return -p.Position
	}
	return p.Position
}

// The passed bounds are a cautious maximum distance: once the gap between
// cursor and candidate exceeds |Position|, no shifted hit position can
// land inside the candidate.

func (p RegionPolicy) AIsPassed(region, hitCursor *feature.Feature) bool {
	return hitCursor.Left-region.Right > p.maxShift()
}

func (p RegionPolicy) BIsPassed(hit, regionCursor *feature.Feature) bool {
	return regionCursor.Left-hit.Right > p.maxShift()
}
