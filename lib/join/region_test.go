//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package join

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.sr.ht/~seqtools/CutAbacus/lib/feature"
	"git.sr.ht/~seqtools/CutAbacus/lib/stream"
)

func TestRegionCountedPos(t *testing.T) {
	// A 6-base hit at 1001..1007 with offset 1 is counted at 1002 on the
	// forward strand, at 1005 when reverse oriented.
	pol := RegionPolicy{Position: 1}
	fwd := feat(0, 1001, 1007, 1)
	rev := feat(0, 1001, 1007, -1)
	require.Equal(t, 1002, pol.CountedPos(fwd))
	require.Equal(t, 1005, pol.CountedPos(rev))
}

func TestRegionMatch(t *testing.T) {
	pol := RegionPolicy{}
	region := feat(0, 1000, 1010, 1)

	hit := feat(0, 1002, 1008, 1)
	hit.Score = 5
	require.True(t, pol.Match(region, hit))
	require.False(t, pol.Match(region, feat(0, 1015, 1020, 1)))

	// Boundary: half-open interval.
	require.True(t, pol.Match(region, feat(0, 1009, 1012, 1)))
	require.False(t, pol.Match(region, feat(0, 1010, 1012, 1)))

	pol.Aggregate(region, hit)
	require.Equal(t, 5., region.Count)
}

func TestRegionPositionShift(t *testing.T) {
	pol := RegionPolicy{Position: 3}
	region := feat(0, 1000, 1010, 1)
	// Start outside, shifted position inside.
	require.True(t, pol.Match(region, feat(0, 998, 1004, 1)))
	// Start inside, shifted position outside.
	require.False(t, pol.Match(region, feat(0, 1008, 1014, 1)))
}

func TestRegionPassedBounds(t *testing.T) {
	pol := RegionPolicy{Position: 4}
	region := feat(0, 1000, 1010, 1)
	require.False(t, pol.AIsPassed(region, feat(0, 1014, 1020, 1)))
	require.True(t, pol.AIsPassed(region, feat(0, 1015, 1020, 1)))

	hit := feat(0, 1002, 1003, 1)
	require.False(t, pol.BIsPassed(hit, feat(0, 1007, 1010, 1)))
	require.True(t, pol.BIsPassed(hit, feat(0, 1008, 1010, 1)))
}

func TestRegionEngineWeightedCounts(t *testing.T) {
	regions := stream.NewSliceStream([]*feature.Feature{
		named(feat(0, 1000, 1010, 1), "promoter"),
		named(feat(0, 2000, 2010, 1), "enhancer"),
	})
	h1 := feat(0, 1002, 1003, 1)
	h1.Score = 5
	h2 := feat(0, 1005, 1006, 1) // unscored, weight 1
	h3 := feat(0, 1015, 1016, 1) // outside both regions
	hits := stream.NewSliceStream([]*feature.Feature{h1, h2, h3})

	eng := New(regions, hits, RegionPolicy{})
	out := drain(t, eng)
	require.Len(t, out, 2)
	require.Equal(t, "promoter", out[0].Name)
	require.Equal(t, 6., out[0].Count)
	require.Equal(t, "enhancer", out[1].Name)
	require.Equal(t, 0., out[1].Count)
	require.Equal(t, uint64(2), eng.BHits)
}
