//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package stream

import (
	"strings"
	"testing"

	"github.com/biogo/hts/sam"
	"github.com/stretchr/testify/require"

	"git.sr.ht/~seqtools/CutAbacus/lib/feature"
)

const samInput = "@HD\tVN:1.6\tSO:coordinate\n" +
	"@SQ\tSN:chr1\tLN:1000\n" +
	"@SQ\tSN:chr2\tLN:800\n" +
	"r1\t0\tchr1\t101\t60\t10M\t*\t0\t0\tACGTACGTAC\t*\n" +
	"r2\t1040\tchr1\t121\t60\t10M\t*\t0\t0\tACGTACGTAC\t*\n" + // duplicate
	"r3\t256\tchr1\t131\t60\t10M\t*\t0\t0\tACGTACGTAC\t*\n" + // secondary
	"r4\t2048\tchr1\t141\t60\t10M\t*\t0\t0\tACGTACGTAC\t*\n" + // supplementary
	"r5\t16\tchr2\t11\t60\t5M\t*\t0\t0\tACGTA\t*\n"

func TestSAMStreamPrimaryOnly(t *testing.T) {
	rr, err := sam.NewReader(strings.NewReader(samInput))
	require.NoError(t, err)
	cat, err := feature.FromSAMHeader(rr.Header())
	require.NoError(t, err)
	require.Equal(t, 2, cat.Len())
	require.Equal(t, "chr1", cat.Name(0))
	require.Equal(t, 1000, cat.Length(0))

	s := NewSAMStream(rr, cat, "test.sam")
	feats := drainStream(t, s)
	require.Len(t, feats, 2)

	// r1: forward primary, POS 101 (1-based) -> left 100.
	require.Equal(t, "r1", feats[0].Name)
	require.Equal(t, 0, feats[0].RefID)
	require.Equal(t, 100, feats[0].Left)
	require.Equal(t, 110, feats[0].Right)
	require.Equal(t, int8(1), feats[0].Strand)

	// r5: reverse primary on chr2.
	require.Equal(t, "r5", feats[1].Name)
	require.Equal(t, 1, feats[1].RefID)
	require.Equal(t, 10, feats[1].Left)
	require.Equal(t, 15, feats[1].Right)
	require.Equal(t, int8(-1), feats[1].Strand)

	require.Equal(t, uint64(2), s.TotalReads)
}

func TestSAMStreamUnknownReference(t *testing.T) {
	rr, err := sam.NewReader(strings.NewReader(samInput))
	require.NoError(t, err)
	// Catalog missing chr2: the r5 record must abort the stream.
	cat, err := feature.NewCatalog([]string{"chr1"}, []int{1000})
	require.NoError(t, err)
	s := NewSAMStream(rr, cat, "test.sam")
	_, err = s.Next()
	require.NoError(t, err)
	_, err = s.Next()
	var refErr *UnknownRefError
	require.ErrorAs(t, err, &refErr)
	require.Equal(t, "chr2", refErr.Chrom)
}
