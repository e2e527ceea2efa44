//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package output

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pierrec/lz4"
	"github.com/stretchr/testify/require"

	"git.sr.ht/~seqtools/CutAbacus/lib/feature"
)

func TestWriteMotifBEDFootprint(t *testing.T) {
	cat, err := feature.NewCatalog([]string{"chr1"}, []int{10000})
	require.NoError(t, err)

	var buf bytes.Buffer
	fwd := &feature.Feature{RefID: 0, Left: 1000, Right: 1006, Strand: 1, Count: 3}
	require.NoError(t, WriteMotifBED(&buf, cat, fwd))
	require.Equal(t, "chr1\t1000\t1002\t3\t0\t+\n", buf.String())

	buf.Reset()
	rev := &feature.Feature{RefID: 0, Left: 1000, Right: 1006, Strand: -1, Count: 0}
	require.NoError(t, WriteMotifBED(&buf, cat, rev))
	require.Equal(t, "chr1\t1002\t1006\t0\t0\t-\n", buf.String())
}

func TestWriteRegionCount(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRegionCount(&buf, "geneA", 5))
	require.NoError(t, WriteRegionCount(&buf, "chr1:1000-1010+", 2.5))
	require.Equal(t, "geneA\t5\nchr1:1000-1010+\t2.5\n", buf.String())
}

func TestWriteSiteBED(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSiteBED(&buf, "chr2", 10, 16, "AACGTT", -1))
	require.Equal(t, "chr2\t10\t16\tAACGTT\t0\t-\n", buf.String())
}

func TestNewWriterPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bed")
	w, err := NewWriter(path, "")
	require.NoError(t, err)
	_, err = w.Write([]byte("chr1\t1\t2\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "chr1\t1\t2\n", string(data))
}

func TestNewWriterLZ4(t *testing.T) {
	for _, compress := range []string{"lz4", "lz4hc"} {
		path := filepath.Join(t.TempDir(), "out.bed.lz4")
		w, err := NewWriter(path, compress)
		require.NoError(t, err)
		_, err = w.Write([]byte("chr1\t1\t2\n"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		f, err := os.Open(path)
		require.NoError(t, err)
		data, err := io.ReadAll(lz4.NewReader(f))
		require.NoError(t, err)
		require.NoError(t, f.Close())
		require.Equal(t, "chr1\t1\t2\n", string(data), compress)
	}
}

func TestNewWriterUnknownCompression(t *testing.T) {
	_, err := NewWriter(filepath.Join(t.TempDir(), "out.bed"), "zstd")
	require.Error(t, err)
}
