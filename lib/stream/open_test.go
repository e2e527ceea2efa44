//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package stream

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"
)

func TestOpenInputPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.bed")
	require.NoError(t, os.WriteFile(path, []byte("chr1\t1\t2\n"), 0666))
	r, err := OpenInput(path)
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	require.Equal(t, "chr1\t1\t2\n", string(data))
}

func TestOpenInputGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.bed.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte("chr1\t1\t2\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	r, err := OpenInput(path)
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	require.Equal(t, "chr1\t1\t2\n", string(data))
}

func TestOpenInputMissing(t *testing.T) {
	_, err := OpenInput(filepath.Join(t.TempDir(), "absent.bed"))
	require.Error(t, err)
}
