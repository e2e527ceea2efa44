//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package fasta

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReaderMultiRecord(t *testing.T) {
	in := ">seq1 first sequence\n" +
		"ACGTA\n" +
		"CGT\n" +
		"\n" +
		">seq2\n" +
		"TTTT\n"
	r := NewReader(strings.NewReader(in))

	rec, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, "seq1", rec.Name)
	require.Equal(t, "ACGTACGT", string(rec.Seq))

	rec, err = r.Next()
	require.NoError(t, err)
	require.Equal(t, "seq2", rec.Name)
	require.Equal(t, "TTTT", string(rec.Seq))

	_, err = r.Next()
	require.Equal(t, io.EOF, err)
}

func TestReaderEmptyInput(t *testing.T) {
	r := NewReader(strings.NewReader(""))
	_, err := r.Next()
	require.Equal(t, io.EOF, err)
}

func TestReaderSequenceBeforeHeader(t *testing.T) {
	r := NewReader(strings.NewReader("ACGT\n>seq1\nAC\n"))
	_, err := r.Next()
	require.Error(t, err)
}

func TestReaderEmptyRecord(t *testing.T) {
	r := NewReader(strings.NewReader(">seq1\n>seq2\nAC\n"))
	rec, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, "seq1", rec.Name)
	require.Empty(t, rec.Seq)
	rec, err = r.Next()
	require.NoError(t, err)
	require.Equal(t, "seq2", rec.Name)
	require.Equal(t, "AC", string(rec.Seq))
}
