//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package output

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pierrec/lz4"

	"git.sr.ht/~seqtools/CutAbacus/lib/feature"
)

type GenericWriter interface {
	Write(buf []byte) (n int, err error)
	Close() error
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

type chainCloser struct {
	GenericWriter
	f *os.File
}

func (c chainCloser) Close() error {
	err := c.GenericWriter.Close()
	if cerr := c.f.Close(); err == nil {
		err = cerr
	}
	return err
}

// NewWriter opens the primary output. Path "-" is standard output, which
// is never closed. Compress selects optional output compression: "lz4",
// "lz4hc" or empty.
func NewWriter(path, compress string) (GenericWriter, error) {
	var w GenericWriter
	var f *os.File
	if path == "-" {
		w = nopCloser{os.Stdout}
	} else {
		var err error
		f, err = os.Create(path)
		if err != nil {
			return nil, err
		}
		w = f
	}
	switch compress {
	case "":
	case "lz4":
		w = lz4.NewWriter(w)
	case "lz4hc":
		lzWriter := lz4.NewWriter(w)
		lzWriter.Header = lz4.Header{CompressionLevel: 9}
		w = lzWriter
	default:
		if f != nil {
			f.Close()
		}
		return nil, fmt.Errorf("unknown compression %q", compress)
	}
	if f != nil && compress != "" {
		w = chainCloser{GenericWriter: w, f: f}
	}
	return w, nil
}

// WriteMotifBED writes one counted motif as a BED line with the count in
// the name column and the 2-base digestion footprint applied: forward
// motifs keep their start and span two bases, reverse motifs keep their
// end and lose their first two bases.
func WriteMotifBED(w io.Writer, cat *feature.Catalog, f *feature.Feature) error {
	left, right := f.Left, f.Right
	if f.Strand == -1 {
		left += 2
	} else {
		right = left + 2
	}
	_, err := fmt.Fprintf(w, "%s\t%d\t%d\t%d\t0\t%c\n",
		cat.Name(f.RefID), left, right, int64(f.Count), f.StrandByte())
	return err
}

// WriteRegionCount writes one name/count TSV line.
func WriteRegionCount(w io.Writer, name string, count float64) error {
	_, err := fmt.Fprintf(w, "%s\t%s\n", name, strconv.FormatFloat(count, 'f', -1, 64))
	return err
}

// WriteSiteBED writes one motif occurrence found by the sequence scan.
func WriteSiteBED(w io.Writer, chrom string, start, end int, name string, strand int8) error {
	sb := byte('+')
	if strand == -1 {
		sb = '-'
	}
	_, err := fmt.Fprintf(w, "%s\t%d\t%d\t%s\t0\t%c\n", chrom, start, end, name, sb)
	return err
}
