//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package esam

import (
	"fmt"
	"io"
	"os"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"
)

// PathSAM stores Path to SAM (Binary=false) or BAM (Binary=true) file.
// Path "-" reads from standard input.
type PathSAM struct {
	Path   string
	Binary bool
}

// HeaderedReader is a SAM or BAM record reader exposing its header.
type HeaderedReader interface {
	sam.RecordReader
	Header() *sam.Header
}

// Open opens a SAM or BAM input for reading. The returned closer is nil
// for standard input.
func Open(pathSAM PathSAM, nWorker int) (HeaderedReader, io.Closer, error) {
	var in io.Reader = os.Stdin
	var closer io.Closer
	if pathSAM.Path != "-" {
		f, err := os.Open(pathSAM.Path)
		if err != nil {
			return nil, nil, err
		}
		in = f
		closer = f
	}
	if pathSAM.Binary {
		rr, err := bam.NewReader(in, nWorker)
		if err != nil {
			if closer != nil {
				closer.Close()
			}
			return nil, nil, fmt.Errorf("opening BAM %s: %w", pathSAM.Path, err)
		}
		return rr, closer, nil
	}
	rr, err := sam.NewReader(in)
	if err != nil {
		if closer != nil {
			closer.Close()
		}
		return nil, nil, fmt.Errorf("opening SAM %s: %w", pathSAM.Path, err)
	}
	return rr, closer, nil
}

// IsPrimary reports whether the record is a mapped primary alignment:
// duplicate, secondary and supplementary records do not count.
func IsPrimary(r *sam.Record) bool {
	return r.Flags&(sam.Unmapped|sam.Secondary|sam.Supplementary|sam.Duplicate) == 0
}
