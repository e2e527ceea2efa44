//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package stream

import (
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

type gzReadCloser struct {
	*gzip.Reader
	f *os.File
}

func (r gzReadCloser) Close() error {
	err := r.Reader.Close()
	if cerr := r.f.Close(); err == nil {
		err = cerr
	}
	return err
}

// OpenInput opens a text input for reading. Path "-" is standard input;
// a ".gz" suffix enables transparent gzip decompression.
func OpenInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return gzReadCloser{Reader: zr, f: f}, nil
	}
	return f, nil
}
