//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package stream

import (
	"fmt"
)

// All stream errors are fatal: a corrupted or unsorted input aborts the
// run rather than silently under-counting.

// ParseError reports a malformed record field with its position in the
// input.
type ParseError struct {
	Source string
	Record int
	Field  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: record %d: bad %s: %v", e.Source, e.Record, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// UnknownRefError reports a record citing a chromosome absent from the
// reference catalog.
type UnknownRefError struct {
	Source string
	Record int
	Chrom  string
}

func (e *UnknownRefError) Error() string {
	return fmt.Sprintf("%s: record %d: unknown reference %s", e.Source, e.Record, e.Chrom)
}

// OrderError reports a decrease under the (reference ID, left) ordering
// key. The merge join requires sorted inputs and never re-sorts.
type OrderError struct {
	Source string
	Record int
	Chrom  string
	Pos    int
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("%s: record %d: out of order at %s:%d", e.Source, e.Record, e.Chrom, e.Pos)
}
