//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package progress

import (
	"fmt"
	"io"
	"time"
)

// Mapper translates a (reference ID, position) cursor into a completion
// fraction of the whole genome, using cumulative reference lengths.
type Mapper struct {
	cum    []int64
	length int64
}

func NewMapper(lengths []int) *Mapper {
	m := &Mapper{cum: make([]int64, len(lengths))}
	for i, l := range lengths {
		m.cum[i] = m.length
		m.length += int64(l)
	}
	return m
}

// Frac returns the fraction of the genome before the cursor, in [0,1].
func (m *Mapper) Frac(refID, pos int) float64 {
	if m.length == 0 || refID < 0 {
		return 0
	}
	if refID >= len(m.cum) {
		return 1
	}
	done := m.cum[refID] + int64(pos)
	if done < 0 {
		done = 0
	} else if done > m.length {
		done = m.length
	}
	return float64(done) / float64(m.length)
}

// Reporter writes a throttled single-line completion display. A nil or
// quiet reporter is a no-op, so callers never guard updates.
type Reporter struct {
	m        *Mapper
	w        io.Writer
	lastTime time.Time
	lastFrac float64
	quiet    bool
}

func NewReporter(m *Mapper, w io.Writer, quiet bool) *Reporter {
	return &Reporter{m: m, w: w, quiet: quiet}
}

// Update reports the cursor position. Redraws are limited to one per
// 200ms and 0.1% progress.
func (r *Reporter) Update(refID, pos int) {
	if r == nil || r.quiet {
		return
	}
	frac := r.m.Frac(refID, pos)
	now := time.Now()
	if frac-r.lastFrac < 0.001 || now.Sub(r.lastTime) < 200*time.Millisecond {
		return
	}
	r.lastTime = now
	r.lastFrac = frac
	fmt.Fprintf(r.w, "\r%5.1f%%", frac*100)
}

// Finish completes the display line.
func (r *Reporter) Finish() {
	if r == nil || r.quiet {
		return
	}
	fmt.Fprintf(r.w, "\r%5.1f%%\n", 100.)
}
