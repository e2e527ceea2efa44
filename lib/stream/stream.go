//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package stream

import (
	"io"

	"git.sr.ht/~seqtools/CutAbacus/lib/feature"
)

// FeatureStream is a lazily produced, finite, single-pass sequence of
// positioned features, non-decreasing by (reference ID, left). Next
// returns io.EOF after the last feature. Streams are not restartable.
type FeatureStream interface {
	Next() (*feature.Feature, error)
}

// SliceStream replays an in-memory slice of features.
type SliceStream struct {
	feats []*feature.Feature
	i     int
}

func NewSliceStream(feats []*feature.Feature) *SliceStream {
	return &SliceStream{feats: feats}
}

func (s *SliceStream) Next() (*feature.Feature, error) {
	if s.i >= len(s.feats) {
		return nil, io.EOF
	}
	f := s.feats[s.i]
	s.i++
	return f, nil
}
