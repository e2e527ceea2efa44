//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package feature

import (
	"github.com/biogo/store/interval"
)

// Integer-specific intervals for the alignment filter trees.

type IntInterval struct {
	Start, End int
	UID        uintptr
}

func (i IntInterval) Overlap(b interval.IntRange) bool {
	// Half-open interval indexing.
	return i.End > b.Start && i.Start < b.End
}

func (i IntInterval) ID() uintptr { return i.UID }

func (i IntInterval) Range() interval.IntRange {
	return interval.IntRange{Start: i.Start, End: i.End}
}

// BuildFilterTrees builds one interval tree per reference ID from filter
// features. Strand is ignored: an alignment overlapping a filter interval
// on either strand is excluded.
func BuildFilterTrees(feats []*Feature) (map[int]*interval.IntTree, error) {
	trees := make(map[int]*interval.IntTree)
	for i, feat := range feats {
		tree, ok := trees[feat.RefID]
		if !ok {
			tree = &interval.IntTree{}
			trees[feat.RefID] = tree
		}
		iv := IntInterval{Start: feat.Left, End: feat.Right, UID: uintptr(i)}
		if err := tree.Insert(iv, false); err != nil {
			return nil, err
		}
	}
	for _, tree := range trees {
		tree.AdjustRanges()
	}
	return trees, nil
}

// OverlapsFilter reports whether the feature overlaps any filter interval
// on its reference.
func OverlapsFilter(trees map[int]*interval.IntTree, f *Feature) bool {
	tree, ok := trees[f.RefID]
	if !ok {
		return false
	}
	return len(tree.Get(IntInterval{Start: f.Left, End: f.Right})) > 0
}
