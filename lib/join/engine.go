//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package join

import (
	"io"

	"git.sr.ht/~seqtools/CutAbacus/lib/feature"
	"git.sr.ht/~seqtools/CutAbacus/lib/stream"
)

// Policy configures a join: what a match is, how matches accumulate, and
// when a candidate on either side can no longer match anything the other
// stream will still produce. Match and both passed predicates are only
// evaluated for features on the same reference; the engine handles
// reference changes itself.
type Policy interface {
	// Match reports whether the pair qualifies. Pure.
	Match(a, b *feature.Feature) bool
	// Aggregate folds a qualifying b into a.
	Aggregate(a, b *feature.Feature)
	// AIsPassed reports that candidate a can never match bCursor nor any
	// later feature of stream B, so its aggregate is final.
	AIsPassed(a, bCursor *feature.Feature) bool
	// BIsPassed is the symmetric bound for stream B candidates.
	BIsPassed(b, aCursor *feature.Feature) bool
}

// Engine is a dual-cursor windowed merge join over two sorted feature
// streams. It matches every A/B pair the policy accepts, accumulates
// aggregates on the A side, and yields A features in their original
// order once they are proven final. Memory is bounded by how tightly the
// passed predicates bound lookahead, not by input size; a batch of
// co-located features can transiently grow the working sets.
//
// The engine is single-threaded and pull-driven: Next transitively pulls
// from both inputs as needed. One engine serves one run.
type Engine struct {
	a, b   stream.FeatureStream
	pol    Policy
	liveA  []*feature.Feature
	liveB  []*feature.Feature
	curA   *feature.Feature
	curB   *feature.Feature
	out    []*feature.Feature
	aDone  bool
	bDone  bool
	// BHits counts B features that matched at least one A feature.
	BHits uint64
}

func New(a, b stream.FeatureStream, pol Policy) *Engine {
	return &Engine{a: a, b: b, pol: pol}
}

// Next returns the next fully-resolved A-side feature, or io.EOF once
// both streams are exhausted and the working sets are drained. Every
// returned feature carries the complete set of matches it can ever have;
// no feature is returned twice.
func (e *Engine) Next() (*feature.Feature, error) {
	for len(e.out) == 0 {
		if e.aDone && e.bDone {
			if len(e.liveA) > 0 {
				e.out = append(e.out, e.liveA...)
				e.liveA = e.liveA[:0]
				break
			}
			return nil, io.EOF
		}
		if err := e.step(); err != nil {
			return nil, err
		}
	}
	f := e.out[0]
	e.out = e.out[1:]
	return f, nil
}

// step advances whichever cursor is behind under the ordering key, so
// both windows stay as small as the passed predicates allow.
func (e *Engine) step() error {
	if e.advanceA() {
		f, err := e.a.Next()
		if err == io.EOF {
			e.aDone = true
			// No future A feature can match a live B candidate.
			e.liveB = e.liveB[:0]
			return nil
		} else if err != nil {
			return err
		}
		e.curA = f
		e.takeA(f)
		return nil
	}
	f, err := e.b.Next()
	if err == io.EOF {
		e.bDone = true
		// Remaining A candidates have seen every B feature: final.
		e.out = append(e.out, e.liveA...)
		e.liveA = e.liveA[:0]
		return nil
	} else if err != nil {
		return err
	}
	e.curB = f
	e.takeB(f)
	return nil
}

func (e *Engine) advanceA() bool {
	switch {
	case e.aDone:
		return false
	case e.bDone:
		return true
	case e.curA == nil:
		return true
	case e.curB == nil:
		return false
	default:
		return feature.Compare(e.curA, e.curB) <= 0
	}
}

// takeA matches a fresh A feature against the live B window, then
// inserts it (or emits it directly when B is exhausted) and evicts B
// candidates the new cursor proves passed.
func (e *Engine) takeA(a *feature.Feature) {
	for _, b := range e.liveB {
		if a.RefID == b.RefID && e.pol.Match(a, b) {
			e.pol.Aggregate(a, b)
			a.Matched = true
			if !b.Matched {
				b.Matched = true
				e.BHits++
			}
		}
	}
	if e.bDone {
		e.out = append(e.out, a)
	} else {
		e.liveA = append(e.liveA, a)
	}
	e.evictB()
}

func (e *Engine) takeB(b *feature.Feature) {
	for _, a := range e.liveA {
		if a.RefID == b.RefID && e.pol.Match(a, b) {
			e.pol.Aggregate(a, b)
			a.Matched = true
			if !b.Matched {
				b.Matched = true
				e.BHits++
			}
		}
	}
	if !e.aDone {
		e.liveB = append(e.liveB, b)
	}
	e.emitA()
}

// emitA pops passed candidates from the front of the A window, keeping
// the original stream order. A passed candidate behind an unpassed one
// waits: emission order equals arrival order.
func (e *Engine) emitA() {
	for len(e.liveA) > 0 {
		a := e.liveA[0]
		if !e.passedA(a) {
			break
		}
		e.out = append(e.out, a)
		e.liveA = e.liveA[1:]
	}
}

// passedA holds when the B cursor proves candidate a final. A cursor on
// a later reference force-flushes candidates left under the prior
// reference: positional bounds do not cross chromosomes.
func (e *Engine) passedA(a *feature.Feature) bool {
	if e.curB == nil {
		return false
	}
	if a.RefID != e.curB.RefID {
		return a.RefID < e.curB.RefID
	}
	return e.pol.AIsPassed(a, e.curB)
}

func (e *Engine) evictB() {
	kept := e.liveB[:0]
	for _, b := range e.liveB {
		if !e.passedB(b) {
			kept = append(kept, b)
		}
	}
	e.liveB = kept
}

func (e *Engine) passedB(b *feature.Feature) bool {
	if e.curA == nil {
		return false
	}
	if b.RefID != e.curA.RefID {
		return b.RefID < e.curA.RefID
	}
	return e.pol.BIsPassed(b, e.curA)
}
