package peg

import "github.com/emirpasic/gods/sets/treeset"

// attemptTracker implements the furthest-failure bookkeeping of spec §3:
// the furthest position any alternative reached, and the set of rule
// names and literal strings expected there. Positives accumulate
// ordinary (Normal- or positive-lookahead-context) failures; negatives
// accumulate failures recorded while a negative lookahead was active,
// representing "this was expected NOT to match" (spec §6, §9 open
// question on negative-lookahead leakage: restoring the capture stack on
// lookahead exit is unconditional, but the expectation itself is still
// worth reporting, just under the opposite heading).
//
// Both sets are backed by treeset.Set (sorted by string order) rather
// than a plain map, so ParseError.Expected() returns the same order for
// the same failing input every time (testable property 7).
type attemptTracker struct {
	set      bool
	furthest Position

	positives *treeset.Set
	negatives *treeset.Set
}

func newAttemptTracker() attemptTracker {
	return attemptTracker{
		positives: treeset.NewWithStringComparator(),
		negatives: treeset.NewWithStringComparator(),
	}
}

func (t *attemptTracker) bucket(polarity lookaheadPolarity) *treeset.Set {
	if polarity == polarityNegative {
		return t.negatives
	}
	return t.positives
}

// recordAt records label as expected at pos under the given polarity,
// following the monotonic furthest-position rule: a strictly farther
// position resets both sets before recording, an equal position just
// adds to them, and an earlier position is ignored entirely.
func (t *attemptTracker) recordAt(pos Position, polarity lookaheadPolarity, label string) {
	switch {
	case !t.set || pos.offset > t.furthest.offset:
		t.positives.Clear()
		t.negatives.Clear()
		t.furthest = pos
		t.set = true
	case pos.offset < t.furthest.offset:
		return
	}
	t.bucket(polarity).Add(label)
}

// recordAtFurthest adds label to whichever bucket polarity selects, at
// whatever position is currently tracked as furthest. Used by the rule
// driver (state.Rule), which only learns of its body's failure after
// the fact and relies on leaf-level recordAt calls made during the
// body's execution to have already positioned the furthest pointer.
func (t *attemptTracker) recordAtFurthest(polarity lookaheadPolarity, label string) {
	if !t.set {
		return
	}
	t.bucket(polarity).Add(label)
}

func (state *ParserState) recordExpectedAt(pos Position, label string) {
	state.attempts.recordAt(pos, state.currentPolarity(), label)
}

func (state *ParserState) recordExpected(label string) {
	state.attempts.recordAtFurthest(state.currentPolarity(), label)
}

// RecordExpectedAt lets a hand-written matcher outside this package
// (pegutil, or a generated grammar's own leaf rules) participate in
// furthest-failure reporting exactly as the built-in primitives in
// primitives.go do.
func (state *ParserState) RecordExpectedAt(pos Position, label string) {
	state.recordExpectedAt(pos, label)
}
