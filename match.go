package peg

// Matcher is a total, pure function of a Position: it takes ownership of
// the incoming Position by value and returns either the advanced
// Position (success) or the unchanged incoming Position (failure).
// Optional, Repeat, RepeatAtLeast, Chain, Choice and Predicate below
// return Matchers; Sequence and Lookahead take the Position and body
// directly and return the same (Position, bool) result.
type Matcher func(Position) (Position, bool)

// Optional runs m once; it never fails. On success it returns m's
// advanced position, on failure it returns the original position.
func Optional(m Matcher) Matcher {
	return func(pos Position) (Position, bool) {
		if next, ok := m(pos); ok {
			return next, true
		}
		return pos, true
	}
}

// Repeat applies m zero or more times, stopping at the first failure and
// returning the position after the last successful application. Per
// spec §4.1, Repeat guarantees progress: if m succeeds without
// advancing the position, the loop stops rather than looping forever
// (testable property 6).
func Repeat(m Matcher) Matcher {
	return func(pos Position) (Position, bool) {
		for {
			next, ok := m(pos)
			if !ok {
				return pos, true
			}
			if next.offset == pos.offset {
				return next, true
			}
			pos = next
		}
	}
}

// RepeatAtLeast applies m at least n times, then behaves like Repeat.
func RepeatAtLeast(n int, m Matcher) Matcher {
	return func(pos Position) (Position, bool) {
		start := pos
		count := 0
		for {
			next, ok := m(pos)
			if !ok {
				if count < n {
					return start, false
				}
				return pos, true
			}
			count++
			if next.offset == pos.offset {
				return next, true
			}
			pos = next
		}
	}
}

// Sequence runs body starting from pos. If body fails, Sequence returns
// Failure carrying the original pos, never whatever partial advance
// body made before dismatching — this is what lets a caller roll back
// cheaply without body itself needing to remember where it started.
func Sequence(pos Position, body Matcher) (Position, bool) {
	if next, ok := body(pos); ok {
		return next, true
	}
	return pos, false
}

// Lookahead runs body from pos, always discards any advance body made,
// and succeeds (returning pos unchanged) iff body's own success matches
// isPositive.
func Lookahead(isPositive bool, pos Position, body Matcher) (Position, bool) {
	_, ok := body(pos)
	if ok == isPositive {
		return pos, true
	}
	return pos, false
}

// Chain composes ms into a single Matcher equivalent to Sequence(pos,
// m1) .and m2 .and ... .and mn — each matcher receives the position left
// by the previous one, and the whole chain fails back to the position
// it started at if any element fails. Unlike a grammar-level sequence
// (§4.4), Chain never inserts implicit skipping; that is ParserState's
// job (state.Seq and state.Rep), not a plain Matcher's.
func Chain(ms ...Matcher) Matcher {
	return func(pos Position) (Position, bool) {
		cur := pos
		for _, m := range ms {
			next, ok := m(cur)
			if !ok {
				return pos, false
			}
			cur = next
		}
		return cur, true
	}
}

// Choice tries each of ms in order and returns the first success. It
// fails, returning the original position, only if every alternative
// fails.
func Choice(ms ...Matcher) Matcher {
	return func(pos Position) (Position, bool) {
		for _, m := range ms {
			if next, ok := m(pos); ok {
				return next, true
			}
		}
		return pos, false
	}
}

// Predicate runs body and, only if it succeeds, additionally requires
// pred to accept the matched substring -- a semantic check beyond what
// any combination of match_string/match_range can express (e.g.
// rejecting a bare "." that a decimal-literal body would otherwise
// accept). A false pred fails the whole combinator at the original
// position, exactly like any other Matcher failure. Adapted from the
// teacher's predicating.go Check, minus the continuation-passing
// machinery: the matched text is read directly off the Span between the
// two Positions instead of threaded through a context.
func Predicate(body Matcher, pred func(matched string) bool) Matcher {
	return func(pos Position) (Position, bool) {
		next, ok := body(pos)
		if !ok {
			return pos, false
		}
		span, err := pos.Span(next)
		if err != nil {
			return pos, false
		}
		if !pred(span.Str()) {
			return pos, false
		}
		return next, true
	}
}
