package peg

import (
	"github.com/gofrs/uuid"
	"github.com/rs/zerolog"
)

// lookaheadPolarity is the tri-state described in spec §3: a parse runs
// in Normal mode until it enters a lookahead block, at which point every
// nested attempt runs under Positive or Negative polarity until that
// block exits.
type lookaheadPolarity int

const (
	polarityNormal lookaheadPolarity = iota
	polarityPositive
	polarityNegative
)

// ParserState is the single mutable context threaded through every rule
// of one parse: atomicity, lookahead polarity, the capture stack for
// back-reference combinators, and incremental recording of the furthest
// failure for error reporting (spec §3).
//
// A ParserState is created by Parse, lives for exactly one parse, and is
// consumed when its queue is drained into a Pairs tree or discarded in
// favor of a ParseError. It is never shared between parses or goroutines.
type ParserState struct {
	queue []marker
	stack []Span

	isAtomic       bool
	lookaheadStack []lookaheadPolarity
	ruleDepth      int

	attempts attemptTracker

	whitespace RuleFunc
	comment    RuleFunc
	skipFn     Matcher

	logger  *zerolog.Logger
	traceID string

	// domainErr records a programmer misuse detected mid-parse (an
	// empty-stack peek/pop, or RuleSet.Invoke of an unknown rule). Matching keeps returning ordinary
	// Failure so callers already mid-combinator don't need a second
	// error-returning path, but Parse checks this field once the top
	// rule returns and reports it ahead of any ParseError.
	domainErr *DomainError
}

// RuleFunc is the shape a grammar compiler's generated rule functions
// take: given the running state and a starting position, try to match
// and return the position just past the match on success, or the
// unchanged starting position on failure (spec §4.5, "Identifier r ->
// invoke rule function r(pos, state)").
type RuleFunc func(state *ParserState, pos Position) (Position, bool)

// SkipRules configures the reserved whitespace/comment rules consulted
// by implicit skip (spec §4.3, §4.4). Either field may be nil if the
// grammar does not declare that reserved rule.
type SkipRules struct {
	Whitespace RuleFunc
	Comment    RuleFunc
}

// newParserState builds the state for one parse. logger may be nil, in
// which case tracing is a no-op.
func newParserState(skip SkipRules, logger *zerolog.Logger) *ParserState {
	state := &ParserState{
		whitespace: skip.Whitespace,
		comment:    skip.Comment,
		logger:     logger,
	}
	state.attempts = newAttemptTracker()
	state.skipFn = state.buildSkip()
	if id, err := uuid.NewV4(); err == nil {
		state.traceID = id.String()
	}
	return state
}

// buildSkip compiles the implicit skip matcher once per parse, per spec
// §4.4: whitespace* (comment whitespace+)* when both reserved rules are
// declared, degrading to whitespace*, comment*, or identity.
func (state *ParserState) buildSkip() Matcher {
	hasWs := state.whitespace != nil
	hasComment := state.comment != nil

	ws := func(pos Position) (Position, bool) {
		return state.whitespace(state, pos)
	}
	comment := func(pos Position) (Position, bool) {
		return state.comment(state, pos)
	}

	switch {
	case hasWs && hasComment:
		commentRun := Chain(comment, RepeatAtLeast(1, ws))
		return Chain(Repeat(ws), Repeat(commentRun))
	case hasWs:
		return Repeat(ws)
	case hasComment:
		return Repeat(comment)
	default:
		return func(pos Position) (Position, bool) { return pos, true }
	}
}

// skip runs the implicit inter-element matcher. It never fails.
func (state *ParserState) skip(pos Position) (Position, bool) {
	if state.isAtomic {
		return pos, true
	}
	return state.skipFn(pos)
}

// currentPolarity reports the innermost active lookahead's polarity, or
// polarityNormal if no lookahead is active.
func (state *ParserState) currentPolarity() lookaheadPolarity {
	if len(state.lookaheadStack) == 0 {
		return polarityNormal
	}
	return state.lookaheadStack[len(state.lookaheadStack)-1]
}

// Seq compiles a grammar sequence `e1 ~ e2 ~ ... ~ en`: elements run in
// order, each preceded by an implicit skip (except the first) unless
// the surrounding rule is atomic. The whole sequence rolls back queue
// and capture-stack growth to its snapshot if any element fails (spec
// §4.2 state.sequence, §4.5 Sequence compilation).
func (state *ParserState) Seq(pos Position, elems ...Matcher) (Position, bool) {
	qlen, slen := len(state.queue), len(state.stack)
	cur := pos
	for i, elem := range elems {
		if i > 0 {
			cur, _ = state.skip(cur)
		}
		next, ok := elem(cur)
		if !ok {
			state.truncate(qlen, slen)
			return pos, false
		}
		cur = next
	}
	return cur, true
}

// Opt compiles `e?`: never fails. If the body fails, any queue/capture
// growth from the failed attempt is rolled back before returning the
// original position.
func (state *ParserState) Opt(pos Position, body Matcher) (Position, bool) {
	qlen, slen := len(state.queue), len(state.stack)
	if next, ok := body(pos); ok {
		return next, true
	}
	state.truncate(qlen, slen)
	return pos, true
}

// Rep compiles `e*`: zero or more applications of body, each after the
// first preceded by an implicit skip unless atomic. Guarantees progress
// per spec §4.1: a zero-width success stops the loop. The failed final
// attempt's queue/capture growth is rolled back.
func (state *ParserState) Rep(pos Position, body Matcher) (Position, bool) {
	cur := pos
	first := true
	for {
		attemptAt := cur
		if !first {
			attemptAt, _ = state.skip(cur)
		}
		qlen, slen := len(state.queue), len(state.stack)
		next, ok := body(attemptAt)
		if !ok {
			state.truncate(qlen, slen)
			return cur, true
		}
		if next.offset == attemptAt.offset {
			return next, true
		}
		cur = next
		first = false
	}
}

// RepAtLeast compiles `e+` as `e` followed by `e*` (spec §4.5): one
// mandatory application of body, then Rep. Fails, rolling back, if the
// mandatory application fails.
func (state *ParserState) RepAtLeast(pos Position, body Matcher) (Position, bool) {
	return state.Seq(pos, body, func(p Position) (Position, bool) {
		return state.Rep(p, body)
	})
}

// Look compiles `&e` (isPositive=true) or `!e` (isPositive=false): runs
// body, discards any advance and any queue/capture growth, and succeeds
// (at the original position) iff body's own outcome matches isPositive.
// While body runs, the active lookahead polarity governs where any
// leaf-level expectation gets recorded (spec §3, §4.2 state.lookahead).
func (state *ParserState) Look(isPositive bool, pos Position, body Matcher) (Position, bool) {
	qlen, slen := len(state.queue), len(state.stack)
	polarity := polarityPositive
	if !isPositive {
		polarity = polarityNegative
	}
	state.lookaheadStack = append(state.lookaheadStack, polarity)

	_, ok := body(pos)

	state.lookaheadStack = state.lookaheadStack[:len(state.lookaheadStack)-1]
	state.truncate(qlen, slen)

	if ok == isPositive {
		return pos, true
	}
	return pos, false
}

// Atomic runs body with isAtomic forced to true (kind Atomic and
// CompoundAtomic) or left as-is (Normal and Silent inherit whatever
// atomicity an enclosing rule already established), restoring the prior
// value on return (spec §4.2 state.atomic).
func (state *ParserState) Atomic(forced bool, body Matcher) Matcher {
	return func(pos Position) (Position, bool) {
		prev := state.isAtomic
		state.isAtomic = state.isAtomic || forced
		next, ok := body(pos)
		state.isAtomic = prev
		return next, ok
	}
}

// Rule is the rule invocation driver (spec §4.2 state.rule, §4.3 rule
// kinds). It opens a pending token frame, runs body under the
// atomicity that kind demands, and on success emits Start(name) ...
// End(name) markers bracketing whatever body emitted -- unless kind
// suppresses that emission (Silent) or hides the children (Atomic).
func (state *ParserState) Rule(name string, kind RuleKind, pos Position, body Matcher) (Position, bool) {
	state.traceEnter(name, pos)
	state.ruleDepth++

	wrapped := state.Atomic(kind.isAtomicKind(), body)

	qlen, slen := len(state.queue), len(state.stack)
	emits := kind.emitsToken()
	var startIdx int
	if emits {
		startIdx = len(state.queue)
		state.queue = append(state.queue, marker{kind: startMarker, rule: name, pos: pos})
	}

	end, ok := wrapped(pos)
	if !ok {
		state.truncate(qlen, slen)
		// The start rule's own name is noise in its ParseError's
		// expected set -- a caller already knows which rule it asked
		// to parse. Nested rule names still get recorded: they narrow
		// down which alternative the furthest failure came from (Open
		// Question 3).
		if state.ruleDepth > 1 {
			state.recordExpected(name)
		}
		state.traceFail(name, pos)
		state.ruleDepth--
		return pos, false
	}

	if emits {
		if kind.hidesChildren() {
			state.queue = state.queue[:startIdx+1]
		}
		state.queue = append(state.queue, marker{kind: endMarker, rule: name, pos: end})
	}
	state.traceExit(name, pos, end)
	state.ruleDepth--
	return end, true
}

// truncate rolls queue and stack back to previously recorded lengths.
func (state *ParserState) truncate(qlen, slen int) {
	state.queue = state.queue[:qlen]
	state.stack = state.stack[:slen]
}
