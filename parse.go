package peg

import "github.com/rs/zerolog"

// Options configures a single Parse call: the reserved whitespace/
// comment rules consulted by implicit skip (spec §4.4), and an optional
// logger for rule-boundary tracing (spec §9).
type Options struct {
	Whitespace RuleFunc
	Comment    RuleFunc
	Logger     *zerolog.Logger
}

// Parse runs rule, under name and kind, as the grammar's start rule
// against in, and returns the resulting Pairs tree on success.
//
// On failure it returns a *ParseError describing the furthest position
// reached and what was expected there, UNLESS the parse was aborted by
// a programmer misuse (peeking/popping an empty capture stack, or
// RuleSet.Invoke of an unknown rule), in which case it returns the
// *DomainError instead -- a DomainError always takes precedence over a
// ParseError, since it means the failure isn't a property of the input
// text at all (spec §7). A cross-Input Span error met inside Push or
// Predicate is not reported this way; it counts as an ordinary match
// failure.
func Parse(in *Input, name string, kind RuleKind, rule RuleFunc, opts Options) (Pairs, error) {
	state := newParserState(SkipRules{Whitespace: opts.Whitespace, Comment: opts.Comment}, opts.Logger)

	start := Start(in)
	_, ok := state.Rule(name, kind, start, func(pos Position) (Position, bool) {
		return rule(state, pos)
	})

	if state.domainErr != nil {
		return nil, state.domainErr
	}
	if !ok {
		return nil, state.buildParseError(start)
	}
	return buildPairs(state.queue), nil
}

// buildParseError reports the furthest failure recorded during the
// parse, falling back to fallback if nothing was ever recorded (the
// start rule's body failed without any leaf primitive or nested rule
// ever attempting a match, e.g. an always-failing combinator).
func (state *ParserState) buildParseError(fallback Position) *ParseError {
	loc := fallback
	if state.attempts.set {
		loc = state.attempts.furthest
	}
	return &ParseError{
		Location:  loc,
		LineOf:    loc.LineOf(),
		positives: state.attempts.positives,
		negatives: state.attempts.negatives,
	}
}
