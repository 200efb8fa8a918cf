// Package peg is the core of a parsing expression grammar (PEG)
// recognizer: an immutable Input, forward-only Position matchers, a
// mutable ParserState machine (atomicity, lookahead polarity, capture
// stack, furthest-failure tracking), a combinator algebra built on top
// of both, and assembly of a successful parse into a Pairs tree.
//
// This package does not parse grammar source or generate rule
// functions. A rule is any Go function with the RuleFunc signature;
// wiring rules together with Seq, Choice, Repeat, and the rest of the
// combinators is the generated (or hand-written) grammar compiler's
// job. Grammar is an optional, separate structural check over a closed
// rule set, run ahead of any Parse call.
package peg
