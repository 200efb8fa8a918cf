package pegutil

import "github.com/hucsmn/pegcore"

// Identifier matches a C-like identifier: a letter or underscore,
// followed by any number of letters, digits, or underscores. Grounded
// on the teacher's pegutil/literal.go literalIdentifier.
func Identifier(state *peg.ParserState) peg.Matcher {
	return peg.Chain(
		peg.Choice(ASCIILetter(state), peg.Literal(state, "_")),
		peg.Repeat(peg.Choice(ASCIILetterDigit(state), peg.Literal(state, "_"))),
	)
}

// Integer matches an optionally-signed decimal integer literal.
func Integer(state *peg.ParserState) peg.Matcher {
	return peg.Chain(
		peg.Optional(peg.Choice(peg.Literal(state, "+"), peg.Literal(state, "-"))),
		peg.RepeatAtLeast(1, DecDigit(state)),
	)
}

// Float matches a decimal float literal: an Integer-shaped mantissa with
// a required fractional part, an optional exponent, e.g. "3.14",
// "-0.5e10". Grounded on the teacher's pegutil/literal.go literalFloat,
// simplified to require the decimal point (the teacher's Number also
// accepts a bare hex/octal integer, which this module's Identifier/
// Integer split already covers separately).
func Float(state *peg.ParserState) peg.Matcher {
	sign := peg.Optional(peg.Choice(peg.Literal(state, "+"), peg.Literal(state, "-")))
	exponent := peg.Optional(peg.Chain(
		peg.Insensitive(state, "e"),
		peg.Optional(peg.Choice(peg.Literal(state, "+"), peg.Literal(state, "-"))),
		peg.RepeatAtLeast(1, DecDigit(state)),
	))
	return peg.Chain(
		sign,
		peg.RepeatAtLeast(1, DecDigit(state)),
		peg.Literal(state, "."),
		peg.RepeatAtLeast(1, DecDigit(state)),
		exponent,
	)
}

// NoRedundantZeroes wraps a bare-integer matcher (DecDigit+, HexDigit+,
// ...) to reject a leading zero on anything but the literal "0" itself,
// e.g. disallowing "007". Adapted from the teacher's pegutil/literal.go
// NoRedundantZeroes, ported from a predicate Pattern onto peg.Predicate.
func NoRedundantZeroes(bareInteger peg.Matcher) peg.Matcher {
	return peg.Predicate(bareInteger, func(matched string) bool {
		return matched == "0" || matched[0] != '0'
	})
}

// Newline matches "\r\n" or a single "\r"/"\n".
func Newline(state *peg.ParserState) peg.Matcher {
	return peg.Choice(peg.Literal(state, "\r\n"), NewlineRune(state))
}

// String matches a double-quoted string literal with backslash escapes
// for \", \\, and the common single-letter C escapes (\n, \t, ...), but
// not the \u/\U/\x/octal numeric escapes the teacher's literalString
// also accepts -- numeric escape validation needs the grammar compiler
// this core doesn't include (§1), so it is left to a caller building a
// richer literal on top of this one.
func String(state *peg.ParserState) peg.Matcher {
	escape := peg.Chain(peg.Literal(state, `\`), peg.Choice(
		peg.Literal(state, `"`), peg.Literal(state, `\`),
		peg.Literal(state, "n"), peg.Literal(state, "t"),
		peg.Literal(state, "r"), peg.Literal(state, "0"),
	))
	plain := peg.Choice(
		peg.Range(state, 0, '"'),
		peg.Range(state, '"'+1, '\\'),
		peg.Range(state, '\\'+1, 0x110000),
	)
	body := peg.Repeat(peg.Choice(escape, plain))
	return peg.Chain(peg.Literal(state, `"`), body, peg.Literal(state, `"`))
}
