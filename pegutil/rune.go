// Package pegutil adapts the teacher's rune-set and literal helpers to
// the core's RuleFunc/Matcher API: every matcher here still needs a
// *peg.ParserState, since recording what was expected on failure (spec
// §3) is a ParserState responsibility, not a bare Position one.
package pegutil

import "github.com/hucsmn/pegcore"

// Digit ranges, as half-open codepoint intervals passed straight to
// peg.Range (grounded on the teacher's pegutil/rune.go digit/ASCII rune
// sets, expressed there as inclusive peg.R(...) tables).
func OctDigit(state *peg.ParserState) peg.Matcher { return peg.Range(state, '0', '8') }
func DecDigit(state *peg.ParserState) peg.Matcher { return peg.Range(state, '0', ':') }

func HexDigit(state *peg.ParserState) peg.Matcher {
	return peg.Choice(
		peg.Range(state, '0', ':'),
		peg.Range(state, 'a', 'g'),
		peg.Range(state, 'A', 'G'),
	)
}

// ASCII rune classes.
func ASCIIDigit(state *peg.ParserState) peg.Matcher { return peg.Range(state, '0', ':') }
func ASCIILower(state *peg.ParserState) peg.Matcher { return peg.Range(state, 'a', '{') }
func ASCIIUpper(state *peg.ParserState) peg.Matcher { return peg.Range(state, 'A', '[') }

func ASCIILetter(state *peg.ParserState) peg.Matcher {
	return peg.Choice(ASCIILower(state), ASCIIUpper(state))
}

func ASCIILetterDigit(state *peg.ParserState) peg.Matcher {
	return peg.Choice(ASCIILetter(state), ASCIIDigit(state))
}

func ASCIIWhitespace(state *peg.ParserState) peg.Matcher {
	return peg.Choice(
		peg.Range(state, ' ', ' '+1),
		peg.Range(state, '\t', '\n'),
		peg.Range(state, '\n', '\v'),
		peg.Range(state, '\v', '\f'+1),
		peg.Range(state, '\r', '\r'+1),
	)
}

func ASCIIControl(state *peg.ParserState) peg.Matcher {
	return peg.Choice(
		peg.Range(state, '\x00', '\x20'),
		peg.Range(state, '\x7f', '\x80'),
	)
}

// NewlineRune matches a single "\n" or "\r" codepoint (not the two-byte
// "\r\n" sequence -- see Newline in literal.go for that).
func NewlineRune(state *peg.ParserState) peg.Matcher {
	return peg.Choice(peg.Range(state, '\n', '\v'), peg.Range(state, '\r', '\r'+1))
}
