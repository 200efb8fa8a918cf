package pegutil

import "github.com/hucsmn/pegcore"

// Scope lists every rune-class and literal matcher factory in this
// package by name, the way the teacher's pegutil.Scope let a grammar
// compiler resolve a reserved identifier to a pattern value without a
// hand-written switch. Each entry takes the running ParserState and
// returns a ready-to-use Matcher.
var Scope = map[string]func(*peg.ParserState) peg.Matcher{
	"OctDigit": OctDigit,
	"DecDigit": DecDigit,
	"HexDigit": HexDigit,

	"ASCIIWhitespace":  ASCIIWhitespace,
	"ASCIIDigit":       ASCIIDigit,
	"ASCIILetter":      ASCIILetter,
	"ASCIILower":       ASCIILower,
	"ASCIIUpper":       ASCIIUpper,
	"ASCIILetterDigit": ASCIILetterDigit,
	"ASCIIControl":     ASCIIControl,

	"NewlineRune": NewlineRune,

	"Identifier": Identifier,
	"Integer":    Integer,
	"Float":      Float,
	"Newline":    Newline,
	"String":     String,
}
