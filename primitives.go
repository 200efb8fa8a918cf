package peg

import "fmt"

// Literal compiles a grammar literal `"s"` to match_string, recording s
// (quoted) as an expectation at the attempt position on failure (spec
// §4.1, §4.5).
func Literal(state *ParserState, s string) Matcher {
	label := quote(s)
	return func(pos Position) (Position, bool) {
		next, ok := pos.MatchString(s)
		if !ok {
			state.recordExpectedAt(pos, label)
		}
		return next, ok
	}
}

// Insensitive compiles a case-insensitive grammar literal `^"s"` to
// match_insensitive.
func Insensitive(state *ParserState, s string) Matcher {
	label := "^" + quote(s)
	return func(pos Position) (Position, bool) {
		next, ok := pos.MatchInsensitive(s)
		if !ok {
			state.recordExpectedAt(pos, label)
		}
		return next, ok
	}
}

// Range compiles a grammar range `'a'..'b'` to match_range over the
// half-open codepoint interval [lo, hi). Per spec §4.5, the inclusive
// surface syntax is the grammar compiler's concern: it is expected to
// pass hi as the codepoint just past 'b'.
func Range(state *ParserState, lo, hi rune) Matcher {
	label := fmt.Sprintf("%c..%c", lo, hi-1)
	return func(pos Position) (Position, bool) {
		next, ok := pos.MatchRange(lo, hi)
		if !ok {
			state.recordExpectedAt(pos, label)
		}
		return next, ok
	}
}

// Skip compiles `skip(n)`, matching any n codepoints.
func Skip(n int) Matcher {
	return func(pos Position) (Position, bool) {
		return pos.Skip(n)
	}
}

// AtStart compiles the zero-width start-of-input predicate.
func AtStart() Matcher {
	return func(pos Position) (Position, bool) {
		return pos, pos.AtStart()
	}
}

// AtEnd compiles the zero-width end-of-input predicate.
func AtEnd() Matcher {
	return func(pos Position) (Position, bool) {
		return pos, pos.AtEnd()
	}
}

// Any matches a single codepoint unconditionally -- the grammar DSL's
// `.`/`any` primitive.
func Any() Matcher {
	return func(pos Position) (Position, bool) {
		return pos.Skip(1)
	}
}

func quote(s string) string {
	return fmt.Sprintf("%q", s)
}
