package peg

// Push compiles `push(e)`: runs e from start, and on success pushes
// Span(start, end) onto the capture stack (spec §4.5). Like any other
// combinator, a failed attempt leaves the stack untouched -- Push never
// partially pushes.
func Push(state *ParserState, e Matcher) Matcher {
	return func(pos Position) (Position, bool) {
		end, ok := e(pos)
		if !ok {
			return pos, false
		}
		span, err := pos.Span(end)
		if err != nil {
			return pos, false
		}
		state.stack = append(state.stack, span)
		return end, true
	}
}

// Peek compiles the `peek` back-reference: matches the text of the
// top-of-stack span literally, without popping it. A DomainError is
// raised (via Parse's return, not a panic) if the stack is empty.
func Peek(state *ParserState) Matcher {
	return func(pos Position) (Position, bool) {
		if len(state.stack) == 0 {
			state.domainErr = errEmptyCapturePeek
			return pos, false
		}
		top := state.stack[len(state.stack)-1]
		next, ok := pos.MatchString(top.Str())
		if !ok {
			state.recordExpectedAt(pos, "peek "+quote(top.Str()))
		}
		return next, ok
	}
}

// Pop compiles the `pop` back-reference: matches the text of the
// top-of-stack span literally, and removes it from the stack on a
// successful match. The span is NOT removed if the match fails, so a
// failed pop inside a Choice still leaves the next alternative able to
// see it.
func Pop(state *ParserState) Matcher {
	return func(pos Position) (Position, bool) {
		if len(state.stack) == 0 {
			state.domainErr = errEmptyCapturePop
			return pos, false
		}
		top := state.stack[len(state.stack)-1]
		next, ok := pos.MatchString(top.Str())
		if !ok {
			state.recordExpectedAt(pos, "pop "+quote(top.Str()))
			return pos, false
		}
		state.stack = state.stack[:len(state.stack)-1]
		return next, true
	}
}
