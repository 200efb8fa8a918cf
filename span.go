package peg

import "fmt"

// Span is a half-open byte interval [start, end) over one Input. It is
// the atom from which both user-visible tokens (Pairs) and the internal
// back-reference capture stack are built.
type Span struct {
	input      *Input
	start, end int
}

// NewSpan builds a Span directly from an Input and byte offsets. Most
// callers get a Span from Position.Span instead; this constructor exists
// for building synthetic spans (tests, tooling) without two Positions
// on hand.
func NewSpan(in *Input, start, end int) (Span, error) {
	if start < 0 || end < start || end > in.Len() {
		return Span{}, domainErrorf("invalid span [%d, %d) over input of length %d", start, end, in.Len())
	}
	return Span{input: in, start: start, end: end}, nil
}

// Str returns the substring covered by the span.
func (s Span) Str() string {
	return s.input.Slice(s.start, s.end)
}

// Start returns the Position at the beginning of the span.
func (s Span) Start() Position {
	return Position{input: s.input, offset: s.start}
}

// End returns the Position just past the end of the span.
func (s Span) End() Position {
	return Position{input: s.input, offset: s.end}
}

// StartOffset returns the span's start byte offset.
func (s Span) StartOffset() int {
	return s.start
}

// EndOffset returns the span's end byte offset.
func (s Span) EndOffset() int {
	return s.end
}

// Contains reports whether other lies entirely within s, over the same
// Input.
func (s Span) Contains(other Span) bool {
	return s.input == other.input && s.start <= other.start && other.end <= s.end
}

func (s Span) String() string {
	return fmt.Sprintf("%s..%s", s.Start().String(), s.End().String())
}
