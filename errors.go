package peg

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
)

// ParseError reports that a parse failed to match its start rule.
// It carries the furthest position any alternative reached, and the set
// of rule names and literal strings that were expected there.
type ParseError struct {
	Location Position
	LineOf   string

	positives *treeset.Set
	negatives *treeset.Set
}

// Expected returns the rule/literal names expected at Location, and the
// ones whose absence was expected (recorded inside a negative lookahead).
// Both slices come back in a deterministic (sorted) order, so the same
// failing input always yields the same ParseError.Error() string
// (testable property 7, determinism).
func (e *ParseError) Expected() (positives, negatives []string) {
	return setStrings(e.positives), setStrings(e.negatives)
}

func (e *ParseError) Error() string {
	positives, negatives := e.Expected()

	var sb strings.Builder
	fmt.Fprintf(&sb, "peg: parse error at %s", e.Location.String())
	if len(positives) > 0 {
		fmt.Fprintf(&sb, ", expected %s", strings.Join(positives, ", "))
	}
	if len(negatives) > 0 {
		fmt.Fprintf(&sb, ", unexpected %s", strings.Join(negatives, ", "))
	}
	return sb.String()
}

func setStrings(s *treeset.Set) []string {
	if s == nil || s.Empty() {
		return nil
	}
	values := s.Values()
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.(string)
	}
	return out
}

// DomainError reports a programmer misuse of the API: mixing positions
// or spans from different Inputs, popping/peeking an empty capture
// stack, invoking an undeclared rule, or an invalid Grammar. Unlike
// ParseError, a DomainError is never something a well-formed grammar
// running against arbitrary text can trigger.
type DomainError struct {
	msg string
}

func (e *DomainError) Error() string {
	return "peg: " + e.msg
}

func domainErrorf(format string, args ...interface{}) *DomainError {
	return &DomainError{msg: fmt.Sprintf(format, args...)}
}

var (
	errCrossInput       = domainErrorf("position or span constructed across distinct inputs")
	errEmptyCapturePeek = domainErrorf("peek: capture stack is empty")
	errEmptyCapturePop  = domainErrorf("pop: capture stack is empty")
)

func errUnknownRule(name string) *DomainError {
	return domainErrorf("rule %q has no registered body", name)
}
