package peg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func lit(s string) Matcher {
	return func(pos Position) (Position, bool) { return pos.MatchString(s) }
}

func TestOptionalNeverFails(t *testing.T) {
	in := NewInput("abc")
	p := Start(in)
	next, ok := Optional(lit("z"))(p)
	require.True(t, ok)
	require.Equal(t, p, next)

	next, ok = Optional(lit("a"))(p)
	require.True(t, ok)
	require.Equal(t, 1, next.Offset())
}

func TestRepeatGuaranteesProgress(t *testing.T) {
	in := NewInput("aaab")
	p := Start(in)
	zeroWidth := func(pos Position) (Position, bool) { return pos, true }
	next, ok := Repeat(zeroWidth)(p)
	require.True(t, ok)
	require.Equal(t, 0, next.Offset())
}

func TestRepeatStopsOnFailure(t *testing.T) {
	in := NewInput("aaab")
	next, ok := Repeat(lit("a"))(Start(in))
	require.True(t, ok)
	require.Equal(t, 3, next.Offset())
}

func TestRepeatAtLeastRequiresMinimum(t *testing.T) {
	in := NewInput("b")
	_, ok := RepeatAtLeast(1, lit("a"))(Start(in))
	require.False(t, ok)
}

func TestChoiceOrderedAlternation(t *testing.T) {
	in := NewInput("barn")
	m := Choice(lit("bar"), lit("barn"))
	next, ok := m(Start(in))
	require.True(t, ok)
	require.Equal(t, 3, next.Offset(), "first matching alternative wins even if shorter")
}

func TestChoiceAllFail(t *testing.T) {
	in := NewInput("xyz")
	m := Choice(lit("a"), lit("b"))
	next, ok := m(Start(in))
	require.False(t, ok)
	require.Equal(t, 0, next.Offset())
}

func TestChainRollsBackOnFailure(t *testing.T) {
	in := NewInput("ab")
	m := Chain(lit("a"), lit("z"))
	next, ok := m(Start(in))
	require.False(t, ok)
	require.Equal(t, 0, next.Offset())
}

func TestLookaheadPositiveDoesNotConsume(t *testing.T) {
	in := NewInput("abc")
	p := Start(in)
	next, ok := Lookahead(true, p, lit("ab"))
	require.True(t, ok)
	require.Equal(t, p, next)
}

func TestLookaheadNegative(t *testing.T) {
	in := NewInput("abc")
	p := Start(in)
	_, ok := Lookahead(false, p, lit("xyz"))
	require.True(t, ok)

	_, ok = Lookahead(false, p, lit("ab"))
	require.False(t, ok)
}

func TestPredicateRejectsOnFalse(t *testing.T) {
	in := NewInput(".")
	m := Predicate(lit("."), func(s string) bool { return s != "." })
	_, ok := m(Start(in))
	require.False(t, ok)
}

func TestPredicateAcceptsOnTrue(t *testing.T) {
	in := NewInput("42")
	m := Predicate(RepeatAtLeast(1, func(pos Position) (Position, bool) {
		return pos.MatchRange('0', '9'+1)
	}), func(s string) bool { return s != "" })
	next, ok := m(Start(in))
	require.True(t, ok)
	require.Equal(t, 2, next.Offset())
}
