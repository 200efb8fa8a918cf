package peg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRuleSetInvokeDispatchesByName(t *testing.T) {
	g := &Grammar{Rules: []RuleDef{
		{Name: "digit", Kind: Atomic},
	}}
	rs := NewRuleSet(g, map[string]RuleFunc{
		"digit": func(state *ParserState, pos Position) (Position, bool) {
			return pos.MatchRange('0', '9'+1)
		},
	})

	in := NewInput("7")
	state := newTestState()
	next, ok := rs.Invoke(state, "digit", Start(in))
	require.True(t, ok)
	require.Equal(t, 1, next.Offset())
}

func TestRuleSetInvokeUnknownRuleIsDomainError(t *testing.T) {
	g := &Grammar{Rules: []RuleDef{{Name: "digit", Kind: Atomic}}}
	rs := NewRuleSet(g, map[string]RuleFunc{
		"digit": func(state *ParserState, pos Position) (Position, bool) {
			return pos.MatchRange('0', '9'+1)
		},
	})

	state := newTestState()
	in := NewInput("7")
	_, ok := rs.Invoke(state, "missing", Start(in))
	require.False(t, ok)
	require.Error(t, state.domainErr)
	require.Equal(t, errUnknownRule("missing").Error(), state.domainErr.Error())
}

func TestRuleSetInvokeDeclaredButUnboundIsDomainError(t *testing.T) {
	g := &Grammar{Rules: []RuleDef{{Name: "digit", Kind: Atomic}}}
	rs := NewRuleSet(g, map[string]RuleFunc{})

	state := newTestState()
	in := NewInput("7")
	_, ok := rs.Invoke(state, "digit", Start(in))
	require.False(t, ok)
	require.Error(t, state.domainErr)
}
