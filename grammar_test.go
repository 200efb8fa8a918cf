package peg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGrammarValidateAcceptsWellFormed(t *testing.T) {
	g := &Grammar{Rules: []RuleDef{
		{Name: "whitespace", Kind: Silent},
		{Name: "number", Kind: Normal, Invokes: []string{"digit"}},
		{Name: "digit", Kind: Atomic},
	}}
	require.NoError(t, g.Validate())
}

func TestGrammarValidateDetectsDuplicateName(t *testing.T) {
	g := &Grammar{Rules: []RuleDef{
		{Name: "number", Kind: Normal},
		{Name: "number", Kind: Atomic},
	}}
	err := g.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), `rule "number" declared 2 times`)
}

func TestGrammarValidateRejectsReservedRuleWrongKind(t *testing.T) {
	g := &Grammar{Rules: []RuleDef{
		{Name: "whitespace", Kind: Normal},
	}}
	err := g.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), `reserved rule "whitespace" declared as normal`)
}

func TestGrammarValidateAllowsCommentAsAtomic(t *testing.T) {
	g := &Grammar{Rules: []RuleDef{
		{Name: "comment", Kind: Atomic},
	}}
	require.NoError(t, g.Validate())
}

func TestGrammarValidateDetectsUndefinedReference(t *testing.T) {
	g := &Grammar{Rules: []RuleDef{
		{Name: "expr", Kind: Normal, Invokes: []string{"missing"}},
	}}
	err := g.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), `rule "expr" invokes undefined rule "missing"`)
}

func TestGrammarValidateAggregatesMultipleProblems(t *testing.T) {
	g := &Grammar{Rules: []RuleDef{
		{Name: "a", Kind: Normal},
		{Name: "a", Kind: Normal},
		{Name: "b", Kind: Normal, Invokes: []string{"nope"}},
	}}
	err := g.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "2 problems")
	require.Contains(t, err.Error(), `declared 2 times`)
	require.Contains(t, err.Error(), `invokes undefined rule "nope"`)
}

func TestGrammarValidateNilOnEmptyGrammar(t *testing.T) {
	g := &Grammar{}
	require.NoError(t, g.Validate())
}
