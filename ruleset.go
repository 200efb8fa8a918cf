package peg

// RuleSet binds a Grammar's declarations to concrete rule bodies, so a
// rule can be invoked by name at runtime instead of by a direct Go call
// (spec §4.5's "Identifier r -> invoke rule function r(pos, state)",
// generalized one level further: the identifier is looked up in a table
// rather than resolved by the Go compiler). This is the shape a
// generated dispatcher needs when which rule to call is itself data --
// a hand-written rule set like example/sexp/sexp.go has no use for it, since
// its rule functions call each other directly.
type RuleSet struct {
	kinds map[string]RuleKind
	funcs map[string]RuleFunc
}

// NewRuleSet binds funcs against g's declared rules. It does not
// validate g itself; call g.Validate() first if that matters to the
// caller.
func NewRuleSet(g *Grammar, funcs map[string]RuleFunc) *RuleSet {
	kinds := make(map[string]RuleKind, len(g.Rules))
	for _, r := range g.Rules {
		kinds[r.Name] = r.Kind
	}
	return &RuleSet{kinds: kinds, funcs: funcs}
}

// Invoke runs the rule named name against pos, dispatching through
// state.Rule under the kind g declared for it. If name was not declared
// in the Grammar RuleSet was built from, or has no registered RuleFunc,
// Invoke raises a DomainError (errUnknownRule) instead of matching --
// the "unknown rule invoked by name" misuse spec §7 reserves for
// DomainError, which arises here when a dispatcher's rule table and its
// grammar declaration have fallen out of sync.
func (rs *RuleSet) Invoke(state *ParserState, name string, pos Position) (Position, bool) {
	kind, declared := rs.kinds[name]
	body, bound := rs.funcs[name]
	if !declared || !bound {
		state.domainErr = errUnknownRule(name)
		return pos, false
	}
	return state.Rule(name, kind, pos, func(p Position) (Position, bool) {
		return body(state, p)
	})
}
