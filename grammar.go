package peg

import (
	"fmt"
	"sort"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/hashicorp/go-multierror"
)

// RuleDef describes one rule of a closed grammar for validation purposes
// only: its name, kind, and the names of the rules its body invokes by
// identifier. RuleDef carries no RuleFunc -- it exists to let a grammar
// compiler (or a hand-written rule set) check its own shape before
// handing rule functions to Parse.
type RuleDef struct {
	Name    string
	Kind    RuleKind
	Invokes []string
}

// Grammar is a closed set of RuleDefs. It is never consulted by Parse or
// by any combinator; it is an optional, separate structural check a
// caller runs once, ahead of time, over the rule set it is about to
// parse with.
type Grammar struct {
	Rules []RuleDef
}

// Validate reports every structural problem found in g, aggregated into
// a single error via go-multierror (spec §10): a rule invoking a name no
// rule declares, two rules sharing a name, or whitespace/comment
// declared with a kind other than Silent or Atomic. Returns nil if g is
// well-formed.
func (g *Grammar) Validate() error {
	var result *multierror.Error

	byName := make(map[string][]RuleDef, len(g.Rules))
	for _, r := range g.Rules {
		byName[r.Name] = append(byName[r.Name], r)
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		defs := byName[name]
		if len(defs) > 1 {
			result = multierror.Append(result, domainErrorf("rule %q declared %d times", name, len(defs)))
		}
	}

	for _, name := range []string{WhitespaceRule, CommentRule} {
		for _, r := range byName[name] {
			if r.Kind != Silent && r.Kind != Atomic {
				result = multierror.Append(result, domainErrorf(
					"reserved rule %q declared as %s, must be silent or atomic", name, r.Kind))
			}
		}
	}

	defined := treeset.NewWithStringComparator()
	for name := range byName {
		defined.Add(name)
	}

	for _, r := range g.Rules {
		for _, callee := range r.Invokes {
			if !defined.Contains(callee) {
				result = multierror.Append(result, domainErrorf(
					"rule %q invokes undefined rule %q", r.Name, callee))
			}
		}
	}

	if result != nil {
		result.ErrorFormat = multierrorListFormat
		return result.ErrorOrNil()
	}
	return nil
}

func multierrorListFormat(errs []error) string {
	if len(errs) == 1 {
		return fmt.Sprintf("peg: grammar invalid: %s", errs[0])
	}
	points := make([]string, len(errs))
	for i, err := range errs {
		points[i] = err.Error()
	}
	s := fmt.Sprintf("peg: grammar invalid, %d problems:", len(errs))
	for _, p := range points {
		s += "\n  * " + p
	}
	return s
}
