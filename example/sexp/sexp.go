// Command sexp is a worked example of the core: a hand-written rule set
// for a small S-expression grammar (numbers, symbols, parenthesized
// lists), wired together with the combinator API instead of a generated
// parser, then validated with Grammar and run with Parse. Grounded on
// the teacher's example/sexp.go, trimmed to the recognizer this module
// actually provides -- this core assembles a Pairs tree, it does not
// evaluate one, so the Eval/Context/Closure machinery from the teacher's
// version is out of scope here.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/hucsmn/pegcore"
	"github.com/hucsmn/pegcore/pegutil"
)

const (
	ruleWhitespace = "whitespace"
	ruleNumber     = "number"
	ruleSymbol     = "symbol"
	ruleList       = "list"
	ruleSexp       = "sexp"
)

const symbolPunctChars = "!$%&*+-./:<=>?@^_~"

func whitespace(state *peg.ParserState, pos peg.Position) (peg.Position, bool) {
	return peg.Repeat(pegutil.ASCIIWhitespace(state))(pos)
}

// symbolPunct matches one of the punctuation characters a symbol may
// contain, alongside letters and digits.
func symbolPunct(state *peg.ParserState) peg.Matcher {
	return func(pos peg.Position) (peg.Position, bool) {
		for _, r := range symbolPunctChars {
			if next, ok := pos.MatchRange(r, r+1); ok {
				return next, true
			}
		}
		state.RecordExpectedAt(pos, "symbol character")
		return pos, false
	}
}

func numberRule(state *peg.ParserState, pos peg.Position) (peg.Position, bool) {
	return peg.Choice(pegutil.Float(state), pegutil.Integer(state))(pos)
}

func symbolRule(state *peg.ParserState, pos peg.Position) (peg.Position, bool) {
	head := peg.Choice(pegutil.ASCIILetter(state), symbolPunct(state))
	tail := peg.Repeat(peg.Choice(pegutil.ASCIILetterDigit(state), symbolPunct(state)))
	return peg.Chain(head, tail)(pos)
}

func listRule(state *peg.ParserState, pos peg.Position) (peg.Position, bool) {
	elem := func(p peg.Position) (peg.Position, bool) {
		return sexpRule(state, p)
	}
	elems := func(p peg.Position) (peg.Position, bool) {
		return state.RepAtLeast(p, elem)
	}
	return state.Seq(pos,
		peg.Literal(state, "("),
		func(p peg.Position) (peg.Position, bool) { return state.Opt(p, elems) },
		peg.Literal(state, ")"),
	)
}

// sexpRule is the grammar's entry point: a number, a symbol, or a
// parenthesized list of sexps, tried in that order (ordered choice).
func sexpRule(state *peg.ParserState, pos peg.Position) (peg.Position, bool) {
	number := func(p peg.Position) (peg.Position, bool) {
		return state.Rule(ruleNumber, peg.Atomic, p, func(p2 peg.Position) (peg.Position, bool) {
			return numberRule(state, p2)
		})
	}
	symbol := func(p peg.Position) (peg.Position, bool) {
		return state.Rule(ruleSymbol, peg.Atomic, p, func(p2 peg.Position) (peg.Position, bool) {
			return symbolRule(state, p2)
		})
	}
	list := func(p peg.Position) (peg.Position, bool) {
		return state.Rule(ruleList, peg.Normal, p, func(p2 peg.Position) (peg.Position, bool) {
			return listRule(state, p2)
		})
	}
	return peg.Choice(number, symbol, list)(pos)
}

// grammar describes the rule set above for Grammar.Validate (spec §10).
// It is optional -- sexpParse below never constructs it -- but documents
// the shape a grammar compiler targeting this core would emit.
var grammar = &peg.Grammar{
	Rules: []peg.RuleDef{
		{Name: ruleWhitespace, Kind: peg.Silent},
		{Name: ruleNumber, Kind: peg.Atomic},
		{Name: ruleSymbol, Kind: peg.Atomic},
		{Name: ruleList, Kind: peg.Normal, Invokes: []string{ruleSexp}},
		{Name: ruleSexp, Kind: peg.Silent, Invokes: []string{ruleNumber, ruleSymbol, ruleList}},
	},
}

func sexpParse(text string) (peg.Pairs, error) {
	in := peg.NewInput(text)
	return peg.Parse(in, ruleSexp, peg.Silent, sexpRule, peg.Options{
		Whitespace: whitespace,
	})
}

func main() {
	if err := grammar.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	buf := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("sexp> ")
		line, _, err := buf.ReadLine()
		if err != nil {
			break
		}
		pairs, err := sexpParse(string(line))
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(pairs.String())
	}
}
