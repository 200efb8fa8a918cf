package pegutil

import (
	"sort"

	"github.com/hucsmn/pegcore"
)

// prefixTree is a compact trie over a fixed, sorted set of equal-
// priority keys, letting KeywordSet try every keyword with one pass over
// the input rather than one Chain per candidate. Adapted from the
// teacher's prefixtree.go (originally built for case-insensitive
// keyword/enum matching).
type prefixTree struct {
	term  bool
	width int
	keys  []string
	subs  []prefixTree
}

func buildPrefixTree(sorted []string) prefixTree {
	tree := prefixTree{}
	var i int
	for ; i < len(sorted) && sorted[i] == ""; i++ {
		tree.term = true
	}
	sorted = sorted[i:]
	if len(sorted) == 0 {
		return tree
	}

	tree.width = len(sorted[0])
	for _, s := range sorted {
		if len(s) < tree.width {
			tree.width = len(s)
		}
	}

	lastprefix := sorted[0][:tree.width]
	lasttail := sorted[0][tree.width:]
	tails := []string{lasttail}
	for _, s := range sorted[1:] {
		prefix, tail := s[:tree.width], s[tree.width:]
		if prefix == lastprefix {
			if tail != lasttail {
				tails = append(tails, tail)
				lasttail = tail
			}
		} else {
			tree.keys = append(tree.keys, lastprefix)
			tree.subs = append(tree.subs, buildPrefixTree(tails))
			lastprefix = prefix
			lasttail = tail
			tails = []string{lasttail}
		}
	}
	tree.keys = append(tree.keys, lastprefix)
	tree.subs = append(tree.subs, buildPrefixTree(tails))
	return tree
}

// longestMatch walks the trie against text starting at offset, returning
// the byte length of the longest key that is a prefix of text[offset:],
// or (0, false) if none match.
func (tree prefixTree) longestMatch(text string, offset int) (int, bool) {
	best, ok := 0, tree.term
	cur, pos := tree, offset
	for cur.width > 0 {
		if pos+cur.width > len(text) {
			break
		}
		probe := text[pos : pos+cur.width]
		i, j := 0, len(cur.keys)
		for i < j {
			m := i + (j-i)/2
			if probe == cur.keys[m] {
				i, j = m, m
				break
			} else if probe > cur.keys[m] {
				i = m + 1
			} else {
				j = m
			}
		}
		if i >= len(cur.keys) || cur.keys[i] != probe {
			break
		}
		pos += cur.width
		cur = cur.subs[i]
		if cur.term {
			best, ok = pos-offset, true
		}
	}
	return best, ok
}

// KeywordSet matches the longest of a fixed set of keywords, recording
// the whole set (quoted, sorted) as a single expectation on failure
// rather than one label per keyword.
type KeywordSet struct {
	tree  prefixTree
	label string
}

// NewKeywordSet builds a KeywordSet over words. Duplicate words are
// collapsed; words are sorted for a deterministic label.
func NewKeywordSet(words ...string) *KeywordSet {
	sorted := append([]string(nil), words...)
	sort.Strings(sorted)

	label := "one of "
	for i, w := range sorted {
		if i > 0 && w == sorted[i-1] {
			continue
		}
		if i > 0 {
			label += ", "
		}
		label += quoteWord(w)
	}

	return &KeywordSet{tree: buildPrefixTree(sorted), label: label}
}

func quoteWord(w string) string {
	return "\"" + w + "\""
}

// Match returns a Matcher for the longest keyword in the set that
// prefixes the input at the attempt position.
func (ks *KeywordSet) Match(state *peg.ParserState) peg.Matcher {
	return func(pos peg.Position) (peg.Position, bool) {
		n, ok := ks.tree.longestMatch(pos.Input().Bytes(), pos.Offset())
		if !ok {
			state.RecordExpectedAt(pos, ks.label)
			return pos, false
		}
		word := pos.Input().Slice(pos.Offset(), pos.Offset()+n)
		return pos.MatchString(word)
	}
}
