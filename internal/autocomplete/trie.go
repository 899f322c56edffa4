// Package autocomplete implements the prefix index used to suggest movie
// titles while a player types.
//
// The index is a trie over normalized keys (see Normalize). It is built
// once before play and is read-only afterwards, so concurrent readers need
// no locking.
package autocomplete

import (
	"slices"
)

// node is one consumed key character.
type node struct {
	children [alphabetSize]*node
	prefixes int    // titles passing through this node
	terms    []Term // titles whose key ends exactly here
}

func (n *node) hasText(text string) bool {
	for _, t := range n.terms {
		if t.Text == text {
			return true
		}
	}
	return false
}

// Index is a prefix trie of titles.
type Index struct {
	root *node
}

// New returns an empty index.
func New() *Index {
	return &Index{root: &node{}}
}

// Build indexes every title with weight 0. Titles that cannot be
// normalized are skipped.
func Build(titles []string) *Index {
	ix := New()
	for _, title := range titles {
		ix.Insert(title, 0)
	}
	return ix
}

// Insert adds text with the given weight. It returns false, leaving the
// index untouched, when text has an invalid character, normalizes to an
// empty key, or is already indexed.
func (ix *Index) Insert(text string, weight int64) bool {
	key, err := Normalize(text)
	if err != nil || key == "" {
		return false
	}
	if end := ix.walk(key); end != nil && end.hasText(text) {
		return false
	}

	current := ix.root
	current.prefixes++
	for i := 0; i < len(key); i++ {
		idx := slot(key[i])
		if current.children[idx] == nil {
			current.children[idx] = &node{}
		}
		current = current.children[idx]
		current.prefixes++
	}
	current.terms = append(current.terms, Term{Text: text, Weight: weight})

	return true
}

// Len returns the number of indexed titles.
func (ix *Index) Len() int {
	return ix.root.prefixes
}

// CountPrefixes returns how many indexed titles start with prefix.
func (ix *Index) CountPrefixes(prefix string) int {
	n := ix.subtrie(prefix)
	if n == nil {
		return 0
	}
	return n.prefixes
}

// Suggestions returns up to limit titles starting with prefix, ordered by
// descending weight and then alphabetically. The result is never nil.
func (ix *Index) Suggestions(prefix string, limit int) []Term {
	out := []Term{}
	if limit <= 0 {
		return out
	}
	n := ix.subtrie(prefix)
	if n == nil {
		return out
	}

	out = collect(n, out)
	slices.SortStableFunc(out, compareTerms)
	if len(out) > limit {
		out = out[:limit:limit]
	}
	return out
}

// collect appends every term under n in depth-first order.
func collect(n *node, out []Term) []Term {
	out = append(out, n.terms...)
	for _, child := range n.children {
		if child != nil {
			out = collect(child, out)
		}
	}
	return out
}

// subtrie returns the node reached by prefix, or nil when prefix holds an
// invalid character or is not in the index.
func (ix *Index) subtrie(prefix string) *node {
	key, err := normalizePrefix(prefix)
	if err != nil {
		return nil
	}
	return ix.walk(key)
}

// walk follows an already normalized key from the root.
func (ix *Index) walk(key string) *node {
	current := ix.root
	for i := 0; i < len(key); i++ {
		current = current.children[slot(key[i])]
		if current == nil {
			return nil
		}
	}
	return current
}
