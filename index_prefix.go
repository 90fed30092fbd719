package search

import "github.com/jlrickert/searchengine/trie"

// PrefixIndex adapts the arena trie (package trie) to the Index
// interface, over text attribute values.
type PrefixIndex[P comparable] struct {
	tree *trie.Tree[P]
}

// NewPrefixIndex returns an empty PrefixIndex.
func NewPrefixIndex[P comparable]() *PrefixIndex[P] {
	return &PrefixIndex[P]{tree: trie.New[P]()}
}

// Insert adds id under value. A value may be inserted under multiple
// ids and an id may be inserted under multiple values.
func (idx *PrefixIndex[P]) Insert(id P, value string) {
	idx.tree.Insert(value, id)
}

// SupportedQueries reports Exact and Prefix.
func (idx *PrefixIndex[P]) SupportedQueries() Capability { return CapExact | CapPrefix }

// Search evaluates q, which must be an Exact or Prefix leaf; any other
// leaf kind fails with ErrUnsupportedQuery.
func (idx *PrefixIndex[P]) Search(q Query) (Posting[P], error) {
	switch q.kind {
	case kindExact:
		return idx.tree.Get(q.lo), nil
	case kindPrefix:
		return idx.tree.GetPrefix(q.lo), nil
	default:
		return nil, unsupported(q.attribute, q)
	}
}
