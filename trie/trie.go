// Package trie implements an arena-backed trie mapping byte/rune
// sequences to sets of primary ids, supporting both exact and
// subtree-union ("prefix") lookup.
//
// Grounded on the original project's hand-rolled HashSetPrefixTree
// (src/index/prefix/tree.rs): nodes live in a flat arena addressed by
// integer index rather than behind pointers, and a node's outgoing
// edges are a slice sorted by character and probed with binary search,
// the same shape gaissmai/bart uses for its node children arrays. The
// arena is hand-written rather than built on a third-party trie
// library because the tree must accept inserts and queries in any
// order (§5 of the spec) — most Go trie packages are build-then-freeze.
package trie

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

const noValue = -1

type edge struct {
	ch    rune
	child int
}

type node struct {
	value int // index into Tree.postings, or noValue
	edges []edge
}

// Tree is an arena trie over string keys, storing a set of P per
// terminal key. The zero value is not usable; construct with New.
type Tree[P comparable] struct {
	nodes    []node
	postings []mapset.Set[P]
}

// New returns an empty Tree with only its root node.
func New[P comparable]() *Tree[P] {
	return &Tree[P]{
		nodes: []node{{value: noValue}},
	}
}

// Insert walks the trie one rune at a time from the root, creating
// nodes as needed, and adds id to the posting at key's terminal node
// (creating that posting if this is the first insert under key).
// Re-inserting an existing (key, id) pair is a no-op beyond set
// semantics.
func (t *Tree[P]) Insert(key string, id P) {
	nodeID := 0
	for _, c := range key {
		if child, ok := t.nodes[nodeID].findChild(c); ok {
			nodeID = child
		} else {
			newID := t.createNode()
			t.nodes[nodeID].insertChild(c, newID)
			nodeID = newID
		}
	}

	if t.nodes[nodeID].value == noValue {
		t.postings = append(t.postings, mapset.NewThreadUnsafeSet[P]())
		t.nodes[nodeID].value = len(t.postings) - 1
	}
	t.postings[t.nodes[nodeID].value].Add(id)
}

// Get returns the posting stored exactly at key, or an empty set if no
// value was ever inserted under that exact key.
func (t *Tree[P]) Get(key string) mapset.Set[P] {
	nodeID, ok := t.findNode(key)
	if !ok || t.nodes[nodeID].value == noValue {
		return mapset.NewThreadUnsafeSet[P]()
	}
	return t.postings[t.nodes[nodeID].value].Clone()
}

// GetPrefix returns the union of every posting reachable from the node
// at prefix, i.e. every key that starts with prefix. GetPrefix("")
// returns the union of every posting in the tree. Traversal order of
// the subtree is unspecified.
func (t *Tree[P]) GetPrefix(prefix string) mapset.Set[P] {
	result := mapset.NewThreadUnsafeSet[P]()

	nodeID, ok := t.findNode(prefix)
	if !ok {
		return result
	}

	stack := []int{nodeID}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := &t.nodes[id]
		if n.value != noValue {
			result = result.Union(t.postings[n.value])
		}
		for _, e := range n.edges {
			stack = append(stack, e.child)
		}
	}

	return result
}

func (t *Tree[P]) createNode() int {
	t.nodes = append(t.nodes, node{value: noValue})
	return len(t.nodes) - 1
}

// findNode walks key from the root and returns the node id reached, or
// false if some prefix of key has no matching edge.
func (t *Tree[P]) findNode(key string) (int, bool) {
	nodeID := 0
	for _, c := range key {
		child, ok := t.nodes[nodeID].findChild(c)
		if !ok {
			return 0, false
		}
		nodeID = child
	}
	return nodeID, true
}

// findChild binary-searches n's sorted edge list for ch.
func (n *node) findChild(ch rune) (int, bool) {
	i := sort.Search(len(n.edges), func(i int) bool { return n.edges[i].ch >= ch })
	if i < len(n.edges) && n.edges[i].ch == ch {
		return n.edges[i].child, true
	}
	return 0, false
}

// insertChild inserts a new (ch, child) edge keeping the edge list
// sorted by the Unicode scalar value of ch, with no duplicates.
func (n *node) insertChild(ch rune, child int) {
	i := sort.Search(len(n.edges), func(i int) bool { return n.edges[i].ch >= ch })
	n.edges = append(n.edges, edge{})
	copy(n.edges[i+1:], n.edges[i:])
	n.edges[i] = edge{ch: ch, child: child}
}
