package search

import mapset "github.com/deckarep/golang-set/v2"

// Posting is a set of primary ids sharing an attribute value. It is the
// unit every index stores per observed value and every query evaluates
// to; P need only support equality and hashing (mapset requires
// comparable).
//
// Indices are single-writer, single-data-structure instances (§5): no
// internal locking is required, so postings use the thread-unsafe set
// variant rather than paying for synchronization a caller must already
// provide around mutation.
type Posting[P comparable] = mapset.Set[P]

// NewPosting returns an empty Posting.
func NewPosting[P comparable]() Posting[P] {
	return mapset.NewThreadUnsafeSet[P]()
}

// unionAll returns the union of sets, without mutating any of them.
// An empty input returns an empty set.
func unionAll[P comparable](sets ...Posting[P]) Posting[P] {
	out := NewPosting[P]()
	for _, s := range sets {
		if s == nil {
			continue
		}
		out = out.Union(s)
	}
	return out
}
