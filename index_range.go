package search

import (
	"cmp"

	"github.com/google/btree"
)

// rangeItem is the unit stored in a RangeIndex's tree: a value and the
// posting of ids observed with it.
type rangeItem[V cmp.Ordered, P comparable] struct {
	key     V
	posting Posting[P]
}

// RangeIndex is an ordered-range index over a parseable, totally ordered
// value type V. It is backed by github.com/google/btree's generic
// BTreeG, the Go-idiomatic analogue of the original project's
// BTreeMap-backed SearchIndexBTreeRange: range scans are a first-class
// operation here, not an occasional one, so a B-tree earns its keep over
// a plain map.
type RangeIndex[P comparable, V cmp.Ordered] struct {
	parse func(string) (V, error)
	tree  *btree.BTreeG[rangeItem[V, P]]
}

// NewRangeIndex creates a RangeIndex whose values are parsed from text
// by parse.
func NewRangeIndex[P comparable, V cmp.Ordered](parse func(string) (V, error)) *RangeIndex[P, V] {
	less := func(a, b rangeItem[V, P]) bool { return a.key < b.key }
	return &RangeIndex[P, V]{
		parse: parse,
		tree:  btree.NewG[rangeItem[V, P]](32, less),
	}
}

// Insert adds id to the posting for value, creating the posting if this
// is the first id observed with that value.
func (idx *RangeIndex[P, V]) Insert(id P, value V) {
	if existing, ok := idx.tree.Get(rangeItem[V, P]{key: value}); ok {
		existing.posting.Add(id)
		return
	}
	posting := NewPosting[P]()
	posting.Add(id)
	idx.tree.ReplaceOrInsert(rangeItem[V, P]{key: value, posting: posting})
}

// SupportedQueries reports Exact, InRange, OutRange, Minimum, and
// Maximum.
func (idx *RangeIndex[P, V]) SupportedQueries() Capability {
	return CapExact | CapInRange | CapOutRange | CapMinimum | CapMaximum
}

func (idx *RangeIndex[P, V]) parseValue(attribute, s string) (V, error) {
	v, err := idx.parse(s)
	if err != nil {
		var zero V
		return zero, NewMismatchedQueryTypeError(attribute, s, err)
	}
	return v, nil
}

// Search evaluates q against this index. See RangeIndex.SupportedQueries
// for the leaf kinds it handles; any other kind fails with
// ErrUnsupportedQuery.
func (idx *RangeIndex[P, V]) Search(q Query) (Posting[P], error) {
	switch q.kind {
	case kindExact:
		v, err := idx.parseValue(q.attribute, q.lo)
		if err != nil {
			return nil, err
		}
		if item, ok := idx.tree.Get(rangeItem[V, P]{key: v}); ok {
			return item.posting.Clone(), nil
		}
		return NewPosting[P](), nil

	case kindInRange:
		lo, err := idx.parseValue(q.attribute, q.lo)
		if err != nil {
			return nil, err
		}
		hi, err := idx.parseValue(q.attribute, q.hi)
		if err != nil {
			return nil, err
		}
		result := NewPosting[P]()
		if lo > hi {
			return result, nil
		}
		idx.tree.AscendGreaterOrEqual(rangeItem[V, P]{key: lo}, func(item rangeItem[V, P]) bool {
			if item.key > hi {
				return false
			}
			result = result.Union(item.posting)
			return true
		})
		return result, nil

	case kindMinimum:
		lo, err := idx.parseValue(q.attribute, q.lo)
		if err != nil {
			return nil, err
		}
		result := NewPosting[P]()
		idx.tree.AscendGreaterOrEqual(rangeItem[V, P]{key: lo}, func(item rangeItem[V, P]) bool {
			result = result.Union(item.posting)
			return true
		})
		return result, nil

	case kindMaximum:
		hi, err := idx.parseValue(q.attribute, q.lo)
		if err != nil {
			return nil, err
		}
		result := NewPosting[P]()
		idx.tree.DescendLessOrEqual(rangeItem[V, P]{key: hi}, func(item rangeItem[V, P]) bool {
			result = result.Union(item.posting)
			return true
		})
		return result, nil

	case kindOutRange:
		lo, err := idx.parseValue(q.attribute, q.lo)
		if err != nil {
			return nil, err
		}
		hi, err := idx.parseValue(q.attribute, q.hi)
		if err != nil {
			return nil, err
		}
		result := NewPosting[P]()
		if lo > hi {
			return result, nil
		}
		idx.tree.DescendLessOrEqual(rangeItem[V, P]{key: lo}, func(item rangeItem[V, P]) bool {
			if item.key >= lo {
				return true
			}
			result = result.Union(item.posting)
			return true
		})
		idx.tree.AscendGreaterOrEqual(rangeItem[V, P]{key: hi}, func(item rangeItem[V, P]) bool {
			if item.key <= hi {
				return true
			}
			result = result.Union(item.posting)
			return true
		})
		return result, nil

	default:
		return nil, unsupported(q.attribute, q)
	}
}
