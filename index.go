package search

// Index is the uniform surface every index kind exposes to the engine.
// P is the caller's primary identifier type; the attribute value type
// is an implementation detail of each concrete index and does not
// appear in this interface — the leaf payloads Search receives are
// always text, parsed internally.
type Index[P comparable] interface {
	// Search evaluates a single leaf Query against this index. Combinator
	// queries (Or/And/Exclude) are never passed to an index directly;
	// the engine only ever delegates leaves.
	Search(q Query) (Posting[P], error)

	// SupportedQueries returns the bitmask of leaf kinds this index can
	// evaluate. It is constant for the life of the index.
	SupportedQueries() Capability
}

// unsupported builds the UnsupportedQuery error for a leaf kind the
// index does not declare in its capability bitmask.
func unsupported(attribute string, q Query) error {
	return NewUnsupportedQueryError(attribute, leafKindName(q.kind))
}

func leafKindName(k queryKind) string {
	switch k {
	case kindExact:
		return "Exact"
	case kindPrefix:
		return "Prefix"
	case kindInRange:
		return "InRange"
	case kindOutRange:
		return "OutRange"
	case kindMinimum:
		return "Minimum"
	case kindMaximum:
		return "Maximum"
	case kindOr:
		return "Or"
	case kindAnd:
		return "And"
	case kindExclude:
		return "Exclude"
	default:
		return "unknown"
	}
}
