package search

import "log/slog"

// entry pairs a registered index with its capability bitmask, cached at
// registration time so evaluation never has to call SupportedQueries on
// the hot path.
type entry[P comparable] struct {
	index Index[P]
	caps  Capability
}

// Engine is a named collection of indices over a shared primary id type
// P. It is the top-level type callers construct: register one index per
// attribute, then evaluate compound Query trees against all of them at
// once.
//
// Grounded on the original project's schema-driven SearchEngine
// (src/engine.rs), generalized from a fixed AttributeSchema to an
// open map of indices registered at any time, matching this package's
// Query algebra (§4 of the spec) rather than the original's narrower
// include/exclude predicate pair.
type Engine[P comparable] struct {
	indices map[string]entry[P]
	logger  *slog.Logger
}

// EngineOption configures a new Engine.
type EngineOption[P comparable] func(*Engine[P])

// WithLogger attaches lg to the engine for diagnostic logging of
// attribute resolution failures and query evaluation. A nil lg is
// ignored.
func WithLogger[P comparable](lg *slog.Logger) EngineOption[P] {
	return func(e *Engine[P]) {
		if lg != nil {
			e.logger = lg
		}
	}
}

// NewEngine returns an empty Engine.
func NewEngine[P comparable](opts ...EngineOption[P]) *Engine[P] {
	e := &Engine[P]{
		indices: make(map[string]entry[P]),
		logger:  newNopLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AddIndex registers idx under name, replacing any index previously
// registered under the same name. Re-registration is intentionally
// silent: a caller rebuilding an index (e.g. after a bulk reload) should
// not have to remove the old one first.
func (e *Engine[P]) AddIndex(name string, idx Index[P]) {
	e.indices[name] = entry[P]{index: idx, caps: idx.SupportedQueries()}
	e.logger.Debug("search: index registered", "attribute", name, "capabilities", idx.SupportedQueries().String())
}

// RemoveIndex unregisters the index under name, if any.
func (e *Engine[P]) RemoveIndex(name string) {
	delete(e.indices, name)
}

// Attributes returns the names of every registered index, in no
// particular order.
func (e *Engine[P]) Attributes() []string {
	names := make([]string, 0, len(e.indices))
	for name := range e.indices {
		names = append(names, name)
	}
	return names
}

// Search evaluates q by structural recursion over the Query tree,
// delegating every leaf to its named index and combining child results
// with set algebra at the combinators. It fails fast: the first error
// encountered anywhere in the tree is returned, and no partial result is
// returned alongside it.
func (e *Engine[P]) Search(q Query) (Posting[P], error) {
	switch q.kind {
	case kindOr:
		result := NewPosting[P]()
		for _, child := range q.children {
			posting, err := e.Search(child)
			if err != nil {
				return nil, err
			}
			result = result.Union(posting)
		}
		return result, nil

	case kindAnd:
		if len(q.children) == 0 {
			return NewPosting[P](), nil
		}
		result, err := e.Search(q.children[0])
		if err != nil {
			return nil, err
		}
		for _, child := range q.children[1:] {
			if result.Cardinality() == 0 {
				return result, nil
			}
			posting, err := e.Search(child)
			if err != nil {
				return nil, err
			}
			result = result.Intersect(posting)
		}
		return result, nil

	case kindExclude:
		result, err := e.Search(*q.base)
		if err != nil {
			return nil, err
		}
		for _, subtractor := range q.children {
			if result.Cardinality() == 0 {
				return result, nil
			}
			posting, err := e.Search(subtractor)
			if err != nil {
				return nil, err
			}
			result = result.Difference(posting)
		}
		return result, nil

	default:
		return e.searchLeaf(q)
	}
}

func (e *Engine[P]) searchLeaf(q Query) (Posting[P], error) {
	ent, ok := e.indices[q.attribute]
	if !ok {
		e.logger.Debug("search: unknown attribute", "attribute", q.attribute)
		return nil, NewUnknownAttributeError(q.attribute)
	}
	posting, err := ent.index.Search(q)
	if err != nil {
		e.logger.Debug("search: leaf evaluation failed", "attribute", q.attribute, "kind", leafKindName(q.kind), "error", err)
		return nil, err
	}
	return posting, nil
}
