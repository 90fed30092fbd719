// Package legacy is the schema-driven auto-construction front door
// preserved from the original project's early SearchEngine::new(&schema)
// API (src/attributes.rs, src/lib.rs and src/engine.rs predate the
// general Query algebra). New code should construct indices directly
// with package search and register them on a search.Engine; this
// package exists for callers migrating off the schema shape.
package legacy

import searchengine "github.com/jlrickert/searchengine"

// AttributeKind names the match discipline a legacy schema attribute
// uses. It is a closed, three-way choice, unlike package search's open
// Capability bitmask.
type AttributeKind int

const (
	// ExactMatch attributes must match exactly to be considered.
	ExactMatch AttributeKind = iota

	// PrefixMatch attributes only need to match on the beginning.
	PrefixMatch

	// RangeMatch attributes can be sorted and searched by range.
	RangeMatch
)

// Attribute is one entry of an AttributeSchema.
type Attribute struct {
	Name string
	Kind AttributeKind
}

// AttributeSchema is an ordered collection of named, typed attributes
// used to auto-construct an Engine.
type AttributeSchema struct {
	attributes []Attribute
}

// NewAttributeSchema returns an empty schema.
func NewAttributeSchema() *AttributeSchema {
	return &AttributeSchema{}
}

// RegisterAttribute appends a new attribute to the schema.
func (s *AttributeSchema) RegisterAttribute(name string, kind AttributeKind) {
	s.attributes = append(s.attributes, Attribute{Name: name, Kind: kind})
}

// Count returns the number of registered attributes.
func (s *AttributeSchema) Count() int { return len(s.attributes) }

// Iter returns a copy of the registered attributes in registration
// order.
func (s *AttributeSchema) Iter() []Attribute {
	out := make([]Attribute, len(s.attributes))
	copy(out, s.attributes)
	return out
}

// inserter is satisfied by every index this package constructs: all
// three happen to share the Insert(int, string) shape once their value
// type is fixed to string.
type inserter interface {
	Insert(id int, value string)
}

// Engine is a schema-constructed search.Engine[int] over string
// primary-key-free rows (the original project indexed plain usize
// ids). Attribute values are always text; RangeMatch attributes are
// ordered lexicographically as strings.
type Engine struct {
	engine    *searchengine.Engine[int]
	inserters map[string]inserter
}

// NewEngine builds an Engine with one index per schema attribute,
// choosing the index kind from each attribute's AttributeKind.
func NewEngine(schema *AttributeSchema) *Engine {
	e := &Engine{
		engine:    searchengine.NewEngine[int](),
		inserters: make(map[string]inserter, schema.Count()),
	}
	identity := func(s string) (string, error) { return s, nil }

	for _, attr := range schema.attributes {
		switch attr.Kind {
		case PrefixMatch:
			idx := searchengine.NewPrefixIndex[int]()
			e.engine.AddIndex(attr.Name, idx)
			e.inserters[attr.Name] = idx
		case RangeMatch:
			idx := searchengine.NewRangeIndex[int, string](identity)
			e.engine.AddIndex(attr.Name, idx)
			e.inserters[attr.Name] = idx
		default: // ExactMatch
			idx := searchengine.NewStringHashIndex[int]()
			e.engine.AddIndex(attr.Name, idx)
			e.inserters[attr.Name] = idx
		}
	}
	return e
}

// Insert records value for primaryID under attribute. Unknown
// attributes are silently ignored, matching the original project's
// SearchEngine::insert.
func (e *Engine) Insert(primaryID int, attribute, value string) {
	if ins, ok := e.inserters[attribute]; ok {
		ins.Insert(primaryID, value)
	}
}

// SearchAttribute evaluates an exact-match lookup of value against
// attribute, matching the original project's SearchEngine::search_attribute.
func (e *Engine) SearchAttribute(attribute, value string) (searchengine.Posting[int], error) {
	return e.engine.Search(searchengine.Exact(attribute, value))
}

// Search evaluates an arbitrary predicate tree against this engine's
// indices.
func (e *Engine) Search(q searchengine.Query) (searchengine.Posting[int], error) {
	return e.engine.Search(q)
}
