package search

import "strings"

// QueryFromString lexes text and compiles it into a predicate tree
// against this engine's registered indices, plus the freetext tokens
// collected along the way. It fails with UnknownAttribute on the first
// attribute token naming an unregistered index.
//
// Grounded on the compiler described alongside the original project's
// query_lexer.rs: each Attribute token's values are mapped to leaves by
// consulting the target index's capability bitmask, inclusion tokens
// become an And, and exclusion tokens (if any) wrap that And in an
// Exclude.
func (e *Engine[P]) QueryFromString(text string) (Query, []string, error) {
	var includes, excludes []Query
	var freetext []string

	lex := NewLexer(text)
	for {
		tok, ok := lex.Next()
		if !ok {
			break
		}
		if tok.Kind == TokenFreetext {
			freetext = append(freetext, tok.Freetext)
			continue
		}

		ent, ok := e.indices[tok.Attribute]
		if !ok {
			e.logger.Debug("search: query string names unknown attribute", "attribute", tok.Attribute)
			return Query{}, nil, NewUnknownAttributeError(tok.Attribute)
		}

		leaf, ok := compileValues(tok.Attribute, tok.Values, ent.caps)
		if !ok {
			continue
		}
		if tok.Include {
			includes = append(includes, leaf)
		} else {
			excludes = append(excludes, leaf)
		}
	}

	query := And(includes...)
	if len(excludes) > 0 {
		query = Exclude(query, excludes...)
	}
	return query, freetext, nil
}

// compileValues maps an attribute token's value list to a single leaf
// query, reporting ok == false for an empty value list (which
// contributes nothing to the compiled tree).
func compileValues(attribute string, values []string, caps Capability) (Query, bool) {
	switch len(values) {
	case 0:
		return Query{}, false
	case 1:
		return compileValue(attribute, values[0], caps), true
	default:
		leaves := make([]Query, len(values))
		for i, v := range values {
			leaves[i] = compileValue(attribute, v, caps)
		}
		return Or(leaves...), true
	}
}

// compileValue maps a single value string to a leaf query, following
// the operator precedence: >minimum, <maximum, =exact, lo-hi range,
// prefix, falling back to exact even when the index does not declare
// it (evaluation will then surface UnsupportedQuery).
func compileValue(attribute, value string, caps Capability) Query {
	switch {
	case strings.HasPrefix(value, ">") && caps.Has(CapMinimum):
		return Minimum(attribute, value[1:])
	case strings.HasPrefix(value, "<") && caps.Has(CapMaximum):
		return Maximum(attribute, value[1:])
	case strings.HasPrefix(value, "=") && caps.Has(CapExact):
		return Exact(attribute, value[1:])
	}

	if caps.Has(CapInRange) && strings.Contains(value, "-") {
		if parts := strings.Split(value, "-"); len(parts) == 2 {
			return InRange(attribute, parts[0], parts[1])
		}
	}

	if caps.Has(CapPrefix) {
		return Prefix(attribute, value)
	}
	return Exact(attribute, value)
}
