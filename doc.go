// Package search is an in-memory, embeddable multi-attribute search
// library. Callers index rows under one or more named attributes and
// retrieve the set of primary identifiers whose attribute values satisfy
// a compound predicate.
//
// It is not a database: nothing is persisted, there are no transactions,
// and there is no network surface. See the package-level types Engine,
// Query, and Index for the three moving parts — a named collection of
// indices, a recursive predicate tree, and the per-attribute structures
// that evaluate leaf predicates.
package search
