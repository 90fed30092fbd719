package search

import (
	"errors"
	"fmt"
)

// Sentinel errors are exported values intended for simple equality-style
// checks. Callers should use errors.Is(err, ErrX) to detect these
// conditions; the typed errors below wrap the sentinels with the detail
// that produced them.
var (
	// ErrUnknownAttribute is returned when a predicate references an
	// attribute name not registered on the engine, or a query-string
	// attribute token names an unregistered index.
	ErrUnknownAttribute = errors.New("search: unknown attribute")

	// ErrMismatchedQueryType is returned when an index receives a
	// textual payload that does not parse to its value type.
	ErrMismatchedQueryType = errors.New("search: mismatched query type")

	// ErrUnsupportedQuery is returned when a predicate variant is routed
	// to an index whose capability bitmask does not include it.
	ErrUnsupportedQuery = errors.New("search: unsupported query")
)

// AttributeError is a typed error carrying the offending attribute name.
// It implements Is/Unwrap so callers can match either the typed error
// (via errors.As) or the sentinel ErrUnknownAttribute (via errors.Is).
type AttributeError struct {
	Attribute string
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("search: unknown attribute %q", e.Attribute)
}

func (e *AttributeError) Is(target error) bool { return target == ErrUnknownAttribute }
func (e *AttributeError) Unwrap() error         { return ErrUnknownAttribute }

// NewUnknownAttributeError constructs an *AttributeError for name.
func NewUnknownAttributeError(name string) error {
	return &AttributeError{Attribute: name}
}

// QueryTypeError is a typed error carrying the attribute and value that
// failed to parse into the index's value type.
type QueryTypeError struct {
	Attribute string
	Value     string
	Cause     error
}

func (e *QueryTypeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("search: mismatched query type for attribute %q value %q: %v", e.Attribute, e.Value, e.Cause)
	}
	return fmt.Sprintf("search: mismatched query type for attribute %q value %q", e.Attribute, e.Value)
}

func (e *QueryTypeError) Is(target error) bool { return target == ErrMismatchedQueryType }
func (e *QueryTypeError) Unwrap() error        { return ErrMismatchedQueryType }

// NewMismatchedQueryTypeError constructs a *QueryTypeError.
func NewMismatchedQueryTypeError(attribute, value string, cause error) error {
	return &QueryTypeError{Attribute: attribute, Value: value, Cause: cause}
}

// UnsupportedQueryError is a typed error carrying the attribute and the
// query's kind for diagnostics.
type UnsupportedQueryError struct {
	Attribute string
	Kind      string
}

func (e *UnsupportedQueryError) Error() string {
	return fmt.Sprintf("search: index %q does not support %s queries", e.Attribute, e.Kind)
}

func (e *UnsupportedQueryError) Is(target error) bool { return target == ErrUnsupportedQuery }
func (e *UnsupportedQueryError) Unwrap() error         { return ErrUnsupportedQuery }

// NewUnsupportedQueryError constructs an *UnsupportedQueryError.
func NewUnsupportedQueryError(attribute, kind string) error {
	return &UnsupportedQueryError{Attribute: attribute, Kind: kind}
}
