// Package domain contains domain-specific interfaces and option types for gedq.
//
// This package defines the core interfaces that must be implemented by
// adapters, as well as functional options for configuring components like
// resolvers, catalogs, sorters, projectors and queries.
package domain

// Resolver walks dot-delimited property paths through arbitrary values.
type Resolver interface {
	// GetAddress splits a textual property path into its segments.
	GetAddress(path string) []string
	// Resolve follows the given segments starting at obj. If any
	// intermediate value is absent or falsy, or if the final value is
	// absent, [Missing] is returned instead. Resolve never fails.
	Resolve(obj any, path ...string) any
}

// Comparer provides the natural ordering used by filters and sorts.
type Comparer interface {
	// Compare returns -1, 0, or 1 based on the comparison of two values.
	// Values of different kinds are ordered by kind, so Compare is total.
	Compare(a, b any) int
	// Comparable returns true if both values share an orderable kind
	// (numbers, strings or dates).
	Comparable(a, b any) bool
	// Equal reports loose equality: numbers are compared by value
	// regardless of their Go type, and nil equals [Missing].
	Equal(a, b any) bool
}

// Coercer converts order keys before comparison.
type Coercer interface {
	// Coerce converts v according to c. [NoCoercion] returns v unchanged.
	Coerce(c Coercion, v any) any
}

// Catalog is a registry of named binary predicates.
type Catalog interface {
	// Add registers fn under name, replacing any previous operator with
	// the same name.
	Add(name string, fn FilterFunc) error
	// Alias registers every name in names as a synonym of existing.
	Alias(existing string, names ...string) error
	// Lookup returns the operator registered under name.
	Lookup(name string) (Operator, error)
	// Names returns all registered operator names, sorted.
	Names() []string
}

// Evaluator is anything that can decide whether an item passes a filter.
type Evaluator interface {
	// Evaluate returns true if item passes.
	Evaluate(item any) bool
}

// Sorter orders a result set by a chain of order terms.
type Sorter interface {
	// Sort returns items ordered by terms. The first term is the primary
	// key. Items with equal keys keep their relative order.
	Sort(items []any, terms []OrderTerm) []any
}

// Projector maps passing items to their output shape.
type Projector interface {
	// Project returns one output per item. With no select terms the items
	// themselves are returned.
	Project(items []any, terms []SelectTerm) []any
}

// Decoder converts between different data representations.
type Decoder interface {
	// Decode converts src into tgt, which must be a non-nil pointer.
	Decode(src any, tgt any) error
}

// Logger is the subset of a structured logger used by queries.
type Logger interface {
	Debugf(format string, args ...any)
	Warnf(format string, args ...any)
}

// Cursor iterates over query results one item at a time.
type Cursor interface {
	// Next advances the cursor to the next result, returning true if one is
	// available.
	Next() bool
	// Value returns the current result.
	Value() any
	// Decode copies the current result into target.
	Decode(target any) error
	// Err returns any error that occurred during iteration.
	Err() error
	// Close releases cursor resources and should be called when done.
	Close() error
}
