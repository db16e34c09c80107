// Package gedq provides a fluent query engine for in-memory collections of
// maps and structs.
//
// The basic usage starts with creating a new [Query] instance, which can be
// done by calling [New] with the items to be queried:
//
//	res, err := gedq.New(people).
//		Where("age").Gte(18).
//		OrderBy("age desc", "name").
//		Select("name", "address.city as city").
//		Limit(10).
//		Execute()
//
// Filters added with [Query.Where] must all pass, unless the item passes one of
// the filters added with [Query.Or]. Properties are read through dotted paths.
// Struct fields are matched by name or by the "gedq" struct tag.
//
// Without select terms, results are the source items themselves: changing a
// returned map or pointer changes the source.
package gedq

import (
	"github.com/vinicius-lino-figueiredo/gedq/domain"
	"github.com/vinicius-lino-figueiredo/gedq/internal/adapter/catalog"
	"github.com/vinicius-lino-figueiredo/gedq/internal/adapter/comparer"
	"github.com/vinicius-lino-figueiredo/gedq/internal/adapter/querier"
	"github.com/vinicius-lino-figueiredo/gedq/internal/adapter/resolver"
)

var (
	// ErrLimitArguments is returned when [Query.Limit] is called with zero
	// or more than two arguments.
	ErrLimitArguments = domain.ErrLimitArguments
	// ErrNegativeWindow is returned when [Query.Limit] receives a negative
	// offset or limit.
	ErrNegativeWindow = domain.ErrNegativeWindow
	// ErrPageSize is returned by [Query.Paginate] and [Query.Page] when the
	// number of results per page is lower than one.
	ErrPageSize = domain.ErrPageSize
	// ErrPageNumber is returned by [Query.Page] for page numbers lower than
	// one.
	ErrPageNumber = domain.ErrPageNumber
	// ErrQueryCycle is returned when a query would be nested into itself.
	ErrQueryCycle = domain.ErrQueryCycle
	// ErrNilQuery is returned when a nil sub-query is given.
	ErrNilQuery = domain.ErrNilQuery
	// ErrTargetNil is returned when a nil target is passed to [Query.Scan]
	// or [Cursor.Decode].
	ErrTargetNil = domain.ErrTargetNil
	// ErrNonPointer is returned when the target passed to [Query.Scan] or
	// [Cursor.Decode] is not a pointer.
	ErrNonPointer = domain.ErrNonPointer
	// ErrCursorClosed is returned when trying to decode from a closed
	// [Cursor].
	ErrCursorClosed = domain.ErrCursorClosed
	// ErrNoCurrent is returned when calling [Cursor.Decode] before calling
	// [Cursor.Next] or after it returned false.
	ErrNoCurrent = domain.ErrNoCurrent

	// Missing is the value resolved for properties that do not exist.
	Missing = domain.Missing
)

// ErrUnknownOperator is returned when a filter uses an operator that was
// never registered.
type ErrUnknownOperator = domain.ErrUnknownOperator

// ErrInvalidOperand is returned when an operator rejects its operand, such as
// an invalid regular expression passed to [Filter.Matches].
type ErrInvalidOperand = domain.ErrInvalidOperand

// ErrInvalidArgument is returned when select or order terms are not strings.
type ErrInvalidArgument = domain.ErrInvalidArgument

// ErrSyntax is returned when select or order terms are malformed.
type ErrSyntax = domain.ErrSyntax

// ErrDuplicateAlias is returned when two select terms share the same alias.
type ErrDuplicateAlias = domain.ErrDuplicateAlias

// ErrOperatorName is returned when registering an operator without a name or
// a function.
type ErrOperatorName = domain.ErrOperatorName

// ErrDecode is returned by [Decoder.Decode] to wrap third party decoding
// errors.
type ErrDecode = domain.ErrDecode

// Query is a fluent query over an in-memory collection. See
// [querier.Query] for the full method set.
type Query = querier.Query

// Filter is the handle returned by [Query.Where], [Query.And] and [Query.Or].
type Filter = querier.Filter

// FilterFunc reports whether a resolved value satisfies an operand.
type FilterFunc = domain.FilterFunc

// Pagination is returned by [Query.Paginate].
type Pagination = domain.Pagination

// Record is the type of projected results.
type Record = domain.Record

// Catalog holds the operators available to filters.
type Catalog = domain.Catalog

// Resolver reads values from objects through property paths.
type Resolver = domain.Resolver

// Comparer compares values when sorting and filtering.
type Comparer = domain.Comparer

// Sorter orders results.
type Sorter = domain.Sorter

// Projector shapes results according to select terms.
type Projector = domain.Projector

// Decoder copies results into typed values.
type Decoder = domain.Decoder

// Logger receives debug messages about configuration errors and executions.
type Logger = domain.Logger

// Cursor iterates over results one at a time.
type Cursor = domain.Cursor

// Option configures a [Query].
type Option = domain.QueryOption

// New returns a new query reading from sources, which can be objects or
// slices of objects. Use [NewQuery] to pass options.
func New(sources ...any) *Query {
	return querier.NewQuery().From(sources...)
}

// NewQuery returns an empty query configured with the provided options:
//
// - [WithCatalog]: sets the catalog used to look up operators.
//
// - [WithResolver]: sets the resolver used to read property paths.
//
// - [WithComparer]: sets the comparer used for sorting.
//
// - [WithSorter]: sets the sorter used to order results.
//
// - [WithProjector]: sets the projector used to shape results.
//
// - [WithDecoder]: sets the decoder used by [Query.Scan].
//
// - [WithLogger]: sets the logger receiving debug messages.
func NewQuery(options ...Option) *Query {
	return querier.NewQuery(options...)
}

// WithCatalog sets the catalog used to look up operators. Queries created
// without it share the catalog modified by [AddFilter] and [AliasFilter].
func WithCatalog(c Catalog) Option {
	return domain.WithQueryCatalog(c)
}

// WithResolver sets the resolver used to read property paths.
func WithResolver(r Resolver) Option {
	return domain.WithQueryResolver(r)
}

// WithComparer sets the comparer used for sorting.
func WithComparer(c Comparer) Option {
	return domain.WithQueryComparer(c)
}

// WithSorter sets the sorter used to order results.
func WithSorter(s Sorter) Option {
	return domain.WithQuerySorter(s)
}

// WithProjector sets the projector used to shape results.
func WithProjector(p Projector) Option {
	return domain.WithQueryProjector(p)
}

// WithDecoder sets the decoder used by [Query.Scan] and [Cursor.Decode].
func WithDecoder(d Decoder) Option {
	return domain.WithQueryDecoder(d)
}

// WithLogger sets the logger receiving debug messages.
func WithLogger(l Logger) Option {
	return domain.WithQueryLogger(l)
}

// NewCatalog returns a catalog with the built-in operators only. Operators
// registered in it are visible only to queries created with [WithCatalog].
func NewCatalog() Catalog {
	return catalog.NewCatalog()
}

// NewResolver returns the default resolver, reading struct fields through the
// given struct tag instead of "gedq".
func NewResolver(tagName string) Resolver {
	return resolver.NewResolver(domain.WithResolverTagName(tagName))
}

// NewComparer returns the default comparer.
func NewComparer() Comparer {
	return comparer.NewComparer()
}

// AddFilter registers an operator in the catalog shared by queries created
// without [WithCatalog]. Registering an existing name replaces it.
func AddFilter(name string, fn FilterFunc) error {
	return querier.DefaultCatalog().Add(name, fn)
}

// AliasFilter registers names as synonyms of an existing operator in the
// shared catalog.
func AliasFilter(existing string, names ...string) error {
	return querier.DefaultCatalog().Alias(existing, names...)
}

// IsMissing reports whether v is [Missing].
func IsMissing(v any) bool {
	return domain.IsMissing(v)
}
