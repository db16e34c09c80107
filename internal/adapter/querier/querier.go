// Package querier contains [Query], which ties the filter tree, the sorter and
// the projector together over an in-memory collection.
package querier

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/vinicius-lino-figueiredo/gedq/domain"
	"github.com/vinicius-lino-figueiredo/gedq/internal/adapter/catalog"
	"github.com/vinicius-lino-figueiredo/gedq/internal/adapter/comparer"
	"github.com/vinicius-lino-figueiredo/gedq/internal/adapter/cursor"
	"github.com/vinicius-lino-figueiredo/gedq/internal/adapter/decoder"
	"github.com/vinicius-lino-figueiredo/gedq/internal/adapter/filter"
	"github.com/vinicius-lino-figueiredo/gedq/internal/adapter/grammar"
	"github.com/vinicius-lino-figueiredo/gedq/internal/adapter/projector"
	"github.com/vinicius-lino-figueiredo/gedq/internal/adapter/resolver"
	"github.com/vinicius-lino-figueiredo/gedq/internal/adapter/sorter"
	"github.com/vinicius-lino-figueiredo/gedq/pkg/log"
	"github.com/vinicius-lino-figueiredo/gedq/pkg/structure"
)

// DefaultCatalog returns the catalog shared by every query created without
// [domain.WithQueryCatalog].
var DefaultCatalog = sync.OnceValue(func() domain.Catalog {
	return catalog.NewCatalog()
})

type facet uint8

const (
	fromFacet facet = iota
	selectFacet
	orderFacet
	limitFacet
	facets
)

// Query is a mutable query over an in-memory collection. Each call to From,
// Select, OrderBy or Limit replaces the previous value of that facet, while
// filters accumulate.
//
// Configuration errors do not interrupt the chain. They are kept and returned
// by [Query.Err] and by every method that reads data. A failed call leaves the
// previous value of its facet untouched.
//
// When no select terms are set, results are the source items themselves, so
// changes made to returned maps or pointers are visible in the source.
//
// A Query must not be configured and executed concurrently.
type Query struct {
	id      uuid.UUID
	sources []any
	tree    *filter.Tree
	order   []domain.OrderTerm
	sel     []domain.SelectTerm
	offset  int
	limit   *int

	errs       [facets]error
	filterErrs []error

	catalog   domain.Catalog
	resolver  domain.Resolver
	sorter    domain.Sorter
	projector domain.Projector
	decoder   domain.Decoder
	logger    domain.Logger
}

// NewQuery returns an empty query. Without sources, every result set is empty.
func NewQuery(opts ...domain.QueryOption) *Query {
	var options domain.QueryOptions
	for _, opt := range opts {
		opt(&options)
	}
	if options.Catalog == nil {
		options.Catalog = DefaultCatalog()
	}
	if options.Resolver == nil {
		options.Resolver = resolver.NewResolver()
	}
	if options.Comparer == nil {
		options.Comparer = comparer.NewComparer()
	}
	if options.Sorter == nil {
		options.Sorter = sorter.NewSorter(
			domain.WithSorterResolver(options.Resolver),
			domain.WithSorterComparer(options.Comparer),
		)
	}
	if options.Projector == nil {
		options.Projector = projector.NewProjector(
			domain.WithProjectorResolver(options.Resolver),
		)
	}
	if options.Decoder == nil {
		options.Decoder = decoder.NewDecoder()
	}
	if options.Logger == nil {
		options.Logger = log.Default
	}
	return &Query{
		id:        uuid.New(),
		tree:      filter.NewTree(),
		catalog:   options.Catalog,
		resolver:  options.Resolver,
		sorter:    options.Sorter,
		projector: options.Projector,
		decoder:   options.Decoder,
		logger:    options.Logger,
	}
}

// ID returns the identifier used to tell queries apart in logs.
func (q *Query) ID() uuid.UUID {
	return q.id
}

// Err returns every configuration error currently recorded, joined.
func (q *Query) Err() error {
	errs := make([]error, 0, len(q.errs)+len(q.filterErrs))
	errs = append(errs, q.errs[:]...)
	errs = append(errs, q.filterErrs...)
	return errors.Join(errs...)
}

func (q *Query) setErr(f facet, err error) {
	q.errs[f] = err
	if err != nil {
		q.logger.Debugf("query %s: %v", q.id, err)
	}
}

func (q *Query) addFilterErr(err error) {
	q.filterErrs = append(q.filterErrs, err)
	q.logger.Debugf("query %s: %v", q.id, err)
}

// From replaces the source collection. Each argument can be an object (a
// string keyed map, a struct or a pointer to one) or a slice or array of
// objects, which is flattened one level.
func (q *Query) From(sources ...any) *Query {
	items, err := structure.Objects(sources...)
	if err != nil {
		q.setErr(fromFacet, fmt.Errorf("from: %w", err))
		return q
	}
	q.sources = items
	q.setErr(fromFacet, nil)
	return q
}

// Select replaces the select list. Each term must be a string in the form
// "path[ as alias]".
func (q *Query) Select(terms ...any) *Query {
	sel, err := grammar.ParseSelect(terms...)
	if err != nil {
		q.setErr(selectFacet, err)
		return q
	}
	q.sel = sel
	q.setErr(selectFacet, nil)
	return q
}

// OrderBy replaces the order list. Each term must be a string in the form
// "path[:String|Number|Boolean|Date][ asc|desc]".
func (q *Query) OrderBy(terms ...any) *Query {
	order, err := grammar.ParseOrder(terms...)
	if err != nil {
		q.setErr(orderFacet, err)
		return q
	}
	q.order = order
	q.setErr(orderFacet, nil)
	return q
}

// Limit sets the result window. Limit(n) returns at most n results, and
// Limit(offset, n) skips offset results first.
func (q *Query) Limit(args ...int) *Query {
	var offset, limit int
	switch len(args) {
	case 1:
		limit = args[0]
	case 2:
		offset, limit = args[0], args[1]
	default:
		q.setErr(limitFacet, fmt.Errorf("limit: %w", domain.ErrLimitArguments))
		return q
	}
	if offset < 0 || limit < 0 {
		q.setErr(limitFacet, fmt.Errorf("limit: %w", domain.ErrNegativeWindow))
		return q
	}
	q.offset, q.limit = offset, &limit
	q.setErr(limitFacet, nil)
	return q
}

// Where returns a filter handle bound to the AND list. The path segments are
// joined, so Where("a.b") and Where("a", "b") are the same. Without a path,
// the filter is evaluated against the whole item.
func (q *Query) Where(path ...string) *Filter {
	return q.newFilter(path, false)
}

// And is the same as [Query.Where].
func (q *Query) And(path ...string) *Filter {
	return q.Where(path...)
}

// Or returns a filter handle bound to the OR list. Items failing any AND
// filter still pass if they satisfy one of the OR filters.
func (q *Query) Or(path ...string) *Filter {
	return q.newFilter(path, true)
}

// WhereQuery adds the filters of sub as a single AND entry. The sub-query is
// kept by reference, so filters later added to it are also evaluated.
func (q *Query) WhereQuery(sub *Query) *Query {
	return q.addQuery("where", sub, false)
}

// AndQuery is the same as [Query.WhereQuery].
func (q *Query) AndQuery(sub *Query) *Query {
	return q.WhereQuery(sub)
}

// OrQuery adds the filters of sub as a single OR entry.
func (q *Query) OrQuery(sub *Query) *Query {
	return q.addQuery("or", sub, true)
}

// addQuery rejects sub when it is q or already holds q, which would make the
// filter tree cyclic. Adding the same sub-query more than once is allowed.
func (q *Query) addQuery(method string, sub *Query, or bool) *Query {
	if sub == nil {
		q.addFilterErr(fmt.Errorf("%s: %w", method, domain.ErrNilQuery))
		return q
	}
	if sub.tree.Contains(q.tree) {
		q.addFilterErr(fmt.Errorf("%s: %w", method, domain.ErrQueryCycle))
		return q
	}
	if err := sub.Err(); err != nil {
		q.addFilterErr(fmt.Errorf("%s: sub-query: %w", method, err))
		return q
	}
	q.tree.Add(filter.Branch(sub.tree), or)
	q.logger.Debugf("query %s: nested query %s", q.id, sub.id)
	return q
}

// AddFilter registers an operator in the catalog of q. Queries created without
// a catalog share the same one, so the operator becomes visible to all of
// them.
func (q *Query) AddFilter(name string, fn domain.FilterFunc) error {
	return q.catalog.Add(name, fn)
}

// AliasFilter registers names as synonyms of an existing operator in the
// catalog of q.
func (q *Query) AliasFilter(existing string, names ...string) error {
	return q.catalog.Alias(existing, names...)
}

func (q *Query) address(path []string) []string {
	var res []string
	for _, p := range path {
		res = append(res, q.resolver.GetAddress(p)...)
	}
	return res
}

// Execute returns the items passing the filters, in source order or sorted by
// the order terms, restricted to the window set by Limit and projected by the
// select terms.
func (q *Query) Execute() ([]any, error) {
	if err := q.Err(); err != nil {
		return nil, err
	}
	return q.execute(q.offset, q.limit), nil
}

// Get is the same as [Query.Execute].
func (q *Query) Get() ([]any, error) {
	return q.Execute()
}

func (q *Query) execute(offset int, limit *int) []any {
	if limit != nil && *limit == 0 {
		return []any{}
	}

	// without sorting, the scan can stop once the window is full.
	stopAt := -1
	if len(q.order) == 0 && limit != nil {
		stopAt = offset + *limit
	}

	scanned := 0
	matched := make([]any, 0)
	for _, item := range q.sources {
		if len(matched) == stopAt {
			break
		}
		scanned++
		if q.tree.Evaluate(item) {
			matched = append(matched, item)
		}
	}

	res := q.sorter.Sort(matched, q.order)
	res = window(res, offset, limit)
	res = q.projector.Project(res, q.sel)

	q.logger.Debugf("query %s: scanned %d, matched %d, returned %d",
		q.id, scanned, len(matched), len(res))
	return res
}

func window(items []any, offset int, limit *int) []any {
	start := min(offset, len(items))
	end := len(items)
	if limit != nil {
		end = min(start+*limit, end)
	}
	return items[start:end]
}

// Count returns the number of source items passing the filters. Order, select
// and limit are ignored.
func (q *Query) Count() (int, error) {
	if err := q.Err(); err != nil {
		return 0, err
	}
	n := 0
	for _, item := range q.sources {
		if q.tree.Evaluate(item) {
			n++
		}
	}
	return n, nil
}

// Paginate splits the result of [Query.Execute] into pages of perPage items.
// Only the last page can hold fewer items.
func (q *Query) Paginate(perPage int) (domain.Pagination, error) {
	if perPage < 1 {
		return domain.Pagination{}, fmt.Errorf("paginate: %w", domain.ErrPageSize)
	}
	res, err := q.Execute()
	if err != nil {
		return domain.Pagination{}, err
	}
	pages := make([][]any, 0, (len(res)+perPage-1)/perPage)
	for start := 0; start < len(res); start += perPage {
		end := min(start+perPage, len(res))
		pages = append(pages, res[start:end:end])
	}
	return domain.Pagination{
		TotalResults: len(res),
		TotalPages:   len(pages),
		Pages:        pages,
	}, nil
}

// Page returns a single page of results, numbered from 1. The window set by
// Limit is ignored and left unchanged.
func (q *Query) Page(number, perPage int) ([]any, error) {
	if perPage < 1 {
		return nil, fmt.Errorf("page: %w", domain.ErrPageSize)
	}
	if number < 1 {
		return nil, fmt.Errorf("page: %w", domain.ErrPageNumber)
	}
	if err := q.Err(); err != nil {
		return nil, err
	}
	return q.execute((number-1)*perPage, &perPage), nil
}

// Test reports whether the filters of q evaluate to expected for item. Source,
// order, select and limit are not used. It returns false if q holds
// configuration errors.
func (q *Query) Test(item any, expected bool) bool {
	if q.Err() != nil {
		return false
	}
	return q.tree.Evaluate(item) == expected
}

// Assert reports whether item passes the filters of q. It returns false if q
// holds configuration errors.
func (q *Query) Assert(item any) bool {
	return q.Test(item, true)
}

// Reject reports whether item fails the filters of q. It also returns false if
// q holds configuration errors, so a false result only means the item passes
// when [Query.Err] is nil.
func (q *Query) Reject(item any) bool {
	return q.Test(item, false)
}

// Scan executes the query and decodes the results into target, which should
// be a pointer to a slice.
func (q *Query) Scan(target any) error {
	res, err := q.Execute()
	if err != nil {
		return err
	}
	if err := q.decoder.Decode(res, target); err != nil {
		return fmt.Errorf("scan: %w", err)
	}
	return nil
}

// Cursor returns a cursor over the results of the query. Without order terms
// the sources are only scanned as the cursor advances. The cursor stops early
// with the context error once ctx is done.
//
// The cursor reads the query as it is when Cursor is called: later calls to
// From, Select, Limit or any filter method do not change its results. Nested
// queries are still kept by reference.
func (q *Query) Cursor(ctx context.Context) (domain.Cursor, error) {
	if err := q.Err(); err != nil {
		return nil, err
	}
	return cursor.NewCursor(ctx, q.seq(), q.decoder)
}

func (q *Query) seq() iter.Seq[any] {
	if len(q.order) != 0 {
		return slices.Values(q.execute(q.offset, q.limit))
	}

	sources, tree, sel, offset := q.sources, q.tree.Copy(), q.sel, q.offset
	limit := -1
	if q.limit != nil {
		limit = *q.limit
	}
	return func(yield func(any) bool) {
		skipped, returned := 0, 0
		for _, item := range sources {
			if returned == limit {
				return
			}
			if !tree.Evaluate(item) {
				continue
			}
			if skipped < offset {
				skipped++
				continue
			}
			returned++
			if !yield(q.projector.Project([]any{item}, sel)[0]) {
				return
			}
		}
	}
}
