package querier

import (
	"fmt"
	"strings"

	"github.com/vinicius-lino-figueiredo/gedq/internal/adapter/catalog"
	"github.com/vinicius-lino-figueiredo/gedq/internal/adapter/filter"
)

// Filter is returned by [Query.Where], [Query.And] and [Query.Or]. Calling an
// operator method adds one predicate to the query and returns the query so the
// chain can go on.
type Filter struct {
	q    *Query
	path []string
	b    *filter.Builder
}

func (q *Query) newFilter(path []string, or bool) *Filter {
	addr := q.address(path)
	return &Filter{
		q:    q,
		path: addr,
		b:    filter.NewBuilder(q.tree, addr, or, q.catalog, q.resolver),
	}
}

// Not negates the next operator.
func (f *Filter) Not() *Filter {
	f.b.Not()
	return f
}

// Apply adds a predicate using the operator registered as name. Unknown
// operators and invalid operands are recorded as configuration errors.
func (f *Filter) Apply(name string, operand any) *Query {
	p, err := f.b.Apply(name, operand)
	if err != nil {
		f.q.addFilterErr(fmt.Errorf("where %s: %w", strings.Join(f.path, "."), err))
		return f.q
	}
	f.q.logger.Debugf("query %s: added filter %s", f.q.id, p)
	return f.q
}

// Eq keeps items whose value equals v.
func (f *Filter) Eq(v any) *Query { return f.Apply(catalog.Eq, v) }

// Ne keeps items whose value differs from v.
func (f *Filter) Ne(v any) *Query { return f.Apply(catalog.Ne, v) }

// Gt keeps items whose value is greater than v. Values of a different kind
// never match.
func (f *Filter) Gt(v any) *Query { return f.Apply(catalog.Gt, v) }

// Gte keeps items whose value is greater than or equal to v.
func (f *Filter) Gte(v any) *Query { return f.Apply(catalog.Gte, v) }

// Lt keeps items whose value is less than v.
func (f *Filter) Lt(v any) *Query { return f.Apply(catalog.Lt, v) }

// Lte keeps items whose value is less than or equal to v.
func (f *Filter) Lte(v any) *Query { return f.Apply(catalog.Lte, v) }

// IsEmpty keeps items whose value is missing, nil, zero, false, "", "0" or an
// empty list or map.
func (f *Filter) IsEmpty() *Query { return f.Apply(catalog.IsEmpty, nil) }

// IsString keeps items whose value is a string.
func (f *Filter) IsString() *Query { return f.Apply(catalog.IsString, nil) }

// IsNumber keeps items whose value is a finite number.
func (f *Filter) IsNumber() *Query { return f.Apply(catalog.IsNumber, nil) }

// IsNull keeps items whose value is present and nil.
func (f *Filter) IsNull() *Query { return f.Apply(catalog.IsNull, nil) }

// IsDefined keeps items whose value is present.
func (f *Filter) IsDefined() *Query { return f.Apply(catalog.IsDefined, nil) }

// IsUndefined keeps items whose value is missing.
func (f *Filter) IsUndefined() *Query { return f.Apply(catalog.IsUndefined, nil) }

// IsBoolean keeps items whose value is a bool.
func (f *Filter) IsBoolean() *Query { return f.Apply(catalog.IsBoolean, nil) }

// IsObject keeps items whose value is a map, struct or non-nil pointer.
func (f *Filter) IsObject() *Query { return f.Apply(catalog.IsObject, nil) }

// IsArray keeps items whose value is a slice or array.
func (f *Filter) IsArray() *Query { return f.Apply(catalog.IsArray, nil) }

// IsFunction keeps items whose value is a function.
func (f *Filter) IsFunction() *Query { return f.Apply(catalog.IsFunction, nil) }

// Matches keeps items whose value matches pattern, a string or a
// *regexp.Regexp.
func (f *Filter) Matches(pattern any) *Query { return f.Apply(catalog.Matches, pattern) }

// Like keeps items whose value matches a SQL LIKE pattern, ignoring case.
func (f *Filter) Like(pattern string) *Query { return f.Apply(catalog.Like, pattern) }

// In keeps items whose value equals one of the items of list.
func (f *Filter) In(list any) *Query { return f.Apply(catalog.In, list) }

// HasLength keeps items whose value is a string, list or map of length n.
func (f *Filter) HasLength(n int) *Query { return f.Apply(catalog.HasLength, n) }

// Custom keeps items for which fn returns true.
func (f *Filter) Custom(fn func(v any) bool) *Query { return f.Apply(catalog.Custom, fn) }
