// Package sorter contains the default [domain.Sorter] implementation.
package sorter

import (
	"github.com/vinicius-lino-figueiredo/gedq/domain"
	"github.com/vinicius-lino-figueiredo/gedq/internal/adapter/coercer"
	"github.com/vinicius-lino-figueiredo/gedq/internal/adapter/comparer"
	"github.com/vinicius-lino-figueiredo/gedq/internal/adapter/resolver"
	"github.com/vinicius-lino-figueiredo/gedq/pkg/structure"
)

// Sorter implements [domain.Sorter] with a recursive three-way partition
// using the first item as pivot. Partitions keep the input order, so the sort
// is stable: items with equal keys in every term keep their relative order.
//
// Average cost is O(n log n) per key, but input already ordered by a key
// degrades to O(n²).
type Sorter struct {
	resolver domain.Resolver
	comparer domain.Comparer
	coercer  domain.Coercer
}

// NewSorter returns a new implementation of [domain.Sorter].
func NewSorter(opts ...domain.SorterOption) domain.Sorter {
	var options domain.SorterOptions
	for _, opt := range opts {
		opt(&options)
	}
	if options.Resolver == nil {
		options.Resolver = resolver.NewResolver()
	}
	if options.Comparer == nil {
		options.Comparer = comparer.NewComparer()
	}
	if options.Coercer == nil {
		options.Coercer = coercer.NewCoercer()
	}
	return &Sorter{
		resolver: options.Resolver,
		comparer: options.Comparer,
		coercer:  options.Coercer,
	}
}

type keyed struct {
	item any
	key  any
	// missing is set when key is the "" standing for an absent property.
	missing bool
}

// Sort implements [domain.Sorter].
func (s *Sorter) Sort(items []any, terms []domain.OrderTerm) []any {
	if len(items) <= 1 || len(terms) == 0 {
		return items
	}
	sorted := s.sortTerm(s.withKeys(items, terms[0]), terms, 0)
	res := make([]any, len(sorted))
	for n, k := range sorted {
		res[n] = k.item
	}
	return res
}

func (s *Sorter) withKeys(items []any, term domain.OrderTerm) []keyed {
	res := make([]keyed, len(items))
	for n, item := range items {
		res[n] = keyed{item: item}
		res[n].key, res[n].missing = s.key(item, term)
	}
	return res
}

func (s *Sorter) withNextKeys(items []keyed, term domain.OrderTerm) []keyed {
	for n := range items {
		items[n].key, items[n].missing = s.key(items[n].item, term)
	}
	return items
}

// key resolves the order key of item. Absent properties are read as "".
func (s *Sorter) key(item any, term domain.OrderTerm) (any, bool) {
	v := s.resolver.Resolve(item, term.Path...)
	missing := domain.IsMissing(v)
	if missing {
		v = ""
	}
	return s.coercer.Coerce(term.Coercion, v), missing && term.Coercion == domain.NoCoercion
}

// compare orders two keys. An absent key compared with a number counts as 0,
// the same value a Number coercion gives it.
func (s *Sorter) compare(a, b keyed) int {
	if _, ok := structure.AsFloat(b.key); ok && a.missing {
		return s.comparer.Compare(0, b.key)
	}
	if _, ok := structure.AsFloat(a.key); ok && b.missing {
		return s.comparer.Compare(a.key, 0)
	}
	return s.comparer.Compare(a.key, b.key)
}

func (s *Sorter) sortTerm(items []keyed, terms []domain.OrderTerm, idx int) []keyed {
	if len(items) <= 1 {
		return items
	}

	term := terms[idx]
	pivot := items[0]

	var lesser, equal, greater []keyed
	for _, item := range items {
		switch c := s.compare(item, pivot); {
		case c < 0:
			lesser = append(lesser, item)
		case c > 0:
			greater = append(greater, item)
		default:
			equal = append(equal, item)
		}
	}

	// ties are broken by the next term before being placed back.
	if next := idx + 1; next < len(terms) {
		equal = s.sortTerm(s.withNextKeys(equal, terms[next]), terms, next)
	}

	first, last := lesser, greater
	if term.Descending {
		first, last = greater, lesser
	}

	res := make([]keyed, 0, len(items))
	res = append(res, s.sortTerm(first, terms, idx)...)
	res = append(res, equal...)
	res = append(res, s.sortTerm(last, terms, idx)...)
	return res
}
