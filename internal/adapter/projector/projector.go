// Package projector contains the default [domain.Projector] implementation.
package projector

import (
	"github.com/vinicius-lino-figueiredo/gedq/domain"
	"github.com/vinicius-lino-figueiredo/gedq/internal/adapter/resolver"
)

// Projector implements [domain.Projector].
type Projector struct {
	resolver domain.Resolver
}

// NewProjector returns a new implementation of [domain.Projector].
func NewProjector(opts ...domain.ProjectorOption) domain.Projector {
	var options domain.ProjectorOptions
	for _, opt := range opts {
		opt(&options)
	}
	if options.Resolver == nil {
		options.Resolver = resolver.NewResolver()
	}
	return &Projector{
		resolver: options.Resolver,
	}
}

// Project implements [domain.Projector]. Without terms the given slice is
// returned as is, so results keep referencing the source items. Otherwise each
// item is mapped to a new [domain.Record] keyed by the term aliases. Missing
// properties are stored as nil.
func (p *Projector) Project(items []any, terms []domain.SelectTerm) []any {
	if len(terms) == 0 {
		return items
	}
	res := make([]any, len(items))
	for n, item := range items {
		res[n] = p.projectItem(item, terms)
	}
	return res
}

func (p *Projector) projectItem(item any, terms []domain.SelectTerm) domain.Record {
	rec := make(domain.Record, len(terms))
	for _, term := range terms {
		value := p.resolver.Resolve(item, term.Path...)
		if domain.IsMissing(value) {
			value = nil
		}
		rec[term.Alias] = value
	}
	return rec
}
