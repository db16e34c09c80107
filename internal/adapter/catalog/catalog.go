// Package catalog contains the default [domain.Catalog] implementation.
//
// A catalog is made of a table of built-in operators, shared by every catalog
// using the same comparer and never modified, and an instance-local table
// holding operators registered at runtime. Local operators take precedence, so
// built-ins can be replaced without affecting other catalogs.
package catalog

import (
	"maps"
	"slices"
	"sync"

	"github.com/vinicius-lino-figueiredo/gedq/domain"
	"github.com/vinicius-lino-figueiredo/gedq/internal/adapter/comparer"
)

var defaultBuiltins = sync.OnceValue(func() map[string]domain.Operator {
	return builtins(comparer.NewComparer())
})

// Catalog implements [domain.Catalog]. It is safe to share a Catalog between
// queries used by different goroutines.
type Catalog struct {
	mu    sync.RWMutex
	base  map[string]domain.Operator
	local map[string]domain.Operator
}

// NewCatalog returns a new implementation of [domain.Catalog].
func NewCatalog(opts ...domain.CatalogOption) domain.Catalog {
	var options domain.CatalogOptions
	for _, opt := range opts {
		opt(&options)
	}
	base := defaultBuiltins()
	if options.Comparer != nil {
		base = builtins(options.Comparer)
	}
	return &Catalog{
		base:  base,
		local: make(map[string]domain.Operator),
	}
}

// Add implements [domain.Catalog].
func (c *Catalog) Add(name string, fn domain.FilterFunc) error {
	if name == "" {
		return domain.ErrOperatorName{Name: name, Reason: "empty name"}
	}
	if fn == nil {
		return domain.ErrOperatorName{Name: name, Reason: "nil function"}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.local[name] = domain.Operator{Name: name, Fn: fn}
	return nil
}

// Alias implements [domain.Catalog]. The alias points to the operator as it
// is registered now; replacing existing later does not change the alias.
func (c *Catalog) Alias(existing string, names ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	op, ok := c.lookup(existing)
	if !ok {
		return domain.ErrUnknownOperator{Operator: existing}
	}
	for _, name := range names {
		if name == "" {
			return domain.ErrOperatorName{Name: name, Reason: "empty name"}
		}
	}
	for _, name := range names {
		alias := op
		alias.Name = name
		c.local[name] = alias
	}
	return nil
}

// Lookup implements [domain.Catalog].
func (c *Catalog) Lookup(name string) (domain.Operator, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	op, ok := c.lookup(name)
	if !ok {
		return domain.Operator{}, domain.ErrUnknownOperator{Operator: name}
	}
	return op, nil
}

func (c *Catalog) lookup(name string) (domain.Operator, bool) {
	if op, ok := c.local[name]; ok {
		return op, true
	}
	op, ok := c.base[name]
	return op, ok
}

// Names implements [domain.Catalog].
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := slices.Collect(maps.Keys(c.base))
	for name := range c.local {
		if _, ok := c.base[name]; !ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}
