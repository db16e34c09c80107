package filter

import (
	"fmt"

	"github.com/vinicius-lino-figueiredo/gedq/domain"
)

// Builder binds a property path and a branch of a [Tree] so that a single
// operator call builds and commits one predicate.
type Builder struct {
	path     []string
	tree     *Tree
	or       bool
	negated  bool
	catalog  domain.Catalog
	resolver domain.Resolver
}

// NewBuilder returns a builder that appends to the OR list of tree if or is
// true, or to its AND list otherwise. A nil path builds predicates evaluated
// against the whole item.
func NewBuilder(tree *Tree, path []string, or bool, c domain.Catalog, r domain.Resolver) *Builder {
	return &Builder{
		path:     path,
		tree:     tree,
		or:       or,
		catalog:  c,
		resolver: r,
	}
}

// Not toggles negation for the next predicate.
func (b *Builder) Not() *Builder {
	b.negated = !b.negated
	return b
}

// Apply looks up the operator, prepares the operand and appends the resulting
// predicate to the bound branch. Nothing is appended if an error is returned.
func (b *Builder) Apply(name string, operand any) (*Predicate, error) {
	op, err := b.catalog.Lookup(name)
	if err != nil {
		return nil, err
	}
	if op.Prepare != nil {
		if operand, err = op.Prepare(operand); err != nil {
			return nil, fmt.Errorf("preparing operand: %w", err)
		}
	}
	p := &Predicate{
		Path:     b.path,
		Operator: name,
		Operand:  operand,
		Negated:  b.negated,
		fn:       op.Fn,
		resolver: b.resolver,
	}
	b.tree.Add(Leaf(p), b.or)
	return p, nil
}
