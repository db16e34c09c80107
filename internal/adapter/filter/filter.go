// Package filter contains the predicate tree evaluated against every item of a
// query.
package filter

import (
	"slices"
	"strings"

	"github.com/vinicius-lino-figueiredo/gedq/domain"
)

// Kind tags the variant held by a [Node].
type Kind uint8

// Node variants.
const (
	LeafNode Kind = iota
	BranchNode
)

// Predicate is a filter leaf: an operator bound to an optional property path
// and an operand.
type Predicate struct {
	// Path is nil for predicates evaluated against the whole item.
	Path     []string
	Operator string
	Operand  any
	Negated  bool

	fn       domain.FilterFunc
	resolver domain.Resolver
}

// Evaluate implements [domain.Evaluator].
func (p *Predicate) Evaluate(item any) bool {
	value := item
	if p.Path != nil {
		value = p.resolver.Resolve(item, p.Path...)
	}
	return p.fn(value, p.Operand) != p.Negated
}

// String returns a readable form of the predicate, used in logs.
func (p *Predicate) String() string {
	var b strings.Builder
	if p.Path != nil {
		b.WriteString(strings.Join(p.Path, "."))
		b.WriteByte(' ')
	}
	if p.Negated {
		b.WriteString("not ")
	}
	b.WriteString(p.Operator)
	return b.String()
}

// Node is either a [Predicate] or a nested [Tree].
type Node struct {
	Kind   Kind
	Leaf   *Predicate
	Branch *Tree
}

// Leaf wraps a predicate in a node.
func Leaf(p *Predicate) Node {
	return Node{Kind: LeafNode, Leaf: p}
}

// Branch wraps a tree in a node.
func Branch(t *Tree) Node {
	return Node{Kind: BranchNode, Branch: t}
}

// Evaluate implements [domain.Evaluator].
func (n Node) Evaluate(item any) bool {
	switch n.Kind {
	case BranchNode:
		return n.Branch.Evaluate(item)
	default:
		return n.Leaf.Evaluate(item)
	}
}

// Tree holds two ordered lists of nodes. An item passes a tree if it passes
// every node of the AND list or, failing that, any node of the OR list.
type Tree struct {
	and []Node
	or  []Node
}

// NewTree returns an empty tree, which every item passes.
func NewTree() *Tree {
	return &Tree{}
}

// AddAnd appends a node to the AND list.
func (t *Tree) AddAnd(n Node) {
	t.and = append(t.and, n)
}

// AddOr appends a node to the OR list.
func (t *Tree) AddOr(n Node) {
	t.or = append(t.or, n)
}

// Add appends a node to the OR list if or is true, or to the AND list
// otherwise.
func (t *Tree) Add(n Node, or bool) {
	if or {
		t.AddOr(n)
		return
	}
	t.AddAnd(n)
}

// Len returns the number of nodes in both lists.
func (t *Tree) Len() (and int, or int) {
	return len(t.and), len(t.or)
}

// Evaluate implements [domain.Evaluator]. The AND list is scanned until the
// first failure, after which the OR list is scanned until the first success.
// An empty AND list always passes.
func (t *Tree) Evaluate(item any) bool {
	for _, n := range t.and {
		if n.Evaluate(item) {
			continue
		}
		for _, o := range t.or {
			if o.Evaluate(item) {
				return true
			}
		}
		return false
	}
	return true
}

// Copy returns a tree holding the nodes t holds now. Nodes added to t
// afterwards are not seen by the copy, but nested trees are shared.
func (t *Tree) Copy() *Tree {
	return &Tree{
		and: slices.Clone(t.and),
		or:  slices.Clone(t.or),
	}
}

// Contains reports whether other is t or is nested anywhere inside t.
func (t *Tree) Contains(other *Tree) bool {
	if t == other {
		return true
	}
	for _, list := range [2][]Node{t.and, t.or} {
		for _, n := range list {
			if n.Kind == BranchNode && n.Branch.Contains(other) {
				return true
			}
		}
	}
	return false
}
