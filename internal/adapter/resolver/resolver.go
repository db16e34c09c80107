// Package resolver contains the default [domain.Resolver] implementation.
package resolver

import (
	"strconv"
	"strings"
	"sync"

	"github.com/goccy/go-reflect"
	"github.com/vinicius-lino-figueiredo/gedq/domain"
	"github.com/vinicius-lino-figueiredo/gedq/pkg/structure"
)

// Resolver implements [domain.Resolver].
type Resolver struct {
	tagName string
	// struct type -> property name -> field index
	fields sync.Map
}

// NewResolver returns a new implementation of [domain.Resolver].
func NewResolver(opts ...domain.ResolverOption) domain.Resolver {
	options := domain.ResolverOptions{
		TagName: structure.TagName,
	}
	for _, opt := range opts {
		opt(&options)
	}
	return &Resolver{tagName: options.TagName}
}

// GetAddress implements [domain.Resolver].
func (r *Resolver) GetAddress(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}

// Resolve implements [domain.Resolver].
func (r *Resolver) Resolve(obj any, path ...string) any {
	curr := obj
	for _, part := range path {
		// falsy values cannot be traversed, not even when they could
		// technically be indexed (empty strings, for instance).
		if !structure.Truthy(curr) {
			return domain.Missing
		}
		next, ok := r.child(curr, part)
		if !ok {
			return domain.Missing
		}
		curr = next
	}
	return curr
}

func (r *Resolver) child(obj any, part string) (any, bool) {
	switch t := obj.(type) {
	case map[string]any:
		v, ok := t[part]
		return v, ok
	case []any:
		return r.listItem(len(t), part, func(i int) any { return t[i] })
	case string:
		if part == "length" {
			return len([]rune(t)), true
		}
		return nil, false
	}

	v, ok := structure.Indirect(reflect.ValueNoEscapeOf(obj))
	if !ok {
		return nil, false
	}

	switch v.Kind() {
	case reflect.Map:
		keyTyp := v.Type().Key()
		if keyTyp.Kind() != reflect.String {
			return nil, false
		}
		value := v.MapIndex(reflect.ValueOf(part).Convert(keyTyp))
		if !value.IsValid() {
			return nil, false
		}
		return value.Interface(), true
	case reflect.Struct:
		idx, ok := r.fieldIndex(v.Type(), part)
		if !ok {
			return nil, false
		}
		return v.Field(idx).Interface(), true
	case reflect.Slice, reflect.Array:
		if _, isBytes := obj.([]byte); isBytes {
			return nil, false
		}
		return r.listItem(v.Len(), part, func(i int) any {
			return v.Index(i).Interface()
		})
	default:
		return nil, false
	}
}

func (r *Resolver) listItem(length int, part string, get func(int) any) (any, bool) {
	i, err := strconv.Atoi(part)
	if err != nil {
		if part == "length" {
			return length, true
		}
		return nil, false
	}
	if i < 0 || i >= length {
		return nil, false
	}
	return get(i), true
}

func (r *Resolver) fieldIndex(typ reflect.Type, part string) (int, bool) {
	cached, ok := r.fields.Load(typ)
	if !ok {
		names := make(map[string]int, typ.NumField())
		for n := range typ.NumField() {
			name, ok := structure.FieldName(typ.Field(n), r.tagName)
			if !ok {
				continue
			}
			names[name] = n
		}
		cached, _ = r.fields.LoadOrStore(typ, names)
	}
	idx, ok := cached.(map[string]int)[part]
	return idx, ok
}
