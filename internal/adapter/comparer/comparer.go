// Package comparer contains the default [domain.Comparer] implementation.
package comparer

import (
	"cmp"
	"fmt"
	"math"
	"math/big"
	"slices"
	"time"

	"github.com/goccy/go-reflect"
	"github.com/vinicius-lino-figueiredo/gedq/domain"
	"github.com/vinicius-lino-figueiredo/gedq/pkg/structure"
)

// Comparer implements domain.Comparer. Values of different kinds are ordered
// as: undefined, nil, numbers, strings, booleans, dates, lists, objects and,
// last, any other type (ordered by type name and then by their printed form).
type Comparer struct{}

// NewComparer returns a new implementation of domain.Comparer.
func NewComparer() domain.Comparer {
	return &Comparer{}
}

// Comparable implements domain.Comparer.
func (c *Comparer) Comparable(a, b any) bool {
	if domain.IsMissing(a) || domain.IsMissing(b) {
		return false
	}

	if n, ok := c.asNumber(a); ok {
		m, ok := c.asNumber(b)
		return ok && n != nil && m != nil
	}

	equal := false
	switch a.(type) {
	case string:
		_, equal = b.(string)
	case time.Time:
		_, equal = b.(time.Time)
	default:
		return false
	}
	return equal
}

// Equal implements domain.Comparer.
func (c *Comparer) Equal(a, b any) bool {
	if (a == nil && domain.IsMissing(b)) || (domain.IsMissing(a) && b == nil) {
		return true
	}
	if c.isNaN(a) || c.isNaN(b) {
		return false
	}
	return c.Compare(a, b) == 0
}

// Compare implements domain.Comparer.
func (c *Comparer) Compare(a, b any) int {

	// [domain.Missing]
	if c, ok := c.checkUndefined(a, b); ok {
		return c
	}

	// [nil] (null)
	if c, ok := c.checkNil(a, b); ok {
		return c
	}

	// Numbers
	if c, ok := c.checkNumbers(a, b); ok {
		return c
	}

	// Strings
	if c, ok := c.checkStrings(a, b); ok {
		return c
	}

	// Booleans
	if c, ok := c.checkBooleans(a, b); ok {
		return c
	}

	// Dates
	if c, ok := c.checkTime(a, b); ok {
		return c
	}

	// Arrays
	if c, ok := c.checkArrays(a, b); ok {
		return c
	}

	// Objects
	if c, ok := c.checkDocs(a, b); ok {
		return c
	}

	return c.compareOther(a, b)
}

func (c *Comparer) checkUndefined(a, b any) (int, bool) {
	if domain.IsMissing(a) {
		if domain.IsMissing(b) {
			return 0, true
		}
		return -1, true
	}
	if domain.IsMissing(b) {
		return 1, true
	}
	return 0, false
}

func (c *Comparer) checkNil(a, b any) (int, bool) {
	if a == nil {
		if b == nil {
			return 0, true
		}
		return -1, true
	}
	if b == nil {
		return 1, true // no need to test if a == nil
	}
	return 0, false
}

func (c *Comparer) checkNumbers(a, b any) (int, bool) {
	if a, ok := c.asNumber(a); ok {
		// Using big.Float to safely compare float64 and int64 without
		// precision loss
		if b, ok := c.asNumber(b); ok {
			// NaN is neither lesser nor greater than anything
			if a == nil || b == nil {
				return 0, true
			}
			return a.Cmp(b), true
		}
		return -1, true
	}
	if _, ok := c.asNumber(b); ok {
		return 1, true
	}
	return 0, false
}

func (c *Comparer) checkStrings(a, b any) (int, bool) {
	if a, ok := a.(string); ok {
		if b, ok := b.(string); ok {
			return cmp.Compare(a, b), true
		}
		return -1, true
	}
	if _, ok := b.(string); ok {
		return 1, true
	}
	return 0, false
}

func (c *Comparer) checkBooleans(a, b any) (int, bool) {
	if a, ok := a.(bool); ok {
		if b, ok := b.(bool); ok {
			return c.compareBool(a, b), true
		}
		return -1, true
	}
	if _, ok := b.(bool); ok {
		return 1, true
	}
	return 0, false
}

func (c *Comparer) checkTime(a, b any) (int, bool) {
	if a, ok := a.(time.Time); ok {
		if b, ok := b.(time.Time); ok {
			return a.Compare(b), true
		}
		return -1, true
	}
	if _, ok := b.(time.Time); ok {
		return 1, true
	}
	return 0, false
}

func (c *Comparer) checkArrays(a, b any) (int, bool) {
	if a, ok := structure.List(a); ok {
		if b, ok := structure.List(b); ok {
			return c.compareArray(a, b), true
		}
		return -1, true
	}
	if _, ok := structure.List(b); ok {
		return 1, true
	}
	return 0, false
}

func (c *Comparer) checkDocs(a, b any) (int, bool) {
	if a, ok := a.(map[string]any); ok {
		if b, ok := b.(map[string]any); ok {
			return c.compareDoc(a, b), true
		}
		return -1, true
	}
	if _, ok := b.(map[string]any); ok {
		return 1, true
	}
	return 0, false
}

func (c *Comparer) compareArray(a, b []any) int {
	for i := range min(len(a), len(b)) {
		if comp := c.Compare(a[i], b[i]); comp != 0 {
			return comp
		}
	}

	// Common section was identical, longest one wins
	return cmp.Compare(len(a), len(b))
}

func (c *Comparer) compareBool(a, b bool) int {
	if a == b {
		return 0
	}
	if a {
		return 1
	}
	return -1
}

func (c *Comparer) compareDoc(a, b map[string]any) int {
	aKeys := make([]string, 0, len(a))
	for k := range a {
		aKeys = append(aKeys, k)
	}
	bKeys := make([]string, 0, len(b))
	for k := range b {
		bKeys = append(bKeys, k)
	}
	slices.Sort(aKeys)
	slices.Sort(bKeys)

	for i := range min(len(aKeys), len(bKeys)) {
		if comp := c.Compare(a[aKeys[i]], b[bKeys[i]]); comp != 0 {
			return comp
		}
	}

	if comp := cmp.Compare(len(a), len(b)); comp != 0 {
		return comp
	}

	return slices.Compare(aKeys, bKeys)
}

func (c *Comparer) compareOther(a, b any) int {
	ta, tb := reflect.TypeOf(a).String(), reflect.TypeOf(b).String()
	if comp := cmp.Compare(ta, tb); comp != 0 {
		return comp
	}
	return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

// asNumber returns a nil value with a true flag for NaN, since big.Float
// cannot represent it.
func (c *Comparer) asNumber(v any) (*big.Float, bool) {
	f, ok := structure.AsFloat(v)
	if !ok {
		return nil, false
	}
	if math.IsNaN(f) {
		return nil, true
	}
	r := big.NewFloat(0)
	switch n := v.(type) {
	case int:
		r.SetInt64(int64(n))
	case int8:
		r.SetInt64(int64(n))
	case int16:
		r.SetInt64(int64(n))
	case int32:
		r.SetInt64(int64(n))
	case int64:
		r.SetInt64(n)
	case uint:
		r.SetUint64(uint64(n))
	case uint8:
		r.SetUint64(uint64(n))
	case uint16:
		r.SetUint64(uint64(n))
	case uint32:
		r.SetUint64(uint64(n))
	case uint64:
		r.SetUint64(n)
	default:
		r.SetFloat64(f)
	}
	return r, true
}

func (c *Comparer) isNaN(v any) bool {
	f, ok := structure.AsFloat(v)
	return ok && math.IsNaN(f)
}
