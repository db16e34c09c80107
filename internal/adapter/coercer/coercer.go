// Package coercer contains the default [domain.Coercer] implementation.
package coercer

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/vinicius-lino-figueiredo/gedq/domain"
	"github.com/vinicius-lino-figueiredo/gedq/pkg/structure"
)

// Coercer implements [domain.Coercer].
type Coercer struct{}

// NewCoercer returns a new implementation of [domain.Coercer].
func NewCoercer() domain.Coercer {
	return &Coercer{}
}

// Coerce implements [domain.Coercer].
func (c *Coercer) Coerce(to domain.Coercion, v any) any {
	switch to {
	case domain.String:
		return c.toString(v)
	case domain.Number:
		return c.toNumber(v)
	case domain.Boolean:
		return structure.Truthy(v)
	case domain.Date:
		return c.toDate(v)
	default:
		return v
	}
}

func (c *Coercer) toString(v any) string {
	if v == nil || domain.IsMissing(v) {
		return ""
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return s
}

// toNumber returns NaN for values that do not represent a number.
func (c *Coercer) toNumber(v any) float64 {
	switch t := v.(type) {
	case nil:
		return 0
	case string:
		if strings.TrimSpace(t) == "" {
			return 0
		}
	case time.Time:
		return float64(t.UnixMilli())
	}
	if domain.IsMissing(v) {
		return math.NaN()
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return math.NaN()
	}
	return f
}

// toDate reads numbers as unix milliseconds. Values that cannot be read
// become the zero time.
func (c *Coercer) toDate(v any) time.Time {
	if t, ok := v.(time.Time); ok {
		return t
	}
	if f, ok := structure.AsFloat(v); ok {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return time.Time{}
		}
		return time.UnixMilli(int64(f)).UTC()
	}
	t, err := cast.ToTimeE(v)
	if err != nil {
		return time.Time{}
	}
	return t
}
