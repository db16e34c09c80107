package catalog

import (
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/vinicius-lino-figueiredo/gedq/domain"
	"github.com/vinicius-lino-figueiredo/gedq/pkg/structure"
)

// Names of the built-in operators.
const (
	Eq          = "eq"
	Ne          = "ne"
	Gt          = "gt"
	Gte         = "gte"
	Lt          = "lt"
	Lte         = "lte"
	IsEmpty     = "isEmpty"
	IsString    = "isString"
	IsNumber    = "isNumber"
	IsNull      = "isNull"
	IsDefined   = "isDefined"
	IsUndefined = "isUndefined"
	IsBoolean   = "isBoolean"
	IsObject    = "isObject"
	IsArray     = "isArray"
	IsFunction  = "isFunction"
	Matches     = "matches"
	Like        = "like"
	In          = "in"
	HasLength   = "hasLength"
	Custom      = "custom"
)

func builtins(c domain.Comparer) map[string]domain.Operator {
	ops := []domain.Operator{
		{Name: Eq, Fn: c.Equal},
		{Name: Ne, Fn: func(v, o any) bool { return !c.Equal(v, o) }},
		{Name: Gt, Fn: ordered(c, func(n int) bool { return n > 0 })},
		{Name: Gte, Fn: ordered(c, func(n int) bool { return n >= 0 })},
		{Name: Lt, Fn: ordered(c, func(n int) bool { return n < 0 })},
		{Name: Lte, Fn: ordered(c, func(n int) bool { return n <= 0 })},
		{Name: IsEmpty, Fn: isEmpty},
		{Name: IsString, Fn: func(v, _ any) bool { _, ok := v.(string); return ok }},
		{Name: IsNumber, Fn: isNumber},
		{Name: IsNull, Fn: func(v, _ any) bool { return v == nil }},
		{Name: IsDefined, Fn: func(v, _ any) bool { return !domain.IsMissing(v) }},
		{Name: IsUndefined, Fn: func(v, _ any) bool { return domain.IsMissing(v) }},
		{Name: IsBoolean, Fn: func(v, _ any) bool { _, ok := v.(bool); return ok }},
		{Name: IsObject, Fn: isObject},
		{Name: IsArray, Fn: func(v, _ any) bool { return structure.IsList(v) }},
		{Name: IsFunction, Fn: func(v, _ any) bool { return structure.IsFunc(v) }},
		{Name: Matches, Fn: matches, Prepare: prepareRegexp},
		{Name: Like, Fn: matchesString, Prepare: prepareLike},
		{Name: In, Fn: in(c), Prepare: prepareList},
		{Name: HasLength, Fn: hasLength, Prepare: prepareInteger},
		{Name: Custom, Fn: custom, Prepare: prepareCustom},
	}
	res := make(map[string]domain.Operator, len(ops))
	for _, op := range ops {
		res[op.Name] = op
	}
	return res
}

// ordered only accepts operands of the same orderable kind as the value.
func ordered(c domain.Comparer, accept func(int) bool) domain.FilterFunc {
	return func(v, o any) bool {
		if !c.Comparable(v, o) {
			return false
		}
		return accept(c.Compare(v, o))
	}
}

func isEmpty(v, _ any) bool {
	if v == nil || domain.IsMissing(v) {
		return true
	}
	switch t := v.(type) {
	case bool:
		return !t
	case string:
		return t == "" || t == "0"
	}
	if f, ok := structure.AsFloat(v); ok {
		return f == 0
	}
	if l, ok := structure.Len(v); ok {
		return l == 0
	}
	return false
}

func isNumber(v, _ any) bool {
	f, ok := structure.AsFloat(v)
	return ok && !math.IsNaN(f) && !math.IsInf(f, 0)
}

func isObject(v, _ any) bool {
	if !structure.Truthy(v) {
		return false
	}
	if _, ok := v.(time.Time); ok {
		return true
	}
	return structure.IsObject(v) || structure.IsList(v) || structure.IsFunc(v)
}

// matches also accepts numbers and booleans, read as their text form.
func matches(v, o any) bool {
	s, ok := v.(string)
	if !ok {
		_, isNumber := structure.AsFloat(v)
		_, isBool := v.(bool)
		if !isNumber && !isBool {
			return false
		}
		s = cast.ToString(v)
	}
	return o.(*regexp.Regexp).MatchString(s)
}

// matchesString only matches strings.
func matchesString(v, o any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	return o.(*regexp.Regexp).MatchString(s)
}

func in(c domain.Comparer) domain.FilterFunc {
	return func(v, o any) bool {
		return structure.Contains(o.([]any), v, c.Equal)
	}
}

func hasLength(v, o any) bool {
	l, ok := structure.Len(v)
	return ok && l == o.(int)
}

func custom(v, o any) bool {
	return o.(func(any) bool)(v)
}

func prepareRegexp(o any) (any, error) {
	switch t := o.(type) {
	case *regexp.Regexp:
		if t == nil {
			return nil, domain.ErrInvalidOperand{Operator: Matches, Operand: o, Reason: "nil regular expression"}
		}
		return t, nil
	case string:
		rgx, err := regexp.Compile(t)
		if err != nil {
			return nil, domain.ErrInvalidOperand{Operator: Matches, Operand: o, Reason: err.Error()}
		}
		return rgx, nil
	default:
		return nil, domain.ErrInvalidOperand{Operator: Matches, Operand: o, Reason: "expected a regular expression"}
	}
}

// prepareLike turns a SQL LIKE pattern into an anchored, case-insensitive
// regular expression. '%' matches any sequence and '_' matches one rune.
func prepareLike(o any) (any, error) {
	pattern, ok := o.(string)
	if !ok {
		return nil, domain.ErrInvalidOperand{Operator: Like, Operand: o, Reason: "expected a string pattern"}
	}
	var b strings.Builder
	b.WriteString("(?is)^")
	for _, r := range pattern {
		switch r {
		case '%':
			b.WriteString(".*")
		case '_':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString("$")
	return regexp.MustCompile(b.String()), nil
}

func prepareList(o any) (any, error) {
	list, ok := structure.List(o)
	if !ok {
		return nil, domain.ErrInvalidOperand{Operator: In, Operand: o, Reason: "expected a list"}
	}
	return list, nil
}

func prepareInteger(o any) (any, error) {
	n, ok := structure.AsInteger(o)
	if !ok {
		return nil, domain.ErrInvalidOperand{Operator: HasLength, Operand: o, Reason: "expected an integer"}
	}
	return n, nil
}

func prepareCustom(o any) (any, error) {
	switch fn := o.(type) {
	case func(any) bool:
		if fn == nil {
			break
		}
		return fn, nil
	case domain.FilterFunc:
		if fn == nil {
			break
		}
		return func(v any) bool { return fn(v, nil) }, nil
	}
	return nil, domain.ErrInvalidOperand{Operator: Custom, Operand: o, Reason: "expected func(any) bool"}
}
