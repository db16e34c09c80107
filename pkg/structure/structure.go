// Package structure contains type-related operations, such as checking
// whether a value of type any can be queried, flattening query sources and
// converting numbers.
package structure

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/goccy/go-reflect"
	"github.com/vinicius-lino-figueiredo/gedq/domain"
)

// TagName is the struct tag read when matching property names to struct
// fields.
const TagName = "gedq"

var (
	// ErrNilObj may be returned by [Objects] when a nil value is passed as
	// argument.
	ErrNilObj = errors.New("nil object")

	timeTyp = reflect.TypeOf(time.Time{})
)

// ErrorNonObject is returned by [Objects] when a value that is neither a
// struct nor a string keyed map (or a pointer to one) is passed as argument.
type ErrorNonObject struct {
	Type reflect.Type
}

func (e ErrorNonObject) Error() string {
	return fmt.Sprintf("expected map or struct, got %s", e.Type.String())
}

// IsObject reports whether v can be traversed by property name: a string keyed
// map, a struct other than [time.Time], or a non-nil pointer to one of them.
func IsObject(v any) bool {
	if v == nil {
		return false
	}
	switch v.(type) {
	case map[string]any:
		return true
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64,
		time.Time, *regexp.Regexp, []byte, []any:
		return false
	}
	r, ok := Indirect(reflect.ValueNoEscapeOf(v))
	if !ok {
		return false
	}
	switch r.Kind() {
	case reflect.Map:
		return r.Type().Key().Kind() == reflect.String
	case reflect.Struct:
		return r.Type() != timeTyp
	default:
		return false
	}
}

// Indirect follows pointers and interfaces until a concrete value is found.
// It returns false if a nil pointer or interface is found on the way.
func Indirect(r reflect.Value) (reflect.Value, bool) {
	for r.Kind() == reflect.Ptr || r.Kind() == reflect.Interface {
		if r.IsNil() {
			return r, false
		}
		r = r.Elem()
	}
	return r, r.IsValid()
}

// Objects flattens the given sources into a single list of objects. Each
// source can either be an object or a slice or array of objects. Only one
// level is flattened.
func Objects(sources ...any) ([]any, error) {
	res := make([]any, 0, len(sources))
	for _, src := range sources {
		if src == nil {
			return nil, ErrNilObj
		}
		items, isList := List(src)
		if !isList {
			items = []any{src}
		}
		for _, item := range items {
			if item == nil {
				return nil, ErrNilObj
			}
			if !IsObject(item) {
				return nil, ErrorNonObject{Type: reflect.TypeOf(item)}
			}
			res = append(res, item)
		}
	}
	return res, nil
}

// List returns the items of a slice or array as a list of any. The second
// return value is false if v is not a list. Byte slices are not lists.
func List(v any) ([]any, bool) {
	switch t := v.(type) {
	case nil, []byte, string:
		return nil, false
	case []any:
		return t, true
	case []map[string]any:
		res := make([]any, len(t))
		for n, item := range t {
			res[n] = item
		}
		return res, true
	}
	r := reflect.ValueNoEscapeOf(v)
	if r.Kind() != reflect.Slice && r.Kind() != reflect.Array {
		return nil, false
	}
	res := make([]any, r.Len())
	for i := range r.Len() {
		res[i] = r.Index(i).Interface()
	}
	return res, true
}

// IsList reports whether v is a slice or an array other than a byte slice.
func IsList(v any) bool {
	if _, ok := v.([]byte); ok || v == nil {
		return false
	}
	k := reflect.ValueNoEscapeOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

// IsFunc reports whether v is a non-nil function.
func IsFunc(v any) bool {
	if v == nil {
		return false
	}
	r := reflect.ValueNoEscapeOf(v)
	return r.Kind() == reflect.Func && !r.IsNil()
}

// Len returns the length of a string (in runes), slice, array or map.
func Len(v any) (int, bool) {
	switch t := v.(type) {
	case nil:
		return 0, false
	case string:
		return utf8.RuneCountInString(t), true
	case []any:
		return len(t), true
	}
	r, ok := Indirect(reflect.ValueNoEscapeOf(v))
	if !ok {
		return 0, false
	}
	switch r.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return r.Len(), true
	default:
		return 0, false
	}
}

// Truthy reports whether v would count as true in a boolean context: nil,
// [domain.Missing], false, zero numbers, NaN, empty strings and nil pointers,
// maps, slices, functions or channels are falsy. Everything else, including
// empty lists and maps, is truthy.
func Truthy(v any) bool {
	if v == nil || domain.IsMissing(v) {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t != ""
	}
	if f, ok := AsFloat(v); ok {
		return f != 0 && !math.IsNaN(f)
	}
	r := reflect.ValueNoEscapeOf(v)
	switch r.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.Interface:
		return !r.IsNil()
	}
	return true
}

// AsFloat converts any built-in number to float64 and returns a flag that
// informs whether the argument is a number.
func AsFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	case float32:
		return float64(t), true
	case float64:
		return t, true
	default:
		return 0, false
	}
}

// AsInteger converts any built-in number to int and returns a flag that informs
// if the argument is a valid integer.
func AsInteger(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int8:
		return int(t), true
	case int16:
		return int(t), true
	case int32:
		return int(t), true
	case int64:
		return int(t), true
	case uint:
		return int(t), true
	case uint8:
		return int(t), true
	case uint16:
		return int(t), true
	case uint32:
		return int(t), true
	case uint64:
		return int(t), true
	case float32:
		if trunc := math.Trunc(float64(t)); trunc == float64(t) {
			return int(trunc), true
		}
		return 0, false
	case float64:
		if trunc := math.Trunc(t); trunc == t {
			return int(trunc), true
		}
		return 0, false
	default:
		return 0, false
	}
}

// FieldName returns the property name of a struct field, read from tag when
// set. The second return value is false for fields that should be skipped.
func FieldName(field reflect.StructField, tag string) (string, bool) {
	if field.PkgPath != "" {
		return "", false
	}
	name := field.Name
	if t, ok := field.Tag.Lookup(tag); ok {
		if t == "-" {
			return "", false
		}
		segments := strings.Split(t, ",")
		if segments[0] != "" {
			name = segments[0]
		}
	}
	return name, true
}

// Contains checks if the given value is present in the slice.
func Contains[T any, S ~[]T](s S, t T, fn func(a T, b T) bool) bool {
	return slices.ContainsFunc(s, func(i T) bool { return fn(i, t) })
}
