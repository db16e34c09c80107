package structure

import (
	"fmt"
	"math"
	"regexp"
	"testing"
	"time"

	"github.com/goccy/go-reflect"
	"github.com/stretchr/testify/suite"
	"github.com/vinicius-lino-figueiredo/gedq/domain"
)

type M = map[string]any

var mapsTestCases = []any{
	map[string]string{"A": "0"}, map[string]bool{"B": true},
	map[string]int{"C": -2}, map[string]int8{"D": -3},
	map[string]int16{"E": -4}, map[string]int32{"F": -5},
	map[string]int64{"G": -6}, map[string]uint{"H": 7},
	map[string]float64{"N": 13.5}, M{"O": []any{14}},
	map[string]time.Time{"Q": time.UnixMilli(16)},
	map[string]*regexp.Regexp{"R": regexp.MustCompile(`17`)},
	map[string][]byte{"S": []byte("18")},
	&map[string]string{"A": "0"}, &M{"O": []any{14}},
}

var structTestCases = []any{
	struct{ A string }{A: "0"},
	struct{ B bool }{B: true},
	struct{ O []any }{O: []any{14}},
	struct{ Q time.Time }{Q: time.UnixMilli(16)},
	&struct{ C int }{C: -2},
	struct{}{},
}

var nonObjectTestCases = []any{
	1, int8(1), int16(1), int32(1), int64(1), uint(1), uint8(1),
	uint16(1), uint32(1), uint64(1), float32(1), 1.5, "str", true,
	time.Now(), &time.Time{}, regexp.MustCompile(`^abc`), []byte("gief"),
	[]any{M{}}, []int{1}, map[int]string{1: "a"}, (*M)(nil),
	(*struct{ A int })(nil), func() {},
}

type StructureTestSuite struct {
	suite.Suite
}

func (s *StructureTestSuite) TestIsObject() {
	for _, tc := range mapsTestCases {
		s.Run(fmt.Sprintf("%T", tc), func() {
			s.True(IsObject(tc))
		})
	}
	for _, tc := range structTestCases {
		s.Run(fmt.Sprintf("%T", tc), func() {
			s.True(IsObject(tc))
		})
	}
	for _, tc := range nonObjectTestCases {
		s.Run(fmt.Sprintf("%T", tc), func() {
			s.False(IsObject(tc))
		})
	}
	s.False(IsObject(nil))
}

func (s *StructureTestSuite) TestObjects() {
	a, b, c := M{"a": 1}, M{"b": 2}, struct{ C int }{C: 3}

	res, err := Objects()
	s.NoError(err)
	s.Empty(res)
	s.NotNil(res)

	res, err = Objects(a, []any{b, c}, []M{a}, [1]M{b})
	s.NoError(err)
	s.Equal([]any{a, b, c, a, b}, res)

	// only one level is flattened
	_, err = Objects([]any{[]any{a}})
	var e ErrorNonObject
	if s.ErrorAs(err, &e) {
		s.Equal(reflect.TypeOf([]any{}), e.Type)
	}

	_, err = Objects(a, nil)
	s.ErrorIs(err, ErrNilObj)

	_, err = Objects([]any{a, nil})
	s.ErrorIs(err, ErrNilObj)

	_, err = Objects(a, 12)
	if s.ErrorAs(err, &e) {
		s.Equal(reflect.TypeOf(12), e.Type)
	}
}

func (s *StructureTestSuite) TestList() {
	testCases := []struct {
		value    any
		expected []any
		ok       bool
	}{
		{value: []any{"string", 1, false}, expected: []any{"string", 1, false}, ok: true},
		{value: []string{"1", "2"}, expected: []any{"1", "2"}, ok: true},
		{value: []int8{3, -2}, expected: []any{int8(3), int8(-2)}, ok: true},
		{value: [...]float64{6.7, 6.9}, expected: []any{6.7, 6.9}, ok: true},
		{value: []M{{"a": 1}}, expected: []any{M{"a": 1}}, ok: true},
		{value: []time.Time{time.UnixMilli(1)}, expected: []any{time.UnixMilli(1)}, ok: true},
		{value: [][]byte{[]byte("a")}, expected: []any{[]byte("a")}, ok: true},
		{value: []int{}, expected: []any{}, ok: true},
		{value: []byte("abc")},
		{value: "abc"},
		{value: nil},
		{value: 12},
		{value: M{}},
		{value: &[]int{1}},
	}
	for _, tc := range testCases {
		s.Run(fmt.Sprintf("%T", tc.value), func() {
			res, ok := List(tc.value)
			s.Equal(tc.ok, ok)
			s.Equal(tc.expected, res)
			s.Equal(tc.ok, IsList(tc.value))
		})
	}
}

func (s *StructureTestSuite) TestIsFunc() {
	var nilFn func()
	s.True(IsFunc(func() {}))
	s.True(IsFunc(func(any) bool { return true }))
	s.False(IsFunc(nilFn))
	s.False(IsFunc(nil))
	s.False(IsFunc("func"))
}

func (s *StructureTestSuite) TestLen() {
	testCases := []struct {
		value  any
		length int
		ok     bool
	}{
		{value: "olá", length: 3, ok: true},
		{value: "", length: 0, ok: true},
		{value: []any{1, 2}, length: 2, ok: true},
		{value: [3]int{}, length: 3, ok: true},
		{value: &[]int{1}, length: 1, ok: true},
		{value: M{"a": 1}, length: 1, ok: true},
		{value: []byte("ab"), length: 2, ok: true},
		{value: nil},
		{value: 12},
		{value: struct{ A int }{}},
		{value: (*[]int)(nil)},
	}
	for _, tc := range testCases {
		s.Run(fmt.Sprintf("%T", tc.value), func() {
			l, ok := Len(tc.value)
			s.Equal(tc.ok, ok)
			s.Equal(tc.length, l)
		})
	}
}

func (s *StructureTestSuite) TestTruthy() {
	falsy := []any{
		nil, domain.Missing, false, 0, int8(0), uint(0), 0.0, float32(0),
		math.NaN(), "", (*M)(nil), M(nil), []any(nil), (func())(nil),
	}
	for _, v := range falsy {
		s.False(Truthy(v), "%#v", v)
	}
	truthy := []any{
		true, 1, -1, 0.1, math.Inf(-1), "0", " ", M{}, []any{},
		struct{}{}, &struct{}{}, time.Time{}, func() {},
	}
	for _, v := range truthy {
		s.True(Truthy(v), "%#v", v)
	}
}

func (s *StructureTestSuite) TestAsFloat() {
	for _, v := range []any{2, int8(2), int16(2), int32(2), int64(2),
		uint(2), uint8(2), uint16(2), uint32(2), uint64(2), float32(2), 2.0,
	} {
		f, ok := AsFloat(v)
		s.True(ok, "%T", v)
		s.Equal(2.0, f, "%T", v)
	}
	for _, v := range []any{"2", true, nil, []int{2}} {
		f, ok := AsFloat(v)
		s.False(ok, "%T", v)
		s.Zero(f)
	}
}

func (s *StructureTestSuite) TestAsInteger() {
	testCases := []struct {
		value any
		res   int
		ok    bool
	}{
		{value: -3, res: -3, ok: true},
		{value: int8(5), res: 5, ok: true},
		{value: int64(6), res: 6, ok: true},
		{value: uint16(7), res: 7, ok: true},
		{value: uint64(8), res: 8, ok: true},
		{value: float32(9), res: 9, ok: true},
		{value: 10.0, res: 10, ok: true},
		{value: 10.5},
		{value: float32(1.25)},
		{value: "10"},
		{value: nil},
	}
	for _, tc := range testCases {
		s.Run(fmt.Sprintf("%T(%v)", tc.value, tc.value), func() {
			res, ok := AsInteger(tc.value)
			s.Equal(tc.ok, ok)
			s.Equal(tc.res, res)
		})
	}
}

func (s *StructureTestSuite) TestFieldName() {
	typ := reflect.TypeOf(struct {
		unexported int
		Plain      string
		Renamed    bool    `gedq:"renamed"`
		Flags      float64 `gedq:"flags,omitempty"`
		OnlyFlags  any     `gedq:",omitempty"`
		Skipped    int     `gedq:"-"`
		OtherTag   int     `json:"other"`
	}{})

	expected := []struct {
		name string
		ok   bool
	}{
		{name: "", ok: false},
		{name: "Plain", ok: true},
		{name: "renamed", ok: true},
		{name: "flags", ok: true},
		{name: "OnlyFlags", ok: true},
		{name: "", ok: false},
		{name: "OtherTag", ok: true},
	}
	for n, e := range expected {
		name, ok := FieldName(typ.Field(n), TagName)
		s.Equal(e.ok, ok, typ.Field(n).Name)
		s.Equal(e.name, name, typ.Field(n).Name)
	}

	name, ok := FieldName(typ.Field(6), "json")
	s.True(ok)
	s.Equal("other", name)
}

func (s *StructureTestSuite) TestContains() {
	contains := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	notContains := []int{0, 1, 2, 3, 4, 5, 6, 7, 9}
	fn := func(a, b int) bool { return a == b }

	s.True(Contains(contains, 8, fn))
	s.False(Contains(notContains, 8, fn))
	s.False(Contains([]int(nil), 8, fn))
}

func (s *StructureTestSuite) TestErrorMessages() {
	e := ErrorNonObject{Type: reflect.TypeOf(*new(string))}
	s.Equal("expected map or struct, got string", e.Error())
}

func TestStructureTestSuite(t *testing.T) {
	suite.Run(t, new(StructureTestSuite))
}
