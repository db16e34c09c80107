package projector

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/vinicius-lino-figueiredo/gedq/domain"
)

type M = map[string]any
type A = []any
type T = []domain.SelectTerm

type resolverMock struct{ mock.Mock }

// GetAddress implements [domain.Resolver].
func (r *resolverMock) GetAddress(field string) []string {
	return r.Called(field).Get(0).([]string)
}

// Resolve implements [domain.Resolver].
func (r *resolverMock) Resolve(obj any, path ...string) any {
	return r.Called(obj, path).Get(0)
}

type ProjectorTestSuite struct {
	suite.Suite
	p *Projector
}

func (s *ProjectorTestSuite) SetupTest() {
	s.p = NewProjector().(*Projector)
}

func (s *ProjectorTestSuite) TestPassThrough() {
	items := A{M{"a": 1}, M{"a": 2}}
	res := s.p.Project(items, nil)
	s.Len(res, 2)
	for n := range items {
		// same map, not a copy
		res[n].(M)["touched"] = true
		s.Equal(true, items[n].(M)["touched"])
	}
}

func (s *ProjectorTestSuite) TestAliases() {
	items := A{
		M{"name": "A", "addr": M{"city": "X"}},
		M{"name": "B"},
	}
	res := s.p.Project(items, T{
		{Path: []string{"name"}, Alias: "n"},
		{Path: []string{"addr", "city"}, Alias: "city"},
	})
	s.Equal(A{
		domain.Record{"n": "A", "city": "X"},
		domain.Record{"n": "B", "city": nil},
	}, res)

	// source is left untouched
	s.Equal(M{"name": "B"}, items[1])
}

func (s *ProjectorTestSuite) TestStructSource() {
	type item struct {
		Name string `gedq:"name"`
		Age  int
	}
	res := s.p.Project(A{item{Name: "A", Age: 3}, &item{Name: "B"}}, T{
		{Path: []string{"name"}, Alias: "name"},
		{Path: []string{"Age"}, Alias: "age"},
	})
	s.Equal(A{
		domain.Record{"name": "A", "age": 3},
		domain.Record{"name": "B", "age": 0},
	}, res)
}

func (s *ProjectorTestSuite) TestWholeObject() {
	item := M{"a": 1}
	res := s.p.Project(A{item}, T{{Alias: "self"}})
	s.Equal(A{domain.Record{"self": item}}, res)
}

func (s *ProjectorTestSuite) TestCustomResolver() {
	r := new(resolverMock)
	item := M{"a": 1}
	r.On("Resolve", item, []string{"a"}).Return(domain.Missing).Once()
	r.On("Resolve", item, []string{"b"}).Return("x").Once()

	p := NewProjector(domain.WithProjectorResolver(r))
	res := p.Project(A{item}, T{
		{Path: []string{"a"}, Alias: "a"},
		{Path: []string{"b"}, Alias: "b"},
	})
	s.Equal(A{domain.Record{"a": nil, "b": "x"}}, res)
	r.AssertExpectations(s.T())
}

func TestProjectorTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectorTestSuite))
}
