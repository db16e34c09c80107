package coercer

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/vinicius-lino-figueiredo/gedq/domain"
)

type CoercerTestSuite struct {
	suite.Suite
	c domain.Coercer
}

func (s *CoercerTestSuite) SetupTest() {
	s.c = NewCoercer()
}

func (s *CoercerTestSuite) TestNoCoercion() {
	s.Equal(12, s.c.Coerce(domain.NoCoercion, 12))
	s.Equal("12", s.c.Coerce(domain.NoCoercion, "12"))
}

func (s *CoercerTestSuite) TestString() {
	s.Equal("12", s.c.Coerce(domain.String, 12))
	s.Equal("1.5", s.c.Coerce(domain.String, 1.5))
	s.Equal("true", s.c.Coerce(domain.String, true))
	s.Equal("", s.c.Coerce(domain.String, nil))
	s.Equal("", s.c.Coerce(domain.String, domain.Missing))
	s.Equal("[1 2]", s.c.Coerce(domain.String, []int{1, 2}))
}

func (s *CoercerTestSuite) TestNumber() {
	s.Equal(12.0, s.c.Coerce(domain.Number, "12"))
	s.Equal(0.0, s.c.Coerce(domain.Number, ""))
	s.Equal(1.0, s.c.Coerce(domain.Number, true))
	s.Equal(3.0, s.c.Coerce(domain.Number, int8(3)))
	s.Equal(0.0, s.c.Coerce(domain.Number, nil))
	s.Equal(float64(1000), s.c.Coerce(domain.Number, time.UnixMilli(1000)))
	s.True(math.IsNaN(s.c.Coerce(domain.Number, "abc").(float64)))
	s.True(math.IsNaN(s.c.Coerce(domain.Number, domain.Missing).(float64)))
}

func (s *CoercerTestSuite) TestBoolean() {
	s.Equal(true, s.c.Coerce(domain.Boolean, "false"))
	s.Equal(false, s.c.Coerce(domain.Boolean, ""))
	s.Equal(false, s.c.Coerce(domain.Boolean, 0))
	s.Equal(true, s.c.Coerce(domain.Boolean, []any{}))
	s.Equal(false, s.c.Coerce(domain.Boolean, nil))
}

func (s *CoercerTestSuite) TestDate() {
	now := time.Now()
	s.Equal(now, s.c.Coerce(domain.Date, now))
	s.Equal(time.UnixMilli(1500).UTC(), s.c.Coerce(domain.Date, 1500))
	s.Equal(
		time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		s.c.Coerce(domain.Date, "2024-05-01T00:00:00Z").(time.Time).UTC(),
	)
	s.True(s.c.Coerce(domain.Date, "not a date").(time.Time).IsZero())
	s.True(s.c.Coerce(domain.Date, math.NaN()).(time.Time).IsZero())
}

func TestCoercerTestSuite(t *testing.T) {
	suite.Run(t, new(CoercerTestSuite))
}
