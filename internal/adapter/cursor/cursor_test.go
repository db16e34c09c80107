package cursor

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/vinicius-lino-figueiredo/gedq/domain"
)

type M = map[string]any

type decoderMock struct{ mock.Mock }

// Decode implements [domain.Decoder].
func (d *decoderMock) Decode(src any, tgt any) error {
	return d.Called(src, tgt).Error(0)
}

type Obj struct {
	A int
}

type CursorTestSuite struct {
	suite.Suite
	data []any
}

func (s *CursorTestSuite) SetupSuite() {
	s.data = make([]any, 1000)
	for n := range 1000 {
		s.data[n] = M{"a": n}
	}
}

func (s *CursorTestSuite) TestNoData() {
	cur, err := NewCursor(context.Background(), slices.Values([]any{}), nil)
	s.NoError(err)
	count := 0
	for cur.Next() {
		count++
	}
	s.Zero(count)
	s.NoError(cur.Err())
	s.ErrorIs(cur.Decode(&Obj{}), domain.ErrNoCurrent)
}

func (s *CursorTestSuite) TestStructs() {
	cur, err := NewCursor(context.Background(), slices.Values(s.data), nil)
	s.NoError(err)
	defer cur.Close()

	s.ErrorIs(cur.Decode(&Obj{}), domain.ErrNoCurrent)

	count := 0
	for cur.Next() {
		var obj Obj
		s.NoError(cur.Decode(&obj))
		s.Equal(count, obj.A)
		s.Equal(M{"a": count}, cur.Value())
		count++
	}
	s.Equal(1000, count)
	s.NoError(cur.Err())
	s.False(cur.Next())
	s.Nil(cur.Value())
}

func (s *CursorTestSuite) TestLazy() {
	pulled := 0
	seq := func(yield func(any) bool) {
		for _, item := range s.data {
			pulled++
			if !yield(item) {
				return
			}
		}
	}
	cur, err := NewCursor(context.Background(), seq, nil)
	s.NoError(err)
	s.Zero(pulled)

	s.True(cur.Next())
	s.True(cur.Next())
	s.Equal(2, pulled)

	s.NoError(cur.Close())
	s.NoError(cur.Close())
	s.False(cur.Next())
	s.Equal(2, pulled)
	s.ErrorIs(cur.Decode(&Obj{}), domain.ErrCursorClosed)
}

func (s *CursorTestSuite) TestCancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cur, err := NewCursor(ctx, slices.Values(s.data), nil)
	s.ErrorIs(err, context.Canceled)
	s.Nil(cur)

	ctx, cancel = context.WithCancel(context.Background())
	cur, err = NewCursor(ctx, slices.Values(s.data), nil)
	s.NoError(err)
	s.True(cur.Next())
	cancel()
	s.False(cur.Next())
	s.ErrorIs(cur.Err(), context.Canceled)
	s.ErrorIs(cur.Decode(&Obj{}), context.Canceled)
}

func (s *CursorTestSuite) TestDecoderError() {
	errDecode := errors.New("decode error")
	dec := new(decoderMock)
	var obj Obj
	dec.On("Decode", s.data[0], &obj).Return(errDecode).Once()

	cur, err := NewCursor(context.Background(), slices.Values(s.data), dec)
	s.NoError(err)
	s.True(cur.Next())
	s.ErrorIs(cur.Decode(&obj), errDecode)
	dec.AssertExpectations(s.T())
}

func TestCursorTestSuite(t *testing.T) {
	suite.Run(t, new(CursorTestSuite))
}
