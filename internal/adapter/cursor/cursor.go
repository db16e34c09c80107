// Package cursor contains the default [domain.Cursor] implementation.
package cursor

import (
	"context"
	"iter"
	"sync"

	"github.com/vinicius-lino-figueiredo/gedq/domain"
	"github.com/vinicius-lino-figueiredo/gedq/internal/adapter/decoder"
)

// Cursor implements domain.Cursor. Results are pulled from the underlying
// sequence only when Next is called.
type Cursor struct {
	ctx     context.Context
	mu      sync.Mutex
	next    func() (any, bool)
	stop    func()
	dec     domain.Decoder
	current any
	started bool
	done    bool
	closed  bool
	err     error
}

// NewCursor returns a new implementation of Cursor reading from seq. The
// cursor stops with ctx's error once ctx is done. A nil dec is replaced by the
// default decoder.
func NewCursor(ctx context.Context, seq iter.Seq[any], dec domain.Decoder) (domain.Cursor, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	if dec == nil {
		dec = decoder.NewDecoder()
	}
	next, stop := iter.Pull(seq)
	return &Cursor{
		ctx:  ctx,
		next: next,
		stop: stop,
		dec:  dec,
	}, nil
}

// Next implements domain.Cursor.
func (c *Cursor) Next() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.done || c.closed {
		return false
	}
	c.started = true
	if err := c.ctx.Err(); err != nil {
		c.finish(err)
		return false
	}
	value, ok := c.next()
	if !ok {
		c.finish(nil)
		return false
	}
	c.current = value
	return true
}

func (c *Cursor) finish(err error) {
	c.done = true
	c.current = nil
	c.err = err
	c.stop()
}

// Value implements domain.Cursor.
func (c *Cursor) Value() any {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Decode implements domain.Cursor.
func (c *Cursor) Decode(target any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return domain.ErrCursorClosed
	}
	if c.err != nil {
		return c.err
	}
	if !c.started || c.done {
		return domain.ErrNoCurrent
	}
	return c.dec.Decode(c.current, target)
}

// Err implements domain.Cursor.
func (c *Cursor) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Close implements domain.Cursor.
func (c *Cursor) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	c.current = nil
	c.stop()
	return nil
}
