// Package memory is an in-process storage driver: a bounded connection pool and
// a map-backed user repository. It backs the "memory" storage driver and tests.
package memory

import (
	"context"
	"sync"
	"sync/atomic"

	"userlookup/internal/errors"
)

// ErrPoolClosed is returned by Acquire once the pool has been closed.
var ErrPoolClosed = errors.New("memory pool is closed")

// Conn is a handle to one pool slot. It is only valid between Acquire and Release.
type Conn struct {
	slot     int
	borrowed atomic.Bool
}

// Slot identifies the pool slot the handle occupies.
func (c *Conn) Slot() int {
	return c.slot
}

// Active reports whether the handle is currently lent out.
func (c *Conn) Active() bool {
	return c != nil && c.borrowed.Load()
}

// Stat is a snapshot of pool counters.
type Stat struct {
	Size         int
	InUse        int64
	AcquireCount int64
	ReleaseCount int64
}

// Pool hands out at most Size connections at a time. Acquire blocks while the
// pool is exhausted until a slot frees up, the context ends or the pool closes.
type Pool struct {
	size      int
	idle      chan *Conn
	done      chan struct{}
	closeOnce sync.Once

	inUse    atomic.Int64
	acquired atomic.Int64
	released atomic.Int64
}

// NewPool creates a pool with size slots; size below one is treated as one.
func NewPool(size int) *Pool {
	if size < 1 {
		size = 1
	}

	pool := &Pool{
		size: size,
		idle: make(chan *Conn, size),
		done: make(chan struct{}),
	}
	for i := range size {
		pool.idle <- &Conn{slot: i}
	}

	return pool
}

// Acquire borrows a connection.
func (p *Pool) Acquire(ctx context.Context) (*Conn, error) {
	select {
	case <-p.done:
		return nil, errors.WithStack(ErrPoolClosed)
	default:
	}

	select {
	case <-p.done:
		return nil, errors.WithStack(ErrPoolClosed)
	case <-ctx.Done():
		return nil, errors.WithStack(ctx.Err())
	case conn := <-p.idle:
		conn.borrowed.Store(true)
		p.inUse.Add(1)
		p.acquired.Add(1)

		return conn, nil
	}
}

// Release returns conn to the pool. Releasing a handle twice is a no-op.
func (p *Pool) Release(conn *Conn) {
	if conn == nil || !conn.borrowed.CompareAndSwap(true, false) {
		return
	}

	p.inUse.Add(-1)
	p.released.Add(1)
	p.idle <- conn
}

// Close makes every later Acquire fail. Borrowed connections may still be released.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		close(p.done)
	})
}

// Stat returns the current counters.
func (p *Pool) Stat() Stat {
	return Stat{
		Size:         p.size,
		InUse:        p.inUse.Load(),
		AcquireCount: p.acquired.Load(),
		ReleaseCount: p.released.Load(),
	}
}
