package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_AcquireRelease(t *testing.T) {
	pool := NewPool(2)
	ctx := context.Background()

	first, err := pool.Acquire(ctx)
	require.NoError(t, err)
	second, err := pool.Acquire(ctx)
	require.NoError(t, err)

	assert.NotEqual(t, first.Slot(), second.Slot())
	assert.True(t, first.Active())
	assert.Equal(t, int64(2), pool.Stat().InUse)

	pool.Release(first)
	pool.Release(first)
	assert.False(t, first.Active())

	stat := pool.Stat()
	assert.Equal(t, int64(1), stat.InUse)
	assert.Equal(t, int64(2), stat.AcquireCount)
	assert.Equal(t, int64(1), stat.ReleaseCount)

	pool.Release(second)
	assert.Equal(t, int64(0), pool.Stat().InUse)
}

func TestPool_ExhaustedBlocksUntilContextEnds(t *testing.T) {
	pool := NewPool(1)

	held, err := pool.Acquire(context.Background())
	require.NoError(t, err)
	defer pool.Release(held)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = pool.Acquire(ctx)

	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, int64(1), pool.Stat().InUse)
}

func TestPool_WaiterGetsReleasedSlot(t *testing.T) {
	pool := NewPool(1)

	held, err := pool.Acquire(context.Background())
	require.NoError(t, err)

	acquired := make(chan *Conn, 1)
	go func() {
		conn, err := pool.Acquire(context.Background())
		if err == nil {
			acquired <- conn
		}
		close(acquired)
	}()

	pool.Release(held)

	select {
	case conn := <-acquired:
		require.NotNil(t, conn)
		pool.Release(conn)
	case <-time.After(time.Second):
		t.Fatal("waiter was not handed the released connection")
	}
}

func TestPool_Close(t *testing.T) {
	pool := NewPool(1)

	held, err := pool.Acquire(context.Background())
	require.NoError(t, err)

	pool.Close()
	pool.Close()

	_, err = pool.Acquire(context.Background())
	require.ErrorIs(t, err, ErrPoolClosed)

	pool.Release(held)
	assert.Equal(t, int64(0), pool.Stat().InUse)
}

func TestNewPool_MinimumSize(t *testing.T) {
	assert.Equal(t, 1, NewPool(0).Stat().Size)
}
