package pgxstore

import (
	"context"
	"time"

	domainerrors "userlookup/internal/domain/errors"
	"userlookup/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

type connectionFactory struct {
	pool           *pgxpool.Pool
	acquireTimeout time.Duration
}

// NewConnectionFactory lends connections from pool. A positive acquireTimeout
// bounds the wait for a free connection but not the work itself.
func NewConnectionFactory(pool *pgxpool.Pool, acquireTimeout time.Duration) repository.ConnectionFactory[*pgxpool.Conn] {
	return &connectionFactory{
		pool:           pool,
		acquireTimeout: acquireTimeout,
	}
}

// Acquire implements repository.ConnectionFactory.
func (f *connectionFactory) Acquire(ctx context.Context, work func(ctx context.Context, conn *pgxpool.Conn) error) error {
	conn, err := f.acquire(ctx)
	if err != nil {
		return domainerrors.NewAcquireError(err)
	}
	defer conn.Release()

	return work(ctx, conn)
}

func (f *connectionFactory) acquire(ctx context.Context) (*pgxpool.Conn, error) {
	if f.acquireTimeout <= 0 {
		return f.pool.Acquire(ctx)
	}

	acquireCtx, cancel := context.WithTimeout(ctx, f.acquireTimeout)
	defer cancel()

	return f.pool.Acquire(acquireCtx)
}
