package memory

import (
	"context"

	domainerrors "userlookup/internal/domain/errors"
	"userlookup/internal/domain/repository"
)

type connectionFactory struct {
	pool *Pool
}

// NewConnectionFactory lends connections from pool.
func NewConnectionFactory(pool *Pool) repository.ConnectionFactory[*Conn] {
	return &connectionFactory{pool: pool}
}

// Acquire implements repository.ConnectionFactory.
func (f *connectionFactory) Acquire(ctx context.Context, work func(ctx context.Context, conn *Conn) error) error {
	conn, err := f.pool.Acquire(ctx)
	if err != nil {
		return domainerrors.NewAcquireError(err)
	}
	defer f.pool.Release(conn)

	return work(ctx, conn)
}
