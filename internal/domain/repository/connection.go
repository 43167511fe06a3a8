package repository

import "context"

// ConnectionFactory lends one pooled connection to a unit of work.
// This allows the use case layer to scope connection lifetime without depending on a specific driver.
type ConnectionFactory[C any] interface {
	// Acquire obtains a connection, runs work with it and returns the connection
	// to the pool on every exit path, panics and cancellation included.
	// A failure to obtain the connection is returned as an infrastructure error
	// and work is not called. Errors returned by work are passed through unchanged.
	Acquire(ctx context.Context, work func(ctx context.Context, conn C) error) error
}

// WithConnection is Acquire for units of work that produce a value.
func WithConnection[C, T any](
	ctx context.Context,
	factory ConnectionFactory[C],
	work func(ctx context.Context, conn C) (T, error),
) (T, error) {
	var result T

	err := factory.Acquire(ctx, func(ctx context.Context, conn C) error {
		value, err := work(ctx, conn)
		if err != nil {
			return err
		}
		result = value

		return nil
	})
	if err != nil {
		var zero T

		return zero, err
	}

	return result, nil
}
