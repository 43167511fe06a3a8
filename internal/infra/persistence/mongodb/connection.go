package mongodb

import (
	"context"

	domainerrors "userlookup/internal/domain/errors"
	"userlookup/internal/domain/repository"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

type sessionFactory struct {
	client *mongo.Client
}

// NewConnectionFactory lends one client session per unit of work.
func NewConnectionFactory(client *mongo.Client) repository.ConnectionFactory[*mongo.Session] {
	return &sessionFactory{client: client}
}

// Acquire implements repository.ConnectionFactory.
func (f *sessionFactory) Acquire(ctx context.Context, work func(ctx context.Context, sess *mongo.Session) error) error {
	if err := ctx.Err(); err != nil {
		return domainerrors.NewAcquireError(err)
	}

	sess, err := f.client.StartSession()
	if err != nil {
		return domainerrors.NewAcquireError(err)
	}
	defer sess.EndSession(context.WithoutCancel(ctx))

	return work(ctx, sess)
}
