package postgres

import (
	"context"

	domainerrors "userlookup/internal/domain/errors"
	"userlookup/internal/domain/repository"

	"gorm.io/gorm"
)

// gormConnectionFactory implements the domain's ConnectionFactory interface using GORM.
type gormConnectionFactory struct {
	db *gorm.DB
}

// NewConnectionFactory is the constructor for gormConnectionFactory.
func NewConnectionFactory(db *gorm.DB) repository.ConnectionFactory[*gorm.DB] {
	return &gormConnectionFactory{db: db}
}

// Acquire pins one *sql.Conn from the pool for the duration of work. GORM
// closes the pinned connection on every exit path, panics included.
func (f *gormConnectionFactory) Acquire(ctx context.Context, work func(ctx context.Context, conn *gorm.DB) error) error {
	workCalled := false

	err := f.db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		workCalled = true

		return work(ctx, conn)
	})
	if err != nil && !workCalled {
		return domainerrors.NewAcquireError(err)
	}

	return err
}
