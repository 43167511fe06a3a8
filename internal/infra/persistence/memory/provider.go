package memory

import (
	"context"
	"log/slog"

	"userlookup/config"
	"userlookup/internal/domain/entity"
	"userlookup/internal/domain/repository"
	"userlookup/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the memory pool and closes it when the application stops.
func New(params Params) *Pool {
	pool := NewPool(params.Config.Memory.PoolSize)

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			params.Logger.InfoContext(ctx, "Memory pool ready", slog.Int("size", pool.Stat().Size))

			return nil
		},
		OnStop: func(_ context.Context) error {
			pool.Close()

			return nil
		},
	})

	return pool
}

// NewSeededUserRepository builds a repository preloaded with memory.users.
func NewSeededUserRepository(cfg *config.Config) (repository.UserRepository[*Conn], error) {
	users := make([]entity.User, 0, len(cfg.Memory.Users))
	for _, seed := range cfg.Memory.Users {
		id, err := uuid.Parse(seed.ID)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid seed user id %q", seed.ID)
		}
		users = append(users, entity.User{ID: id, Name: seed.Name})
	}

	return NewUserRepository(users...), nil
}
