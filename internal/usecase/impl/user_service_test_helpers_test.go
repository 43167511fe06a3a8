package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"userlookup/internal/domain/entity"
	"userlookup/internal/infra/persistence/memory"
	"userlookup/internal/usecase"

	"github.com/google/uuid"
)

var aliceID = uuid.MustParse("11111111-1111-1111-1111-111111111111")

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memoryStore wires the interactor to the in-process driver.
type memoryStore struct {
	pool *memory.Pool
	repo *memory.UserRepository
}

func newMemoryStore(t *testing.T, poolSize int, users ...entity.User) memoryStore {
	t.Helper()

	pool := memory.NewPool(poolSize)
	t.Cleanup(pool.Close)

	return memoryStore{
		pool: pool,
		repo: memory.NewUserRepository(users...),
	}
}

func (s memoryStore) getUser(ctx context.Context, id uuid.UUID) (*usecase.GetUserOutput, error) {
	return GetUser[*memory.Conn](ctx, id, s.repo, memory.NewConnectionFactory(s.pool))
}
