package memory

import (
	"context"
	"sync"

	"userlookup/internal/domain/entity"
	domainerrors "userlookup/internal/domain/errors"
	"userlookup/internal/domain/repository"
	"userlookup/internal/errors"

	"github.com/google/uuid"
)

// ErrConnNotActive is reported when a repository call receives a handle that is
// nil or already returned to its pool.
var ErrConnNotActive = errors.New("connection is not active")

// UserRepository is a map-backed repository.UserRepository. Fault, when set,
// is returned by every lookup to simulate a broken backend.
type UserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]entity.User
	fault error
}

var _ repository.UserRepository[*Conn] = (*UserRepository)(nil)

// NewUserRepository creates a repository holding a copy of users.
func NewUserRepository(users ...entity.User) *UserRepository {
	repo := &UserRepository{
		users: make(map[uuid.UUID]entity.User, len(users)),
	}
	for _, user := range users {
		repo.users[user.ID] = user
	}

	return repo
}

// Save inserts or replaces a user.
func (repo *UserRepository) Save(user entity.User) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.users[user.ID] = user
}

// SetFault makes subsequent lookups fail with err; nil clears it.
func (repo *UserRepository) SetFault(err error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.fault = err
}

// FindByID implements repository.UserRepository.
func (repo *UserRepository) FindByID(ctx context.Context, conn *Conn, id uuid.UUID) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, domainerrors.Infrastructure(err, "failed to find user by id")
	}

	if !conn.Active() {
		return nil, domainerrors.NewInfrastructureError(ErrConnNotActive, "failed to find user by id")
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	if repo.fault != nil {
		return nil, domainerrors.Infrastructure(repo.fault, "failed to find user by id")
	}

	user, ok := repo.users[id]
	if !ok {
		return nil, nil //nolint:nilnil // absence is reported as a nil user
	}

	return &user, nil
}
