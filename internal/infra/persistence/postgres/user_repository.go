// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"userlookup/internal/domain/entity"
	domainerrors "userlookup/internal/domain/errors"
	"userlookup/internal/domain/repository"
	"userlookup/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
// It holds no state; every query runs on the connection it is handed.
type userRepository struct{}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository() repository.UserRepository[*gorm.DB] {
	return &userRepository{}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, conn *gorm.DB, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	err := conn.WithContext(ctx).Where("id = ?", id).Take(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil //nolint:nilnil // absence is reported as a nil user
		}

		return nil, domainerrors.Infrastructure(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// toUserDomain maps the persistence model back to a pure domain entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:   data.ID,
		Name: data.Name,
	}
}
