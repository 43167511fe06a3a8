package pgxstore

import (
	"context"

	"userlookup/internal/domain/entity"
	domainerrors "userlookup/internal/domain/errors"
	"userlookup/internal/domain/repository"
	"userlookup/internal/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const findUserByIDQuery = `SELECT id, name FROM users WHERE id = $1`

type userRepository struct{}

// NewUserRepository returns a stateless repository that queries on the
// connection it is handed.
func NewUserRepository() repository.UserRepository[*pgxpool.Conn] {
	return &userRepository{}
}

// FindByID implements repository.UserRepository.
func (repo *userRepository) FindByID(ctx context.Context, conn *pgxpool.Conn, id uuid.UUID) (*entity.User, error) {
	var (
		rowID pgtype.UUID
		name  string
	)

	err := conn.QueryRow(ctx, findUserByIDQuery, pgtype.UUID{Bytes: id, Valid: true}).Scan(&rowID, &name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil //nolint:nilnil // absence is reported as a nil user
		}

		return nil, domainerrors.Infrastructure(err, "failed to find user by id")
	}

	return &entity.User{
		ID:   uuid.UUID(rowID.Bytes),
		Name: name,
	}, nil
}
