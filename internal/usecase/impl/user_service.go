// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "userlookup/internal/delivery/context"
	"userlookup/internal/domain/entity"
	domainerrors "userlookup/internal/domain/errors"
	"userlookup/internal/domain/repository"
	"userlookup/internal/errors"
	"userlookup/internal/usecase"

	"github.com/google/uuid"
)

// notFoundDetail is the detail attached to every missing-user error.
const notFoundDetail = "Not Found"

// GetUser looks up one user inside a single scoped connection acquisition.
// Acquisition and query failures are returned unchanged; a lookup that finds
// nothing becomes domainerrors.ErrNotFound here and nowhere else.
func GetUser[C any](
	ctx context.Context,
	id uuid.UUID,
	userRepo repository.UserRepository[C],
	connFactory repository.ConnectionFactory[C],
) (*usecase.GetUserOutput, error) {
	user, err := repository.WithConnection(ctx, connFactory, func(ctx context.Context, conn C) (*entity.User, error) {
		return userRepo.FindByID(ctx, conn, id)
	})
	if err != nil {
		return nil, err
	}

	if user == nil {
		// A repository that swallowed a cancellation must not produce a false miss.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.WithStack(ctxErr)
		}

		return nil, domainerrors.NewNotFoundError(notFoundDetail)
	}

	return usecase.NewGetUserOutput(user), nil
}

// userService implements the UserUsecase interface for one storage driver.
type userService[C any] struct {
	userRepo    repository.UserRepository[C]
	connFactory repository.ConnectionFactory[C]
	logger      *slog.Logger
}

// NewUserService is the constructor for userService. The factory is shared by
// every call; the repository must be safe for concurrent use.
func NewUserService[C any](
	userRepo repository.UserRepository[C],
	connFactory repository.ConnectionFactory[C],
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService[C]{
		userRepo:    userRepo,
		connFactory: connFactory,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService[C]) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetUser implements usecase.UserUsecase.
func (srv *userService[C]) GetUser(ctx context.Context, id uuid.UUID) (*usecase.GetUserOutput, error) {
	srv.log(ctx).Debug("Getting user", slog.String("userID", id.String()))

	output, err := GetUser(ctx, id, srv.userRepo, srv.connFactory)
	if err != nil {
		switch domainerrors.KindOf(err) {
		case domainerrors.KindNotFound:
			srv.log(ctx).Debug("User not found", slog.String("userID", id.String()))
		case domainerrors.KindInfrastructure:
			srv.log(ctx).Error("Failed to get user", slog.String("userID", id.String()), slog.Any("error", err))
		default:
			srv.log(ctx).Warn("User lookup aborted", slog.String("userID", id.String()), slog.Any("error", err))
		}

		return nil, err
	}

	return output, nil
}
