// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"userlookup/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Output DTOs ---

// GetUserOutput is the externally visible shape of a user. It holds no storage types.
type GetUserOutput struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// NewGetUserOutput copies the entity field by field.
func NewGetUserOutput(user *entity.User) *GetUserOutput {
	return &GetUserOutput{
		ID:   user.ID,
		Name: user.Name,
	}
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// GetUser returns the user with the given ID, domainerrors.ErrNotFound when
	// there is none, or an infrastructure error when storage could not be read.
	GetUser(ctx context.Context, id uuid.UUID) (*GetUserOutput, error)
}
