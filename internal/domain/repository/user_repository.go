// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"userlookup/internal/domain/entity"

	"github.com/google/uuid"
)

// UserRepository reads users through a connection borrowed from a ConnectionFactory.
// C is the driver's connection handle. Implementations must be safe for concurrent
// use and must not keep conn after returning.
type UserRepository[C any] interface {
	// FindByID returns (nil, nil) when no user has the given ID. Any storage
	// failure is reported as an error and never converted to absence.
	FindByID(ctx context.Context, conn C, id uuid.UUID) (*entity.User, error)
}
