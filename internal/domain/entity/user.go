// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"github.com/google/uuid"
)

// User is a persisted account record. It is owned by the storage layer and
// read-only for use cases.
type User struct {
	ID   uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Name string    // The user's display name.
}
