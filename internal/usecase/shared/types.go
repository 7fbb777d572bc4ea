package shared

import (
	"library-backend/internal/domain/user"

	"github.com/google/uuid"
)

// Minimal snapshot for command read operations
type UserSnapshot struct {
	ID           uuid.UUID
	Email        string
	Role         user.Role
	IsActive     bool
	PasswordHash string
}

// Actor is the authenticated caller of a command.
type Actor struct {
	UserID uuid.UUID
	Email  string
	Role   user.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role.IsAdmin()
}

// CanAccess reports whether the actor may act on a resource owned by ownerID.
func (a Actor) CanAccess(ownerID uuid.UUID) bool {
	return a.IsAdmin() || a.UserID == ownerID
}
