package commands

import (
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

// PasswordHasher is satisfied by password.Hasher.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hashed, plain string) error
}

// TokenIssuer is satisfied by jwt.Service.
type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, email, role string) (string, error)
	TokenDuration() time.Duration
}
