package user

import (
	"time"

	"library-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound      = errs.NewKind("user not found", errs.ErrNotFound)
	ErrEmailTaken        = errs.NewKind("email is already registered", errs.ErrConflict)
	ErrAdminNotDeletable = errs.NewKind("admin accounts cannot be deleted", errs.ErrForbidden)
	ErrHasActiveLoans    = errs.NewKind("user has active reservations", errs.ErrConflict)
)

type User struct {
	id           uuid.UUID
	name         Name
	email        Email
	passwordHash string
	role         Role
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(name Name, email Email, passwordHash string, role Role, now time.Time) *User {
	return &User{
		id:           uuid.New(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}
}

func ReconstructUser(
	id uuid.UUID,
	name Name,
	email Email,
	passwordHash string,
	role Role,
	isActive bool,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// EnsureDeletable rejects deleting administrators or users still holding copies.
func (u *User) EnsureDeletable(activeReservations int64) error {
	if u.role.IsAdmin() {
		return ErrAdminNotDeletable
	}
	if activeReservations > 0 {
		return ErrHasActiveLoans
	}
	return nil
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Name() Name           { return u.name }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
