package commands

import (
	"context"

	"library-backend/internal/domain/auth"
	"library-backend/internal/domain/user"
	"library-backend/internal/infra"
	"library-backend/internal/pkg/clock"
	"library-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=user.go -destination=../../../tests/mock/commands/user.go -package=commandsmock

type RegisterRequest struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

type UserCommands interface {
	Register(ctx context.Context, req RegisterRequest) (uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userCommandsImpl struct {
	uow    shared.UnitOfWork
	hasher PasswordHasher
	clock  clock.Clock
}

func NewUserCommands(uow shared.UnitOfWork, hasher PasswordHasher, clk clock.Clock) UserCommands {
	return &userCommandsImpl{
		uow:    uow,
		hasher: hasher,
		clock:  clk,
	}
}

func (uc *userCommandsImpl) Register(ctx context.Context, req RegisterRequest) (uuid.UUID, error) {
	reg, err := auth.NewRegistration(req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		return uuid.Nil, err
	}

	hash, err := uc.hasher.Hash(reg.Credentials.Password().Value())
	if err != nil {
		return uuid.Nil, err
	}

	u := user.NewUser(reg.Name, reg.Credentials.Email(), hash, user.RoleUser, uc.clock.Now())

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Create(ctx, tx.DB(), u); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return user.ErrEmailTaken
			}
			return err
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return u.ID(), nil
}

func (uc *userCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByIDForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return notFoundAs(err, user.ErrUserNotFound)
		}

		active, err := tx.Users().CountActiveReservations(ctx, tx.DB(), u.ID())
		if err != nil {
			return err
		}
		if err := u.EnsureDeletable(active); err != nil {
			return err
		}

		return notFoundAs(tx.Users().Delete(ctx, tx.DB(), u.ID()), user.ErrUserNotFound)
	})
}
