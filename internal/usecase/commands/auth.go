package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"library-backend/internal/domain/auth"
	"library-backend/internal/domain/user"
	"library-backend/internal/infra"
	"library-backend/internal/pkg/errs"
	"library-backend/internal/usecase/shared"
)

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth.go -package=commandsmock

var (
	ErrTokenGeneration = errs.New("token generation failed")
)

type LoginResult struct {
	UserID      uuid.UUID
	Email       string
	Role        user.Role
	AccessToken string
	ExpiresIn   time.Duration
}

type AuthCommands interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow    shared.UnitOfWork
	hasher PasswordHasher
	tokens TokenIssuer
}

func NewAuthCommands(uow shared.UnitOfWork, hasher PasswordHasher, tokens TokenIssuer) AuthCommands {
	return &authCommandsImpl{
		uow:    uow,
		hasher: hasher,
		tokens: tokens,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	credentials, err := auth.NewCredentials(email, password)
	if err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	snap, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	accessToken, err := a.tokens.GenerateToken(snap.ID, snap.Email, snap.Role.String())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		UserID:      snap.ID,
		Email:       snap.Email,
		Role:        snap.Role,
		AccessToken: accessToken,
		ExpiresIn:   a.tokens.TokenDuration(),
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials auth.Credentials) (*shared.UserSnapshot, error) {
	snap, err := a.uow.CommandReads().UserByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// Unknown email and wrong password are indistinguishable to the caller
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	if !snap.IsActive {
		return nil, ErrUserInactive
	}

	if err := a.hasher.Compare(snap.PasswordHash, credentials.Password().Value()); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	return snap, nil
}
