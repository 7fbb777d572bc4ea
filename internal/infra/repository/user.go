package repository

import (
	"context"

	"library-backend/internal/domain/user"
	"library-backend/internal/infra"
	"library-backend/internal/infra/repository/converter"
	sqlc "library-backend/internal/infra/sqlc/generated"
	"library-backend/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=user.go -destination=../../../tests/mock/repository/user.go -package=repositorymock

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error)
	FindUserByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	DeleteUser(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	CountActiveReservationsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CountActiveReservationsByUserParams) (int64, error)
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{queries: queries}
}

func (r *UserRepository) Create(ctx context.Context, tx sqlc.DBTX, u *user.User) error {
	if _, err := r.queries.CreateUser(ctx, tx, converter.UserToCreateParams(u)); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*user.User, error) {
	row, err := r.queries.FindUserByIDForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return converter.UserFromRow(row)
}

func (r *UserRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	affected, err := r.queries.DeleteUser(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) CountActiveReservations(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (int64, error) {
	count, err := r.queries.CountActiveReservationsByUser(ctx, tx, sqlc.CountActiveReservationsByUserParams{
		UserID:   id,
		Statuses: activeStatuses(),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count active reservations for user", err)
	}
	return count, nil
}
