package readstore

import (
	"context"

	"github.com/google/uuid"

	"library-backend/internal/infra"
	sqlc "library-backend/internal/infra/sqlc/generated"
	"library-backend/internal/pkg/pgconv"
	"library-backend/internal/usecase/queries"
)

//go:generate mockgen -source=user.go -destination=../../../tests/mock/readstore/user.go -package=readstoremock

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error)
	ListUsers(ctx context.Context, db sqlc.DBTX) ([]sqlc.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row, err := r.FindRowByID(ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	return toUserView(row), nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.UserView, error) {
	row, err := r.FindRowByEmail(ctx, r.db, email)
	if err != nil {
		return nil, err
	}
	return toUserView(row), nil
}

func (r *UserReadStore) List(ctx context.Context) ([]*queries.UserView, error) {
	rows, err := r.queries.ListUsers(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}

	result := make([]*queries.UserView, len(rows))
	for i, row := range rows {
		result[i] = toUserView(row)
	}
	return result, nil
}

// FindRowByID returns the raw row, credentials included, on the given connection.
func (r *UserReadStore) FindRowByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error) {
	row, err := r.queries.FindUserByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return sqlc.Users{}, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return sqlc.Users{}, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return row, nil
}

// FindRowByEmail returns the raw row, credentials included, on the given connection.
func (r *UserReadStore) FindRowByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error) {
	row, err := r.queries.FindUserByEmail(ctx, db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return sqlc.Users{}, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return sqlc.Users{}, infra.WrapRepoErr("failed to find user by email", err)
	}
	return row, nil
}

func toUserView(row sqlc.Users) *queries.UserView {
	return &queries.UserView{
		ID:        row.ID,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Email:     row.Email,
		Role:      row.Role,
		IsActive:  row.IsActive,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
