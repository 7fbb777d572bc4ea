package repository

import (
	"context"

	"library-backend/internal/domain/book"
	"library-backend/internal/infra"
	"library-backend/internal/infra/repository/converter"
	sqlc "library-backend/internal/infra/sqlc/generated"
	"library-backend/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=book.go -destination=../../../tests/mock/repository/book.go -package=repositorymock

type BookWriteQueries interface {
	CreateBook(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookParams) (sqlc.Books, error)
	GetBook(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Books, error)
	GetBookForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Books, error)
	UpdateBook(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookParams) (int64, error)
	DeleteBook(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	CountActiveReservationsByBook(ctx context.Context, db sqlc.DBTX, arg sqlc.CountActiveReservationsByBookParams) (int64, error)
}

type BookRepository struct {
	queries BookWriteQueries
}

func NewBookRepository(queries BookWriteQueries) *BookRepository {
	return &BookRepository{queries: queries}
}

func (r *BookRepository) Create(ctx context.Context, tx sqlc.DBTX, b *book.Book) error {
	if _, err := r.queries.CreateBook(ctx, tx, converter.BookToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create book", err)
	}
	return nil
}

func (r *BookRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*book.Book, error) {
	row, err := r.queries.GetBook(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("book not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find book", err)
	}
	return converter.BookFromRow(row)
}

func (r *BookRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*book.Book, error) {
	row, err := r.queries.GetBookForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("book not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock book", err)
	}
	return converter.BookFromRow(row)
}

func (r *BookRepository) Save(ctx context.Context, tx sqlc.DBTX, b *book.Book) error {
	affected, err := r.queries.UpdateBook(ctx, tx, converter.BookToUpdateParams(b))
	if err != nil {
		return infra.WrapRepoErr("failed to update book", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("book version is stale", nil, infra.KindStaleVersion)
	}
	return nil
}

func (r *BookRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	affected, err := r.queries.DeleteBook(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete book", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("book not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookRepository) CountActiveReservations(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (int64, error) {
	count, err := r.queries.CountActiveReservationsByBook(ctx, tx, sqlc.CountActiveReservationsByBookParams{
		BookID:   id,
		Statuses: activeStatuses(),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count active reservations for book", err)
	}
	return count, nil
}
