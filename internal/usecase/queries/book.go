package queries

import (
	"context"

	"library-backend/internal/domain/book"
	"library-backend/internal/infra"
	"library-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=book.go -destination=../../../tests/mock/queries/book.go -package=queriesmock

var ErrInvalidSort = errs.NewKind("unsupported sort field", errs.ErrValidation)

type BookSort string

const (
	BookSortTitle           BookSort = "title"
	BookSortAuthor          BookSort = "author"
	BookSortPublicationYear BookSort = "publication_year"
	BookSortAvailable       BookSort = "available_copies"
)

func ParseBookSort(s string) (BookSort, error) {
	switch BookSort(s) {
	case "":
		return BookSortTitle, nil
	case BookSortTitle, BookSortAuthor, BookSortPublicationYear, BookSortAvailable:
		return BookSort(s), nil
	default:
		return "", errs.Wrapf(ErrInvalidSort, "sort %q", s)
	}
}

type BookListParams struct {
	Search string
	Sort   BookSort
	Desc   bool
	Limit  int
	Offset int
}

type BookReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookView, error)
	List(ctx context.Context, params BookListParams) ([]*BookView, error)
}

type BookQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*BookView, error)
	List(ctx context.Context, params BookListParams) ([]*BookView, error)
}

type bookQueriesImpl struct {
	store BookReadStore
}

func NewBookQueries(store BookReadStore) BookQueries {
	return &bookQueriesImpl{store: store}
}

func (q *bookQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*BookView, error) {
	b, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, err
	}
	return b, nil
}

func (q *bookQueriesImpl) List(ctx context.Context, params BookListParams) ([]*BookView, error) {
	if params.Sort == "" {
		params.Sort = BookSortTitle
	}
	if _, err := ParseBookSort(string(params.Sort)); err != nil {
		return nil, err
	}
	if params.Offset < 0 {
		params.Offset = 0
	}
	params.Limit = ValidateLimit(params.Limit)

	return q.store.List(ctx, params)
}
