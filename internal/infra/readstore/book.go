package readstore

import (
	"context"

	"library-backend/internal/infra"
	sqlc "library-backend/internal/infra/sqlc/generated"
	"library-backend/internal/pkg/pgconv"
	"library-backend/internal/usecase/queries"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=book.go -destination=../../../tests/mock/readstore/book.go -package=readstoremock

const (
	dialectPostgres = "postgres"
	tableBooks      = "books"

	colID              = "id"
	colTitle           = "title"
	colAuthor          = "author"
	colPublicationYear = "publication_year"
	colPictureURL      = "picture_url"
	colTotalCopies     = "total_copies"
	colAvailable       = "available_copies"
	colCreatedAt       = "created_at"
	colUpdatedAt       = "updated_at"
)

type BookReadQueries interface {
	GetBook(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Books, error)
}

type BookReadStore struct {
	queries BookReadQueries
	db      sqlc.DBTX
}

func NewBookReadStore(queries BookReadQueries, db sqlc.DBTX) *BookReadStore {
	return &BookReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookView, error) {
	row, err := r.queries.GetBook(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("book not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find book by ID", err)
	}
	return toBookView(row), nil
}

// bookRow mirrors the columns selected by BuildBookListQuery.
type bookRow struct {
	ID              uuid.UUID          `db:"id"`
	Title           string             `db:"title"`
	Author          string             `db:"author"`
	PublicationYear int32              `db:"publication_year"`
	PictureURL      pgtype.Text        `db:"picture_url"`
	TotalCopies     int32              `db:"total_copies"`
	AvailableCopies int32              `db:"available_copies"`
	CreatedAt       pgtype.Timestamptz `db:"created_at"`
	UpdatedAt       pgtype.Timestamptz `db:"updated_at"`
}

func (r *BookReadStore) List(ctx context.Context, params queries.BookListParams) ([]*queries.BookView, error) {
	query, args, err := BuildBookListQuery(params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build book list query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list books", err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[bookRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan books", err)
	}

	result := make([]*queries.BookView, len(items))
	for i, it := range items {
		result[i] = &queries.BookView{
			ID:              it.ID,
			Title:           it.Title,
			Author:          it.Author,
			PublicationYear: int(it.PublicationYear),
			PictureURL:      pgconv.StringPtrFromPgtype(it.PictureURL),
			TotalCopies:     int(it.TotalCopies),
			AvailableCopies: int(it.AvailableCopies),
			CreatedAt:       pgconv.TimeFromPgtype(it.CreatedAt),
			UpdatedAt:       pgconv.TimeFromPgtype(it.UpdatedAt),
		}
	}
	return result, nil
}

// BuildBookListQuery renders a parameterized SELECT; id breaks ties so paging is stable.
func BuildBookListQuery(params queries.BookListParams) (string, []any, error) {
	sortCol := string(params.Sort)
	if sortCol == "" {
		sortCol = colTitle
	}

	order := goqu.I(sortCol).Asc()
	if params.Desc {
		order = goqu.I(sortCol).Desc()
	}

	stmt := goqu.Dialect(dialectPostgres).
		From(tableBooks).
		Prepared(true).
		Select(colID, colTitle, colAuthor, colPublicationYear, colPictureURL,
			colTotalCopies, colAvailable, colCreatedAt, colUpdatedAt).
		Order(order, goqu.I(colID).Asc())

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		stmt = stmt.Where(goqu.Or(
			goqu.C(colTitle).ILike(pattern),
			goqu.C(colAuthor).ILike(pattern),
		))
	}
	if params.Limit > 0 {
		stmt = stmt.Limit(uint(params.Limit))
	}
	if params.Offset > 0 {
		stmt = stmt.Offset(uint(params.Offset))
	}

	return stmt.ToSQL()
}

func toBookView(row sqlc.Books) *queries.BookView {
	return &queries.BookView{
		ID:              row.ID,
		Title:           row.Title,
		Author:          row.Author,
		PublicationYear: int(row.PublicationYear),
		PictureURL:      pgconv.StringPtrFromPgtype(row.PictureUrl),
		TotalCopies:     int(row.TotalCopies),
		AvailableCopies: int(row.AvailableCopies),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
