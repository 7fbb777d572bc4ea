//go:build unit || e2e

package builder

import (
	"time"

	"library-backend/internal/domain/book"
	reqdto "library-backend/internal/handler/dto/request"
	sqlc "library-backend/internal/infra/sqlc/generated"
	"library-backend/internal/pkg/pgconv"
	"library-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookBuilder struct {
	ID              uuid.UUID
	Title           string
	Author          string
	PublicationYear int
	PictureURL      *string
	TotalCopies     int
	AvailableCopies int
	Version         int32
	CreatedAt       time.Time
}

func NewBookBuilder() *BookBuilder {
	return &BookBuilder{
		ID:              uuid.New(),
		Title:           "The Go Programming Language",
		Author:          "Alan Donovan",
		PublicationYear: 2015,
		TotalCopies:     3,
		AvailableCopies: 3,
		Version:         1,
		CreatedAt:       time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookBuilder) With(mutate func(*BookBuilder)) *BookBuilder {
	mutate(b)
	return b
}

// WithCopies sets total and available copies.
func (b *BookBuilder) WithCopies(total, available int) *BookBuilder {
	b.TotalCopies = total
	b.AvailableCopies = available
	return b
}

func (b *BookBuilder) BuildDomain() (*book.Book, error) {
	details, err := book.NewDetails(b.Title, b.Author, b.PublicationYear, b.PictureURL)
	if err != nil {
		return nil, err
	}
	return book.ReconstructBook(b.ID, details, b.TotalCopies, b.AvailableCopies, b.Version, b.CreatedAt, b.CreatedAt), nil
}

func (b *BookBuilder) BuildInfra() sqlc.Books {
	var picture pgtype.Text
	if b.PictureURL != nil {
		picture = pgtype.Text{String: *b.PictureURL, Valid: true}
	}
	return sqlc.Books{
		ID:              b.ID,
		Title:           b.Title,
		Author:          b.Author,
		PublicationYear: pgconv.IntToInt32(b.PublicationYear),
		PictureUrl:      picture,
		TotalCopies:     pgconv.IntToInt32(b.TotalCopies),
		AvailableCopies: pgconv.IntToInt32(b.AvailableCopies),
		Version:         b.Version,
		CreatedAt:       pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:       pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *BookBuilder) BuildView() *queries.BookView {
	return &queries.BookView{
		ID:              b.ID,
		Title:           b.Title,
		Author:          b.Author,
		PublicationYear: b.PublicationYear,
		PictureURL:      b.PictureURL,
		TotalCopies:     b.TotalCopies,
		AvailableCopies: b.AvailableCopies,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.CreatedAt,
	}
}

func (b *BookBuilder) BuildCreateDTO() reqdto.CreateBookRequest {
	total := b.TotalCopies
	return reqdto.CreateBookRequest{
		Title:           b.Title,
		Author:          b.Author,
		PublicationYear: b.PublicationYear,
		PictureURL:      b.PictureURL,
		TotalCopies:     &total,
	}
}
