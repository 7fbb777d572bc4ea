package converter

import (
	"library-backend/internal/domain/book"
	sqlc "library-backend/internal/infra/sqlc/generated"
	"library-backend/internal/pkg/errs"
	"library-backend/internal/pkg/pgconv"
)

func BookToCreateParams(b *book.Book) sqlc.CreateBookParams {
	return sqlc.CreateBookParams{
		ID:              b.ID(),
		Title:           b.Title().String(),
		Author:          b.Author().String(),
		PublicationYear: int32(b.PublicationYear().Int()), // #nosec G115 -- bounded to 1..9999
		PictureUrl:      pgconv.StringPtrToPgtype(b.PictureURL()),
		TotalCopies:     pgconv.IntToInt32(b.TotalCopies()),
		AvailableCopies: pgconv.IntToInt32(b.AvailableCopies()),
		Version:         b.Version(),
		CreatedAt:       pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

// BookToUpdateParams matches on the version the book was loaded with.
func BookToUpdateParams(b *book.Book) sqlc.UpdateBookParams {
	return sqlc.UpdateBookParams{
		ID:              b.ID(),
		Version:         b.Version(),
		Title:           b.Title().String(),
		Author:          b.Author().String(),
		PublicationYear: int32(b.PublicationYear().Int()), // #nosec G115 -- bounded to 1..9999
		PictureUrl:      pgconv.StringPtrToPgtype(b.PictureURL()),
		TotalCopies:     pgconv.IntToInt32(b.TotalCopies()),
		AvailableCopies: pgconv.IntToInt32(b.AvailableCopies()),
		UpdatedAt:       pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookFromRow(row sqlc.Books) (*book.Book, error) {
	details, err := book.NewDetails(row.Title, row.Author, int(row.PublicationYear), pgconv.StringPtrFromPgtype(row.PictureUrl))
	if err != nil {
		return nil, errs.Wrapf(err, "corrupted book row %s", row.ID)
	}

	return book.ReconstructBook(
		row.ID,
		details,
		int(row.TotalCopies),
		int(row.AvailableCopies),
		row.Version,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
