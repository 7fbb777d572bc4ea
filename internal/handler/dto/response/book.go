package response

import (
	"time"

	"library-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookResponse struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	PublicationYear int       `json:"publicationYear"`
	PictureURL      *string   `json:"pictureUrl,omitempty"`
	TotalCopies     int       `json:"totalCopies"`
	AvailableCopies int       `json:"availableCopies"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type BookListResponse struct {
	Books  []*BookResponse `json:"books"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

func FromBookView(v *queries.BookView) (*BookResponse, error) {
	return copyOne[queries.BookView, BookResponse](v)
}

func FromBookList(views []*queries.BookView, limit, offset int) (*BookListResponse, error) {
	books, err := copyAll[queries.BookView, BookResponse](views)
	if err != nil {
		return nil, err
	}
	return &BookListResponse{Books: books, Limit: limit, Offset: offset}, nil
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}
