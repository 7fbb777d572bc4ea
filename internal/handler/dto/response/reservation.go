package response

import (
	"time"

	"library-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID                 uuid.UUID  `json:"id"`
	UserID             uuid.UUID  `json:"userId"`
	UserEmail          string     `json:"userEmail"`
	UserFirstName      string     `json:"userFirstName"`
	UserLastName       string     `json:"userLastName"`
	BookID             uuid.UUID  `json:"bookId"`
	BookTitle          string     `json:"bookTitle"`
	BookAuthor         string     `json:"bookAuthor"`
	Status             string     `json:"status"`
	ReservationDate    time.Time  `json:"reservationDate"`
	ExpectedReturnDate time.Time  `json:"expectedReturnDate"`
	ReturnDate         *time.Time `json:"returnDate,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

type ReservationListResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
	NextCursor   string                 `json:"nextCursor,omitempty"`
}

func FromReservationView(v *queries.ReservationView) (*ReservationResponse, error) {
	return copyOne[queries.ReservationView, ReservationResponse](v)
}

func FromReservationList(views []*queries.ReservationView, next *queries.Cursor) (*ReservationListResponse, error) {
	items, err := copyAll[queries.ReservationView, ReservationResponse](views)
	if err != nil {
		return nil, err
	}
	resp := &ReservationListResponse{Reservations: items}
	if next != nil {
		resp.NextCursor = next.After
	}
	return resp, nil
}
