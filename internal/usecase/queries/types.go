package queries

import (
	"time"

	"github.com/google/uuid"
)

// BookView represents read-optimized book data
type BookView struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	PublicationYear int       `json:"publication_year"`
	PictureURL      *string   `json:"picture_url,omitempty"`
	TotalCopies     int       `json:"total_copies"`
	AvailableCopies int       `json:"available_copies"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ReservationView joins a reservation with its user and book. Status is the uppercase wire form.
type ReservationView struct {
	ID                 uuid.UUID  `json:"id"`
	UserID             uuid.UUID  `json:"user_id"`
	UserEmail          string     `json:"user_email"`
	UserFirstName      string     `json:"user_first_name"`
	UserLastName       string     `json:"user_last_name"`
	BookID             uuid.UUID  `json:"book_id"`
	BookTitle          string     `json:"book_title"`
	BookAuthor         string     `json:"book_author"`
	Status             string     `json:"status"`
	ReservationDate    time.Time  `json:"reservation_date"`
	ExpectedReturnDate time.Time  `json:"expected_return_date"`
	ReturnDate         *time.Time `json:"return_date,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// UserView represents read-optimized user data without credentials
type UserView struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type DashboardStats struct {
	TotalBooks        int64            `json:"total_books"`
	TotalUsers        int64            `json:"total_users"`
	TotalReservations int64            `json:"total_reservations"`
	ActiveLoans       int64            `json:"active_loans"`
	OverdueBooks      int64            `json:"overdue_books"`
	ByStatus          map[string]int64 `json:"by_status"`
}
