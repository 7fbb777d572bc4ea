//go:build unit || e2e

package builder

import (
	"time"

	"library-backend/internal/domain/reservation"
	sqlc "library-backend/internal/infra/sqlc/generated"
	"library-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationBuilder struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	UserEmail          string
	BookID             uuid.UUID
	BookTitle          string
	Status             reservation.Status
	ReservationDate    time.Time
	ExpectedReturnDate time.Time
	ReturnDate         *time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	reserved := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:                 uuid.New(),
		UserID:             uuid.New(),
		UserEmail:          "test@example.com",
		BookID:             uuid.New(),
		BookTitle:          "The Go Programming Language",
		Status:             reservation.StatusReserved,
		ReservationDate:    reserved,
		ExpectedReturnDate: reserved.AddDate(0, 0, reservation.DefaultLoanDays),
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) WithStatus(s reservation.Status) *ReservationBuilder {
	r.Status = s
	return r
}

func (r *ReservationBuilder) ForUser(id uuid.UUID) *ReservationBuilder {
	r.UserID = id
	return r
}

func (r *ReservationBuilder) ForBook(id uuid.UUID) *ReservationBuilder {
	r.BookID = id
	return r
}

func (r *ReservationBuilder) DueAt(t time.Time) *ReservationBuilder {
	r.ExpectedReturnDate = t
	return r
}

func (r *ReservationBuilder) BuildDomain() *reservation.Reservation {
	return reservation.ReconstructReservation(
		r.ID, r.UserID, r.BookID, r.Status,
		r.ReservationDate, r.ExpectedReturnDate, r.ReturnDate,
		r.ReservationDate, r.ReservationDate,
	)
}

func (r *ReservationBuilder) BuildInfra() sqlc.Reservations {
	var returned pgtype.Timestamptz
	if r.ReturnDate != nil {
		returned = pgtype.Timestamptz{Time: *r.ReturnDate, Valid: true}
	}
	return sqlc.Reservations{
		ID:                 r.ID,
		UserID:             r.UserID,
		BookID:             r.BookID,
		Status:             r.Status.String(),
		ReservationDate:    pgtype.Timestamptz{Time: r.ReservationDate, Valid: true},
		ExpectedReturnDate: pgtype.Timestamptz{Time: r.ExpectedReturnDate, Valid: true},
		ReturnDate:         returned,
		CreatedAt:          pgtype.Timestamptz{Time: r.ReservationDate, Valid: true},
		UpdatedAt:          pgtype.Timestamptz{Time: r.ReservationDate, Valid: true},
	}
}

func (r *ReservationBuilder) BuildViewRow() sqlc.ReservationViews {
	row := r.BuildInfra()
	return sqlc.ReservationViews{
		ID:                 row.ID,
		UserID:             row.UserID,
		UserEmail:          r.UserEmail,
		UserFirstName:      "Hanako",
		UserLastName:       "Yamada",
		BookID:             row.BookID,
		BookTitle:          r.BookTitle,
		BookAuthor:         "Alan Donovan",
		Status:             row.Status,
		ReservationDate:    row.ReservationDate,
		ExpectedReturnDate: row.ExpectedReturnDate,
		ReturnDate:         row.ReturnDate,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:                 r.ID,
		UserID:             r.UserID,
		UserEmail:          r.UserEmail,
		UserFirstName:      "Hanako",
		UserLastName:       "Yamada",
		BookID:             r.BookID,
		BookTitle:          r.BookTitle,
		BookAuthor:         "Alan Donovan",
		Status:             r.Status.Wire(),
		ReservationDate:    r.ReservationDate,
		ExpectedReturnDate: r.ExpectedReturnDate,
		ReturnDate:         r.ReturnDate,
		CreatedAt:          r.ReservationDate,
		UpdatedAt:          r.ReservationDate,
	}
}
