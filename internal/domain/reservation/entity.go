package reservation

import (
	"time"

	"library-backend/internal/domain/book"
	"library-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.NewKind("reservation not found", errs.ErrNotFound)
	ErrNotReserved         = errs.NewKind("reservation is not in RESERVED status", errs.ErrInvalidState)
	ErrNotOnLoan           = errs.NewKind("reservation is not BORROWED or OVERDUE", errs.ErrInvalidState)
	ErrExtensionNotLater   = errs.NewKind("extended return date must be after the current one", errs.ErrInvalidState)
	ErrNotDue              = errs.NewKind("reservation is not past its expected return date", errs.ErrInvalidState)
	ErrBookMismatch        = errs.New("book does not belong to reservation")
)

type Reservation struct {
	id                 uuid.UUID
	userID             uuid.UUID
	bookID             uuid.UUID
	status             Status
	reservationDate    time.Time
	expectedReturnDate time.Time
	returnDate         *time.Time
	createdAt          time.Time
	updatedAt          time.Time
}

// Reserve takes a copy of b for the user. The book is mutated only on success.
func Reserve(b *book.Book, userID uuid.UUID, daysToKeep *int, policy Policy, now time.Time) (*Reservation, error) {
	due, err := policy.DueDate(now, daysToKeep)
	if err != nil {
		return nil, err
	}
	if err := b.CheckOut(now); err != nil {
		return nil, err
	}
	return &Reservation{
		id:                 uuid.New(),
		userID:             userID,
		bookID:             b.ID(),
		status:             StatusReserved,
		reservationDate:    now,
		expectedReturnDate: due,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

func ReconstructReservation(
	id, userID, bookID uuid.UUID,
	status Status,
	reservationDate, expectedReturnDate time.Time,
	returnDate *time.Time,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:                 id,
		userID:             userID,
		bookID:             bookID,
		status:             status,
		reservationDate:    reservationDate,
		expectedReturnDate: expectedReturnDate,
		returnDate:         returnDate,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// Collect hands the reserved copy to the user.
func (r *Reservation) Collect(now time.Time) error {
	if r.status != StatusReserved {
		return errs.Wrapf(ErrNotReserved, "status %s", r.status.Wire())
	}
	r.status = StatusBorrowed
	r.updatedAt = now
	return nil
}

// Cancel releases the reserved copy back to b.
func (r *Reservation) Cancel(b *book.Book, now time.Time) error {
	if r.status != StatusReserved {
		return errs.Wrapf(ErrNotReserved, "status %s", r.status.Wire())
	}
	if b.ID() != r.bookID {
		return ErrBookMismatch
	}
	if err := b.Restore(now); err != nil {
		return err
	}
	r.status = StatusCanceled
	r.updatedAt = now
	return nil
}

// Return closes the loan. It is late only when now is strictly after the expected date.
func (r *Reservation) Return(b *book.Book, now time.Time) error {
	if !r.status.IsOnLoan() {
		return errs.Wrapf(ErrNotOnLoan, "status %s", r.status.Wire())
	}
	if b.ID() != r.bookID {
		return ErrBookMismatch
	}
	if err := b.Restore(now); err != nil {
		return err
	}
	if now.After(r.expectedReturnDate) {
		r.status = StatusLateReturned
	} else {
		r.status = StatusReturned
	}
	returned := now
	r.returnDate = &returned
	r.updatedAt = now
	return nil
}

// Extend pushes the expected date to max(now, expected) plus the extension and clears OVERDUE.
func (r *Reservation) Extend(policy Policy, now time.Time) error {
	if !r.status.IsOnLoan() {
		return errs.Wrapf(ErrNotOnLoan, "status %s", r.status.Wire())
	}
	base := r.expectedReturnDate
	if now.After(base) {
		base = now
	}
	next := policy.Extend(base)
	if !next.After(r.expectedReturnDate) {
		return ErrExtensionNotLater
	}
	r.expectedReturnDate = next
	r.status = StatusBorrowed
	r.updatedAt = now
	return nil
}

// MarkOverdue flags a borrowed loan whose expected date has passed.
func (r *Reservation) MarkOverdue(now time.Time) error {
	if r.status != StatusBorrowed {
		return errs.Wrapf(ErrNotOnLoan, "status %s", r.status.Wire())
	}
	if !r.expectedReturnDate.Before(now) {
		return ErrNotDue
	}
	r.status = StatusOverdue
	r.updatedAt = now
	return nil
}

func (r *Reservation) IsOverdueAt(now time.Time) bool {
	return r.status == StatusBorrowed && r.expectedReturnDate.Before(now)
}

func (r *Reservation) BelongsTo(userID uuid.UUID) bool {
	return r.userID == userID
}

func (r *Reservation) ID() uuid.UUID                 { return r.id }
func (r *Reservation) UserID() uuid.UUID             { return r.userID }
func (r *Reservation) BookID() uuid.UUID             { return r.bookID }
func (r *Reservation) Status() Status                { return r.status }
func (r *Reservation) ReservationDate() time.Time    { return r.reservationDate }
func (r *Reservation) ExpectedReturnDate() time.Time { return r.expectedReturnDate }
func (r *Reservation) ReturnDate() *time.Time        { return r.returnDate }
func (r *Reservation) CreatedAt() time.Time          { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time          { return r.updatedAt }
