package book

import (
	"time"

	"library-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookNotFound      = errs.NewKind("book not found", errs.ErrNotFound)
	ErrHasActiveLoans    = errs.NewKind("book has active reservations", errs.ErrConflict)
	ErrNoCopiesAvailable = errs.NewKind("no copies available", errs.ErrCapacityViolation)
	ErrCopiesOnLoan      = errs.NewKind("cannot reduce total copies below the number of copies on loan", errs.ErrCapacityViolation)
	ErrAllCopiesPresent  = errs.NewKind("available copies cannot exceed total copies", errs.ErrCapacityViolation)
)

// Book tracks copy counts. Invariant: 0 <= availableCopies <= totalCopies.
type Book struct {
	id              uuid.UUID
	details         Details
	totalCopies     int
	availableCopies int
	version         int32
	createdAt       time.Time
	updatedAt       time.Time
}

// NewBook starts with every copy on the shelf.
func NewBook(details Details, totalCopies int, now time.Time) (*Book, error) {
	if totalCopies < 0 {
		return nil, ErrNegativeTotalCopies
	}
	return &Book{
		id:              uuid.New(),
		details:         details,
		totalCopies:     totalCopies,
		availableCopies: totalCopies,
		version:         1,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructBook(
	id uuid.UUID,
	details Details,
	totalCopies, availableCopies int,
	version int32,
	createdAt, updatedAt time.Time,
) *Book {
	return &Book{
		id:              id,
		details:         details,
		totalCopies:     totalCopies,
		availableCopies: availableCopies,
		version:         version,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// CheckOut takes one copy off the shelf.
func (b *Book) CheckOut(now time.Time) error {
	if b.availableCopies <= 0 {
		return ErrNoCopiesAvailable
	}
	b.availableCopies--
	b.updatedAt = now
	return nil
}

// Restore puts one copy back on the shelf.
func (b *Book) Restore(now time.Time) error {
	if b.availableCopies >= b.totalCopies {
		return ErrAllCopiesPresent
	}
	b.availableCopies++
	b.updatedAt = now
	return nil
}

// Revise replaces the details and shifts availability by the change in total copies.
// On error the book is left untouched.
func (b *Book) Revise(details Details, newTotal int, now time.Time) error {
	if newTotal < 0 {
		return ErrNegativeTotalCopies
	}
	newAvailable := b.availableCopies + (newTotal - b.totalCopies)
	if newAvailable < 0 {
		return ErrCopiesOnLoan
	}
	b.details = details
	b.totalCopies = newTotal
	b.availableCopies = newAvailable
	b.updatedAt = now
	return nil
}

// EnsureDeletable rejects removing a book that active reservations still reference.
func (b *Book) EnsureDeletable(activeReservations int64) error {
	if activeReservations > 0 {
		return errs.Wrapf(ErrHasActiveLoans, "%d active", activeReservations)
	}
	return nil
}

func (b *Book) CopiesOnLoan() int {
	return b.totalCopies - b.availableCopies
}

func (b *Book) ID() uuid.UUID                    { return b.id }
func (b *Book) Details() Details                 { return b.details }
func (b *Book) Title() Title                     { return b.details.Title }
func (b *Book) Author() Author                   { return b.details.Author }
func (b *Book) PublicationYear() PublicationYear { return b.details.PublicationYear }
func (b *Book) PictureURL() *string              { return b.details.PictureURL }
func (b *Book) TotalCopies() int                 { return b.totalCopies }
func (b *Book) AvailableCopies() int             { return b.availableCopies }
func (b *Book) Version() int32                   { return b.version }
func (b *Book) CreatedAt() time.Time             { return b.createdAt }
func (b *Book) UpdatedAt() time.Time             { return b.updatedAt }
