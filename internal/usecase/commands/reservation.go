package commands

import (
	"context"
	"time"

	"library-backend/internal/domain/book"
	"library-backend/internal/domain/reservation"
	"library-backend/internal/domain/user"
	"library-backend/internal/pkg/clock"
	"library-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation.go -package=commandsmock

type ReservationCommands interface {
	// Reserve takes one copy for the caller. Nil or non-positive daysToKeep uses the default loan period.
	Reserve(ctx context.Context, bookID uuid.UUID, callerEmail string, daysToKeep *int) (uuid.UUID, error)
	Collect(ctx context.Context, id uuid.UUID, actor shared.Actor) error
	Cancel(ctx context.Context, id uuid.UUID, actor shared.Actor) error
	Return(ctx context.Context, id uuid.UUID, actor shared.Actor) error
	Extend(ctx context.Context, id uuid.UUID, actor shared.Actor) error
}

type reservationCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	policy reservation.Policy
}

func NewReservationCommands(uow shared.UnitOfWork, clk clock.Clock, policy reservation.Policy) ReservationCommands {
	return &reservationCommandsImpl{
		uow:    uow,
		clock:  clk,
		policy: policy,
	}
}

func (uc *reservationCommandsImpl) Reserve(ctx context.Context, bookID uuid.UUID, callerEmail string, daysToKeep *int) (uuid.UUID, error) {
	email, err := user.NewEmail(callerEmail)
	if err != nil {
		return uuid.Nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		caller, err := tx.Reads().UserByEmail(ctx, email.Value())
		if err != nil {
			return notFoundAs(err, user.ErrUserNotFound)
		}
		if !caller.IsActive {
			return ErrUserInactive
		}

		b, err := tx.Books().FindByIDForUpdate(ctx, tx.DB(), bookID)
		if err != nil {
			return notFoundAs(err, book.ErrBookNotFound)
		}

		res, err := reservation.Reserve(b, caller.ID, daysToKeep, uc.policy, uc.clock.Now())
		if err != nil {
			return err
		}

		if err := tx.Reservations().Create(ctx, tx.DB(), res); err != nil {
			return err
		}
		if err := tx.Books().Save(ctx, tx.DB(), b); err != nil {
			return err
		}

		createdID = res.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, translateTxErr(err)
	}
	return createdID, nil
}

func (uc *reservationCommandsImpl) Collect(ctx context.Context, id uuid.UUID, actor shared.Actor) error {
	return uc.transition(ctx, id, actor, false, func(res *reservation.Reservation, _ *book.Book, now time.Time) error {
		return res.Collect(now)
	})
}

func (uc *reservationCommandsImpl) Cancel(ctx context.Context, id uuid.UUID, actor shared.Actor) error {
	return uc.transition(ctx, id, actor, true, func(res *reservation.Reservation, b *book.Book, now time.Time) error {
		return res.Cancel(b, now)
	})
}

func (uc *reservationCommandsImpl) Return(ctx context.Context, id uuid.UUID, actor shared.Actor) error {
	return uc.transition(ctx, id, actor, true, func(res *reservation.Reservation, b *book.Book, now time.Time) error {
		return res.Return(b, now)
	})
}

func (uc *reservationCommandsImpl) Extend(ctx context.Context, id uuid.UUID, actor shared.Actor) error {
	return uc.transition(ctx, id, actor, false, func(res *reservation.Reservation, _ *book.Book, now time.Time) error {
		return res.Extend(uc.policy, now)
	})
}

type transitionFunc func(res *reservation.Reservation, b *book.Book, now time.Time) error

// transition locks the reservation, then the book when copies move, and writes both back.
func (uc *reservationCommandsImpl) transition(ctx context.Context, id uuid.UUID, actor shared.Actor, movesCopy bool, step transitionFunc) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByIDForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return notFoundAs(err, reservation.ErrReservationNotFound)
		}
		if !actor.CanAccess(res.UserID()) {
			return ErrReservationAccess
		}

		var b *book.Book
		if movesCopy {
			b, err = tx.Books().FindByIDForUpdate(ctx, tx.DB(), res.BookID())
			if err != nil {
				return notFoundAs(err, book.ErrBookNotFound)
			}
		}

		if err := step(res, b, uc.clock.Now()); err != nil {
			return err
		}

		if err := tx.Reservations().Save(ctx, tx.DB(), res); err != nil {
			return notFoundAs(err, reservation.ErrReservationNotFound)
		}
		if b != nil {
			return tx.Books().Save(ctx, tx.DB(), b)
		}
		return nil
	})
	return translateTxErr(err)
}
