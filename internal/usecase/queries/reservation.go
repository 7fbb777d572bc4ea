package queries

import (
	"context"
	"time"

	"library-backend/internal/domain/reservation"
	"library-backend/internal/domain/user"
	"library-backend/internal/infra"
	"library-backend/internal/pkg/errs"
	"library-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation.go -package=queriesmock

var ErrReservationAccess = errs.NewKind("reservation access denied", errs.ErrForbidden)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListFirstPage(ctx context.Context, limit int32) ([]*ReservationView, error)
	ListKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReservationView, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ReservationView, error)
	// ListAll pages newest first.
	ListAll(ctx context.Context, cursor *Cursor, limit int) ([]*ReservationView, *Cursor, error)
	ListByUser(ctx context.Context, email string) ([]*ReservationView, error)
	ListByUserID(ctx context.Context, actor shared.Actor, userID uuid.UUID) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
	users UserReadStore
}

func NewReservationQueries(store ReservationReadStore, users UserReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store, users: users}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ReservationView, error) {
	rv, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, reservation.ErrReservationNotFound
		}
		return nil, err
	}

	if !actor.CanAccess(rv.UserID) {
		return nil, ErrReservationAccess
	}
	return rv, nil
}

func (q *reservationQueriesImpl) ListAll(ctx context.Context, cursor *Cursor, limit int) ([]*ReservationView, *Cursor, error) {
	limit = ValidateLimit(limit)
	fetch := int32(limit + 1) // #nosec G115 -- bounded by MaxListLimit

	var rows []*ReservationView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.ListFirstPage(ctx, fetch)
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, derr
		}
		rows, err = q.store.ListKeyset(ctx, lastCreatedAt, lastID, fetch)
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, email string) ([]*ReservationView, error) {
	u, err := q.users.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, err
	}
	return q.store.ListByUserID(ctx, u.ID)
}

func (q *reservationQueriesImpl) ListByUserID(ctx context.Context, actor shared.Actor, userID uuid.UUID) ([]*ReservationView, error) {
	if !actor.CanAccess(userID) {
		return nil, ErrReservationAccess
	}

	if _, err := q.users.FindByID(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, err
	}
	return q.store.ListByUserID(ctx, userID)
}
