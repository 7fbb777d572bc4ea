package repository

import (
	"context"
	"time"

	"library-backend/internal/domain/reservation"
	"library-backend/internal/infra"
	"library-backend/internal/infra/repository/converter"
	sqlc "library-backend/internal/infra/sqlc/generated"
	"library-backend/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/repository/reservation.go -package=repositorymock

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (sqlc.Reservations, error)
	GetReservationForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	UpdateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationParams) (int64, error)
	ListBorrowedDueBeforeForUpdate(ctx context.Context, db sqlc.DBTX, expectedReturnDate pgtype.Timestamptz) ([]sqlc.Reservations, error)
	MarkReservationsOverdue(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkReservationsOverdueParams) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
}

func NewReservationRepository(queries ReservationWriteQueries) *ReservationRepository {
	return &ReservationRepository{queries: queries}
}

func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	if _, err := r.queries.CreateReservation(ctx, tx, converter.ReservationToCreateParams(res)); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}
	return converter.ReservationFromRow(row)
}

func (r *ReservationRepository) Save(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	affected, err := r.queries.UpdateReservation(ctx, tx, converter.ReservationToUpdateParams(res))
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) LockBorrowedDueBefore(ctx context.Context, tx sqlc.DBTX, cutoff time.Time) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListBorrowedDueBeforeForUpdate(ctx, tx, pgconv.TimeToPgtype(cutoff))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock due reservations", err)
	}

	out := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		res, err := converter.ReservationFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

func (r *ReservationRepository) MarkOverdue(ctx context.Context, tx sqlc.DBTX, ids []uuid.UUID, now time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	affected, err := r.queries.MarkReservationsOverdue(ctx, tx, sqlc.MarkReservationsOverdueParams{
		UpdatedAt: pgconv.TimeToPgtype(now),
		Ids:       ids,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark reservations overdue", err)
	}
	return affected, nil
}

func activeStatuses() []string {
	return reservation.StatusStrings(reservation.ActiveStatuses)
}
