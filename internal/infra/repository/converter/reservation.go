package converter

import (
	"library-backend/internal/domain/reservation"
	sqlc "library-backend/internal/infra/sqlc/generated"
	"library-backend/internal/pkg/errs"
	"library-backend/internal/pkg/pgconv"
)

func ReservationToCreateParams(res *reservation.Reservation) sqlc.CreateReservationParams {
	return sqlc.CreateReservationParams{
		ID:                 res.ID(),
		UserID:             res.UserID(),
		BookID:             res.BookID(),
		Status:             res.Status().String(),
		ReservationDate:    pgconv.TimeToPgtype(res.ReservationDate()),
		ExpectedReturnDate: pgconv.TimeToPgtype(res.ExpectedReturnDate()),
		ReturnDate:         pgconv.TimePtrToPgtype(res.ReturnDate()),
		CreatedAt:          pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt:          pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationToUpdateParams(res *reservation.Reservation) sqlc.UpdateReservationParams {
	return sqlc.UpdateReservationParams{
		ID:                 res.ID(),
		Status:             res.Status().String(),
		ExpectedReturnDate: pgconv.TimeToPgtype(res.ExpectedReturnDate()),
		ReturnDate:         pgconv.TimePtrToPgtype(res.ReturnDate()),
		UpdatedAt:          pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationFromRow(row sqlc.Reservations) (*reservation.Reservation, error) {
	status, err := reservation.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "corrupted reservation row %s", row.ID)
	}

	return reservation.ReconstructReservation(
		row.ID,
		row.UserID,
		row.BookID,
		status,
		pgconv.TimeFromPgtype(row.ReservationDate),
		pgconv.TimeFromPgtype(row.ExpectedReturnDate),
		pgconv.TimePtrFromPgtype(row.ReturnDate),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
