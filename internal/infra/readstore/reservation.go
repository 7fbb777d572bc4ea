package readstore

import (
	"context"
	"strings"
	"time"

	"library-backend/internal/infra"
	sqlc "library-backend/internal/infra/sqlc/generated"
	"library-backend/internal/pkg/pgconv"
	"library-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/readstore/reservation.go -package=readstoremock

type ReservationViewQueries interface {
	GetReservationView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ReservationViews, error)
	ListReservationViewsFirstPage(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.ReservationViews, error)
	ListReservationViewsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationViewsKeysetParams) ([]sqlc.ReservationViews, error)
	ListReservationViewsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.ReservationViews, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return toReservationView(row), nil
}

func (r *ReservationReadStore) ListFirstPage(ctx context.Context, limit int32) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationViewsFirstPage(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations first page", err)
	}
	return toReservationViews(rows), nil
}

func (r *ReservationReadStore) ListKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReservationView, error) {
	params := sqlc.ListReservationViewsKeysetParams{
		CreatedAt: lastCreatedAt,
		ID:        lastID,
		RowLimit:  limit,
	}

	rows, err := r.queries.ListReservationViewsKeyset(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations with keyset", err)
	}
	return toReservationViews(rows), nil
}

func (r *ReservationReadStore) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationViewsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by user", err)
	}
	return toReservationViews(rows), nil
}

func toReservationViews(rows []sqlc.ReservationViews) []*queries.ReservationView {
	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = toReservationView(row)
	}
	return result
}

func toReservationView(row sqlc.ReservationViews) *queries.ReservationView {
	return &queries.ReservationView{
		ID:                 row.ID,
		UserID:             row.UserID,
		UserEmail:          row.UserEmail,
		UserFirstName:      row.UserFirstName,
		UserLastName:       row.UserLastName,
		BookID:             row.BookID,
		BookTitle:          row.BookTitle,
		BookAuthor:         row.BookAuthor,
		Status:             strings.ToUpper(row.Status),
		ReservationDate:    pgconv.TimeFromPgtype(row.ReservationDate),
		ExpectedReturnDate: pgconv.TimeFromPgtype(row.ExpectedReturnDate),
		ReturnDate:         pgconv.TimePtrFromPgtype(row.ReturnDate),
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
