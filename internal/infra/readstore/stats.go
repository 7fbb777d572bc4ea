package readstore

import (
	"context"
	"log/slog"

	"library-backend/internal/domain/reservation"
	"library-backend/internal/infra"
	sqlc "library-backend/internal/infra/sqlc/generated"
)

//go:generate mockgen -source=stats.go -destination=../../../tests/mock/readstore/stats.go -package=readstoremock

type StatsQueries interface {
	CountBooks(ctx context.Context, db sqlc.DBTX) (int64, error)
	CountUsers(ctx context.Context, db sqlc.DBTX) (int64, error)
	CountReservationsByStatus(ctx context.Context, db sqlc.DBTX) ([]sqlc.CountReservationsByStatusRow, error)
}

type StatsReadStore struct {
	queries StatsQueries
}

func NewStatsReadStore(queries StatsQueries) *StatsReadStore {
	return &StatsReadStore{queries: queries}
}

func (r *StatsReadStore) CountBooks(ctx context.Context, db sqlc.DBTX) (int64, error) {
	n, err := r.queries.CountBooks(ctx, db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count books", err)
	}
	return n, nil
}

func (r *StatsReadStore) CountUsers(ctx context.Context, db sqlc.DBTX) (int64, error) {
	n, err := r.queries.CountUsers(ctx, db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count users", err)
	}
	return n, nil
}

func (r *StatsReadStore) CountReservationsByStatus(ctx context.Context, db sqlc.DBTX) (map[reservation.Status]int64, error) {
	rows, err := r.queries.CountReservationsByStatus(ctx, db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count reservations by status", err)
	}

	out := make(map[reservation.Status]int64, len(rows))
	for _, row := range rows {
		st, err := reservation.ParseStatus(row.Status)
		if err != nil {
			slog.Warn("skipping unknown reservation status", "status", row.Status)
			continue
		}
		out[st] = row.Count
	}
	return out, nil
}
