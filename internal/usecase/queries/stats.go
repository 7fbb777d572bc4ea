package queries

import (
	"context"

	"library-backend/internal/domain/reservation"
	sqlc "library-backend/internal/infra/sqlc/generated"
	"library-backend/internal/usecase/shared"
)

//go:generate mockgen -source=stats.go -destination=../../../tests/mock/queries/stats.go -package=queriesmock

type StatsReadStore interface {
	CountBooks(ctx context.Context, db sqlc.DBTX) (int64, error)
	CountUsers(ctx context.Context, db sqlc.DBTX) (int64, error)
	CountReservationsByStatus(ctx context.Context, db sqlc.DBTX) (map[reservation.Status]int64, error)
}

type StatsQueries interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
}

type statsQueriesImpl struct {
	uow   shared.UnitOfWork
	store StatsReadStore
}

func NewStatsQueries(uow shared.UnitOfWork, store StatsReadStore) StatsQueries {
	return &statsQueriesImpl{uow: uow, store: store}
}

// Dashboard reads every counter from one read-only snapshot.
func (q *statsQueriesImpl) Dashboard(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{ByStatus: map[string]int64{}}

	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		if stats.TotalBooks, err = q.store.CountBooks(ctx, db); err != nil {
			return err
		}
		if stats.TotalUsers, err = q.store.CountUsers(ctx, db); err != nil {
			return err
		}

		byStatus, err := q.store.CountReservationsByStatus(ctx, db)
		if err != nil {
			return err
		}
		for st, n := range byStatus {
			stats.ByStatus[st.Wire()] = n
			stats.TotalReservations += n
			if st.IsActive() {
				stats.ActiveLoans += n
			}
			if st == reservation.StatusOverdue {
				stats.OverdueBooks += n
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}
