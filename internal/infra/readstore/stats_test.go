//go:build unit

package readstore

import (
	"context"
	"testing"

	"library-backend/internal/domain/reservation"
	"library-backend/internal/infra"
	sqlc "library-backend/internal/infra/sqlc/generated"
	readstoremock "library-backend/tests/mock/readstore"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStatsReadStore_CountReservationsByStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("未知のステータスは読み飛ばす", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockStatsQueries(ctrl)
		q.EXPECT().CountReservationsByStatus(gomock.Any(), gomock.Any()).Return([]sqlc.CountReservationsByStatusRow{
			{Status: "borrowed", Count: 4},
			{Status: "late_returned", Count: 2},
			{Status: "lost", Count: 9},
		}, nil)

		got, err := NewStatsReadStore(q).CountReservationsByStatus(ctx, nil)

		require.NoError(t, err)
		want := map[reservation.Status]int64{
			reservation.StatusBorrowed:     4,
			reservation.StatusLateReturned: 2,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("counts mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockStatsQueries(ctrl)
		q.EXPECT().CountReservationsByStatus(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

		_, err := NewStatsReadStore(q).CountReservationsByStatus(ctx, nil)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestStatsReadStore_Counts(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := readstoremock.NewMockStatsQueries(ctrl)
	q.EXPECT().CountBooks(gomock.Any(), gomock.Any()).Return(int64(7), nil)
	q.EXPECT().CountUsers(gomock.Any(), gomock.Any()).Return(int64(0), assert.AnError)
	store := NewStatsReadStore(q)

	books, err := store.CountBooks(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(7), books)

	_, err = store.CountUsers(context.Background(), nil)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
